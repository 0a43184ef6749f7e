package models

import (
	"time"
)

// BusinessType is the kind of business a contact-form sender runs
type BusinessType string

const (
	BusinessTypeDentalClinic BusinessType = "dis-klinigi"
	BusinessTypeRestaurant   BusinessType = "restoran"
	BusinessTypeECommerce    BusinessType = "e-ticaret"
	BusinessTypeOther        BusinessType = "diger"
)

// BusinessTypes lists every accepted business type in display order
var BusinessTypes = []BusinessType{
	BusinessTypeDentalClinic,
	BusinessTypeRestaurant,
	BusinessTypeECommerce,
	BusinessTypeOther,
}

// Valid reports whether b is one of the known business types
func (b BusinessType) Valid() bool {
	for _, known := range BusinessTypes {
		if b == known {
			return true
		}
	}
	return false
}

// ContactMessage is a contact-form submission. Rows are append-only.
type ContactMessage struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PhoneNumber  *string      `json:"phone_number"`
	Company      *string      `json:"company"`
	BusinessType BusinessType `json:"business_type"`
	Message      *string      `json:"message"`
	CreatedAt    time.Time    `json:"created_at"` // Set server-side on insert
}

// CreateMessageRequest represents the public contact-form payload
type CreateMessageRequest struct {
	Name         string       `json:"name" binding:"required,max=200"`
	Email        string       `json:"email" binding:"required,email,max=200"`
	PhoneNumber  *string      `json:"phone_number" binding:"omitempty,max=50"`
	Company      *string      `json:"company" binding:"omitempty,max=200"`
	BusinessType BusinessType `json:"business_type" binding:"required,oneof=dis-klinigi restoran e-ticaret diger"`
	Message      *string      `json:"message"`
}

// MessagePage is one page of contact messages plus the paging metadata
type MessagePage struct {
	Items           []*ContactMessage `json:"items"`
	PageNumber      int               `json:"page_number"`
	PageSize        int               `json:"page_size"`
	TotalCount      int               `json:"total_count"`
	TotalPages      int               `json:"total_pages"`
	HasNextPage     bool              `json:"has_next_page"`
	HasPreviousPage bool              `json:"has_previous_page"`
}

// NewMessagePage derives the paging metadata from the page coordinates and the total row count.
// pageSize must be positive.
func NewMessagePage(items []*ContactMessage, pageNumber, pageSize, totalCount int) *MessagePage {
	if items == nil {
		items = []*ContactMessage{}
	}
	totalPages := totalCount / pageSize
	if totalCount%pageSize != 0 {
		totalPages++
	}
	return &MessagePage{
		Items:           items,
		PageNumber:      pageNumber,
		PageSize:        pageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     pageNumber < totalPages,
		HasPreviousPage: pageNumber > 1,
	}
}
