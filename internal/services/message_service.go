package services

import (
	"fmt"
	"strings"

	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/models"
)

// MessageService handles contact-form submissions
type MessageService struct {
	repo db.MessageRepository
}

// NewMessageService creates a new MessageService instance
func NewMessageService(repo db.MessageRepository) *MessageService {
	return &MessageService{
		repo: repo,
	}
}

// CreateMessage stores a submission; the creation time is set server-side
func (s *MessageService) CreateMessage(req *models.CreateMessageRequest) (*models.ContactMessage, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidMessage)
	}
	if !req.BusinessType.Valid() {
		return nil, fmt.Errorf("%w: unknown business type %q", ErrInvalidMessage, req.BusinessType)
	}

	msg := &models.ContactMessage{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Company:      req.Company,
		BusinessType: req.BusinessType,
		Message:      req.Message,
	}
	if err := s.repo.Create(msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return msg, nil
}

// ListMessages returns one page of submissions in insertion order
func (s *MessageService) ListMessages(pageNumber, pageSize int) (*models.MessagePage, error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, ErrInvalidPagination
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	page := models.NewMessagePage(nil, pageNumber, pageSize, total)
	if pageNumber > page.TotalPages {
		return page, nil
	}

	items, err := s.repo.List(pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if items != nil {
		page.Items = items
	}
	return page, nil
}
