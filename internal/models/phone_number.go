package models

import (
	"time"
)

// PhoneNumber is the local mirror of a remote phone number
type PhoneNumber struct {
	ID                     int64      `json:"id"`
	VapiID                 string     `json:"vapi_id"`
	OrgID                  *string    `json:"org_id"`
	AssistantID            *string    `json:"assistant_id"` // remote assistant id
	Value                  string     `json:"value"`
	Name                   *string    `json:"name"`
	CredentialID           *string    `json:"credential_id"`
	Provider               *string    `json:"provider"`
	NumberE164CheckEnabled string     `json:"number_e164_check_enabled"`
	Status                 *string    `json:"status"`
	ProviderResourceID     *string    `json:"provider_resource_id"`
	CreatedAt              *time.Time `json:"created_at"`
	UpdatedAt              *time.Time `json:"updated_at"`
	CreatedAtLocal         time.Time  `json:"created_at_local"`
	UpdatedAtLocal         *time.Time `json:"updated_at_local"`
}

// PhoneNumberCreateRequest is the payload accepted by the remote create endpoint
type PhoneNumberCreateRequest struct {
	Provider     string  `json:"provider" binding:"required"`
	CredentialID *string `json:"credential_id"`
}

// PhoneNumberUpdateRequest updates the only remotely writable fields
type PhoneNumberUpdateRequest struct {
	Provider     *string `json:"provider"`
	CredentialID *string `json:"credential_id"`
}

// Empty reports whether the update carries no field at all
func (r PhoneNumberUpdateRequest) Empty() bool {
	return r.Provider == nil && r.CredentialID == nil
}
