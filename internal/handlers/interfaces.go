package handlers

import (
	"context"
	"io"

	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/internal/services"
	"ahudio-admin-server/internal/stats"
)

// AuthServiceInterface defines the contract for admin authentication
type AuthServiceInterface interface {
	Login(username, password string) (*models.LoginResponse, error)
}

// MessageServiceInterface defines the contract for contact-form submissions
type MessageServiceInterface interface {
	CreateMessage(req *models.CreateMessageRequest) (*models.ContactMessage, error)
	ListMessages(pageNumber, pageSize int) (*models.MessagePage, error)
}

// EmailServiceInterface defines the contract for email address operations
type EmailServiceInterface interface {
	ListEmails() ([]*models.EmailAddress, error)
	GetEmail(id int64) (*models.EmailAddress, error)
	CreateEmail(value string) (*models.EmailAddress, error)
	UpdateEmail(id int64, value string) (*models.EmailAddress, error)
	DeleteEmail(id int64) error
}

// PhoneContactServiceInterface defines the contract for phone contact operations
type PhoneContactServiceInterface interface {
	ListPhoneContacts() ([]*models.PhoneContact, error)
	GetPhoneContact(id int64) (*models.PhoneContact, error)
	CreatePhoneContact(value string) (*models.PhoneContact, error)
	UpdatePhoneContact(id int64, value string) (*models.PhoneContact, error)
	DeletePhoneContact(id int64) error
}

// AboutServiceInterface defines the contract for the about singleton
type AboutServiceInterface interface {
	GetAbout() (*models.AboutContent, error)
	UpdateAbout(req *models.AboutUpdateRequest) (*models.AboutContent, error)
	UploadAbout(filename string, r io.Reader, field, encoding string) (*models.AboutContent, error)
}

// PropertyServiceInterface defines the contract for the default tuning values
type PropertyServiceInterface interface {
	GetDefaults() (*models.TuningProperty, error)
	UpdateDefaults(humor, flexibility, goalFocus int) (*models.TuningProperty, error)
}

// PublicServiceInterface defines the contract for the unauthenticated site data
type PublicServiceInterface interface {
	GetPublicAbout() (*models.PublicAbout, error)
	GetContactStatus() (*models.ContactStatus, error)
}

// AssistantServiceInterface defines the contract for remote assistant operations
type AssistantServiceInterface interface {
	ListAssistants(ctx context.Context) ([]*models.Assistant, error)
	SyncAssistants(ctx context.Context) (*services.SyncReport, error)
	GetAssistant(ctx context.Context, id int64) (*models.AssistantWithVoice, error)
	CreateAssistant(ctx context.Context, req *models.AssistantCreateRequest) (*models.Assistant, error)
	UpdateAssistant(ctx context.Context, id int64, req *models.AssistantUpdateRequest) (*models.Assistant, error)
	DeleteAssistant(ctx context.Context, id int64) error
}

// PhoneServiceInterface defines the contract for remote phone number operations
type PhoneServiceInterface interface {
	ListPhoneNumbers(ctx context.Context) ([]*models.PhoneNumber, error)
	SyncPhoneNumbers(ctx context.Context) (*services.SyncReport, error)
	GetPhoneNumber(ctx context.Context, id int64) (*models.PhoneNumber, error)
	CreatePhoneNumber(ctx context.Context, req *models.PhoneNumberCreateRequest) (*models.PhoneNumber, error)
	UpdatePhoneNumber(ctx context.Context, id int64, req *models.PhoneNumberUpdateRequest) (*models.PhoneNumber, error)
	DeletePhoneNumber(ctx context.Context, id int64) error
}

// CatalogServiceInterface defines the contract for the voice and behavior type catalogs
type CatalogServiceInterface interface {
	VoiceTypes(ctx context.Context) ([]models.VoiceType, error)
	BehaviorTypes(ctx context.Context) ([]models.BehaviorType, error)
}

// DashboardServiceInterface defines the contract for the call dashboards
type DashboardServiceInterface interface {
	Overview(ctx context.Context) (*stats.OverviewResponse, error)
	Stats(ctx context.Context) (*stats.DashboardStats, error)
	ListCalls(ctx context.Context, filter stats.CallFilter) ([]stats.CallSummary, error)
	GetCall(ctx context.Context, id string) (*stats.CallDetail, error)
}

// SettingsServiceInterface defines the contract for per-assistant tuning
type SettingsServiceInterface interface {
	GetSettings(assistantID int64) (*models.AssistantSettingsResponse, error)
	UpdateSettings(ctx context.Context, assistantID int64, upd *models.AssistantSettingsUpdate) error
}
