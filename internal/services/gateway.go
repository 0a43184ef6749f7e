package services

import (
	"context"
	"encoding/json"

	"ahudio-admin-server/internal/vapi"
)

// AssistantGateway is the remote assistant surface used by the services
type AssistantGateway interface {
	ListAssistants(ctx context.Context) ([]vapi.Assistant, error)
	GetAssistant(ctx context.Context, id string) (*vapi.Assistant, error)
	CreateAssistant(ctx context.Context, payload *vapi.AssistantPayload) (*vapi.Assistant, error)
	UpdateAssistant(ctx context.Context, id string, payload *vapi.AssistantPayload) (*vapi.Assistant, error)
	DeleteAssistant(ctx context.Context, id string) error
}

// PhoneNumberGateway is the remote phone number surface used by the services
type PhoneNumberGateway interface {
	ListPhoneNumbers(ctx context.Context) ([]vapi.PhoneNumber, error)
	GetPhoneNumber(ctx context.Context, id string) (*vapi.PhoneNumber, error)
	CreatePhoneNumber(ctx context.Context, payload *vapi.PhoneNumberPayload) (*vapi.PhoneNumber, error)
	UpdatePhoneNumber(ctx context.Context, id string, payload *vapi.PhoneNumberPayload) (*vapi.PhoneNumber, error)
	DeletePhoneNumber(ctx context.Context, id string) error
}

// CallGateway fetches the raw call records
type CallGateway interface {
	ListCalls(ctx context.Context) ([]json.RawMessage, error)
}

var (
	_ AssistantGateway   = (*vapi.Client)(nil)
	_ PhoneNumberGateway = (*vapi.Client)(nil)
	_ CallGateway        = (*vapi.Client)(nil)
)
