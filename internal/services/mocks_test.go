package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"

	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/vapi"
)

type mockAssistantGateway struct {
	mock.Mock
}

func (m *mockAssistantGateway) ListAssistants(ctx context.Context) ([]vapi.Assistant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vapi.Assistant), args.Error(1)
}

func (m *mockAssistantGateway) GetAssistant(ctx context.Context, id string) (*vapi.Assistant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vapi.Assistant), args.Error(1)
}

func (m *mockAssistantGateway) CreateAssistant(ctx context.Context, payload *vapi.AssistantPayload) (*vapi.Assistant, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vapi.Assistant), args.Error(1)
}

func (m *mockAssistantGateway) UpdateAssistant(ctx context.Context, id string, payload *vapi.AssistantPayload) (*vapi.Assistant, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vapi.Assistant), args.Error(1)
}

func (m *mockAssistantGateway) DeleteAssistant(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPhoneGateway struct {
	mock.Mock
}

func (m *mockPhoneGateway) ListPhoneNumbers(ctx context.Context) ([]vapi.PhoneNumber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vapi.PhoneNumber), args.Error(1)
}

func (m *mockPhoneGateway) GetPhoneNumber(ctx context.Context, id string) (*vapi.PhoneNumber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vapi.PhoneNumber), args.Error(1)
}

func (m *mockPhoneGateway) CreatePhoneNumber(ctx context.Context, payload *vapi.PhoneNumberPayload) (*vapi.PhoneNumber, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vapi.PhoneNumber), args.Error(1)
}

func (m *mockPhoneGateway) UpdatePhoneNumber(ctx context.Context, id string, payload *vapi.PhoneNumberPayload) (*vapi.PhoneNumber, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vapi.PhoneNumber), args.Error(1)
}

func (m *mockPhoneGateway) DeletePhoneNumber(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCallGateway struct {
	mock.Mock
}

func (m *mockCallGateway) ListCalls(ctx context.Context) ([]json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

type fixture struct {
	database   *sql.DB
	assistants db.AssistantRepository
	phones     db.PhoneNumberRepository
	agw        *mockAssistantGateway
	pgw        *mockPhoneGateway
	sync       *SyncService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	database := db.SetupTestDB(t)
	f := &fixture{
		database:   database,
		assistants: db.NewAssistantRepository(database),
		phones:     db.NewPhoneNumberRepository(database),
		agw:        new(mockAssistantGateway),
		pgw:        new(mockPhoneGateway),
	}
	f.sync = NewSyncService(f.assistants, f.phones, f.agw, f.pgw)
	t.Cleanup(func() {
		f.agw.AssertExpectations(t)
		f.pgw.AssertExpectations(t)
	})
	return f
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func remoteAssistant(id, name string) *vapi.Assistant {
	return &vapi.Assistant{
		ID:   id,
		Name: strPtr(name),
		Voice: &vapi.Voice{
			VoiceID:   strPtr("EXAVITQu4vr4xnSDxMaL"),
			Provider:  strPtr("11labs"),
			Stability: floatPtr(0.5),
		},
		Model: map[string]any{
			"model":       "gpt-4o-mini",
			"provider":    "openai",
			"temperature": 0.7,
			"messages": []any{
				map[string]any{"role": "system", "content": "Sen bir resepsiyon asistanısın"},
			},
		},
		Transcriber:  map[string]any{"provider": "deepgram", "language": "tr"},
		HipaaEnabled: boolPtr(false),
		CreatedAt:    strPtr("2024-01-15T10:00:00.000Z"),
	}
}
