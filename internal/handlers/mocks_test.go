package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/internal/services"
	"ahudio-admin-server/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(username, password string) (*models.LoginResponse, error) {
	args := m.Called(username, password)
	resp, _ := args.Get(0).(*models.LoginResponse)
	return resp, args.Error(1)
}

type mockMessageService struct{ mock.Mock }

func (m *mockMessageService) CreateMessage(req *models.CreateMessageRequest) (*models.ContactMessage, error) {
	args := m.Called(req)
	msg, _ := args.Get(0).(*models.ContactMessage)
	return msg, args.Error(1)
}

func (m *mockMessageService) ListMessages(pageNumber, pageSize int) (*models.MessagePage, error) {
	args := m.Called(pageNumber, pageSize)
	page, _ := args.Get(0).(*models.MessagePage)
	return page, args.Error(1)
}

type mockEmailService struct{ mock.Mock }

func (m *mockEmailService) ListEmails() ([]*models.EmailAddress, error) {
	args := m.Called()
	emails, _ := args.Get(0).([]*models.EmailAddress)
	return emails, args.Error(1)
}

func (m *mockEmailService) GetEmail(id int64) (*models.EmailAddress, error) {
	args := m.Called(id)
	email, _ := args.Get(0).(*models.EmailAddress)
	return email, args.Error(1)
}

func (m *mockEmailService) CreateEmail(value string) (*models.EmailAddress, error) {
	args := m.Called(value)
	email, _ := args.Get(0).(*models.EmailAddress)
	return email, args.Error(1)
}

func (m *mockEmailService) UpdateEmail(id int64, value string) (*models.EmailAddress, error) {
	args := m.Called(id, value)
	email, _ := args.Get(0).(*models.EmailAddress)
	return email, args.Error(1)
}

func (m *mockEmailService) DeleteEmail(id int64) error {
	return m.Called(id).Error(0)
}

type mockPhoneContactService struct{ mock.Mock }

func (m *mockPhoneContactService) ListPhoneContacts() ([]*models.PhoneContact, error) {
	args := m.Called()
	contacts, _ := args.Get(0).([]*models.PhoneContact)
	return contacts, args.Error(1)
}

func (m *mockPhoneContactService) GetPhoneContact(id int64) (*models.PhoneContact, error) {
	args := m.Called(id)
	contact, _ := args.Get(0).(*models.PhoneContact)
	return contact, args.Error(1)
}

func (m *mockPhoneContactService) CreatePhoneContact(value string) (*models.PhoneContact, error) {
	args := m.Called(value)
	contact, _ := args.Get(0).(*models.PhoneContact)
	return contact, args.Error(1)
}

func (m *mockPhoneContactService) UpdatePhoneContact(id int64, value string) (*models.PhoneContact, error) {
	args := m.Called(id, value)
	contact, _ := args.Get(0).(*models.PhoneContact)
	return contact, args.Error(1)
}

func (m *mockPhoneContactService) DeletePhoneContact(id int64) error {
	return m.Called(id).Error(0)
}

type mockAboutService struct{ mock.Mock }

func (m *mockAboutService) GetAbout() (*models.AboutContent, error) {
	args := m.Called()
	about, _ := args.Get(0).(*models.AboutContent)
	return about, args.Error(1)
}

func (m *mockAboutService) UpdateAbout(req *models.AboutUpdateRequest) (*models.AboutContent, error) {
	args := m.Called(req)
	about, _ := args.Get(0).(*models.AboutContent)
	return about, args.Error(1)
}

func (m *mockAboutService) UploadAbout(filename string, r io.Reader, field, encoding string) (*models.AboutContent, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(filename, string(data), field, encoding)
	about, _ := args.Get(0).(*models.AboutContent)
	return about, args.Error(1)
}

type mockPropertyService struct{ mock.Mock }

func (m *mockPropertyService) GetDefaults() (*models.TuningProperty, error) {
	args := m.Called()
	prop, _ := args.Get(0).(*models.TuningProperty)
	return prop, args.Error(1)
}

func (m *mockPropertyService) UpdateDefaults(humor, flexibility, goalFocus int) (*models.TuningProperty, error) {
	args := m.Called(humor, flexibility, goalFocus)
	prop, _ := args.Get(0).(*models.TuningProperty)
	return prop, args.Error(1)
}

type mockPublicService struct{ mock.Mock }

func (m *mockPublicService) GetPublicAbout() (*models.PublicAbout, error) {
	args := m.Called()
	about, _ := args.Get(0).(*models.PublicAbout)
	return about, args.Error(1)
}

func (m *mockPublicService) GetContactStatus() (*models.ContactStatus, error) {
	args := m.Called()
	status, _ := args.Get(0).(*models.ContactStatus)
	return status, args.Error(1)
}

type mockAssistantService struct{ mock.Mock }

func (m *mockAssistantService) ListAssistants(ctx context.Context) ([]*models.Assistant, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*models.Assistant)
	return list, args.Error(1)
}

func (m *mockAssistantService) SyncAssistants(ctx context.Context) (*services.SyncReport, error) {
	args := m.Called(ctx)
	report, _ := args.Get(0).(*services.SyncReport)
	return report, args.Error(1)
}

func (m *mockAssistantService) GetAssistant(ctx context.Context, id int64) (*models.AssistantWithVoice, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*models.AssistantWithVoice)
	return a, args.Error(1)
}

func (m *mockAssistantService) CreateAssistant(ctx context.Context, req *models.AssistantCreateRequest) (*models.Assistant, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*models.Assistant)
	return a, args.Error(1)
}

func (m *mockAssistantService) UpdateAssistant(ctx context.Context, id int64, req *models.AssistantUpdateRequest) (*models.Assistant, error) {
	args := m.Called(ctx, id, req)
	a, _ := args.Get(0).(*models.Assistant)
	return a, args.Error(1)
}

func (m *mockAssistantService) DeleteAssistant(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPhoneService struct{ mock.Mock }

func (m *mockPhoneService) ListPhoneNumbers(ctx context.Context) ([]*models.PhoneNumber, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*models.PhoneNumber)
	return list, args.Error(1)
}

func (m *mockPhoneService) SyncPhoneNumbers(ctx context.Context) (*services.SyncReport, error) {
	args := m.Called(ctx)
	report, _ := args.Get(0).(*services.SyncReport)
	return report, args.Error(1)
}

func (m *mockPhoneService) GetPhoneNumber(ctx context.Context, id int64) (*models.PhoneNumber, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.PhoneNumber)
	return p, args.Error(1)
}

func (m *mockPhoneService) CreatePhoneNumber(ctx context.Context, req *models.PhoneNumberCreateRequest) (*models.PhoneNumber, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*models.PhoneNumber)
	return p, args.Error(1)
}

func (m *mockPhoneService) UpdatePhoneNumber(ctx context.Context, id int64, req *models.PhoneNumberUpdateRequest) (*models.PhoneNumber, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(*models.PhoneNumber)
	return p, args.Error(1)
}

func (m *mockPhoneService) DeletePhoneNumber(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCatalogService struct{ mock.Mock }

func (m *mockCatalogService) VoiceTypes(ctx context.Context) ([]models.VoiceType, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]models.VoiceType)
	return types, args.Error(1)
}

func (m *mockCatalogService) BehaviorTypes(ctx context.Context) ([]models.BehaviorType, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]models.BehaviorType)
	return types, args.Error(1)
}

type mockDashboardService struct{ mock.Mock }

func (m *mockDashboardService) Overview(ctx context.Context) (*stats.OverviewResponse, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).(*stats.OverviewResponse)
	return o, args.Error(1)
}

func (m *mockDashboardService) Stats(ctx context.Context) (*stats.DashboardStats, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*stats.DashboardStats)
	return s, args.Error(1)
}

func (m *mockDashboardService) ListCalls(ctx context.Context, filter stats.CallFilter) ([]stats.CallSummary, error) {
	args := m.Called(ctx, filter)
	calls, _ := args.Get(0).([]stats.CallSummary)
	return calls, args.Error(1)
}

func (m *mockDashboardService) GetCall(ctx context.Context, id string) (*stats.CallDetail, error) {
	args := m.Called(ctx, id)
	call, _ := args.Get(0).(*stats.CallDetail)
	return call, args.Error(1)
}

type mockSettingsService struct{ mock.Mock }

func (m *mockSettingsService) GetSettings(assistantID int64) (*models.AssistantSettingsResponse, error) {
	args := m.Called(assistantID)
	s, _ := args.Get(0).(*models.AssistantSettingsResponse)
	return s, args.Error(1)
}

func (m *mockSettingsService) UpdateSettings(ctx context.Context, assistantID int64, upd *models.AssistantSettingsUpdate) error {
	return m.Called(ctx, assistantID, upd).Error(0)
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// perform sends a request with an optional JSON body
func perform(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, _ := json.Marshal(b)
			reader = bytes.NewBuffer(data)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
