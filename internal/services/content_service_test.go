package services

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/pkg/utils"
)

func TestMessageService_CreateMessage(t *testing.T) {
	service := NewMessageService(db.NewMessageRepository(db.SetupTestDB(t)))

	tests := []struct {
		name    string
		req     *models.CreateMessageRequest
		wantErr bool
	}{
		{
			name: "valid submission",
			req: &models.CreateMessageRequest{
				Name:         "Ayşe",
				Email:        "ayse@example.com",
				BusinessType: models.BusinessTypeRestaurant,
				Message:      strPtr("Merhaba"),
			},
		},
		{
			name:    "blank name",
			req:     &models.CreateMessageRequest{Name: "  ", Email: "a@b.co", BusinessType: models.BusinessTypeOther},
			wantErr: true,
		},
		{
			name:    "unknown business type",
			req:     &models.CreateMessageRequest{Name: "Ali", Email: "a@b.co", BusinessType: "kuafor"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := service.CreateMessage(tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMessage)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, msg.ID)
			assert.False(t, msg.CreatedAt.IsZero())
		})
	}
}

func TestMessageService_ListMessages(t *testing.T) {
	service := NewMessageService(db.NewMessageRepository(db.SetupTestDB(t)))

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		_, err := service.CreateMessage(&models.CreateMessageRequest{
			Name:         name,
			Email:        name + "@example.com",
			BusinessType: models.BusinessTypeOther,
		})
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		page      int
		size      int
		wantNames []string
		wantPages int
		wantNext  bool
		wantPrev  bool
		wantErr   error
	}{
		{name: "first page", page: 1, size: 2, wantNames: []string{"a", "b"}, wantPages: 3, wantNext: true},
		{name: "last page", page: 3, size: 2, wantNames: []string{"e"}, wantPages: 3, wantPrev: true},
		{name: "past the end", page: 4, size: 2, wantNames: []string{}, wantPages: 3, wantPrev: true},
		{name: "huge page number", page: math.MaxInt64/2 + 2, size: 2, wantNames: []string{}, wantPages: 3, wantPrev: true},
		{name: "huge page size", page: 2, size: math.MaxInt, wantNames: []string{}, wantPages: 1, wantPrev: true},
		{name: "zero page", page: 0, size: 2, wantErr: ErrInvalidPagination},
		{name: "zero size", page: 1, size: 0, wantErr: ErrInvalidPagination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := service.ListMessages(tt.page, tt.size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			names := []string{}
			for _, m := range page.Items {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, 5, page.TotalCount)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.wantNext, page.HasNextPage)
			assert.Equal(t, tt.wantPrev, page.HasPreviousPage)
		})
	}
}

func TestEmailService_CRUD(t *testing.T) {
	service := NewEmailService(db.NewEmailRepository(db.SetupTestDB(t)))

	created, err := service.CreateEmail("info@ahudio.com")
	require.NoError(t, err)

	updated, err := service.UpdateEmail(created.ID, "destek@ahudio.com")
	require.NoError(t, err)
	assert.Equal(t, "destek@ahudio.com", updated.Value)

	all, err := service.ListEmails()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "destek@ahudio.com", all[0].Value)

	require.NoError(t, service.DeleteEmail(created.ID))
	_, err = service.GetEmail(created.ID)
	assert.ErrorIs(t, err, ErrEmailNotFound)
	_, err = service.UpdateEmail(created.ID, "x@y.z")
	assert.ErrorIs(t, err, ErrEmailNotFound)
	assert.ErrorIs(t, service.DeleteEmail(created.ID), ErrEmailNotFound)
}

func TestPhoneContactService_CRUD(t *testing.T) {
	service := NewPhoneContactService(db.NewPhoneContactRepository(db.SetupTestDB(t)))

	created, err := service.CreatePhoneContact("+90 555 123 45 67")
	require.NoError(t, err)

	got, err := service.GetPhoneContact(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "+90 555 123 45 67", got.Value)

	_, err = service.UpdatePhoneContact(created.ID, "0212 000 00 00")
	require.NoError(t, err)

	require.NoError(t, service.DeletePhoneContact(created.ID))
	assert.ErrorIs(t, service.DeletePhoneContact(created.ID), ErrPhoneContactNotFound)
}

func TestAboutService_GetAboutCreatesDefaults(t *testing.T) {
	repo := db.NewAboutRepository(db.SetupTestDB(t))
	service := NewAboutService(repo, 1024)

	about, err := service.GetAbout()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAboutDescription, about.Description)

	stored, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.DefaultAboutMission, stored.Mission)
}

func TestAboutService_UpdateAbout(t *testing.T) {
	service := NewAboutService(db.NewAboutRepository(db.SetupTestDB(t)), 1024)

	about, err := service.UpdateAbout(&models.AboutUpdateRequest{Description: "d", Vision: "v", Mission: "m"})
	require.NoError(t, err)
	assert.Equal(t, "v", about.Vision)

	again, err := service.UpdateAbout(&models.AboutUpdateRequest{Description: "d2", Vision: "v2", Mission: "m2"})
	require.NoError(t, err)
	assert.Equal(t, about.ID, again.ID)
	assert.Equal(t, "m2", again.Mission)
}

func TestAboutService_UploadAbout(t *testing.T) {
	windows1254 := []byte{'G', 0xFC, 'z', 'e', 'l', ' ', 0xFE, 'e', 'y'}

	tests := []struct {
		name      string
		filename  string
		body      []byte
		field     string
		encoding  string
		wantField string
		wantText  string
		wantErr   error
	}{
		{name: "utf-8 into description", filename: "about.txt", body: []byte("Yapay zekâ"), wantField: "description", wantText: "Yapay zekâ"},
		{name: "upper-case extension", filename: "VISION.TXT", body: []byte("Vizyon"), field: "vision", wantField: "vision", wantText: "Vizyon"},
		{name: "windows-1254 fallback", filename: "m.txt", body: windows1254, field: "mission", wantField: "mission", wantText: "Güzel şey"},
		{name: "explicit iso-8859-9", filename: "m.txt", body: windows1254, field: "mission", encoding: "iso-8859-9", wantField: "mission", wantText: "Güzel şey"},
		{name: "wrong extension", filename: "about.pdf", body: []byte("x"), wantErr: ErrUnsupportedFileType},
		{name: "unknown field", filename: "a.txt", body: []byte("x"), field: "history", wantErr: ErrInvalidAboutField},
		{name: "too large", filename: "a.txt", body: bytes.Repeat([]byte("x"), 17), wantErr: ErrFileTooLarge},
		{name: "unknown encoding", filename: "a.txt", body: []byte("x"), encoding: "ebcdic", wantErr: utils.ErrUnsupportedEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAboutService(db.NewAboutRepository(db.SetupTestDB(t)), 16)

			about, err := service.UploadAbout(tt.filename, bytes.NewReader(tt.body), tt.field, tt.encoding)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got := map[string]string{
				"description": about.Description,
				"vision":      about.Vision,
				"mission":     about.Mission,
			}
			assert.Equal(t, tt.wantText, got[tt.wantField])
			for field, text := range got {
				if field != tt.wantField {
					assert.False(t, strings.Contains(text, tt.wantText), field)
				}
			}
		})
	}
}

func TestPropertyService(t *testing.T) {
	service := NewPropertyService(db.NewPropertyRepository(db.SetupTestDB(t)))

	defaults, err := service.GetDefaults()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTuningProperty(), defaults)

	_, err = service.UpdateDefaults(10, 101, 50)
	assert.ErrorIs(t, err, ErrInvalidTuningValue)

	prop, err := service.UpdateDefaults(10, 20, 30)
	require.NoError(t, err)
	assert.NotZero(t, prop.ID)

	stored, err := service.GetDefaults()
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Humor)
	assert.Equal(t, 20, stored.Flexibility)
	assert.Equal(t, 30, stored.GoalFocus)
}

func TestPublicService(t *testing.T) {
	database := db.SetupTestDB(t)
	about := db.NewAboutRepository(database)
	emails := db.NewEmailRepository(database)
	contacts := db.NewPhoneContactRepository(database)
	phones := db.NewPhoneNumberRepository(database)
	service := NewPublicService(about, emails, contacts, phones)

	public, err := service.GetPublicAbout()
	require.NoError(t, err)
	assert.Equal(t, models.PublicAboutVision, public.Vision)

	stored, err := about.Get()
	require.NoError(t, err)
	assert.Nil(t, stored)

	status, err := service.GetContactStatus()
	require.NoError(t, err)
	assert.Equal(t, &models.ContactStatus{}, status)

	require.NoError(t, phones.Create(&models.PhoneNumber{VapiID: "pn_1", Value: "+905551234567"}))
	status, err = service.GetContactStatus()
	require.NoError(t, err)
	assert.Equal(t, &models.ContactStatus{HasPhone: true, ContactAvailable: true}, status)

	require.NoError(t, emails.Create(&models.EmailAddress{Value: "info@ahudio.com"}))
	status, err = service.GetContactStatus()
	require.NoError(t, err)
	assert.Equal(t, &models.ContactStatus{HasEmail: true, HasPhone: true, ContactAvailable: true}, status)
}
