package services

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/pkg/logger"
	"ahudio-admin-server/pkg/utils"

	"go.uber.org/zap"
)

// About fields an upload can target
const (
	AboutFieldDescription = "description"
	AboutFieldVision      = "vision"
	AboutFieldMission     = "mission"
)

// AboutService manages the about singleton
type AboutService struct {
	repo           db.AboutRepository
	maxUploadBytes int64
}

// NewAboutService creates a new AboutService instance
func NewAboutService(repo db.AboutRepository, maxUploadBytes int64) *AboutService {
	return &AboutService{
		repo:           repo,
		maxUploadBytes: maxUploadBytes,
	}
}

// GetAbout returns the singleton, creating it with the built-in texts when absent
func (s *AboutService) GetAbout() (*models.AboutContent, error) {
	about, err := s.repo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get about: %w", err)
	}
	if about != nil {
		return about, nil
	}

	about = &models.AboutContent{
		Description: models.DefaultAboutDescription,
		Vision:      models.DefaultAboutVision,
		Mission:     models.DefaultAboutMission,
	}
	if err := s.repo.Save(about); err != nil {
		return nil, fmt.Errorf("failed to create about: %w", err)
	}
	return about, nil
}

// UpdateAbout replaces all three fields, creating the row when absent
func (s *AboutService) UpdateAbout(req *models.AboutUpdateRequest) (*models.AboutContent, error) {
	about, err := s.repo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get about: %w", err)
	}
	if about == nil {
		about = &models.AboutContent{}
	}

	about.Description = req.Description
	about.Vision = req.Vision
	about.Mission = req.Mission
	if err := s.repo.Save(about); err != nil {
		return nil, fmt.Errorf("failed to save about: %w", err)
	}
	return about, nil
}

// UploadAbout decodes a .txt upload and stores it in one about field
func (s *AboutService) UploadAbout(filename string, r io.Reader, field, encoding string) (*models.AboutContent, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".txt") {
		return nil, ErrUnsupportedFileType
	}
	if field == "" {
		field = AboutFieldDescription
	}
	switch field {
	case AboutFieldDescription, AboutFieldVision, AboutFieldMission:
	default:
		return nil, ErrInvalidAboutField
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, ErrFileTooLarge
	}

	text, err := utils.DecodeText(data, encoding)
	if err != nil {
		return nil, err
	}

	about, err := s.GetAbout()
	if err != nil {
		return nil, err
	}
	switch field {
	case AboutFieldDescription:
		about.Description = text
	case AboutFieldVision:
		about.Vision = text
	case AboutFieldMission:
		about.Mission = text
	}
	if err := s.repo.Save(about); err != nil {
		return nil, fmt.Errorf("failed to save about: %w", err)
	}

	logger.Info("About field uploaded",
		zap.String("field", field),
		zap.String("filename", filename),
		zap.Int("bytes", len(data)))
	return about, nil
}

// PropertyService manages the default assistant tuning values
type PropertyService struct {
	repo db.PropertyRepository
}

// NewPropertyService creates a new PropertyService instance
func NewPropertyService(repo db.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

// GetDefaults returns the stored defaults, or the built-in ones when no row exists
func (s *PropertyService) GetDefaults() (*models.TuningProperty, error) {
	prop, err := s.repo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get properties: %w", err)
	}
	if prop == nil {
		return models.DefaultTuningProperty(), nil
	}
	return prop, nil
}

// UpdateDefaults replaces the defaults, creating the row when absent
func (s *PropertyService) UpdateDefaults(humor, flexibility, goalFocus int) (*models.TuningProperty, error) {
	for _, v := range []int{humor, flexibility, goalFocus} {
		if v < 0 || v > 100 {
			return nil, ErrInvalidTuningValue
		}
	}

	prop, err := s.repo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get properties: %w", err)
	}
	if prop == nil {
		prop = &models.TuningProperty{}
	}

	prop.Humor = humor
	prop.Flexibility = flexibility
	prop.GoalFocus = goalFocus
	if err := s.repo.Save(prop); err != nil {
		return nil, fmt.Errorf("failed to save properties: %w", err)
	}
	return prop, nil
}

// PublicService serves the unauthenticated site data
type PublicService struct {
	about        db.AboutRepository
	emails       db.EmailRepository
	contacts     db.PhoneContactRepository
	phoneNumbers db.PhoneNumberRepository
}

// NewPublicService creates a new PublicService instance
func NewPublicService(
	about db.AboutRepository,
	emails db.EmailRepository,
	contacts db.PhoneContactRepository,
	phoneNumbers db.PhoneNumberRepository,
) *PublicService {
	return &PublicService{
		about:        about,
		emails:       emails,
		contacts:     contacts,
		phoneNumbers: phoneNumbers,
	}
}

// GetPublicAbout returns the about texts, or the public fallbacks. It never creates a row.
func (s *PublicService) GetPublicAbout() (*models.PublicAbout, error) {
	about, err := s.about.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get about: %w", err)
	}
	if about == nil {
		return &models.PublicAbout{
			Description: models.PublicAboutDescription,
			Vision:      models.PublicAboutVision,
			Mission:     models.PublicAboutMission,
		}, nil
	}
	return &models.PublicAbout{
		Description: about.Description,
		Vision:      about.Vision,
		Mission:     about.Mission,
	}, nil
}

// GetContactStatus reports which contact channels exist without exposing them.
// A phone channel is either a phone contact or a mirrored phone number.
func (s *PublicService) GetContactStatus() (*models.ContactStatus, error) {
	emails, err := s.emails.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count email addresses: %w", err)
	}
	contacts, err := s.contacts.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count phone contacts: %w", err)
	}
	numbers, err := s.phoneNumbers.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count phone numbers: %w", err)
	}

	status := &models.ContactStatus{
		HasEmail: emails > 0,
		HasPhone: contacts > 0 || numbers > 0,
	}
	status.ContactAvailable = status.HasEmail || status.HasPhone
	return status, nil
}
