package services

import (
	"fmt"

	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/models"
)

// EmailService manages the email addresses shown on the site
type EmailService struct {
	repo db.EmailRepository
}

// NewEmailService creates a new EmailService instance
func NewEmailService(repo db.EmailRepository) *EmailService {
	return &EmailService{repo: repo}
}

func (s *EmailService) ListEmails() ([]*models.EmailAddress, error) {
	emails, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list email addresses: %w", err)
	}
	return emails, nil
}

func (s *EmailService) GetEmail(id int64) (*models.EmailAddress, error) {
	email, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get email address: %w", err)
	}
	if email == nil {
		return nil, ErrEmailNotFound
	}
	return email, nil
}

func (s *EmailService) CreateEmail(value string) (*models.EmailAddress, error) {
	email := &models.EmailAddress{Value: value}
	if err := s.repo.Create(email); err != nil {
		return nil, fmt.Errorf("failed to create email address: %w", err)
	}
	return email, nil
}

func (s *EmailService) UpdateEmail(id int64, value string) (*models.EmailAddress, error) {
	email, err := s.GetEmail(id)
	if err != nil {
		return nil, err
	}

	email.Value = value
	if err := s.repo.Update(email); err != nil {
		return nil, fmt.Errorf("failed to update email address: %w", err)
	}
	return email, nil
}

func (s *EmailService) DeleteEmail(id int64) error {
	if _, err := s.GetEmail(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete email address: %w", err)
	}
	return nil
}

// PhoneContactService manages the phone contacts shown on the site
type PhoneContactService struct {
	repo db.PhoneContactRepository
}

// NewPhoneContactService creates a new PhoneContactService instance
func NewPhoneContactService(repo db.PhoneContactRepository) *PhoneContactService {
	return &PhoneContactService{repo: repo}
}

func (s *PhoneContactService) ListPhoneContacts() ([]*models.PhoneContact, error) {
	contacts, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list phone contacts: %w", err)
	}
	return contacts, nil
}

func (s *PhoneContactService) GetPhoneContact(id int64) (*models.PhoneContact, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get phone contact: %w", err)
	}
	if contact == nil {
		return nil, ErrPhoneContactNotFound
	}
	return contact, nil
}

func (s *PhoneContactService) CreatePhoneContact(value string) (*models.PhoneContact, error) {
	contact := &models.PhoneContact{Value: value}
	if err := s.repo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create phone contact: %w", err)
	}
	return contact, nil
}

func (s *PhoneContactService) UpdatePhoneContact(id int64, value string) (*models.PhoneContact, error) {
	contact, err := s.GetPhoneContact(id)
	if err != nil {
		return nil, err
	}

	contact.Value = value
	if err := s.repo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update phone contact: %w", err)
	}
	return contact, nil
}

func (s *PhoneContactService) DeletePhoneContact(id int64) error {
	if _, err := s.GetPhoneContact(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete phone contact: %w", err)
	}
	return nil
}
