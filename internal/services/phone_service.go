package services

import (
	"context"
	"fmt"

	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/internal/vapi"
	"ahudio-admin-server/pkg/logger"

	"go.uber.org/zap"
)

// PhoneService proxies phone number CRUD to the remote platform and keeps the mirror fresh
type PhoneService struct {
	repo    db.PhoneNumberRepository
	gateway PhoneNumberGateway
	sync    *SyncService
}

// NewPhoneService creates a new PhoneService instance
func NewPhoneService(repo db.PhoneNumberRepository, gateway PhoneNumberGateway, sync *SyncService) *PhoneService {
	return &PhoneService{
		repo:    repo,
		gateway: gateway,
		sync:    sync,
	}
}

// ListPhoneNumbers syncs every remote phone number and returns all local rows
func (s *PhoneService) ListPhoneNumbers(ctx context.Context) ([]*models.PhoneNumber, error) {
	if _, err := s.sync.SyncAllPhoneNumbers(ctx); err != nil {
		return nil, err
	}

	phones, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list phone numbers: %w", err)
	}
	return phones, nil
}

// SyncPhoneNumbers runs a full reconciliation of the remote phone numbers
func (s *PhoneService) SyncPhoneNumbers(ctx context.Context) (*SyncReport, error) {
	return s.sync.SyncAllPhoneNumbers(ctx)
}

func (s *PhoneService) getLocal(id int64) (*models.PhoneNumber, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get phone number: %w", err)
	}
	if p == nil {
		return nil, ErrPhoneNumberNotFound
	}
	return p, nil
}

// GetPhoneNumber refreshes the phone number from the remote platform.
// When the refresh fails the local row is returned as is.
func (s *PhoneService) GetPhoneNumber(ctx context.Context, id int64) (*models.PhoneNumber, error) {
	local, err := s.getLocal(id)
	if err != nil {
		return nil, err
	}

	remote, err := s.gateway.GetPhoneNumber(ctx, local.VapiID)
	if err != nil {
		logger.Warn("Failed to refresh phone number, serving local copy",
			zap.Int64("id", id),
			zap.String("vapi_id", local.VapiID),
			zap.Error(err))
		return local, nil
	}

	synced, err := s.sync.SyncPhoneNumber(remote)
	if err != nil {
		logger.Warn("Failed to sync phone number, serving local copy",
			zap.Int64("id", id),
			zap.Error(err))
		return local, nil
	}
	return synced, nil
}

// CreatePhoneNumber creates the phone number remotely and mirrors the result
func (s *PhoneService) CreatePhoneNumber(ctx context.Context, req *models.PhoneNumberCreateRequest) (*models.PhoneNumber, error) {
	payload := &vapi.PhoneNumberPayload{Provider: &req.Provider}
	if req.CredentialID != nil && *req.CredentialID != "" {
		payload.CredentialID = req.CredentialID
	}

	created, err := s.gateway.CreatePhoneNumber(ctx, payload)
	if err != nil {
		return nil, upstream(opCreatePhoneNumber, err)
	}

	p, err := s.sync.SyncPhoneNumber(created)
	if err != nil {
		return nil, err
	}

	logger.Info("Phone number created", zap.Int64("id", p.ID), zap.String("vapi_id", p.VapiID))
	return p, nil
}

// UpdatePhoneNumber PATCHes provider and/or credential id remotely and mirrors the result
func (s *PhoneService) UpdatePhoneNumber(ctx context.Context, id int64, req *models.PhoneNumberUpdateRequest) (*models.PhoneNumber, error) {
	local, err := s.getLocal(id)
	if err != nil {
		return nil, err
	}
	if req.Empty() {
		return nil, ErrNoUpdatableField
	}

	updated, err := s.gateway.UpdatePhoneNumber(ctx, local.VapiID, &vapi.PhoneNumberPayload{
		Provider:     req.Provider,
		CredentialID: req.CredentialID,
	})
	if err != nil {
		return nil, upstream(opUpdatePhoneNumber, err)
	}

	return s.sync.SyncPhoneNumber(updated)
}

// DeletePhoneNumber deletes the phone number remotely, then forgets the mirror row
func (s *PhoneService) DeletePhoneNumber(ctx context.Context, id int64) error {
	local, err := s.getLocal(id)
	if err != nil {
		return err
	}

	if err := s.gateway.DeletePhoneNumber(ctx, local.VapiID); err != nil {
		return upstream(opDeletePhoneNumber, err)
	}

	if err := s.sync.ForgetPhoneNumber(local); err != nil {
		return err
	}

	logger.Info("Phone number deleted", zap.Int64("id", id), zap.String("vapi_id", local.VapiID))
	return nil
}
