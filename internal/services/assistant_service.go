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

// AssistantService proxies assistant CRUD to the remote platform and keeps the mirror fresh
type AssistantService struct {
	repo    db.AssistantRepository
	gateway AssistantGateway
	sync    *SyncService
}

// NewAssistantService creates a new AssistantService instance
func NewAssistantService(repo db.AssistantRepository, gateway AssistantGateway, sync *SyncService) *AssistantService {
	return &AssistantService{
		repo:    repo,
		gateway: gateway,
		sync:    sync,
	}
}

// ListAssistants syncs every remote assistant and returns all local rows
func (s *AssistantService) ListAssistants(ctx context.Context) ([]*models.Assistant, error) {
	if _, err := s.sync.SyncAllAssistants(ctx); err != nil {
		return nil, err
	}

	assistants, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list assistants: %w", err)
	}
	return assistants, nil
}

// SyncAssistants runs a full reconciliation of the remote assistants
func (s *AssistantService) SyncAssistants(ctx context.Context) (*SyncReport, error) {
	return s.sync.SyncAllAssistants(ctx)
}

func (s *AssistantService) getLocal(id int64) (*models.Assistant, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get assistant: %w", err)
	}
	if a == nil {
		return nil, ErrAssistantNotFound
	}
	return a, nil
}

// GetAssistant refreshes the assistant from the remote platform and returns it with its voice.
// When the refresh fails the local row is returned as is.
func (s *AssistantService) GetAssistant(ctx context.Context, id int64) (*models.AssistantWithVoice, error) {
	local, err := s.getLocal(id)
	if err != nil {
		return nil, err
	}

	if remote, err := s.gateway.GetAssistant(ctx, local.VapiID); err != nil {
		logger.Warn("Failed to refresh assistant, serving local copy",
			zap.Int64("id", id),
			zap.String("vapi_id", local.VapiID),
			zap.Error(err))
	} else if synced, err := s.sync.SyncAssistant(remote); err != nil {
		logger.Warn("Failed to sync assistant, serving local copy",
			zap.Int64("id", id),
			zap.Error(err))
	} else {
		local = synced
	}

	voice, err := s.repo.GetVoice(local.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assistant voice: %w", err)
	}

	return &models.AssistantWithVoice{Assistant: local, Voice: voice.ToResponse()}, nil
}

// CreateAssistant creates the assistant remotely, filling voice, model and transcriber
// settings from the existing remote assistants, and mirrors the result
func (s *AssistantService) CreateAssistant(ctx context.Context, req *models.AssistantCreateRequest) (*models.Assistant, error) {
	remotes, err := s.gateway.ListAssistants(ctx)
	if err != nil {
		return nil, upstream(opFetch, err)
	}

	payload := &vapi.AssistantPayload{
		Name:             &req.Name,
		FirstMessage:     req.FirstMessage,
		VoicemailMessage: req.VoicemailMessage,
		EndCallMessage:   req.EndCallMessage,
	}
	if req.VoiceType != nil && *req.VoiceType != "" {
		payload.Voice = voiceFor(remotes, *req.VoiceType)
	}
	if req.BehaviorType != nil && *req.BehaviorType != "" {
		payload.Model = modelFor(remotes, *req.BehaviorType)
	}
	payload.Transcriber = transcriberFrom(remotes)
	payload.SilenceTimeoutSeconds = silenceTimeoutFrom(remotes)

	created, err := s.gateway.CreateAssistant(ctx, payload)
	if err != nil {
		return nil, upstream(opCreateAssistant, err)
	}

	a, err := s.sync.SyncAssistant(created)
	if err != nil {
		return nil, err
	}

	logger.Info("Assistant created", zap.Int64("id", a.ID), zap.String("vapi_id", a.VapiID))
	return a, nil
}

// UpdateAssistant PATCHes the provided fields remotely and mirrors the result
func (s *AssistantService) UpdateAssistant(ctx context.Context, id int64, req *models.AssistantUpdateRequest) (*models.Assistant, error) {
	local, err := s.getLocal(id)
	if err != nil {
		return nil, err
	}

	payload := &vapi.AssistantPayload{
		Name:             req.Name,
		FirstMessage:     req.FirstMessage,
		VoicemailMessage: req.VoicemailMessage,
		EndCallMessage:   req.EndCallMessage,
	}

	if req.VoiceType != nil || req.BehaviorType != nil {
		remotes, err := s.gateway.ListAssistants(ctx)
		if err != nil {
			return nil, upstream(opFetch, err)
		}
		if req.VoiceType != nil {
			payload.Voice = voiceFor(remotes, *req.VoiceType)
		}
		if req.BehaviorType != nil {
			payload.Model = modelFor(remotes, *req.BehaviorType)
		}
	}

	updated, err := s.gateway.UpdateAssistant(ctx, local.VapiID, payload)
	if err != nil {
		return nil, upstream(opUpdateAssistant, err)
	}

	return s.sync.SyncAssistant(updated)
}

// DeleteAssistant deletes the assistant remotely, then forgets the mirror row
func (s *AssistantService) DeleteAssistant(ctx context.Context, id int64) error {
	local, err := s.getLocal(id)
	if err != nil {
		return err
	}

	if err := s.gateway.DeleteAssistant(ctx, local.VapiID); err != nil {
		return upstream(opDeleteAssistant, err)
	}

	if err := s.sync.ForgetAssistant(local); err != nil {
		return err
	}

	logger.Info("Assistant deleted", zap.Int64("id", id), zap.String("vapi_id", local.VapiID))
	return nil
}

// voiceFor copies the voice of the first remote assistant using voiceID, or sends the id alone
func voiceFor(remotes []vapi.Assistant, voiceID string) *vapi.Voice {
	for _, r := range remotes {
		if r.Voice != nil && r.Voice.VoiceID != nil && *r.Voice.VoiceID == voiceID {
			v := *r.Voice
			return &v
		}
	}
	return &vapi.Voice{VoiceID: &voiceID}
}

// modelFor copies the model block of the first remote assistant using model, or sends the name alone
func modelFor(remotes []vapi.Assistant, model string) map[string]any {
	for _, r := range remotes {
		name := r.ModelName()
		if name == nil || *name != model {
			continue
		}
		out := pick(r.Model, "model", "provider", "temperature", "maxTokens")
		if messages, ok := r.Model["messages"]; ok && messages != nil {
			out["messages"] = messages
		} else {
			out["messages"] = []any{}
		}
		return out
	}
	return map[string]any{"model": model}
}

func transcriberFrom(remotes []vapi.Assistant) map[string]any {
	for _, r := range remotes {
		if len(r.Transcriber) > 0 {
			return pick(r.Transcriber, "model", "language", "provider", "endpointing")
		}
	}
	return nil
}

func silenceTimeoutFrom(remotes []vapi.Assistant) *int {
	for _, r := range remotes {
		if r.SilenceTimeoutSeconds != nil {
			v := *r.SilenceTimeoutSeconds
			return &v
		}
	}
	return nil
}

// pick copies the non-null values of the given keys
func pick(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			out[k] = v
		}
	}
	return out
}
