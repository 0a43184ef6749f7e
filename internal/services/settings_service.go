package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/internal/vapi"
	"ahudio-admin-server/pkg/logger"

	"go.uber.org/zap"
)

const (
	behaviorMarker     = "--- Davranış Parametreleri ---"
	defaultModel       = "gpt-4o-mini"
	defaultProvider    = "openai"
	defaultTemperature = 0.5
)

// SettingsService reads and writes the tuning of one assistant
type SettingsService struct {
	repo       db.AssistantRepository
	properties db.PropertyRepository
	gateway    AssistantGateway
	sync       *SyncService
}

// NewSettingsService creates a new SettingsService instance
func NewSettingsService(repo db.AssistantRepository, properties db.PropertyRepository, gateway AssistantGateway, sync *SyncService) *SettingsService {
	return &SettingsService{
		repo:       repo,
		properties: properties,
		gateway:    gateway,
		sync:       sync,
	}
}

func (s *SettingsService) getLocal(id int64) (*models.Assistant, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get assistant: %w", err)
	}
	if a == nil {
		return nil, ErrAssistantNotFound
	}
	return a, nil
}

func (s *SettingsService) defaults() (*models.TuningProperty, error) {
	prop, err := s.properties.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get properties: %w", err)
	}
	if prop == nil {
		return models.DefaultTuningProperty(), nil
	}
	return prop, nil
}

// GetSettings returns the effective tuning of the assistant with the option catalogs
func (s *SettingsService) GetSettings(assistantID int64) (*models.AssistantSettingsResponse, error) {
	a, err := s.getLocal(assistantID)
	if err != nil {
		return nil, err
	}
	defaults, err := s.defaults()
	if err != nil {
		return nil, err
	}
	voice, err := s.repo.GetVoice(a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assistant voice: %w", err)
	}

	current := models.AssistantSettings{
		Flexibility: defaults.Flexibility,
		Humor:       defaults.Humor,
		GoalFocus:   defaults.GoalFocus,
	}
	if voice != nil {
		current.VoiceID = voice.VoiceID
	}
	if t := vapi.FloatField(decodeModel(a.ModelData), "temperature"); t != nil {
		current.Flexibility = temperatureToFlexibility(*t)
	} else if a.Flexibility != nil {
		current.Flexibility = *a.Flexibility
	}
	if a.Humor != nil {
		current.Humor = *a.Humor
	}
	if a.GoalFocus != nil {
		current.GoalFocus = *a.GoalFocus
	}

	return &models.AssistantSettingsResponse{
		CurrentSettings:     current,
		VoiceOptions:        VoiceCatalog(),
		FlexibilityExamples: append([]string(nil), flexibilityExamples...),
		HumorExamples:       append([]models.ExamplePhrase(nil), humorExamples...),
		GoalFocusExamples:   append([]models.ExamplePhrase(nil), goalFocusExamples...),
	}, nil
}

// UpdateSettings PATCHes the voice and model of the assistant remotely,
// mirrors the response and stores the tuning values locally.
// An update without any field is a no-op.
func (s *SettingsService) UpdateSettings(ctx context.Context, assistantID int64, upd *models.AssistantSettingsUpdate) error {
	a, err := s.getLocal(assistantID)
	if err != nil {
		return err
	}
	if err := validateSettings(upd); err != nil {
		return err
	}

	payload := settingsPayload(a, upd)
	if payload == nil {
		return nil
	}

	updated, err := s.gateway.UpdateAssistant(ctx, a.VapiID, payload)
	if err != nil {
		return upstream(opUpdateSettings, err)
	}
	synced, err := s.sync.SyncAssistant(updated)
	if err != nil {
		return err
	}

	if upd.Humor != nil || upd.Flexibility != nil || upd.GoalFocus != nil {
		if err := s.repo.UpdateTuning(synced.ID, upd.Humor, upd.Flexibility, upd.GoalFocus); err != nil {
			return fmt.Errorf("failed to store assistant tuning: %w", err)
		}
	}

	logger.Info("Assistant settings updated",
		zap.Int64("id", synced.ID),
		zap.String("vapi_id", synced.VapiID))
	return nil
}

func validateSettings(upd *models.AssistantSettingsUpdate) error {
	if upd.VoiceID != nil && !inVoiceCatalog(*upd.VoiceID) {
		return ErrInvalidVoice
	}
	for _, v := range []*int{upd.Flexibility, upd.Humor, upd.GoalFocus} {
		if v != nil && (*v < 0 || *v > 100) {
			return ErrInvalidTuningValue
		}
	}
	return nil
}

// settingsPayload returns nil when the update carries no field
func settingsPayload(a *models.Assistant, upd *models.AssistantSettingsUpdate) *vapi.AssistantPayload {
	payload := &vapi.AssistantPayload{}
	touched := false

	if upd.VoiceID != nil {
		id := *upd.VoiceID
		provider := voiceProvider
		payload.Voice = &vapi.Voice{VoiceID: &id, Provider: &provider}
		touched = true
	}

	behavior := upd.Humor != nil || upd.GoalFocus != nil
	if upd.Flexibility != nil || behavior {
		current := decodeModel(a.ModelData)
		model := map[string]any{
			"model":    stringOr(current, "model", defaultModel),
			"provider": stringOr(current, "provider", defaultProvider),
		}
		if upd.Flexibility != nil {
			model["temperature"] = flexibilityToTemperature(*upd.Flexibility)
		} else if t := vapi.FloatField(current, "temperature"); t != nil {
			model["temperature"] = *t
		} else {
			model["temperature"] = defaultTemperature
		}

		messages, _ := current["messages"].([]any)
		if behavior {
			messages = withBehaviorBlock(messages, behaviorBlock(upd.Humor, upd.GoalFocus))
		}
		if messages == nil {
			messages = []any{}
		}
		model["messages"] = messages

		payload.Model = model
		touched = true
	}

	if !touched {
		return nil
	}
	return payload
}

func behaviorBlock(humor, goalFocus *int) string {
	var b strings.Builder
	b.WriteString("\n\n" + behaviorMarker)
	if humor != nil {
		fmt.Fprintf(&b, "\nKonuşma tarzın: %s (0-100 ölçeğinde %d seviyesinde). ", levelText(*humor, humorBands), *humor)
	}
	if goalFocus != nil {
		fmt.Fprintf(&b, "\nSatış/ikna tarzın: %s (0-100 ölçeğinde %d seviyesinde).", levelText(*goalFocus, goalFocusBands), *goalFocus)
	}
	return b.String()
}

// withBehaviorBlock replaces any previous block in the first system message,
// or prepends a system message holding the block. The input is not modified.
func withBehaviorBlock(messages []any, block string) []any {
	out := make([]any, 0, len(messages)+1)
	replaced := false
	for _, m := range messages {
		msg, ok := m.(map[string]any)
		if replaced || !ok || msg["role"] != "system" {
			out = append(out, m)
			continue
		}

		content, _ := msg["content"].(string)
		if before, _, found := strings.Cut(content, behaviorMarker); found {
			content = strings.TrimSpace(before)
		}
		copied := make(map[string]any, len(msg))
		for k, v := range msg {
			copied[k] = v
		}
		copied["content"] = content + block
		out = append(out, copied)
		replaced = true
	}

	if !replaced {
		system := map[string]any{"role": "system", "content": strings.TrimSpace(block)}
		out = append([]any{system}, out...)
	}
	return out
}

// decodeModel returns the stored model object, or nil when it is empty or unreadable
func decodeModel(raw string) map[string]any {
	if raw == "" {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil || len(m) == 0 {
		return nil
	}
	return m
}

func stringOr(m map[string]any, key, fallback string) string {
	if v := vapi.StringField(m, key); v != nil {
		return *v
	}
	return fallback
}

func flexibilityToTemperature(flexibility int) float64 {
	return float64(flexibility) / 100
}

func temperatureToFlexibility(temperature float64) int {
	return int(temperature * 100)
}
