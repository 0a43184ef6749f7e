package services

import (
	"context"

	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/internal/vapi"
)

const behaviorDescriptionLength = 100

// CatalogService derives the voice and behavior types in use from the remote assistants
type CatalogService struct {
	gateway AssistantGateway
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(gateway AssistantGateway) *CatalogService {
	return &CatalogService{gateway: gateway}
}

// VoiceTypes returns each distinct voice id with the settings of its first occurrence
func (s *CatalogService) VoiceTypes(ctx context.Context) ([]models.VoiceType, error) {
	remotes, err := s.gateway.ListAssistants(ctx)
	if err != nil {
		return nil, upstream(opFetch, err)
	}

	seen := make(map[string]struct{})
	types := []models.VoiceType{}
	for _, r := range remotes {
		if r.Voice == nil || r.Voice.VoiceID == nil || *r.Voice.VoiceID == "" {
			continue
		}
		id := *r.Voice.VoiceID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		types = append(types, models.VoiceType{
			VoiceID:         id,
			Model:           r.Voice.Model,
			Provider:        r.Voice.Provider,
			Stability:       r.Voice.Stability,
			SimilarityBoost: r.Voice.SimilarityBoost,
		})
	}
	return types, nil
}

type behaviorKey struct {
	model     string
	hasModel  bool
	prompt    string
	hasPrompt bool
}

// BehaviorTypes returns each distinct model and system prompt pair
func (s *CatalogService) BehaviorTypes(ctx context.Context) ([]models.BehaviorType, error) {
	remotes, err := s.gateway.ListAssistants(ctx)
	if err != nil {
		return nil, upstream(opFetch, err)
	}

	seen := make(map[behaviorKey]struct{})
	types := []models.BehaviorType{}
	for i := range remotes {
		r := &remotes[i]
		if len(r.Model) == 0 {
			continue
		}

		model := r.ModelName()
		prompt := r.SystemPrompt()
		if prompt != nil && *prompt == "" {
			prompt = nil
		}

		key := behaviorKey{hasModel: model != nil, hasPrompt: prompt != nil}
		if model != nil {
			key.model = *model
		}
		if prompt != nil {
			key.prompt = *prompt
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		bt := models.BehaviorType{
			Model:       model,
			Provider:    vapi.StringField(r.Model, "provider"),
			Temperature: vapi.FloatField(r.Model, "temperature"),
		}
		if maxTokens := vapi.FloatField(r.Model, "maxTokens"); maxTokens != nil {
			v := int(*maxTokens)
			bt.MaxTokens = &v
		}
		if prompt != nil {
			desc := truncateRunes(*prompt, behaviorDescriptionLength)
			bt.Description = &desc
		}
		types = append(types, bt)
	}
	return types, nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
