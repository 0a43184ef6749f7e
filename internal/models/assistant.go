package models

import (
	"strconv"
	"time"
)

// Assistant is the local mirror of a remote voice assistant
type Assistant struct {
	ID                         int64      `json:"id"`
	VapiID                     string     `json:"vapi_id"`
	OrgID                      *string    `json:"org_id"`
	Name                       string     `json:"name"`
	VoiceType                  *string    `json:"voice_type"`
	BehaviorType               *string    `json:"behavior_type"`
	FirstMessage               *string    `json:"first_message"`
	VoicemailMessage           *string    `json:"voicemail_message"`
	EndCallMessage             *string    `json:"end_call_message"`
	ModelData                  string     `json:"-"` // serialized JSON object
	TranscriberData            string     `json:"-"` // serialized JSON object
	SilenceTimeoutSeconds      *int       `json:"silence_timeout_seconds"`
	ClientMessages             string     `json:"-"` // serialized JSON array
	ServerMessages             string     `json:"-"` // serialized JSON array
	EndCallPhrases             string     `json:"-"` // serialized JSON array
	HipaaEnabled               string     `json:"hipaa_enabled"`
	BackgroundDenoisingEnabled string     `json:"background_denoising_enabled"`
	StartSpeakingPlan          string     `json:"-"` // serialized JSON object
	IsServerURLSecretSet       string     `json:"is_server_url_secret_set"`
	CreatedAt                  *time.Time `json:"created_at"`
	UpdatedAt                  *time.Time `json:"updated_at"`
	CreatedAtLocal             time.Time  `json:"created_at_local"`
	UpdatedAtLocal             *time.Time `json:"updated_at_local"`
	Humor                      *int       `json:"humor"`
	Flexibility                *int       `json:"flexibility"`
	GoalFocus                  *int       `json:"goal_focus"`
}

// Voice is the voice profile of an assistant. Numeric tuning values are stored as text.
type Voice struct {
	ID              int64   `json:"id"`
	AssistantID     int64   `json:"assistant_id"`
	Model           *string `json:"model"`
	VoiceID         *string `json:"voice_id"`
	Provider        *string `json:"provider"`
	Stability       *string `json:"-"`
	SimilarityBoost *string `json:"-"`
}

// VoiceResponse is the public view of a voice with numeric tuning values
type VoiceResponse struct {
	ID              int64    `json:"id"`
	AssistantID     int64    `json:"assistant_id"`
	Model           *string  `json:"model"`
	VoiceID         *string  `json:"voice_id"`
	Provider        *string  `json:"provider"`
	Stability       *float64 `json:"stability"`
	SimilarityBoost *float64 `json:"similarity_boost"`
}

// ToResponse converts the stored text values to numbers. Unparsable values become null.
func (v *Voice) ToResponse() *VoiceResponse {
	if v == nil {
		return nil
	}
	return &VoiceResponse{
		ID:              v.ID,
		AssistantID:     v.AssistantID,
		Model:           v.Model,
		VoiceID:         v.VoiceID,
		Provider:        v.Provider,
		Stability:       parseFloat(v.Stability),
		SimilarityBoost: parseFloat(v.SimilarityBoost),
	}
}

func parseFloat(s *string) *float64 {
	if s == nil {
		return nil
	}
	f, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// AssistantWithVoice is an assistant together with its voice profile
type AssistantWithVoice struct {
	*Assistant
	Voice *VoiceResponse `json:"voice"`
}

// AssistantCreateRequest represents the request to create a remote assistant
type AssistantCreateRequest struct {
	Name             string  `json:"name" binding:"required"`
	VoiceType        *string `json:"voice_type"`
	BehaviorType     *string `json:"behavior_type"`
	FirstMessage     *string `json:"first_message"`
	VoicemailMessage *string `json:"voicemail_message"`
	EndCallMessage   *string `json:"end_call_message"`
}

// AssistantUpdateRequest represents a partial update; nil fields are left untouched
type AssistantUpdateRequest struct {
	Name             *string `json:"name"`
	VoiceType        *string `json:"voice_type"`
	BehaviorType     *string `json:"behavior_type"`
	FirstMessage     *string `json:"first_message"`
	VoicemailMessage *string `json:"voicemail_message"`
	EndCallMessage   *string `json:"end_call_message"`
}

// VoiceType is a distinct voice observed on the remote assistants
type VoiceType struct {
	VoiceID         string   `json:"voice_id"`
	Model           *string  `json:"model"`
	Provider        *string  `json:"provider"`
	Stability       *float64 `json:"stability"`
	SimilarityBoost *float64 `json:"similarity_boost"`
}

// BehaviorType is a distinct model and system prompt pair observed on the remote assistants
type BehaviorType struct {
	Model       *string  `json:"model"`
	Provider    *string  `json:"provider"`
	Temperature *float64 `json:"temperature"`
	MaxTokens   *int     `json:"max_tokens"`
	Description *string  `json:"description"`
}

// VoiceOption is an entry of the static voice catalog
type VoiceOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Language    string `json:"language"`
	PreviewURL  string `json:"preview_url"`
	Provider    string `json:"provider"`
	Description string `json:"description"`
}

// AssistantSettings are the effective tuning values of one assistant
type AssistantSettings struct {
	VoiceID     *string `json:"voice_id"`
	Flexibility int     `json:"flexibility"`
	Humor       int     `json:"humor"`
	GoalFocus   int     `json:"goal_focus"`
}

// AssistantSettingsUpdate is a partial settings update; nil fields are left untouched
type AssistantSettingsUpdate struct {
	VoiceID     *string `json:"voice_id"`
	Flexibility *int    `json:"flexibility"`
	Humor       *int    `json:"humor"`
	GoalFocus   *int    `json:"goal_focus"`
}

// ExamplePhrase illustrates how a humor / goal-focus combination sounds
type ExamplePhrase struct {
	HumorLevel     int    `json:"humor_level"`
	GoalFocusLevel int    `json:"goal_focus_level"`
	Phrase         string `json:"phrase"`
}

// AssistantSettingsResponse is the settings view together with the option catalogs
type AssistantSettingsResponse struct {
	CurrentSettings     AssistantSettings `json:"current_settings"`
	VoiceOptions        []VoiceOption     `json:"voice_options"`
	FlexibilityExamples []string          `json:"flexibility_examples"`
	HumorExamples       []ExamplePhrase   `json:"humor_examples"`
	GoalFocusExamples   []ExamplePhrase   `json:"goal_focus_examples"`
}
