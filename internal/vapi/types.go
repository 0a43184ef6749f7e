package vapi

import (
	"encoding/json"
	"strconv"
)

// Voice is the voice block of a remote assistant
type Voice struct {
	VoiceID         *string  `json:"voiceId,omitempty"`
	Model           *string  `json:"model,omitempty"`
	Provider        *string  `json:"provider,omitempty"`
	Stability       *float64 `json:"stability,omitempty"`
	SimilarityBoost *float64 `json:"similarityBoost,omitempty"`
}

// Empty reports whether the voice carries no usable field
func (v *Voice) Empty() bool {
	if v == nil {
		return true
	}
	return isBlank(v.VoiceID) && isBlank(v.Model) && isBlank(v.Provider) &&
		v.Stability == nil && v.SimilarityBoost == nil
}

// Assistant is a remote assistant record
type Assistant struct {
	ID                         string         `json:"id"`
	OrgID                      *string        `json:"orgId,omitempty"`
	Name                       *string        `json:"name,omitempty"`
	Voice                      *Voice         `json:"voice,omitempty"`
	Model                      map[string]any `json:"model,omitempty"`
	Transcriber                map[string]any `json:"transcriber,omitempty"`
	FirstMessage               *string        `json:"firstMessage,omitempty"`
	VoicemailMessage           *string        `json:"voicemailMessage,omitempty"`
	EndCallMessage             *string        `json:"endCallMessage,omitempty"`
	SilenceTimeoutSeconds      *int           `json:"silenceTimeoutSeconds,omitempty"`
	ClientMessages             []any          `json:"clientMessages,omitempty"`
	ServerMessages             []any          `json:"serverMessages,omitempty"`
	EndCallPhrases             []any          `json:"endCallPhrases,omitempty"`
	HipaaEnabled               *bool          `json:"hipaaEnabled,omitempty"`
	BackgroundDenoisingEnabled *bool          `json:"backgroundDenoisingEnabled,omitempty"`
	StartSpeakingPlan          map[string]any `json:"startSpeakingPlan,omitempty"`
	IsServerURLSecretSet       *bool          `json:"isServerUrlSecretSet,omitempty"`
	CreatedAt                  *string        `json:"createdAt,omitempty"`
	UpdatedAt                  *string        `json:"updatedAt,omitempty"`
}

// ModelName returns model.model when it is a string
func (a *Assistant) ModelName() *string {
	return StringField(a.Model, "model")
}

// SystemPrompt returns the content of the first system message of the model, if any
func (a *Assistant) SystemPrompt() *string {
	messages, ok := a.Model["messages"].([]any)
	if !ok {
		return nil
	}
	for _, m := range messages {
		msg, ok := m.(map[string]any)
		if !ok {
			continue
		}
		if role, _ := msg["role"].(string); role == "system" {
			content, _ := msg["content"].(string)
			return &content
		}
	}
	return nil
}

// AssistantPayload is the body of an assistant create or PATCH request.
// Nil fields are omitted so a PATCH only touches what is set.
type AssistantPayload struct {
	Name                  *string        `json:"name,omitempty"`
	FirstMessage          *string        `json:"firstMessage,omitempty"`
	VoicemailMessage      *string        `json:"voicemailMessage,omitempty"`
	EndCallMessage        *string        `json:"endCallMessage,omitempty"`
	Voice                 *Voice         `json:"voice,omitempty"`
	Model                 map[string]any `json:"model,omitempty"`
	Transcriber           map[string]any `json:"transcriber,omitempty"`
	SilenceTimeoutSeconds *int           `json:"silenceTimeoutSeconds,omitempty"`
}

// PhoneNumber is a remote phone number record
type PhoneNumber struct {
	ID                     string  `json:"id"`
	OrgID                  *string `json:"orgId,omitempty"`
	AssistantID            *string `json:"assistantId,omitempty"`
	Number                 *string `json:"number,omitempty"`
	Name                   *string `json:"name,omitempty"`
	CredentialID           *string `json:"credentialId,omitempty"`
	Provider               *string `json:"provider,omitempty"`
	NumberE164CheckEnabled *bool   `json:"numberE164CheckEnabled,omitempty"`
	Status                 *string `json:"status,omitempty"`
	ProviderResourceID     *string `json:"providerResourceId,omitempty"`
	CreatedAt              *string `json:"createdAt,omitempty"`
	UpdatedAt              *string `json:"updatedAt,omitempty"`
}

// PhoneNumberPayload is the body of a phone number create or PATCH request
type PhoneNumberPayload struct {
	Provider     *string `json:"provider,omitempty"`
	CredentialID *string `json:"credentialId,omitempty"`
}

// Customer is the remote party of a call
type Customer struct {
	Number *string `json:"number,omitempty"`
	Name   *string `json:"name,omitempty"`
}

// Call is a remote call record. Cost is kept raw since the platform does not always send a number.
type Call struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Status      string           `json:"status"`
	EndedReason *string          `json:"endedReason,omitempty"`
	Cost        json.RawMessage  `json:"cost,omitempty"`
	CreatedAt   *string          `json:"createdAt,omitempty"`
	UpdatedAt   *string          `json:"updatedAt,omitempty"`
	EndedAt     *string          `json:"endedAt,omitempty"`
	Customer    *Customer        `json:"customer,omitempty"`
	Summary     *string          `json:"summary,omitempty"`
	Transcript  *string          `json:"transcript,omitempty"`
	Messages    []map[string]any `json:"messages,omitempty"`
	Analysis    map[string]any   `json:"analysis,omitempty"`
}

// NumericCost returns the cost when it is a JSON number
func (c *Call) NumericCost() (float64, bool) {
	if len(c.Cost) == 0 {
		return 0, false
	}
	var f *float64
	if err := json.Unmarshal(c.Cost, &f); err != nil || f == nil {
		return 0, false
	}
	return *f, true
}

// StringField returns m[key] when it is a string
func StringField(m map[string]any, key string) *string {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// FloatField returns m[key] when it is a number
func FloatField(m map[string]any, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case json.Number:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return nil
		}
		return &f
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
