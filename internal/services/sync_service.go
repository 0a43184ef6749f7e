package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/internal/vapi"
	"ahudio-admin-server/pkg/logger"

	"go.uber.org/zap"
)

// SyncReport summarizes a full reconciliation run
type SyncReport struct {
	Remote  int `json:"remote"`
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// SyncService merges remote assistants and phone numbers into their local mirror rows.
// It is the only writer of mirrored rows.
type SyncService struct {
	assistants       db.AssistantRepository
	phones           db.PhoneNumberRepository
	assistantGateway AssistantGateway
	phoneGateway     PhoneNumberGateway
}

// NewSyncService creates a new SyncService instance
func NewSyncService(
	assistants db.AssistantRepository,
	phones db.PhoneNumberRepository,
	assistantGateway AssistantGateway,
	phoneGateway PhoneNumberGateway,
) *SyncService {
	return &SyncService{
		assistants:       assistants,
		phones:           phones,
		assistantGateway: assistantGateway,
		phoneGateway:     phoneGateway,
	}
}

// SyncAssistant upserts the mirror row and voice profile of a remote assistant in one transaction
func (s *SyncService) SyncAssistant(remote *vapi.Assistant) (*models.Assistant, error) {
	a, _, err := s.syncAssistant(remote)
	return a, err
}

func (s *SyncService) syncAssistant(remote *vapi.Assistant) (*models.Assistant, bool, error) {
	if remote == nil || remote.ID == "" {
		return nil, false, errors.New("remote assistant has no id")
	}

	var synced *models.Assistant
	var created bool
	err := s.assistants.RunInTx(func(repo db.AssistantRepository) error {
		existing, err := repo.GetByVapiID(remote.ID)
		if err != nil {
			return err
		}

		a := existing
		if a == nil {
			a = &models.Assistant{VapiID: remote.ID}
		}
		if err := applyAssistant(a, remote); err != nil {
			return err
		}

		if existing == nil {
			if err := repo.Create(a); err != nil {
				return err
			}
			created = true
		} else if err := repo.Update(a); err != nil {
			return err
		}

		if err := syncVoice(repo, a.ID, remote.Voice); err != nil {
			return err
		}

		synced = a
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to sync assistant %s: %w", remote.ID, err)
	}

	return synced, created, nil
}

func applyAssistant(a *models.Assistant, remote *vapi.Assistant) error {
	modelData, err := jsonObject(remote.Model)
	if err != nil {
		return err
	}
	transcriberData, err := jsonObject(remote.Transcriber)
	if err != nil {
		return err
	}
	startSpeakingPlan, err := jsonObject(remote.StartSpeakingPlan)
	if err != nil {
		return err
	}
	clientMessages, err := jsonArray(remote.ClientMessages)
	if err != nil {
		return err
	}
	serverMessages, err := jsonArray(remote.ServerMessages)
	if err != nil {
		return err
	}
	endCallPhrases, err := jsonArray(remote.EndCallPhrases)
	if err != nil {
		return err
	}

	a.OrgID = remote.OrgID
	a.Name = ""
	if remote.Name != nil {
		a.Name = *remote.Name
	}
	a.VoiceType = nil
	if remote.Voice != nil {
		a.VoiceType = remote.Voice.VoiceID
	}
	a.BehaviorType = remote.ModelName()
	a.FirstMessage = remote.FirstMessage
	a.VoicemailMessage = remote.VoicemailMessage
	a.EndCallMessage = remote.EndCallMessage
	a.ModelData = modelData
	a.TranscriberData = transcriberData
	a.SilenceTimeoutSeconds = remote.SilenceTimeoutSeconds
	a.ClientMessages = clientMessages
	a.ServerMessages = serverMessages
	a.EndCallPhrases = endCallPhrases
	a.HipaaEnabled = boolText(remote.HipaaEnabled)
	a.BackgroundDenoisingEnabled = boolText(remote.BackgroundDenoisingEnabled)
	a.StartSpeakingPlan = startSpeakingPlan
	a.IsServerURLSecretSet = boolText(remote.IsServerURLSecretSet)
	a.CreatedAt = vapi.ParseTimestamp(remote.CreatedAt)
	a.UpdatedAt = vapi.ParseTimestamp(remote.UpdatedAt)
	return nil
}

// syncVoice overwrites an existing voice row and only inserts one when the remote voice has content
func syncVoice(repo db.AssistantRepository, assistantID int64, remote *vapi.Voice) error {
	voice, err := repo.GetVoice(assistantID)
	if err != nil {
		return err
	}
	if voice == nil {
		if remote.Empty() {
			return nil
		}
		voice = &models.Voice{AssistantID: assistantID}
	}

	if remote == nil {
		remote = &vapi.Voice{}
	}
	voice.Model = remote.Model
	voice.VoiceID = remote.VoiceID
	voice.Provider = remote.Provider
	voice.Stability = floatText(remote.Stability)
	voice.SimilarityBoost = floatText(remote.SimilarityBoost)

	return repo.SaveVoice(voice)
}

// SyncPhoneNumber upserts the mirror row of a remote phone number in one transaction
func (s *SyncService) SyncPhoneNumber(remote *vapi.PhoneNumber) (*models.PhoneNumber, error) {
	p, _, err := s.syncPhoneNumber(remote)
	return p, err
}

func (s *SyncService) syncPhoneNumber(remote *vapi.PhoneNumber) (*models.PhoneNumber, bool, error) {
	if remote == nil || remote.ID == "" {
		return nil, false, errors.New("remote phone number has no id")
	}

	var synced *models.PhoneNumber
	var created bool
	err := s.phones.RunInTx(func(repo db.PhoneNumberRepository) error {
		existing, err := repo.GetByVapiID(remote.ID)
		if err != nil {
			return err
		}

		p := existing
		if p == nil {
			p = &models.PhoneNumber{VapiID: remote.ID}
		}
		applyPhoneNumber(p, remote)

		if existing == nil {
			if err := repo.Create(p); err != nil {
				return err
			}
			created = true
		} else if err := repo.Update(p); err != nil {
			return err
		}

		synced = p
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to sync phone number %s: %w", remote.ID, err)
	}

	return synced, created, nil
}

func applyPhoneNumber(p *models.PhoneNumber, remote *vapi.PhoneNumber) {
	p.OrgID = remote.OrgID
	p.AssistantID = remote.AssistantID
	p.Value = ""
	if remote.Number != nil {
		p.Value = *remote.Number
	}
	p.Name = remote.Name
	p.CredentialID = remote.CredentialID
	p.Provider = remote.Provider
	p.NumberE164CheckEnabled = boolText(remote.NumberE164CheckEnabled)
	p.Status = remote.Status
	p.ProviderResourceID = remote.ProviderResourceID
	p.CreatedAt = vapi.ParseTimestamp(remote.CreatedAt)
	p.UpdatedAt = vapi.ParseTimestamp(remote.UpdatedAt)
}

// SyncAllAssistants fetches every remote assistant and syncs each of them
func (s *SyncService) SyncAllAssistants(ctx context.Context) (*SyncReport, error) {
	remotes, err := s.assistantGateway.ListAssistants(ctx)
	if err != nil {
		return nil, upstream(opFetch, err)
	}

	report := &SyncReport{Remote: len(remotes)}
	for i := range remotes {
		_, created, err := s.syncAssistant(&remotes[i])
		if err != nil {
			return nil, err
		}
		if created {
			report.Created++
		} else {
			report.Updated++
		}
	}

	logger.Info("Assistants synchronized",
		zap.Int("remote", report.Remote),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated))
	return report, nil
}

// SyncAllPhoneNumbers fetches every remote phone number and syncs each of them
func (s *SyncService) SyncAllPhoneNumbers(ctx context.Context) (*SyncReport, error) {
	remotes, err := s.phoneGateway.ListPhoneNumbers(ctx)
	if err != nil {
		return nil, upstream(opFetch, err)
	}

	report := &SyncReport{Remote: len(remotes)}
	for i := range remotes {
		_, created, err := s.syncPhoneNumber(&remotes[i])
		if err != nil {
			return nil, err
		}
		if created {
			report.Created++
		} else {
			report.Updated++
		}
	}

	logger.Info("Phone numbers synchronized",
		zap.Int("remote", report.Remote),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated))
	return report, nil
}

// ForgetAssistant removes the mirror row and voice of an assistant already deleted remotely
func (s *SyncService) ForgetAssistant(local *models.Assistant) error {
	if err := s.assistants.Delete(local.ID); err != nil {
		return fmt.Errorf("failed to forget assistant: %w", err)
	}
	return nil
}

// ForgetPhoneNumber removes the mirror row of a phone number already deleted remotely
func (s *SyncService) ForgetPhoneNumber(local *models.PhoneNumber) error {
	if err := s.phones.Delete(local.ID); err != nil {
		return fmt.Errorf("failed to forget phone number: %w", err)
	}
	return nil
}

func jsonObject(m map[string]any) (string, error) {
	if m == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to encode object: %w", err)
	}
	return string(raw), nil
}

func jsonArray(a []any) (string, error) {
	if a == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("failed to encode array: %w", err)
	}
	return string(raw), nil
}

func boolText(b *bool) string {
	return strconv.FormatBool(b != nil && *b)
}

func floatText(f *float64) *string {
	if f == nil {
		return nil
	}
	s := strconv.FormatFloat(*f, 'f', -1, 64)
	return &s
}
