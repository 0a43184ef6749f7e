package db

import (
	"database/sql"
	"fmt"
	"time"

	"ahudio-admin-server/internal/models"
)

// AssistantRepository defines the interface for mirrored assistant and voice data access
type AssistantRepository interface {
	// RunInTx runs fn against a repository bound to a single transaction
	RunInTx(fn func(repo AssistantRepository) error) error
	Create(a *models.Assistant) error
	Update(a *models.Assistant) error
	UpdateTuning(id int64, humor, flexibility, goalFocus *int) error
	GetByID(id int64) (*models.Assistant, error)
	GetByVapiID(vapiID string) (*models.Assistant, error)
	List() ([]*models.Assistant, error)
	Delete(id int64) error
	GetVoice(assistantID int64) (*models.Voice, error)
	SaveVoice(v *models.Voice) error
}

type assistantRepository struct {
	db *sql.DB // nil when bound to a transaction
	q  querier
}

// NewAssistantRepository creates a new AssistantRepository
func NewAssistantRepository(db *sql.DB) AssistantRepository {
	return &assistantRepository{db: db, q: db}
}

const assistantColumns = `id, vapi_id, org_id, name, voice_type, behavior_type, first_message,
	voicemail_message, end_call_message, model_data, transcriber_data, silence_timeout_seconds,
	client_messages, server_messages, end_call_phrases, hipaa_enabled, background_denoising_enabled,
	start_speaking_plan, is_server_url_secret_set, created_at, updated_at, created_at_local,
	updated_at_local, humor, flexibility, goal_focus`

func (r *assistantRepository) RunInTx(fn func(repo AssistantRepository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return runInTx(r.db, func(tx *sql.Tx) error {
		return fn(&assistantRepository{q: tx})
	})
}

// Create inserts the mirror row and stamps its local id and creation time
func (r *assistantRepository) Create(a *models.Assistant) error {
	if a == nil {
		return fmt.Errorf("assistant cannot be nil")
	}
	if a.VapiID == "" {
		return fmt.Errorf("assistant remote ID cannot be empty")
	}

	a.CreatedAtLocal = time.Now().UTC()

	result, err := r.q.Exec(`
		INSERT INTO assistants (vapi_id, org_id, name, voice_type, behavior_type, first_message,
			voicemail_message, end_call_message, model_data, transcriber_data, silence_timeout_seconds,
			client_messages, server_messages, end_call_phrases, hipaa_enabled, background_denoising_enabled,
			start_speaking_plan, is_server_url_secret_set, created_at, updated_at, created_at_local,
			humor, flexibility, goal_focus)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		a.VapiID,
		a.OrgID,
		a.Name,
		a.VoiceType,
		a.BehaviorType,
		a.FirstMessage,
		a.VoicemailMessage,
		a.EndCallMessage,
		a.ModelData,
		a.TranscriberData,
		a.SilenceTimeoutSeconds,
		a.ClientMessages,
		a.ServerMessages,
		a.EndCallPhrases,
		a.HipaaEnabled,
		a.BackgroundDenoisingEnabled,
		a.StartSpeakingPlan,
		a.IsServerURLSecretSet,
		utcOrNil(a.CreatedAt),
		utcOrNil(a.UpdatedAt),
		a.CreatedAtLocal,
		a.Humor,
		a.Flexibility,
		a.GoalFocus,
	)
	if err != nil {
		return fmt.Errorf("failed to create assistant: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get assistant ID: %w", err)
	}
	a.ID = id

	return nil
}

// Update overwrites every mirrored field and stamps the local update time.
// Tuning values are left alone; see UpdateTuning.
func (r *assistantRepository) Update(a *models.Assistant) error {
	if a == nil {
		return fmt.Errorf("assistant cannot be nil")
	}

	now := time.Now().UTC()
	a.UpdatedAtLocal = &now

	result, err := r.q.Exec(`
		UPDATE assistants SET org_id = ?, name = ?, voice_type = ?, behavior_type = ?, first_message = ?,
			voicemail_message = ?, end_call_message = ?, model_data = ?, transcriber_data = ?,
			silence_timeout_seconds = ?, client_messages = ?, server_messages = ?, end_call_phrases = ?,
			hipaa_enabled = ?, background_denoising_enabled = ?, start_speaking_plan = ?,
			is_server_url_secret_set = ?, created_at = ?, updated_at = ?, updated_at_local = ?
		WHERE id = ?
	`,
		a.OrgID,
		a.Name,
		a.VoiceType,
		a.BehaviorType,
		a.FirstMessage,
		a.VoicemailMessage,
		a.EndCallMessage,
		a.ModelData,
		a.TranscriberData,
		a.SilenceTimeoutSeconds,
		a.ClientMessages,
		a.ServerMessages,
		a.EndCallPhrases,
		a.HipaaEnabled,
		a.BackgroundDenoisingEnabled,
		a.StartSpeakingPlan,
		a.IsServerURLSecretSet,
		utcOrNil(a.CreatedAt),
		utcOrNil(a.UpdatedAt),
		now,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assistant: %w", err)
	}
	return expectOneRow(result, "assistant")
}

// UpdateTuning stores the local-only tuning values; nil arguments keep the current value
func (r *assistantRepository) UpdateTuning(id int64, humor, flexibility, goalFocus *int) error {
	result, err := r.q.Exec(`
		UPDATE assistants SET humor = COALESCE(?, humor), flexibility = COALESCE(?, flexibility),
			goal_focus = COALESCE(?, goal_focus), updated_at_local = ?
		WHERE id = ?
	`, humor, flexibility, goalFocus, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update assistant tuning: %w", err)
	}
	return expectOneRow(result, "assistant")
}

// GetByID returns nil, nil when the row does not exist
func (r *assistantRepository) GetByID(id int64) (*models.Assistant, error) {
	a, err := scanAssistant(r.q.QueryRow("SELECT "+assistantColumns+" FROM assistants WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assistant by ID: %w", err)
	}
	return a, nil
}

// GetByVapiID looks a mirror row up by its reconciliation key
func (r *assistantRepository) GetByVapiID(vapiID string) (*models.Assistant, error) {
	a, err := scanAssistant(r.q.QueryRow("SELECT "+assistantColumns+" FROM assistants WHERE vapi_id = ?", vapiID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assistant by remote ID: %w", err)
	}
	return a, nil
}

func (r *assistantRepository) List() ([]*models.Assistant, error) {
	rows, err := r.q.Query("SELECT " + assistantColumns + " FROM assistants ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list assistants: %w", err)
	}
	defer rows.Close()

	assistants := []*models.Assistant{}
	for rows.Next() {
		a, err := scanAssistant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assistant: %w", err)
		}
		assistants = append(assistants, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assistants: %w", err)
	}

	return assistants, nil
}

// Delete removes the assistant together with its voice rows
func (r *assistantRepository) Delete(id int64) error {
	return r.RunInTx(func(repo AssistantRepository) error {
		tx := repo.(*assistantRepository)
		if _, err := tx.q.Exec("DELETE FROM voices WHERE assistant_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete voice: %w", err)
		}
		result, err := tx.q.Exec("DELETE FROM assistants WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to delete assistant: %w", err)
		}
		return expectOneRow(result, "assistant")
	})
}

// GetVoice returns the voice of an assistant, or nil, nil when it has none
func (r *assistantRepository) GetVoice(assistantID int64) (*models.Voice, error) {
	v := &models.Voice{}
	err := r.q.QueryRow(`
		SELECT id, assistant_id, model, voice_id, provider, stability, similarity_boost
		FROM voices WHERE assistant_id = ? ORDER BY id LIMIT 1
	`, assistantID).Scan(
		&v.ID,
		&v.AssistantID,
		&v.Model,
		&v.VoiceID,
		&v.Provider,
		&v.Stability,
		&v.SimilarityBoost,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get voice: %w", err)
	}
	return v, nil
}

// SaveVoice inserts the voice when it has no id yet and overwrites it otherwise
func (r *assistantRepository) SaveVoice(v *models.Voice) error {
	if v == nil {
		return fmt.Errorf("voice cannot be nil")
	}

	if v.ID == 0 {
		result, err := r.q.Exec(`
			INSERT INTO voices (assistant_id, model, voice_id, provider, stability, similarity_boost)
			VALUES (?, ?, ?, ?, ?, ?)
		`, v.AssistantID, v.Model, v.VoiceID, v.Provider, v.Stability, v.SimilarityBoost)
		if err != nil {
			return fmt.Errorf("failed to create voice: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get voice ID: %w", err)
		}
		v.ID = id
		return nil
	}

	_, err := r.q.Exec(`
		UPDATE voices SET model = ?, voice_id = ?, provider = ?, stability = ?, similarity_boost = ?
		WHERE id = ?
	`, v.Model, v.VoiceID, v.Provider, v.Stability, v.SimilarityBoost, v.ID)
	if err != nil {
		return fmt.Errorf("failed to update voice: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssistant(row rowScanner) (*models.Assistant, error) {
	a := &models.Assistant{}
	var modelData, transcriberData, clientMessages, serverMessages, endCallPhrases, startSpeakingPlan sql.NullString
	var hipaa, denoising, secretSet sql.NullString

	err := row.Scan(
		&a.ID,
		&a.VapiID,
		&a.OrgID,
		&a.Name,
		&a.VoiceType,
		&a.BehaviorType,
		&a.FirstMessage,
		&a.VoicemailMessage,
		&a.EndCallMessage,
		&modelData,
		&transcriberData,
		&a.SilenceTimeoutSeconds,
		&clientMessages,
		&serverMessages,
		&endCallPhrases,
		&hipaa,
		&denoising,
		&startSpeakingPlan,
		&secretSet,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.CreatedAtLocal,
		&a.UpdatedAtLocal,
		&a.Humor,
		&a.Flexibility,
		&a.GoalFocus,
	)
	if err != nil {
		return nil, err
	}

	a.ModelData = modelData.String
	a.TranscriberData = transcriberData.String
	a.ClientMessages = clientMessages.String
	a.ServerMessages = serverMessages.String
	a.EndCallPhrases = endCallPhrases.String
	a.StartSpeakingPlan = startSpeakingPlan.String
	a.HipaaEnabled = boolText(hipaa)
	a.BackgroundDenoisingEnabled = boolText(denoising)
	a.IsServerURLSecretSet = boolText(secretSet)
	a.CreatedAt = toUTC(a.CreatedAt)
	a.UpdatedAt = toUTC(a.UpdatedAt)
	a.CreatedAtLocal = a.CreatedAtLocal.UTC()
	a.UpdatedAtLocal = toUTC(a.UpdatedAtLocal)

	return a, nil
}

func boolText(s sql.NullString) string {
	if !s.Valid || s.String == "" {
		return "false"
	}
	return s.String
}

func toUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
