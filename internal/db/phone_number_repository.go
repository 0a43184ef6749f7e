package db

import (
	"database/sql"
	"fmt"
	"time"

	"ahudio-admin-server/internal/models"
)

// PhoneNumberRepository defines the interface for mirrored phone number data access
type PhoneNumberRepository interface {
	// RunInTx runs fn against a repository bound to a single transaction
	RunInTx(fn func(repo PhoneNumberRepository) error) error
	Create(p *models.PhoneNumber) error
	Update(p *models.PhoneNumber) error
	GetByID(id int64) (*models.PhoneNumber, error)
	GetByVapiID(vapiID string) (*models.PhoneNumber, error)
	List() ([]*models.PhoneNumber, error)
	Delete(id int64) error
	Count() (int, error)
}

type phoneNumberRepository struct {
	db *sql.DB // nil when bound to a transaction
	q  querier
}

// NewPhoneNumberRepository creates a new PhoneNumberRepository
func NewPhoneNumberRepository(db *sql.DB) PhoneNumberRepository {
	return &phoneNumberRepository{db: db, q: db}
}

const phoneNumberColumns = `id, vapi_id, org_id, assistant_id, value, name, credential_id, provider,
	number_e164_check_enabled, status, provider_resource_id, created_at, updated_at,
	created_at_local, updated_at_local`

func (r *phoneNumberRepository) RunInTx(fn func(repo PhoneNumberRepository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return runInTx(r.db, func(tx *sql.Tx) error {
		return fn(&phoneNumberRepository{q: tx})
	})
}

func (r *phoneNumberRepository) Create(p *models.PhoneNumber) error {
	if p == nil {
		return fmt.Errorf("phone number cannot be nil")
	}
	if p.VapiID == "" {
		return fmt.Errorf("phone number remote ID cannot be empty")
	}

	p.CreatedAtLocal = time.Now().UTC()

	result, err := r.q.Exec(`
		INSERT INTO phone_numbers (vapi_id, org_id, assistant_id, value, name, credential_id, provider,
			number_e164_check_enabled, status, provider_resource_id, created_at, updated_at, created_at_local)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.VapiID,
		p.OrgID,
		p.AssistantID,
		p.Value,
		p.Name,
		p.CredentialID,
		p.Provider,
		p.NumberE164CheckEnabled,
		p.Status,
		p.ProviderResourceID,
		utcOrNil(p.CreatedAt),
		utcOrNil(p.UpdatedAt),
		p.CreatedAtLocal,
	)
	if err != nil {
		return fmt.Errorf("failed to create phone number: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get phone number ID: %w", err)
	}
	p.ID = id

	return nil
}

// Update overwrites every mirrored field and stamps the local update time
func (r *phoneNumberRepository) Update(p *models.PhoneNumber) error {
	if p == nil {
		return fmt.Errorf("phone number cannot be nil")
	}

	now := time.Now().UTC()
	p.UpdatedAtLocal = &now

	result, err := r.q.Exec(`
		UPDATE phone_numbers SET org_id = ?, assistant_id = ?, value = ?, name = ?, credential_id = ?,
			provider = ?, number_e164_check_enabled = ?, status = ?, provider_resource_id = ?,
			created_at = ?, updated_at = ?, updated_at_local = ?
		WHERE id = ?
	`,
		p.OrgID,
		p.AssistantID,
		p.Value,
		p.Name,
		p.CredentialID,
		p.Provider,
		p.NumberE164CheckEnabled,
		p.Status,
		p.ProviderResourceID,
		utcOrNil(p.CreatedAt),
		utcOrNil(p.UpdatedAt),
		now,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update phone number: %w", err)
	}
	return expectOneRow(result, "phone number")
}

// GetByID returns nil, nil when the row does not exist
func (r *phoneNumberRepository) GetByID(id int64) (*models.PhoneNumber, error) {
	p, err := scanPhoneNumber(r.q.QueryRow("SELECT "+phoneNumberColumns+" FROM phone_numbers WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get phone number by ID: %w", err)
	}
	return p, nil
}

// GetByVapiID looks a mirror row up by its reconciliation key
func (r *phoneNumberRepository) GetByVapiID(vapiID string) (*models.PhoneNumber, error) {
	p, err := scanPhoneNumber(r.q.QueryRow("SELECT "+phoneNumberColumns+" FROM phone_numbers WHERE vapi_id = ?", vapiID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get phone number by remote ID: %w", err)
	}
	return p, nil
}

func (r *phoneNumberRepository) List() ([]*models.PhoneNumber, error) {
	rows, err := r.q.Query("SELECT " + phoneNumberColumns + " FROM phone_numbers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list phone numbers: %w", err)
	}
	defer rows.Close()

	phones := []*models.PhoneNumber{}
	for rows.Next() {
		p, err := scanPhoneNumber(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan phone number: %w", err)
		}
		phones = append(phones, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating phone numbers: %w", err)
	}

	return phones, nil
}

func (r *phoneNumberRepository) Delete(id int64) error {
	result, err := r.q.Exec("DELETE FROM phone_numbers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete phone number: %w", err)
	}
	return expectOneRow(result, "phone number")
}

func (r *phoneNumberRepository) Count() (int, error) {
	var count int
	if err := r.q.QueryRow("SELECT COUNT(*) FROM phone_numbers").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count phone numbers: %w", err)
	}
	return count, nil
}

func scanPhoneNumber(row rowScanner) (*models.PhoneNumber, error) {
	p := &models.PhoneNumber{}
	var e164 sql.NullString

	err := row.Scan(
		&p.ID,
		&p.VapiID,
		&p.OrgID,
		&p.AssistantID,
		&p.Value,
		&p.Name,
		&p.CredentialID,
		&p.Provider,
		&e164,
		&p.Status,
		&p.ProviderResourceID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.CreatedAtLocal,
		&p.UpdatedAtLocal,
	)
	if err != nil {
		return nil, err
	}

	p.NumberE164CheckEnabled = boolText(e164)
	p.CreatedAt = toUTC(p.CreatedAt)
	p.UpdatedAt = toUTC(p.UpdatedAt)
	p.CreatedAtLocal = p.CreatedAtLocal.UTC()
	p.UpdatedAtLocal = toUTC(p.UpdatedAtLocal)

	return p, nil
}
