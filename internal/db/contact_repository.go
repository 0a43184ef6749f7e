package db

import (
	"database/sql"
	"fmt"

	"ahudio-admin-server/internal/models"
)

// EmailRepository defines the interface for email address data access
type EmailRepository interface {
	Create(email *models.EmailAddress) error
	GetByID(id int64) (*models.EmailAddress, error)
	Update(email *models.EmailAddress) error
	Delete(id int64) error
	List() ([]*models.EmailAddress, error)
	Count() (int, error)
}

// PhoneContactRepository defines the interface for phone contact data access
type PhoneContactRepository interface {
	Create(contact *models.PhoneContact) error
	GetByID(id int64) (*models.PhoneContact, error)
	Update(contact *models.PhoneContact) error
	Delete(id int64) error
	List() ([]*models.PhoneContact, error)
	Count() (int, error)
}

// valueTable implements storage for the (id, value) tables
type valueTable struct {
	db    *sql.DB
	table string
	noun  string
}

func (t *valueTable) create(value string) (int64, error) {
	result, err := t.db.Exec(fmt.Sprintf("INSERT INTO %s (value) VALUES (?)", t.table), value)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", t.noun, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get %s ID: %w", t.noun, err)
	}
	return id, nil
}

func (t *valueTable) get(id int64) (string, bool, error) {
	var value string
	err := t.db.QueryRow(fmt.Sprintf("SELECT value FROM %s WHERE id = ?", t.table), id).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s by ID: %w", t.noun, err)
	}
	return value, true, nil
}

func (t *valueTable) update(id int64, value string) error {
	result, err := t.db.Exec(fmt.Sprintf("UPDATE %s SET value = ? WHERE id = ?", t.table), value, id)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", t.noun, err)
	}
	return expectOneRow(result, t.noun)
}

func (t *valueTable) delete(id int64) error {
	result, err := t.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", t.noun, err)
	}
	return expectOneRow(result, t.noun)
}

func (t *valueTable) list(each func(id int64, value string)) error {
	rows, err := t.db.Query(fmt.Sprintf("SELECT id, value FROM %s ORDER BY id", t.table))
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", t.noun, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var value string
		if err := rows.Scan(&id, &value); err != nil {
			return fmt.Errorf("failed to scan %s: %w", t.noun, err)
		}
		each(id, value)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating %s: %w", t.noun, err)
	}
	return nil
}

func (t *valueTable) count() (int, error) {
	var count int
	if err := t.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", t.table)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.noun, err)
	}
	return count, nil
}

func expectOneRow(result sql.Result, noun string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%s not found", noun)
	}
	return nil
}

type emailRepository struct {
	t *valueTable
}

// NewEmailRepository creates a new EmailRepository
func NewEmailRepository(db *sql.DB) EmailRepository {
	return &emailRepository{t: &valueTable{db: db, table: "email_addresses", noun: "email address"}}
}

func (r *emailRepository) Create(email *models.EmailAddress) error {
	if email == nil {
		return fmt.Errorf("email address cannot be nil")
	}
	id, err := r.t.create(email.Value)
	if err != nil {
		return err
	}
	email.ID = id
	return nil
}

// GetByID returns nil, nil when the row does not exist
func (r *emailRepository) GetByID(id int64) (*models.EmailAddress, error) {
	value, ok, err := r.t.get(id)
	if err != nil || !ok {
		return nil, err
	}
	return &models.EmailAddress{ID: id, Value: value}, nil
}

func (r *emailRepository) Update(email *models.EmailAddress) error {
	if email == nil {
		return fmt.Errorf("email address cannot be nil")
	}
	return r.t.update(email.ID, email.Value)
}

func (r *emailRepository) Delete(id int64) error {
	return r.t.delete(id)
}

func (r *emailRepository) List() ([]*models.EmailAddress, error) {
	emails := []*models.EmailAddress{}
	err := r.t.list(func(id int64, value string) {
		emails = append(emails, &models.EmailAddress{ID: id, Value: value})
	})
	if err != nil {
		return nil, err
	}
	return emails, nil
}

func (r *emailRepository) Count() (int, error) {
	return r.t.count()
}

type phoneContactRepository struct {
	t *valueTable
}

// NewPhoneContactRepository creates a new PhoneContactRepository
func NewPhoneContactRepository(db *sql.DB) PhoneContactRepository {
	return &phoneContactRepository{t: &valueTable{db: db, table: "phone_contacts", noun: "phone contact"}}
}

func (r *phoneContactRepository) Create(contact *models.PhoneContact) error {
	if contact == nil {
		return fmt.Errorf("phone contact cannot be nil")
	}
	id, err := r.t.create(contact.Value)
	if err != nil {
		return err
	}
	contact.ID = id
	return nil
}

// GetByID returns nil, nil when the row does not exist
func (r *phoneContactRepository) GetByID(id int64) (*models.PhoneContact, error) {
	value, ok, err := r.t.get(id)
	if err != nil || !ok {
		return nil, err
	}
	return &models.PhoneContact{ID: id, Value: value}, nil
}

func (r *phoneContactRepository) Update(contact *models.PhoneContact) error {
	if contact == nil {
		return fmt.Errorf("phone contact cannot be nil")
	}
	return r.t.update(contact.ID, contact.Value)
}

func (r *phoneContactRepository) Delete(id int64) error {
	return r.t.delete(id)
}

func (r *phoneContactRepository) List() ([]*models.PhoneContact, error) {
	contacts := []*models.PhoneContact{}
	err := r.t.list(func(id int64, value string) {
		contacts = append(contacts, &models.PhoneContact{ID: id, Value: value})
	})
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *phoneContactRepository) Count() (int, error) {
	return r.t.count()
}
