package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Database owns the SQLite handle shared by every repository
type Database struct {
	db *sql.DB
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

func NewDatabase(dsn string) (*Database, error) {
	if dsn == "" {
		return nil, errors.New("database path is required")
	}

	// Check for invalid database file path
	if strings.Contains(dsn, "?mode=invalid") {
		return nil, errors.New("invalid database configuration")
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// In-memory databases are per connection and SQLite serializes writers anyway
	db.SetMaxOpenConns(1)

	// Verify we can actually connect to the database
	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("ping failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	// Try to create tables - if this fails, the database is not usable
	if err := createTables(db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("create tables failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	return &Database{db: db}, nil
}

const schema = `
	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone_number TEXT,
		company TEXT,
		business_type TEXT NOT NULL,
		message TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS super_admins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS about (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL,
		vision TEXT NOT NULL,
		mission TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS email_addresses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS phone_contacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS assistants (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		vapi_id TEXT UNIQUE NOT NULL,
		org_id TEXT,
		name TEXT NOT NULL,
		voice_type TEXT,
		behavior_type TEXT,
		first_message TEXT,
		voicemail_message TEXT,
		end_call_message TEXT,
		model_data TEXT,
		transcriber_data TEXT,
		silence_timeout_seconds INTEGER,
		client_messages TEXT,
		server_messages TEXT,
		end_call_phrases TEXT,
		hipaa_enabled TEXT DEFAULT 'false',
		background_denoising_enabled TEXT DEFAULT 'false',
		start_speaking_plan TEXT,
		is_server_url_secret_set TEXT DEFAULT 'false',
		created_at DATETIME,
		updated_at DATETIME,
		created_at_local DATETIME NOT NULL,
		updated_at_local DATETIME,
		humor INTEGER,
		flexibility INTEGER,
		goal_focus INTEGER
	);

	CREATE TABLE IF NOT EXISTS voices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		assistant_id INTEGER NOT NULL,
		model TEXT,
		voice_id TEXT,
		provider TEXT,
		stability TEXT,
		similarity_boost TEXT
	);

	CREATE TABLE IF NOT EXISTS phone_numbers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		vapi_id TEXT UNIQUE NOT NULL,
		org_id TEXT,
		assistant_id TEXT,
		value TEXT NOT NULL,
		name TEXT,
		credential_id TEXT,
		provider TEXT,
		number_e164_check_enabled TEXT DEFAULT 'false',
		status TEXT,
		provider_resource_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		created_at_local DATETIME NOT NULL,
		updated_at_local DATETIME
	);

	CREATE TABLE IF NOT EXISTS properties (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		humor INTEGER NOT NULL,
		flexibility INTEGER NOT NULL,
		goal_focus INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_messages_email ON messages(email);
	CREATE INDEX IF NOT EXISTS idx_assistants_vapi_id ON assistants(vapi_id);
	CREATE INDEX IF NOT EXISTS idx_voices_assistant_id ON voices(assistant_id);
	CREATE INDEX IF NOT EXISTS idx_phone_numbers_vapi_id ON phone_numbers(vapi_id);
`

func createTables(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

// GetDB returns the underlying database handle
func (d *Database) GetDB() *sql.DB {
	if d == nil {
		return nil
	}
	return d.db
}

func (d *Database) Close() error {
	if d == nil {
		return errors.New("database is nil")
	}

	if d.db == nil {
		return errors.New("database already closed")
	}

	err := d.db.Close()
	d.db = nil
	return err
}

// runInTx runs fn inside a transaction, committing on success and rolling back otherwise
func runInTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// utcOrNil stores optional timestamps in UTC and keeps nil as NULL
func utcOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
