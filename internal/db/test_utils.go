package db

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// SetupTestDB creates an in-memory SQLite database with the full schema for testing
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	// Cleanup on test completion
	t.Cleanup(func() {
		db.Close()
	})

	return db
}
