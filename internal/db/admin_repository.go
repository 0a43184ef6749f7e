package db

import (
	"database/sql"
	"fmt"

	"ahudio-admin-server/internal/models"
)

// AdminRepository defines the interface for admin principal data access
type AdminRepository interface {
	Create(admin *models.AdminPrincipal) error
	GetByUsername(username string) (*models.AdminPrincipal, error)
}

type adminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *models.AdminPrincipal) error {
	if admin == nil {
		return fmt.Errorf("admin cannot be nil")
	}

	result, err := r.db.Exec(
		"INSERT INTO super_admins (username, password_hash) VALUES (?, ?)",
		admin.Username,
		admin.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get admin ID: %w", err)
	}
	admin.ID = id

	return nil
}

// GetByUsername returns nil, nil when no principal has that name
func (r *adminRepository) GetByUsername(username string) (*models.AdminPrincipal, error) {
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	admin := &models.AdminPrincipal{}
	err := r.db.QueryRow(
		"SELECT id, username, password_hash FROM super_admins WHERE username = ?",
		username,
	).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}

	return admin, nil
}
