package db

import (
	"errors"
	"testing"

	"ahudio-admin-server/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository_CreateAndGet(t *testing.T) {
	repo := NewAdminRepository(SetupTestDB(t))

	admin := &models.AdminPrincipal{Username: "admin", PasswordHash: "hash"}
	require.NoError(t, repo.Create(admin))
	assert.NotZero(t, admin.ID)

	found, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, admin.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	missing, err := repo.GetByUsername("nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAdminRepository_CreateValidation(t *testing.T) {
	tests := []struct {
		name        string
		admin       *models.AdminPrincipal
		seed        bool
		errContains string
	}{
		{name: "nil admin", admin: nil, errContains: "cannot be nil"},
		{
			name:        "duplicate username",
			admin:       &models.AdminPrincipal{Username: "admin", PasswordHash: "other"},
			seed:        true,
			errContains: "failed to create admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewAdminRepository(SetupTestDB(t))
			if tt.seed {
				require.NoError(t, repo.Create(&models.AdminPrincipal{Username: "admin", PasswordHash: "hash"}))
			}
			err := repo.Create(tt.admin)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestAdminRepository_GetByUsernameErrors(t *testing.T) {
	repo := NewAdminRepository(SetupTestDB(t))
	_, err := repo.GetByUsername("")
	assert.ErrorContains(t, err, "cannot be empty")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username, password_hash FROM super_admins").
		WithArgs("admin").
		WillReturnError(errors.New("connection reset"))

	_, err = NewAdminRepository(db).GetByUsername("admin")
	assert.ErrorContains(t, err, "failed to get admin by username")
	assert.NoError(t, mock.ExpectationsWereMet())
}
