package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes
const bcryptMaxPasswordBytes = 72

// TokenIssuer signs access tokens for an authenticated subject
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// AuthService authenticates the admin principal
type AuthService struct {
	repo              db.AdminRepository
	tokens            TokenIssuer
	bootstrapUsername string
}

// NewAuthService creates a new AuthService instance. The first successful login with
// bootstrapUsername creates the principal with the given password.
func NewAuthService(repo db.AdminRepository, tokens TokenIssuer, bootstrapUsername string) *AuthService {
	return &AuthService{
		repo:              repo,
		tokens:            tokens,
		bootstrapUsername: bootstrapUsername,
	}
}

// Login verifies the credentials and returns a bearer token
func (s *AuthService) Login(username, password string) (*models.LoginResponse, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin == nil {
		if username != s.bootstrapUsername {
			return nil, ErrInvalidCredentials
		}
		if admin, err = s.bootstrap(username, password); err != nil {
			return nil, err
		}
	} else if !CheckPassword(admin.PasswordHash, password) {
		logger.Warn("Login failed", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.LoginResponse{
		Username:    admin.Username,
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (s *AuthService) bootstrap(username, password string) (*models.AdminPrincipal, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.AdminPrincipal{Username: username, PasswordHash: hash}
	if err := s.repo.Create(admin); err != nil {
		return nil, fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	logger.Info("Bootstrap admin created", zap.String("username", username))
	return admin, nil
}

// HashPassword bcrypt-hashes the password, pre-hashing long passwords with SHA-256
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password)) == nil
}

func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxPasswordBytes {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}
