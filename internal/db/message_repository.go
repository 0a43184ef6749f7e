package db

import (
	"database/sql"
	"fmt"
	"time"

	"ahudio-admin-server/internal/models"
)

// MessageRepository defines the interface for contact message data access
type MessageRepository interface {
	Create(msg *models.ContactMessage) error
	List(limit, offset int) ([]*models.ContactMessage, error)
	Count() (int, error)
}

type messageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *sql.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a message and stamps its id and creation time
func (r *messageRepository) Create(msg *models.ContactMessage) error {
	if msg == nil {
		return fmt.Errorf("message cannot be nil")
	}

	msg.CreatedAt = time.Now().UTC()

	result, err := r.db.Exec(`
		INSERT INTO messages (name, email, phone_number, company, business_type, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		msg.Name,
		msg.Email,
		msg.PhoneNumber,
		msg.Company,
		string(msg.BusinessType),
		msg.Message,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get message ID: %w", err)
	}
	msg.ID = id

	return nil
}

// List returns messages in insertion order
func (r *messageRepository) List(limit, offset int) ([]*models.ContactMessage, error) {
	rows, err := r.db.Query(`
		SELECT id, name, email, phone_number, company, business_type, message, created_at
		FROM messages
		ORDER BY id
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.ContactMessage{}
	for rows.Next() {
		msg := &models.ContactMessage{}
		var businessType string
		if err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.PhoneNumber,
			&msg.Company,
			&businessType,
			&msg.Message,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msg.BusinessType = models.BusinessType(businessType)
		msg.CreatedAt = msg.CreatedAt.UTC()
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}
