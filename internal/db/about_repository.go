package db

import (
	"database/sql"
	"fmt"

	"ahudio-admin-server/internal/models"
)

// AboutRepository stores the about singleton
type AboutRepository interface {
	Get() (*models.AboutContent, error)
	Save(about *models.AboutContent) error
}

type aboutRepository struct {
	db *sql.DB
}

// NewAboutRepository creates a new AboutRepository
func NewAboutRepository(db *sql.DB) AboutRepository {
	return &aboutRepository{db: db}
}

// Get returns the first about row, or nil, nil when none exists
func (r *aboutRepository) Get() (*models.AboutContent, error) {
	about := &models.AboutContent{}
	err := r.db.QueryRow(
		"SELECT id, description, vision, mission FROM about ORDER BY id LIMIT 1",
	).Scan(&about.ID, &about.Description, &about.Vision, &about.Mission)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get about: %w", err)
	}

	return about, nil
}

// Save inserts the row when it has no id yet and overwrites it otherwise
func (r *aboutRepository) Save(about *models.AboutContent) error {
	if about == nil {
		return fmt.Errorf("about cannot be nil")
	}

	if about.ID == 0 {
		result, err := r.db.Exec(
			"INSERT INTO about (description, vision, mission) VALUES (?, ?, ?)",
			about.Description, about.Vision, about.Mission,
		)
		if err != nil {
			return fmt.Errorf("failed to create about: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get about ID: %w", err)
		}
		about.ID = id
		return nil
	}

	_, err := r.db.Exec(
		"UPDATE about SET description = ?, vision = ?, mission = ? WHERE id = ?",
		about.Description, about.Vision, about.Mission, about.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update about: %w", err)
	}
	return nil
}

// PropertyRepository stores the assistant tuning defaults singleton
type PropertyRepository interface {
	Get() (*models.TuningProperty, error)
	Save(prop *models.TuningProperty) error
}

type propertyRepository struct {
	db *sql.DB
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(db *sql.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// Get returns the first property row, or nil, nil when none exists
func (r *propertyRepository) Get() (*models.TuningProperty, error) {
	prop := &models.TuningProperty{}
	err := r.db.QueryRow(
		"SELECT id, humor, flexibility, goal_focus FROM properties ORDER BY id LIMIT 1",
	).Scan(&prop.ID, &prop.Humor, &prop.Flexibility, &prop.GoalFocus)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get properties: %w", err)
	}

	return prop, nil
}

func (r *propertyRepository) Save(prop *models.TuningProperty) error {
	if prop == nil {
		return fmt.Errorf("property cannot be nil")
	}

	if prop.ID == 0 {
		result, err := r.db.Exec(
			"INSERT INTO properties (humor, flexibility, goal_focus) VALUES (?, ?, ?)",
			prop.Humor, prop.Flexibility, prop.GoalFocus,
		)
		if err != nil {
			return fmt.Errorf("failed to create properties: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get properties ID: %w", err)
		}
		prop.ID = id
		return nil
	}

	_, err := r.db.Exec(
		"UPDATE properties SET humor = ?, flexibility = ?, goal_focus = ? WHERE id = ?",
		prop.Humor, prop.Flexibility, prop.GoalFocus, prop.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update properties: %w", err)
	}
	return nil
}
