package store

import (
	"database/sql"
	"fmt"

	"triviahub/internal/models"
)

// CategoryStore manages trivia categories. Categories are created by seed
// data only, so the store surface is read-only.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// All returns every category ordered by type ascending.
func (s *CategoryStore) All() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT id, type FROM categories ORDER BY type`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by id. Returns nil if not found.
func (s *CategoryStore) FindByID(id int) (*models.Category, error) {
	c := &models.Category{}
	err := s.db.QueryRow(`SELECT id, type FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Type)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}
