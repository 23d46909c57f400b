package database

import (
	"encoding/json"
	"fmt"

	"github.com/example/kanasensei/pkg/models"
)

// IncorrectRepository handles database operations for the review set.
// Item snapshots are stored as JSON so the set survives catalog updates.
type IncorrectRepository struct{}

// NewIncorrectRepository creates a new repository instance
func NewIncorrectRepository() *IncorrectRepository {
	return &IncorrectRepository{}
}

// Put upserts one snapshot under its composite key
func (r *IncorrectRepository) Put(key string, item models.StudyItem) error {
	snapshot, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item snapshot: %v", err)
	}

	var query string
	if DB.DriverName() == "postgres" {
		query = `
			INSERT INTO incorrect_items (item_key, snapshot)
			VALUES ($1, $2)
			ON CONFLICT (item_key) DO UPDATE SET snapshot = $2, marked_at = NOW()
		`
	} else {
		query = `
			INSERT OR REPLACE INTO incorrect_items (item_key, snapshot, marked_at)
			VALUES ($1, $2, CURRENT_TIMESTAMP)
		`
	}
	if _, err := DB.Exec(query, key, string(snapshot)); err != nil {
		return fmt.Errorf("failed to put incorrect item: %v", err)
	}
	return nil
}

// Delete removes one entry by composite key
func (r *IncorrectRepository) Delete(key string) error {
	_, err := DB.Exec("DELETE FROM incorrect_items WHERE item_key = $1", key)
	if err != nil {
		return fmt.Errorf("failed to delete incorrect item: %v", err)
	}
	return nil
}

// DeleteAll empties the review set
func (r *IncorrectRepository) DeleteAll() error {
	_, err := DB.Exec("DELETE FROM incorrect_items")
	if err != nil {
		return fmt.Errorf("failed to clear incorrect items: %v", err)
	}
	return nil
}

// GetRecent returns up to limit snapshots, most recently marked first.
// Rows whose snapshot no longer unmarshals are skipped.
func (r *IncorrectRepository) GetRecent(limit int) ([]models.StudyItem, error) {
	rows, err := DB.Queryx("SELECT snapshot FROM incorrect_items ORDER BY marked_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent incorrect items: %v", err)
	}
	defer rows.Close()

	var items []models.StudyItem
	for rows.Next() {
		var snapshot string
		if err := rows.Scan(&snapshot); err != nil {
			return nil, fmt.Errorf("failed to scan incorrect item: %v", err)
		}
		var item models.StudyItem
		if err := json.Unmarshal([]byte(snapshot), &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetAll returns the review set keyed by composite id. Rows whose
// snapshot no longer unmarshals are skipped rather than failing the read.
func (r *IncorrectRepository) GetAll() (map[string]models.StudyItem, error) {
	rows, err := DB.Queryx("SELECT item_key, snapshot FROM incorrect_items")
	if err != nil {
		return nil, fmt.Errorf("failed to get incorrect items: %v", err)
	}
	defer rows.Close()

	items := make(map[string]models.StudyItem)
	for rows.Next() {
		var key, snapshot string
		if err := rows.Scan(&key, &snapshot); err != nil {
			return nil, fmt.Errorf("failed to scan incorrect item: %v", err)
		}
		var item models.StudyItem
		if err := json.Unmarshal([]byte(snapshot), &item); err != nil {
			continue
		}
		items[key] = item
	}
	return items, rows.Err()
}
