package database

import (
	"fmt"

	"github.com/example/kanasensei/pkg/models"
)

// SeenRepository handles database operations for the seen-items set
type SeenRepository struct{}

// NewSeenRepository creates a new repository instance
func NewSeenRepository() *SeenRepository {
	return &SeenRepository{}
}

// Upsert inserts or refreshes one seen record
func (r *SeenRepository) Upsert(rec models.SeenRecord) error {
	var query string
	if DB.DriverName() == "postgres" {
		query = `
			INSERT INTO seen_items (char, script_type, last_seen)
			VALUES ($1, $2, $3)
			ON CONFLICT (char, script_type) DO UPDATE SET last_seen = $3
		`
	} else {
		query = `
			INSERT OR REPLACE INTO seen_items (char, script_type, last_seen)
			VALUES ($1, $2, $3)
		`
	}
	_, err := DB.Exec(query, rec.Char, string(rec.Type), rec.LastSeen)
	if err != nil {
		return fmt.Errorf("failed to upsert seen item: %v", err)
	}
	return nil
}

// GetAll returns every seen record
func (r *SeenRepository) GetAll() ([]models.SeenRecord, error) {
	var recs []models.SeenRecord
	err := DB.Select(&recs, "SELECT char, script_type, last_seen FROM seen_items ORDER BY char")
	if err != nil {
		return nil, fmt.Errorf("failed to get seen items: %v", err)
	}
	return recs, nil
}
