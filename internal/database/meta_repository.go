package database

import (
	"database/sql"
	"fmt"
)

// MetaRepository stores small key/value state: streak counters and user
// preferences
type MetaRepository struct{}

// NewMetaRepository creates a new repository instance
func NewMetaRepository() *MetaRepository {
	return &MetaRepository{}
}

// Get returns the stored value, or empty when the key is absent
func (r *MetaRepository) Get(key string) (string, error) {
	var value string
	err := DB.Get(&value, "SELECT value FROM meta WHERE key = $1", key)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get meta value: %v", err)
	}
	return value, nil
}

// Set upserts one key/value entry
func (r *MetaRepository) Set(key, value string) error {
	var query string
	if DB.DriverName() == "postgres" {
		query = `
			INSERT INTO meta (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = $2
		`
	} else {
		query = "INSERT OR REPLACE INTO meta (key, value) VALUES ($1, $2)"
	}
	if _, err := DB.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set meta value: %v", err)
	}
	return nil
}
