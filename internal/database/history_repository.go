package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/kanasensei/pkg/models"
)

// HistoryRepository handles the append-only session history
type HistoryRepository struct{}

// NewHistoryRepository creates a new repository instance
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

// Append inserts one session outcome. Existing rows are never touched.
func (r *HistoryRepository) Append(outcome models.SessionOutcome) error {
	var missed []byte
	if len(outcome.Missed) > 0 {
		var err error
		missed, err = json.Marshal(outcome.Missed)
		if err != nil {
			return fmt.Errorf("failed to marshal missed snapshot: %v", err)
		}
	}

	_, err := DB.Exec(`
		INSERT INTO session_history (quiz_kind, score, total, missed_snapshot, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, string(outcome.QuizKind), outcome.Score, outcome.Total, string(missed), outcome.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to append session outcome: %v", err)
	}
	return nil
}

// GetRecent returns up to limit outcomes in chronological order
func (r *HistoryRepository) GetRecent(limit int) ([]models.SessionOutcome, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := DB.Queryx(`
		SELECT id, quiz_kind, score, total, missed_snapshot, created_at
		FROM session_history ORDER BY id DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get session history: %v", err)
	}
	defer rows.Close()

	var outcomes []models.SessionOutcome
	for rows.Next() {
		var (
			o      models.SessionOutcome
			kind   string
			missed string
			at     time.Time
		)
		if err := rows.Scan(&o.ID, &kind, &o.Score, &o.Total, &missed, &at); err != nil {
			return nil, fmt.Errorf("failed to scan session outcome: %v", err)
		}
		o.QuizKind = models.QuizKind(kind)
		o.Timestamp = at
		if missed != "" {
			if err := json.Unmarshal([]byte(missed), &o.Missed); err != nil {
				o.Missed = nil
			}
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse newest-first into chronological order
	for i, j := 0, len(outcomes)-1; i < j; i, j = i+1, j-1 {
		outcomes[i], outcomes[j] = outcomes[j], outcomes[i]
	}
	return outcomes, nil
}
