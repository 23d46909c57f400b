package database

import (
	"fmt"

	"github.com/example/kanasensei/pkg/models"
)

// ConversationRepository handles the tutor conversation log
type ConversationRepository struct{}

// NewConversationRepository creates a new repository instance
func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{}
}

// Append inserts one chat turn
func (r *ConversationRepository) Append(turn models.ChatTurn) error {
	_, err := DB.Exec(`
		INSERT INTO conversation_log (role, content, created_at)
		VALUES ($1, $2, $3)
	`, turn.Role, turn.Text, turn.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to append chat turn: %v", err)
	}
	return nil
}

// GetRecent returns up to limit turns in chronological order
func (r *ConversationRepository) GetRecent(limit int) ([]models.ChatTurn, error) {
	if limit <= 0 {
		limit = 50
	}
	var turns []models.ChatTurn
	err := DB.Select(&turns, `
		SELECT id, role, content, created_at FROM conversation_log
		ORDER BY id DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation log: %v", err)
	}
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}
