package progress

import (
	"sort"
	"sync"

	"github.com/example/kanasensei/pkg/models"
)

// Store is the durable backend for the progress record. The database
// package provides the real implementation; MemoryStore is the fallback
// used when durable storage is unavailable.
type Store interface {
	UpsertSeen(rec models.SeenRecord) error
	ListSeen() ([]models.SeenRecord, error)

	PutIncorrect(key string, item models.StudyItem) error
	DeleteIncorrect(key string) error
	DeleteAllIncorrect() error
	ListIncorrect() (map[string]models.StudyItem, error)
	// ListRecentIncorrect returns up to limit entries, most recently
	// marked first.
	ListRecentIncorrect(limit int) ([]models.StudyItem, error)

	AppendOutcome(outcome models.SessionOutcome) error
	ListOutcomes(limit int) ([]models.SessionOutcome, error)

	AppendChatTurn(turn models.ChatTurn) error
	ListChatTurns(limit int) ([]models.ChatTurn, error)

	GetMeta(key string) (string, error)
	SetMeta(key, value string) error
}

// MemoryStore keeps the progress record in process memory only. It backs
// a degraded session after a storage failure and the tests.
type MemoryStore struct {
	mu        sync.Mutex
	seen      map[string]models.SeenRecord
	incorrect map[string]models.StudyItem
	// Marking order, oldest first; re-marking moves a key to the end
	incorrectOrder []string
	outcomes       []models.SessionOutcome
	chat           []models.ChatTurn
	meta           map[string]string
}

// NewMemoryStore creates an empty in-memory record
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seen:      make(map[string]models.SeenRecord),
		incorrect: make(map[string]models.StudyItem),
		meta:      make(map[string]string),
	}
}

func (s *MemoryStore) UpsertSeen(rec models.SeenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[rec.Char+":"+string(rec.Type)] = rec
	return nil
}

func (s *MemoryStore) ListSeen() ([]models.SeenRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SeenRecord, 0, len(s.seen))
	for _, rec := range s.seen {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Char < out[j].Char })
	return out, nil
}

func (s *MemoryStore) PutIncorrect(key string, item models.StudyItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.incorrect[key]; exists {
		s.dropFromOrder(key)
	}
	s.incorrect[key] = item
	s.incorrectOrder = append(s.incorrectOrder, key)
	return nil
}

func (s *MemoryStore) DeleteIncorrect(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.incorrect[key]; exists {
		delete(s.incorrect, key)
		s.dropFromOrder(key)
	}
	return nil
}

func (s *MemoryStore) DeleteAllIncorrect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incorrect = make(map[string]models.StudyItem)
	s.incorrectOrder = nil
	return nil
}

// dropFromOrder removes one key from the marking order; callers hold the
// lock
func (s *MemoryStore) dropFromOrder(key string) {
	for i, k := range s.incorrectOrder {
		if k == key {
			s.incorrectOrder = append(s.incorrectOrder[:i], s.incorrectOrder[i+1:]...)
			return
		}
	}
}

func (s *MemoryStore) ListIncorrect() (map[string]models.StudyItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]models.StudyItem, len(s.incorrect))
	for k, v := range s.incorrect {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) ListRecentIncorrect(limit int) ([]models.StudyItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.StudyItem
	for i := len(s.incorrectOrder) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, s.incorrect[s.incorrectOrder[i]])
	}
	return out, nil
}

func (s *MemoryStore) AppendOutcome(outcome models.SessionOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	outcome.ID = int64(len(s.outcomes) + 1)
	s.outcomes = append(s.outcomes, outcome)
	return nil
}

func (s *MemoryStore) ListOutcomes(limit int) ([]models.SessionOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SessionOutcome, len(s.outcomes))
	copy(out, s.outcomes)
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (s *MemoryStore) AppendChatTurn(turn models.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	turn.ID = int64(len(s.chat) + 1)
	s.chat = append(s.chat, turn)
	return nil
}

func (s *MemoryStore) ListChatTurns(limit int) ([]models.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatTurn, len(s.chat))
	copy(out, s.chat)
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (s *MemoryStore) GetMeta(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta[key], nil
}

func (s *MemoryStore) SetMeta(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta[key] = value
	return nil
}
