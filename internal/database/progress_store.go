package database

import (
	"github.com/example/kanasensei/pkg/models"
)

// ProgressStore adapts the repositories to the progress.Store contract so
// the tracker can be handed one durable backend object.
type ProgressStore struct {
	seen          *SeenRepository
	incorrect     *IncorrectRepository
	history       *HistoryRepository
	conversations *ConversationRepository
	meta          *MetaRepository
}

// NewProgressStore creates the store over the global connection
func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		seen:          NewSeenRepository(),
		incorrect:     NewIncorrectRepository(),
		history:       NewHistoryRepository(),
		conversations: NewConversationRepository(),
		meta:          NewMetaRepository(),
	}
}

func (s *ProgressStore) UpsertSeen(rec models.SeenRecord) error {
	return s.seen.Upsert(rec)
}

func (s *ProgressStore) ListSeen() ([]models.SeenRecord, error) {
	return s.seen.GetAll()
}

func (s *ProgressStore) PutIncorrect(key string, item models.StudyItem) error {
	return s.incorrect.Put(key, item)
}

func (s *ProgressStore) DeleteIncorrect(key string) error {
	return s.incorrect.Delete(key)
}

func (s *ProgressStore) DeleteAllIncorrect() error {
	return s.incorrect.DeleteAll()
}

func (s *ProgressStore) ListRecentIncorrect(limit int) ([]models.StudyItem, error) {
	return s.incorrect.GetRecent(limit)
}

func (s *ProgressStore) ListIncorrect() (map[string]models.StudyItem, error) {
	return s.incorrect.GetAll()
}

func (s *ProgressStore) AppendOutcome(outcome models.SessionOutcome) error {
	return s.history.Append(outcome)
}

func (s *ProgressStore) ListOutcomes(limit int) ([]models.SessionOutcome, error) {
	return s.history.GetRecent(limit)
}

func (s *ProgressStore) AppendChatTurn(turn models.ChatTurn) error {
	return s.conversations.Append(turn)
}

func (s *ProgressStore) ListChatTurns(limit int) ([]models.ChatTurn, error) {
	return s.conversations.GetRecent(limit)
}

func (s *ProgressStore) GetMeta(key string) (string, error) {
	return s.meta.Get(key)
}

func (s *ProgressStore) SetMeta(key, value string) error {
	return s.meta.Set(key, value)
}
