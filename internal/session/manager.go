package session

import (
	"fmt"
	"sync"

	"github.com/example/kanasensei/internal/match"
)

// Manager is the in-memory registry of live sessions, keyed by session
// id. Abandoning a session is just deleting it; nothing is recorded for
// sessions that never complete.
type Manager struct {
	mu             sync.Mutex
	grids          map[string]*GridSession
	comprehensives map[string]*ComprehensiveQuiz
	vocabularies   map[string]*VocabularyQuiz
	matches        map[string]*match.Engine
}

// NewManager creates an empty registry
func NewManager() *Manager {
	return &Manager{
		grids:          make(map[string]*GridSession),
		comprehensives: make(map[string]*ComprehensiveQuiz),
		vocabularies:   make(map[string]*VocabularyQuiz),
		matches:        make(map[string]*match.Engine),
	}
}

// PutGrid registers a grid session
func (m *Manager) PutGrid(s *GridSession) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.grids[s.ID] = s
}

// Grid looks up a grid session by id
func (m *Manager) Grid(id string) (*GridSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.grids[id]
	if !ok {
		return nil, fmt.Errorf("unknown grid session: %s", id)
	}
	return s, nil
}

// DropGrid abandons a grid session
func (m *Manager) DropGrid(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.grids, id)
}

// PutComprehensive registers an open-ended quiz
func (m *Manager) PutComprehensive(q *ComprehensiveQuiz) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comprehensives[q.ID] = q
}

// Comprehensive looks up an open-ended quiz by id
func (m *Manager) Comprehensive(id string) (*ComprehensiveQuiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.comprehensives[id]
	if !ok {
		return nil, fmt.Errorf("unknown comprehensive quiz: %s", id)
	}
	return q, nil
}

// DropComprehensive abandons an open-ended quiz
func (m *Manager) DropComprehensive(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.comprehensives, id)
}

// PutVocabulary registers a vocabulary quiz
func (m *Manager) PutVocabulary(q *VocabularyQuiz) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vocabularies[q.ID] = q
}

// Vocabulary looks up a vocabulary quiz by id
func (m *Manager) Vocabulary(id string) (*VocabularyQuiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.vocabularies[id]
	if !ok {
		return nil, fmt.Errorf("unknown vocabulary quiz: %s", id)
	}
	return q, nil
}

// DropVocabulary abandons a vocabulary quiz
func (m *Manager) DropVocabulary(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vocabularies, id)
}

// PutMatch registers a matching game
func (m *Manager) PutMatch(e *match.Engine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matches[e.ID] = e
}

// Match looks up a matching game by id
func (m *Manager) Match(id string) (*match.Engine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.matches[id]
	if !ok {
		return nil, fmt.Errorf("unknown matching game: %s", id)
	}
	return e, nil
}

// DropMatch abandons a matching game, stopping any pending flip-back
func (m *Manager) DropMatch(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.matches[id]; ok {
		e.Stop()
		delete(m.matches, id)
	}
}
