// Package session drives practice sessions: the grid drill over a fixed
// item list, the open-ended comprehensive quiz and the vocabulary quiz.
// All state transitions happen on explicit calls from the transport
// layer; nothing here runs on its own.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/example/kanasensei/internal/progress"
	"github.com/example/kanasensei/internal/romaji"
	"github.com/example/kanasensei/pkg/models"
)

// State of a fixed-list session
type State string

const (
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

// GridSession walks a pre-built list of practice items through
// prompt/answer/check until every item is resolved. In review mode the
// list comes from the incorrect set and correctly re-answered keys are
// cleared on completion. Methods are safe for concurrent use; the
// transport layer shares sessions across request goroutines.
type GridSession struct {
	ID     string
	Review bool

	mu      sync.Mutex
	items   []models.PracticeItem
	state   State
	tracker *progress.Tracker
	outcome *models.SessionOutcome
}

// NewGrid starts a grid drill over the given items. An empty list is an
// error so the caller surfaces the empty-scope state instead of entering
// a session with nothing to do.
func NewGrid(items []models.StudyItem, review bool, tracker *progress.Tracker) (*GridSession, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no items selected for this session")
	}
	practice := make([]models.PracticeItem, len(items))
	for i, item := range items {
		practice[i] = models.PracticeItem{
			InstanceID: uuid.NewString(),
			Item:       item,
		}
	}
	return &GridSession{
		ID:      uuid.NewString(),
		Review:  review,
		items:   practice,
		state:   StateInProgress,
		tracker: tracker,
	}, nil
}

// State returns the current session state
func (s *GridSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Items returns the practice items in session order
func (s *GridSession) Items() []models.PracticeItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PracticeItem, len(s.items))
	copy(out, s.items)
	return out
}

// Check resolves one item against the given answer. The transport layer
// calls this on explicit confirm, on blur with non-empty input, or when
// focus is navigated away. A resolved item is immutable: re-checking
// returns the recorded result unchanged.
func (s *GridSession) Check(instanceID, answer string) (models.PracticeItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCompleted {
		return models.PracticeItem{}, fmt.Errorf("session is already completed")
	}
	idx := -1
	for i := range s.items {
		if s.items[i].InstanceID == instanceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.PracticeItem{}, fmt.Errorf("unknown practice item: %s", instanceID)
	}
	if s.items[idx].Resolved {
		return s.items[idx], nil
	}

	s.items[idx].UserAnswer = answer
	s.resolve(idx)
	s.completeIfDone()
	return s.items[idx], nil
}

// resolve computes the verdict for one unresolved item and feeds the
// progress tracker
func (s *GridSession) resolve(idx int) {
	item := &s.items[idx]
	if romaji.IsCorrect(item.UserAnswer, item.Item.Romaji()) {
		item.Verdict = models.VerdictCorrect
	} else {
		item.Verdict = models.VerdictIncorrect
		// Re-marking during a review pass is idempotent: the key is
		// already in the set and stays there until re-answered correctly.
		s.tracker.MarkIncorrect(item.Item)
	}
	item.Resolved = true
	if item.Item.Kind == models.ItemCharacter {
		s.tracker.RecordSeen(*item.Item.Character)
	}
}

// Finish force-resolves every remaining item with its current (possibly
// empty) input and completes the session
func (s *GridSession) Finish() (models.SessionOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCompleted {
		return *s.outcome, nil
	}
	for i := range s.items {
		if !s.items[i].Resolved {
			s.resolve(i)
		}
	}
	s.completeIfDone()
	return *s.outcome, nil
}

// completeIfDone transitions to Completed once every item is resolved:
// the outcome is appended to the session history and, in review mode,
// correctly re-answered keys leave the incorrect set.
func (s *GridSession) completeIfDone() {
	for i := range s.items {
		if !s.items[i].Resolved {
			return
		}
	}

	score := 0
	var missed []models.StudyItem
	for i := range s.items {
		if s.items[i].Verdict == models.VerdictCorrect {
			score++
		} else {
			missed = append(missed, s.items[i].Item)
		}
	}
	outcome := models.SessionOutcome{
		QuizKind: models.QuizKanaGrid,
		Score:    score,
		Total:    len(s.items),
		Missed:   missed,
	}
	s.tracker.AppendOutcome(outcome)

	if s.Review {
		for i := range s.items {
			if s.items[i].Verdict == models.VerdictCorrect {
				s.tracker.ClearIncorrect(s.items[i].Item.Key())
			}
		}
	}

	s.outcome = &outcome
	s.state = StateCompleted
}
