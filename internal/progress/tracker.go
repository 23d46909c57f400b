// Package progress owns the durable learner record: seen items, the
// incorrect-items review set, the session history and the tutor
// conversation log. Every mutation is written through to the store
// immediately; there is no separate save step.
package progress

import (
	"log"
	"strconv"
	"time"

	"github.com/example/kanasensei/pkg/models"
)

const (
	metaStudyStreak = "study_streak"
	metaLastStudied = "last_studied"
	metaDisplayName = "display_name"
)

// Tracker exposes the mutation contract over a Store. Storage failures
// are absorbed here: they are logged and flip the degraded flag, but they
// never propagate into the quiz engine.
type Tracker struct {
	store    Store
	degraded bool
	now      func() time.Time
}

// NewTracker wraps the given store
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// Degraded reports whether any mutation failed to persist. Surfaced for
// diagnostics; the in-memory record stays usable either way.
func (t *Tracker) Degraded() bool {
	return t.degraded
}

func (t *Tracker) warn(op string, err error) {
	if err == nil {
		return
	}
	t.degraded = true
	log.Printf("Warning: progress store %s failed: %v", op, err)
}

// RecordSeen upserts a character into the seen set with the current
// timestamp and advances the study streak when a new calendar day begins.
// Idempotent within a day.
func (t *Tracker) RecordSeen(c models.Character) {
	now := t.now()
	t.warn("upsert seen", t.store.UpsertSeen(models.SeenRecord{
		Char:     c.Char,
		Type:     c.Type,
		LastSeen: now,
	}))
	t.touchStreak(now)
}

// touchStreak extends the consecutive-days counter: unchanged within the
// same day, incremented the day after the last study, reset to 1 after a
// longer gap.
func (t *Tracker) touchStreak(now time.Time) {
	lastRaw, err := t.store.GetMeta(metaLastStudied)
	if err != nil {
		t.warn("read streak", err)
		return
	}
	streak := t.StudyStreak()
	today := dayOf(now)
	switch {
	case lastRaw == "":
		streak = 1
	default:
		lastUnix, _ := strconv.ParseInt(lastRaw, 10, 64)
		lastDay := dayOf(time.Unix(lastUnix, 0).In(now.Location()))
		switch {
		case lastDay.Equal(today):
			// already counted today
		case lastDay.AddDate(0, 0, 1).Equal(today):
			streak++
		default:
			streak = 1
		}
	}
	t.warn("write streak", t.store.SetMeta(metaStudyStreak, strconv.Itoa(streak)))
	t.warn("write last studied", t.store.SetMeta(metaLastStudied, strconv.FormatInt(now.Unix(), 10)))
}

// dayOf is midnight of the calendar date in the time's own zone. Streak
// boundaries follow the learner's wall clock, not UTC.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StudyStreak returns the persisted consecutive-days counter
func (t *Tracker) StudyStreak() int {
	raw, err := t.store.GetMeta(metaStudyStreak)
	if err != nil {
		t.warn("read streak", err)
		return 0
	}
	n, _ := strconv.Atoi(raw)
	return n
}

// SeenRecords returns the full seen set
func (t *Tracker) SeenRecords() []models.SeenRecord {
	recs, err := t.store.ListSeen()
	if err != nil {
		t.warn("list seen", err)
		return nil
	}
	return recs
}

// MarkIncorrect upserts a snapshot of the item into the incorrect set
// under its composite key. Re-marking an already present key does not
// duplicate anything.
func (t *Tracker) MarkIncorrect(item models.StudyItem) {
	t.warn("mark incorrect", t.store.PutIncorrect(item.Key(), item))
}

// ClearIncorrect removes one entry; called when a reviewed item is
// answered correctly during a review pass
func (t *Tracker) ClearIncorrect(key string) {
	t.warn("clear incorrect", t.store.DeleteIncorrect(key))
}

// ClearAllIncorrect empties the review set. Irreversible; confirmation is
// the caller's concern.
func (t *Tracker) ClearAllIncorrect() {
	t.warn("clear all incorrect", t.store.DeleteAllIncorrect())
}

// IncorrectItems returns the current review set keyed by composite id
func (t *Tracker) IncorrectItems() map[string]models.StudyItem {
	items, err := t.store.ListIncorrect()
	if err != nil {
		t.warn("list incorrect", err)
		return map[string]models.StudyItem{}
	}
	return items
}

// IncorrectCharacters returns only the character entries of the review set
func (t *Tracker) IncorrectCharacters() []models.Character {
	var out []models.Character
	for _, item := range t.IncorrectItems() {
		if item.Kind == models.ItemCharacter {
			out = append(out, *item.Character)
		}
	}
	return out
}

// IncorrectVocabulary returns only the vocabulary entries of the review set
func (t *Tracker) IncorrectVocabulary() []models.VocabularyWord {
	var out []models.VocabularyWord
	for _, item := range t.IncorrectItems() {
		if item.Kind == models.ItemVocabulary {
			out = append(out, *item.Vocabulary)
		}
	}
	return out
}

// AppendOutcome appends one entry to the session history. Prior entries
// are never mutated.
func (t *Tracker) AppendOutcome(outcome models.SessionOutcome) {
	if outcome.Timestamp.IsZero() {
		outcome.Timestamp = t.now()
	}
	t.warn("append outcome", t.store.AppendOutcome(outcome))
}

// Outcomes returns up to limit most recent session history entries
func (t *Tracker) Outcomes(limit int) []models.SessionOutcome {
	out, err := t.store.ListOutcomes(limit)
	if err != nil {
		t.warn("list outcomes", err)
		return nil
	}
	return out
}

// AppendChatTurn persists one tutor conversation message
func (t *Tracker) AppendChatTurn(turn models.ChatTurn) {
	if turn.Timestamp.IsZero() {
		turn.Timestamp = t.now()
	}
	t.warn("append chat turn", t.store.AppendChatTurn(turn))
}

// ChatHistory returns up to limit most recent conversation turns
func (t *Tracker) ChatHistory(limit int) []models.ChatTurn {
	turns, err := t.store.ListChatTurns(limit)
	if err != nil {
		t.warn("list chat turns", err)
		return nil
	}
	return turns
}

// DisplayName returns the stored user preference, empty when unset
func (t *Tracker) DisplayName() string {
	name, err := t.store.GetMeta(metaDisplayName)
	if err != nil {
		t.warn("read display name", err)
		return ""
	}
	return name
}

// SetDisplayName stores the user preference
func (t *Tracker) SetDisplayName(name string) {
	t.warn("write display name", t.store.SetMeta(metaDisplayName, name))
}

// RecentIncorrect returns up to limit review-set items, most recently
// marked first
func (t *Tracker) RecentIncorrect(limit int) []models.StudyItem {
	items, err := t.store.ListRecentIncorrect(limit)
	if err != nil {
		t.warn("list recent incorrect", err)
		return nil
	}
	return items
}

// Summary produces the read-only projection consumed by the chatbot and
// the stats endpoint
func (t *Tracker) Summary() models.StudySummary {
	recentItems := t.RecentIncorrect(5)
	recent := make([]string, 0, len(recentItems))
	for _, item := range recentItems {
		recent = append(recent, item.Glyph())
	}
	return models.StudySummary{
		SeenCount:       len(t.SeenRecords()),
		StudyStreak:     t.StudyStreak(),
		IncorrectCount:  len(t.IncorrectItems()),
		RecentIncorrect: recent,
		RecentOutcomes:  t.Outcomes(3),
	}
}
