// Package match implements the concentration-style card game: flip two
// cards per turn, keep the pair if the halves belong together, flip them
// back after a short reveal otherwise.
package match

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/kanasensei/internal/progress"
	"github.com/example/kanasensei/internal/romaji"
	"github.com/example/kanasensei/pkg/models"
)

// Mode selects what counts as a matching pair
type Mode string

const (
	// ModeKanaRomaji pairs a kana card with its romaji card
	ModeKanaRomaji Mode = "kanaRomaji"
	// ModeHiraganaKatakana pairs a hiragana card with the katakana card
	// of the same syllable
	ModeHiraganaKatakana Mode = "hiraganaKatakana"
)

// flipBackDelay is how long a mismatched pair stays face up
const flipBackDelay = 1200 * time.Millisecond

// FlipOutcome describes what one Flip call did
type FlipOutcome string

const (
	// OutcomeIgnored means the flip had no effect
	OutcomeIgnored FlipOutcome = "ignored"
	// OutcomeFlipped means a first card was turned face up
	OutcomeFlipped FlipOutcome = "flipped"
	// OutcomeMatch means the second card completed a pair
	OutcomeMatch FlipOutcome = "match"
	// OutcomeMismatch means the second card did not pair up and both
	// cards will flip back shortly
	OutcomeMismatch FlipOutcome = "mismatch"
)

// FlipResult is returned from every Flip call
type FlipResult struct {
	Outcome   FlipOutcome `json:"outcome"`
	Turns     int         `json:"turns"`
	Completed bool        `json:"completed"`
}

// Summary is the final scoreboard of a game
type Summary struct {
	Turns        int `json:"turns"`
	MatchedPairs int `json:"matched_pairs"`
	TotalPairs   int `json:"total_pairs"`
}

// Engine holds one running game. All methods are safe for concurrent use;
// the mismatch flip-back runs on a timer and takes the same lock.
type Engine struct {
	ID   string
	Mode Mode

	mu         sync.Mutex
	cards      []models.MatchCard
	flipped    []int
	turns      int
	matched    int
	totalPairs int
	done       bool
	tracker    *progress.Tracker

	// schedule is swapped out in tests to control the flip-back timer.
	// It returns a cancel function.
	schedule func(d time.Duration, f func()) func()
	cancel   func()
	gen      int
}

func newEngine(mode Mode, cards []models.MatchCard, tracker *progress.Tracker) *Engine {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	rnd.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Engine{
		ID:         uuid.NewString(),
		Mode:       mode,
		cards:      cards,
		totalPairs: len(cards) / 2,
		tracker:    tracker,
		schedule: func(d time.Duration, f func()) func() {
			t := time.AfterFunc(d, f)
			return func() { t.Stop() }
		},
	}
}

// NewKanaRomaji lays out two cards per character: the glyph and its
// normalized romaji, sharing the character's key
func NewKanaRomaji(chars []models.Character, tracker *progress.Tracker) *Engine {
	cards := make([]models.MatchCard, 0, len(chars)*2)
	for _, c := range chars {
		cards = append(cards,
			models.MatchCard{
				ID:      uuid.NewString(),
				Kind:    models.CardKana,
				Value:   c.Char,
				PairKey: c.Key(),
			},
			models.MatchCard{
				ID:      uuid.NewString(),
				Kind:    models.CardRomaji,
				Value:   romaji.Normalize(c.Romaji),
				PairKey: c.Key(),
			},
		)
	}
	return newEngine(ModeKanaRomaji, cards, tracker)
}

// NewHiraganaKatakana lays out two kana cards per syllable pair, tagged
// with their source script
func NewHiraganaKatakana(pairs []models.KanaPair, tracker *progress.Tracker) *Engine {
	cards := make([]models.MatchCard, 0, len(pairs)*2)
	for _, p := range pairs {
		cards = append(cards,
			models.MatchCard{
				ID:           uuid.NewString(),
				Kind:         models.CardKana,
				Value:        p.Hiragana.Char,
				PairKey:      p.ID,
				SourceScript: "hiragana",
			},
			models.MatchCard{
				ID:           uuid.NewString(),
				Kind:         models.CardKana,
				Value:        p.Katakana.Char,
				PairKey:      p.ID,
				SourceScript: "katakana",
			},
		)
	}
	return newEngine(ModeHiraganaKatakana, cards, tracker)
}

// Cards returns a snapshot of the board in layout order
func (e *Engine) Cards() []models.MatchCard {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.MatchCard, len(e.cards))
	copy(out, e.cards)
	return out
}

// Completed reports whether every pair has been matched
func (e *Engine) Completed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.done
}

// Flip turns one card face up. Flips are ignored while a mismatched pair
// is still on display, and for cards already face up or matched. The
// second card of a turn either locks the pair in or schedules both cards
// to flip back.
func (e *Engine) Flip(cardID string) FlipResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.done || len(e.flipped) == 2 {
		return e.result(OutcomeIgnored)
	}
	idx := -1
	for i := range e.cards {
		if e.cards[i].ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 || e.cards[idx].Matched || e.cards[idx].Flipped {
		return e.result(OutcomeIgnored)
	}

	e.cards[idx].Flipped = true
	e.flipped = append(e.flipped, idx)
	if len(e.flipped) < 2 {
		return e.result(OutcomeFlipped)
	}

	e.turns++
	a, b := &e.cards[e.flipped[0]], &e.cards[e.flipped[1]]
	if e.isPair(*a, *b) {
		a.Matched = true
		b.Matched = true
		e.flipped = nil
		e.matched++
		if e.matched == e.totalPairs {
			e.done = true
			e.tracker.AppendOutcome(models.SessionOutcome{
				QuizKind: models.QuizMatchingGame,
				Score:    e.matched,
				Total:    e.totalPairs,
			})
		}
		return e.result(OutcomeMatch)
	}

	e.gen++
	gen := e.gen
	e.cancel = e.schedule(flipBackDelay, func() { e.flipBack(gen) })
	return e.result(OutcomeMismatch)
}

// isPair applies the mode's match rule. Sharing a PairKey is necessary
// but not sufficient: the two halves must come from opposite faces
// (kana/romaji) or opposite scripts.
func (e *Engine) isPair(a, b models.MatchCard) bool {
	if a.PairKey != b.PairKey {
		return false
	}
	if e.Mode == ModeHiraganaKatakana {
		return a.SourceScript != b.SourceScript
	}
	return a.Kind != b.Kind
}

// flipBack turns a mismatched pair face down again, unless the game moved
// on (a newer mismatch or Stop bumped the generation)
func (e *Engine) flipBack(gen int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen || e.done {
		return
	}
	for _, idx := range e.flipped {
		e.cards[idx].Flipped = false
	}
	e.flipped = nil
	e.cancel = nil
}

func (e *Engine) result(outcome FlipOutcome) FlipResult {
	return FlipResult{Outcome: outcome, Turns: e.turns, Completed: e.done}
}

// End returns the final scoreboard and cancels any pending flip-back
func (e *Engine) End() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	return Summary{Turns: e.turns, MatchedPairs: e.matched, TotalPairs: e.totalPairs}
}

// Stop cancels any pending flip-back timer. Called when a game is
// abandoned.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	e.gen++
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}
