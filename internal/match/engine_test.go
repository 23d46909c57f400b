package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kanasensei/internal/progress"
	"github.com/example/kanasensei/pkg/models"
)

func newTestTracker() *progress.Tracker {
	return progress.NewTracker(progress.NewMemoryStore())
}

func testChars() []models.Character {
	return []models.Character{
		{Char: "あ", Romaji: "a", Type: models.ScriptHiragana},
		{Char: "か", Romaji: "ka", Type: models.ScriptHiragana},
		{Char: "し", Romaji: "shi/si", Type: models.ScriptHiragana},
	}
}

// stubScheduler swaps the flip-back timer for a hand-cranked callback
type stubScheduler struct {
	pending  func()
	canceled bool
}

func (s *stubScheduler) install(e *Engine) {
	e.schedule = func(d time.Duration, f func()) func() {
		s.pending = f
		return func() { s.canceled = true }
	}
}

func (s *stubScheduler) fire() {
	if s.pending != nil {
		s.pending()
		s.pending = nil
	}
}

// cardsByKey groups board indices by pair key
func cardsByKey(e *Engine) map[string][]models.MatchCard {
	byKey := make(map[string][]models.MatchCard)
	for _, c := range e.Cards() {
		byKey[c.PairKey] = append(byKey[c.PairKey], c)
	}
	return byKey
}

func TestKanaRomajiBoardLayout(t *testing.T) {
	e := NewKanaRomaji(testChars(), newTestTracker())
	cards := e.Cards()
	require.Len(t, cards, 6)

	byKey := cardsByKey(e)
	require.Len(t, byKey, 3)
	for key, pair := range byKey {
		require.Len(t, pair, 2, "pair key %s", key)
		assert.NotEqual(t, pair[0].Kind, pair[1].Kind)
	}

	// Romaji faces carry the normalized form
	for _, c := range cards {
		if c.Kind == models.CardRomaji && c.PairKey == "char:し:hiragana" {
			assert.Equal(t, "shi", c.Value)
		}
		assert.False(t, c.Flipped)
		assert.False(t, c.Matched)
	}
}

func TestMatchLocksPair(t *testing.T) {
	e := NewKanaRomaji(testChars(), newTestTracker())
	pair := cardsByKey(e)["char:あ:hiragana"]

	first := e.Flip(pair[0].ID)
	assert.Equal(t, OutcomeFlipped, first.Outcome)
	assert.Zero(t, first.Turns)

	second := e.Flip(pair[1].ID)
	assert.Equal(t, OutcomeMatch, second.Outcome)
	assert.Equal(t, 1, second.Turns)
	assert.False(t, second.Completed)

	for _, c := range e.Cards() {
		if c.PairKey == "char:あ:hiragana" {
			assert.True(t, c.Matched)
		}
	}
}

func TestMismatchFlipsBackAfterDelay(t *testing.T) {
	e := NewKanaRomaji(testChars(), newTestTracker())
	stub := &stubScheduler{}
	stub.install(e)

	byKey := cardsByKey(e)
	a := byKey["char:あ:hiragana"][0]
	ka := byKey["char:か:hiragana"][0]
	shi := byKey["char:し:hiragana"][0]

	e.Flip(a.ID)
	result := e.Flip(ka.ID)
	assert.Equal(t, OutcomeMismatch, result.Outcome)
	assert.Equal(t, 1, result.Turns)

	// Flips are ignored while the mismatched pair is on display
	blocked := e.Flip(shi.ID)
	assert.Equal(t, OutcomeIgnored, blocked.Outcome)

	stub.fire()
	for _, c := range e.Cards() {
		assert.False(t, c.Flipped)
	}

	// The board accepts flips again
	assert.Equal(t, OutcomeFlipped, e.Flip(shi.ID).Outcome)
}

func TestRepeatAndMatchedFlipsIgnored(t *testing.T) {
	e := NewKanaRomaji(testChars(), newTestTracker())
	pair := cardsByKey(e)["char:あ:hiragana"]

	e.Flip(pair[0].ID)
	assert.Equal(t, OutcomeIgnored, e.Flip(pair[0].ID).Outcome)
	assert.Equal(t, OutcomeIgnored, e.Flip("nope").Outcome)

	e.Flip(pair[1].ID)
	assert.Equal(t, OutcomeIgnored, e.Flip(pair[0].ID).Outcome)
}

func TestCompletionRecordsOutcome(t *testing.T) {
	tracker := newTestTracker()
	e := NewKanaRomaji(testChars()[:2], tracker)

	var last FlipResult
	for _, pair := range cardsByKey(e) {
		e.Flip(pair[0].ID)
		last = e.Flip(pair[1].ID)
		assert.Equal(t, OutcomeMatch, last.Outcome)
	}
	assert.True(t, last.Completed)
	assert.True(t, e.Completed())

	// No further flips once the game is over
	assert.Equal(t, OutcomeIgnored, e.Flip(e.Cards()[0].ID).Outcome)

	outcomes := tracker.Outcomes(10)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.QuizMatchingGame, outcomes[0].QuizKind)
	assert.Equal(t, 2, outcomes[0].Score)
	assert.Equal(t, 2, outcomes[0].Total)

	summary := e.End()
	assert.Equal(t, 2, summary.Turns)
	assert.Equal(t, 2, summary.MatchedPairs)
	assert.Equal(t, 2, summary.TotalPairs)
}

func TestHiraganaKatakanaRequiresOppositeScripts(t *testing.T) {
	pairs := []models.KanaPair{
		{
			ID:           "a",
			Hiragana:     models.Character{Char: "あ", Romaji: "a", Type: models.ScriptHiragana},
			Katakana:     models.Character{Char: "ア", Romaji: "a", Type: models.ScriptKatakana},
			CommonRomaji: "a",
		},
		{
			ID:           "ka",
			Hiragana:     models.Character{Char: "か", Romaji: "ka", Type: models.ScriptHiragana},
			Katakana:     models.Character{Char: "カ", Romaji: "ka", Type: models.ScriptKatakana},
			CommonRomaji: "ka",
		},
	}
	e := NewHiraganaKatakana(pairs, newTestTracker())
	cards := e.Cards()
	require.Len(t, cards, 4)

	byKey := cardsByKey(e)
	for _, pair := range byKey {
		require.Len(t, pair, 2)
		assert.Equal(t, models.CardKana, pair[0].Kind)
		assert.Equal(t, models.CardKana, pair[1].Kind)
		assert.NotEqual(t, pair[0].SourceScript, pair[1].SourceScript)
	}

	e.Flip(byKey["a"][0].ID)
	assert.Equal(t, OutcomeMatch, e.Flip(byKey["a"][1].ID).Outcome)
}

func TestStopCancelsPendingFlipBack(t *testing.T) {
	e := NewKanaRomaji(testChars(), newTestTracker())
	stub := &stubScheduler{}
	stub.install(e)

	byKey := cardsByKey(e)
	e.Flip(byKey["char:あ:hiragana"][0].ID)
	e.Flip(byKey["char:か:hiragana"][0].ID)
	require.NotNil(t, stub.pending)

	e.Stop()
	assert.True(t, stub.canceled)

	// A stale callback that slipped past the cancel is discarded
	flipped := 0
	stub.fire()
	for _, c := range e.Cards() {
		if c.Flipped {
			flipped++
		}
	}
	assert.Equal(t, 2, flipped)
}
