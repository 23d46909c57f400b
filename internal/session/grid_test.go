package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kanasensei/internal/progress"
	"github.com/example/kanasensei/pkg/models"
)

func newTestTracker() *progress.Tracker {
	return progress.NewTracker(progress.NewMemoryStore())
}

func kana(glyph, romaji string) models.StudyItem {
	return models.CharacterItem(models.Character{Char: glyph, Romaji: romaji, Type: models.ScriptHiragana})
}

func TestNewGridRejectsEmptyList(t *testing.T) {
	_, err := NewGrid(nil, false, newTestTracker())
	assert.Error(t, err)
}

func TestGridFullRun(t *testing.T) {
	tracker := newTestTracker()
	grid, err := NewGrid([]models.StudyItem{kana("あ", "a"), kana("か", "ka")}, false, tracker)
	require.NoError(t, err)
	require.Equal(t, StateInProgress, grid.State())

	items := grid.Items()
	require.Len(t, items, 2)

	first, err := grid.Check(items[0].InstanceID, items[0].Item.Romaji())
	require.NoError(t, err)
	assert.Equal(t, models.VerdictCorrect, first.Verdict)
	assert.True(t, first.Resolved)
	assert.Equal(t, StateInProgress, grid.State())

	second, err := grid.Check(items[1].InstanceID, "wrong")
	require.NoError(t, err)
	assert.Equal(t, models.VerdictIncorrect, second.Verdict)
	assert.Equal(t, StateCompleted, grid.State())

	outcomes := tracker.Outcomes(10)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.QuizKanaGrid, outcomes[0].QuizKind)
	assert.Equal(t, 1, outcomes[0].Score)
	assert.Equal(t, 2, outcomes[0].Total)
	require.Len(t, outcomes[0].Missed, 1)
	assert.Equal(t, items[1].Item.Key(), outcomes[0].Missed[0].Key())

	// The missed glyph is now in the review set, the seen set holds both
	assert.Len(t, tracker.IncorrectItems(), 1)
	assert.Len(t, tracker.SeenRecords(), 2)
}

func TestGridResolvedItemIsImmutable(t *testing.T) {
	tracker := newTestTracker()
	grid, err := NewGrid([]models.StudyItem{kana("あ", "a"), kana("か", "ka")}, false, tracker)
	require.NoError(t, err)
	items := grid.Items()

	first, err := grid.Check(items[0].InstanceID, "wrong")
	require.NoError(t, err)
	require.Equal(t, models.VerdictIncorrect, first.Verdict)

	again, err := grid.Check(items[0].InstanceID, items[0].Item.Romaji())
	require.NoError(t, err)
	assert.Equal(t, models.VerdictIncorrect, again.Verdict)
	assert.Equal(t, "wrong", again.UserAnswer)
}

func TestGridCheckUnknownInstance(t *testing.T) {
	grid, err := NewGrid([]models.StudyItem{kana("あ", "a")}, false, newTestTracker())
	require.NoError(t, err)
	_, err = grid.Check("nope", "a")
	assert.Error(t, err)
}

func TestGridFinishForceResolves(t *testing.T) {
	tracker := newTestTracker()
	grid, err := NewGrid([]models.StudyItem{kana("あ", "a"), kana("か", "ka"), kana("さ", "sa")}, false, tracker)
	require.NoError(t, err)
	items := grid.Items()

	_, err = grid.Check(items[0].InstanceID, items[0].Item.Romaji())
	require.NoError(t, err)

	outcome, err := grid.Finish()
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, grid.State())
	assert.Equal(t, 1, outcome.Score)
	assert.Equal(t, 3, outcome.Total)
	assert.Len(t, outcome.Missed, 2)

	// Finishing again returns the recorded outcome without a second
	// history entry
	again, err := grid.Finish()
	require.NoError(t, err)
	assert.Equal(t, outcome.Score, again.Score)
	assert.Len(t, tracker.Outcomes(10), 1)
}

func TestGridReviewClearsCorrectKeys(t *testing.T) {
	tracker := newTestTracker()
	missedA := kana("あ", "a")
	missedKa := kana("か", "ka")
	tracker.MarkIncorrect(missedA)
	tracker.MarkIncorrect(missedKa)

	grid, err := NewGrid([]models.StudyItem{missedA, missedKa}, true, tracker)
	require.NoError(t, err)
	items := grid.Items()

	for _, item := range items {
		answer := "wrong"
		if item.Item.Key() == missedA.Key() {
			answer = item.Item.Romaji()
		}
		_, err := grid.Check(item.InstanceID, answer)
		require.NoError(t, err)
	}
	require.Equal(t, StateCompleted, grid.State())

	// The re-learned key left the review set; the still-missed one stays
	remaining := tracker.IncorrectItems()
	assert.Len(t, remaining, 1)
	_, stillThere := remaining[missedKa.Key()]
	assert.True(t, stillThere)
}

func TestGridConcurrentChecks(t *testing.T) {
	// Checks arrive from separate request goroutines; each item must
	// resolve exactly once and completion must fire exactly once (run
	// with -race).
	tracker := newTestTracker()
	items := []models.StudyItem{
		kana("あ", "a"), kana("か", "ka"), kana("さ", "sa"),
		kana("た", "ta"), kana("な", "na"), kana("は", "ha"),
	}
	grid, err := NewGrid(items, false, tracker)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, item := range grid.Items() {
		wg.Add(1)
		go func(instanceID, answer string) {
			defer wg.Done()
			grid.Check(instanceID, answer)
		}(item.InstanceID, item.Item.Romaji())
	}
	wg.Wait()

	assert.Equal(t, StateCompleted, grid.State())
	for _, item := range grid.Items() {
		assert.True(t, item.Resolved)
		assert.Equal(t, models.VerdictCorrect, item.Verdict)
	}
	outcomes := tracker.Outcomes(10)
	require.Len(t, outcomes, 1)
	assert.Equal(t, len(items), outcomes[0].Score)
}

func TestGridCheckAfterCompletion(t *testing.T) {
	grid, err := NewGrid([]models.StudyItem{kana("あ", "a")}, false, newTestTracker())
	require.NoError(t, err)
	items := grid.Items()
	_, err = grid.Check(items[0].InstanceID, "a")
	require.NoError(t, err)

	_, err = grid.Check(items[0].InstanceID, "a")
	assert.Error(t, err)
}
