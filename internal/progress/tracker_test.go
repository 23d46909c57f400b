package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kanasensei/pkg/models"
)

func newTestTracker() (*Tracker, *time.Time) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	t := NewTracker(NewMemoryStore())
	t.now = func() time.Time { return now }
	return t, &now
}

func charItem(glyph, romaji string) models.StudyItem {
	return models.CharacterItem(models.Character{Char: glyph, Romaji: romaji, Type: models.ScriptHiragana})
}

func TestRecordSeenIdempotentPerDay(t *testing.T) {
	tr, _ := newTestTracker()
	a := models.Character{Char: "あ", Romaji: "a", Type: models.ScriptHiragana}

	tr.RecordSeen(a)
	tr.RecordSeen(a)
	assert.Len(t, tr.SeenRecords(), 1)
	assert.Equal(t, 1, tr.StudyStreak())
}

func TestStudyStreakProgression(t *testing.T) {
	tr, now := newTestTracker()
	a := models.Character{Char: "あ", Romaji: "a", Type: models.ScriptHiragana}

	tr.RecordSeen(a)
	require.Equal(t, 1, tr.StudyStreak())

	// Later the same day: unchanged
	*now = now.Add(6 * time.Hour)
	tr.RecordSeen(a)
	assert.Equal(t, 1, tr.StudyStreak())

	// The next day: incremented
	*now = now.Add(24 * time.Hour)
	tr.RecordSeen(a)
	assert.Equal(t, 2, tr.StudyStreak())

	// After a gap: reset
	*now = now.Add(72 * time.Hour)
	tr.RecordSeen(a)
	assert.Equal(t, 1, tr.StudyStreak())
}

func TestStudyStreakFollowsLocalMidnight(t *testing.T) {
	// East of UTC: 23:30 and 00:30 the next local day are one calendar
	// day apart even though only an hour passes
	jst := time.FixedZone("JST", 9*60*60)
	tr, now := newTestTracker()
	*now = time.Date(2026, 3, 10, 23, 30, 0, 0, jst)
	a := models.Character{Char: "あ", Romaji: "a", Type: models.ScriptHiragana}

	tr.RecordSeen(a)
	require.Equal(t, 1, tr.StudyStreak())

	*now = now.Add(1 * time.Hour)
	tr.RecordSeen(a)
	assert.Equal(t, 2, tr.StudyStreak())
}

func TestIncorrectSetConverges(t *testing.T) {
	tr, _ := newTestTracker()
	item := charItem("か", "ka")

	tr.MarkIncorrect(item)
	tr.MarkIncorrect(item)
	assert.Len(t, tr.IncorrectItems(), 1)

	tr.ClearIncorrect(item.Key())
	assert.Empty(t, tr.IncorrectItems())

	// Clearing an absent key is a no-op
	tr.ClearIncorrect(item.Key())
	assert.Empty(t, tr.IncorrectItems())
	assert.False(t, tr.Degraded())
}

func TestIncorrectSplitByKind(t *testing.T) {
	tr, _ := newTestTracker()
	tr.MarkIncorrect(charItem("か", "ka"))
	word := models.VocabularyWord{ID: "みず-water", Kana: "みず", Romaji: "mizu", Translation: "water", BaseScript: "hiragana"}
	tr.MarkIncorrect(models.VocabularyItem(word))

	assert.Len(t, tr.IncorrectCharacters(), 1)
	assert.Len(t, tr.IncorrectVocabulary(), 1)

	tr.ClearAllIncorrect()
	assert.Empty(t, tr.IncorrectItems())
}

func TestOutcomesAppendOnly(t *testing.T) {
	tr, _ := newTestTracker()
	tr.AppendOutcome(models.SessionOutcome{QuizKind: models.QuizKanaGrid, Score: 4, Total: 5})
	tr.AppendOutcome(models.SessionOutcome{QuizKind: models.QuizVocabulary, Score: 3, Total: 3})

	outcomes := tr.Outcomes(10)
	require.Len(t, outcomes, 2)
	assert.Equal(t, models.QuizKanaGrid, outcomes[0].QuizKind)
	assert.False(t, outcomes[0].Timestamp.IsZero())

	assert.Len(t, tr.Outcomes(1), 1)
}

func TestRecentIncorrectOrdering(t *testing.T) {
	tr, _ := newTestTracker()
	tr.MarkIncorrect(charItem("あ", "a"))
	tr.MarkIncorrect(charItem("か", "ka"))
	tr.MarkIncorrect(charItem("さ", "sa"))

	recent := tr.RecentIncorrect(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "さ", recent[0].Glyph())
	assert.Equal(t, "か", recent[1].Glyph())

	// Re-marking moves an item back to the front
	tr.MarkIncorrect(charItem("あ", "a"))
	recent = tr.RecentIncorrect(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "あ", recent[0].Glyph())

	summary := tr.Summary()
	assert.Equal(t, []string{"あ", "さ", "か"}, summary.RecentIncorrect)
}

func TestSummaryProjection(t *testing.T) {
	tr, _ := newTestTracker()
	tr.RecordSeen(models.Character{Char: "あ", Romaji: "a", Type: models.ScriptHiragana})
	tr.MarkIncorrect(charItem("か", "ka"))
	tr.AppendOutcome(models.SessionOutcome{QuizKind: models.QuizKanaGrid, Score: 1, Total: 2})

	summary := tr.Summary()
	assert.Equal(t, 1, summary.SeenCount)
	assert.Equal(t, 1, summary.StudyStreak)
	assert.Equal(t, 1, summary.IncorrectCount)
	assert.Equal(t, []string{"か"}, summary.RecentIncorrect)
	require.Len(t, summary.RecentOutcomes, 1)
}

func TestDisplayNamePreference(t *testing.T) {
	tr, _ := newTestTracker()
	assert.Empty(t, tr.DisplayName())
	tr.SetDisplayName("Yuki")
	assert.Equal(t, "Yuki", tr.DisplayName())
}
