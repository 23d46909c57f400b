package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kanasensei/pkg/models"
)

func testPool() []models.Character {
	return []models.Character{
		{Char: "あ", Romaji: "a", Type: models.ScriptHiragana},
		{Char: "か", Romaji: "ka", Type: models.ScriptHiragana},
		{Char: "さ", Romaji: "sa", Type: models.ScriptHiragana},
		{Char: "た", Romaji: "ta", Type: models.ScriptHiragana},
		{Char: "ナ", Romaji: "na", Type: models.ScriptKatakana},
		{Char: "ヴァ", Romaji: "va", Type: models.ScriptKatakanaExtended},
	}
}

// drawQuestion advances the quiz until it serves the wanted direction
func drawQuestion(t *testing.T, q *ComprehensiveQuiz, want Direction) ComprehensiveQuestion {
	t.Helper()
	for i := 0; i < 200; i++ {
		question := q.Next()
		if question.Direction == want {
			return question
		}
	}
	t.Fatalf("direction %s never drawn", want)
	return ComprehensiveQuestion{}
}

func TestNewComprehensiveRejectsEmptyPool(t *testing.T) {
	_, err := NewComprehensive(nil, newTestTracker())
	assert.Error(t, err)
}

func TestComprehensiveFreeTextAnswer(t *testing.T) {
	tracker := newTestTracker()
	quiz, err := NewComprehensive(testPool(), tracker)
	require.NoError(t, err)

	question := drawQuestion(t, quiz, DirectionCharToRomaji)
	assert.Empty(t, question.Options)

	verdict, err := quiz.Answer(" " + question.Target.Romaji + " ")
	require.NoError(t, err)
	assert.Equal(t, models.VerdictCorrect, verdict)

	stats := quiz.Stats()
	assert.Equal(t, 1, stats.Answered)
	assert.Equal(t, 1, stats.Correct)
	assert.Equal(t, 1, stats.Streak)
	assert.Empty(t, tracker.IncorrectItems())
}

func TestComprehensiveChoiceQuestion(t *testing.T) {
	quiz, err := NewComprehensive(testPool(), newTestTracker())
	require.NoError(t, err)

	question := drawQuestion(t, quiz, DirectionRomajiToChar)
	require.Len(t, question.Options, 4)
	assert.Contains(t, question.Options, question.Target.Char)

	seen := make(map[string]bool)
	for _, opt := range question.Options {
		assert.False(t, seen[opt], "duplicate option %s", opt)
		seen[opt] = true
	}

	verdict, err := quiz.Answer(question.Target.Char)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictCorrect, verdict)
}

func TestComprehensiveWrongAnswer(t *testing.T) {
	tracker := newTestTracker()
	quiz, err := NewComprehensive(testPool(), tracker)
	require.NoError(t, err)

	question := drawQuestion(t, quiz, DirectionCharToRomaji)
	verdict, err := quiz.Answer("definitely wrong")
	require.NoError(t, err)
	assert.Equal(t, models.VerdictIncorrect, verdict)
	assert.Zero(t, quiz.Stats().Streak)

	_, marked := tracker.IncorrectItems()[question.Target.Key()]
	assert.True(t, marked)
}

func TestComprehensiveDoubleAnswerRejected(t *testing.T) {
	quiz, err := NewComprehensive(testPool(), newTestTracker())
	require.NoError(t, err)

	question := quiz.Next()
	_, err = quiz.Answer(question.Target.Romaji)
	require.NoError(t, err)
	_, err = quiz.Answer(question.Target.Romaji)
	assert.Error(t, err)
}

func TestComprehensiveAnswerWithoutQuestion(t *testing.T) {
	quiz, err := NewComprehensive(testPool(), newTestTracker())
	require.NoError(t, err)
	_, err = quiz.Answer("a")
	assert.Error(t, err)
}

func TestComprehensiveExtendedKatakanaIsolation(t *testing.T) {
	// A pool with a lone extended glyph plus plain katakana: options for a
	// plain katakana target may fall back across families, but the
	// extended glyph never counts as same-family.
	pool := []models.Character{
		{Char: "ア", Romaji: "a", Type: models.ScriptKatakana},
		{Char: "カ", Romaji: "ka", Type: models.ScriptKatakana},
		{Char: "サ", Romaji: "sa", Type: models.ScriptKatakana},
		{Char: "タ", Romaji: "ta", Type: models.ScriptKatakana},
		{Char: "ナ", Romaji: "na", Type: models.ScriptKatakana},
		{Char: "ヴァ", Romaji: "va", Type: models.ScriptKatakanaExtended},
	}
	quiz, err := NewComprehensive(pool, newTestTracker())
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		question := quiz.Next()
		if question.Direction != DirectionRomajiToChar || question.Target.Type != models.ScriptKatakana {
			continue
		}
		// Five plain katakana glyphs are enough; the extended one must
		// not appear among the options.
		assert.NotContains(t, question.Options, "ヴァ")
	}
}
