package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kanasensei/pkg/models"
)

func testWords() []models.VocabularyWord {
	return []models.VocabularyWord{
		{ID: "みず-water", Kana: "みず", Romaji: "mizu", Translation: "water", BaseScript: "hiragana"},
		{ID: "ねこ-cat", Kana: "ねこ", Romaji: "neko", Translation: "cat", BaseScript: "hiragana"},
		{ID: "やま-mountain", Kana: "やま", Romaji: "yama", Translation: "mountain", BaseScript: "hiragana"},
		{ID: "テレビ-television", Kana: "テレビ", Romaji: "terebi", Translation: "television", BaseScript: "katakana"},
		{ID: "パン-bread", Kana: "パン", Romaji: "pan", Translation: "bread", BaseScript: "katakana"},
	}
}

// correctValue is the option text that answers a question
func correctValue(q VocabQuestion) string {
	if q.Direction == DirectionMeaningToKana {
		return q.Target.Kana
	}
	return q.Target.Translation
}

func TestNewVocabularyRejectsEmptyPool(t *testing.T) {
	_, err := NewVocabulary(nil, nil, false, newTestTracker())
	assert.Error(t, err)

	// Review mode with an empty review set is equally empty
	_, err = NewVocabulary(testWords(), nil, true, newTestTracker())
	assert.Error(t, err)
}

func TestVocabularyQuestionShape(t *testing.T) {
	quiz, err := NewVocabulary(testWords(), nil, false, newTestTracker())
	require.NoError(t, err)

	question, err := quiz.Next()
	require.NoError(t, err)
	require.Len(t, question.Options, 4)
	assert.Contains(t, question.Options, correctValue(question))

	seen := make(map[string]bool)
	for _, opt := range question.Options {
		assert.False(t, seen[opt], "duplicate option %s", opt)
		seen[opt] = true
	}
}

func TestVocabularyWrongAnswerMarksWord(t *testing.T) {
	tracker := newTestTracker()
	quiz, err := NewVocabulary(testWords(), nil, false, tracker)
	require.NoError(t, err)

	question, err := quiz.Next()
	require.NoError(t, err)
	verdict, err := quiz.Answer("not an option")
	require.NoError(t, err)
	assert.Equal(t, models.VerdictIncorrect, verdict)

	_, marked := tracker.IncorrectItems()[question.Target.Key()]
	assert.True(t, marked)
	// The endless mode never completes
	assert.Equal(t, StateInProgress, quiz.State())
}

func TestVocabularyReviewPassRetiresWords(t *testing.T) {
	tracker := newTestTracker()
	words := testWords()
	review := []models.VocabularyWord{words[0], words[1]}
	for _, w := range review {
		tracker.MarkIncorrect(models.VocabularyItem(w))
	}

	quiz, err := NewVocabulary(words, review, true, tracker)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		question, err := quiz.Next()
		require.NoError(t, err)
		verdict, err := quiz.Answer(correctValue(question))
		require.NoError(t, err)
		require.Equal(t, models.VerdictCorrect, verdict)
	}

	assert.Equal(t, StateCompleted, quiz.State())
	assert.Empty(t, tracker.IncorrectItems())

	_, err = quiz.Next()
	assert.Error(t, err)

	outcomes := tracker.Outcomes(10)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.QuizVocabulary, outcomes[0].QuizKind)
	assert.Equal(t, 2, outcomes[0].Score)
	assert.Equal(t, 2, outcomes[0].Total)
}

func TestVocabularyReviewMissDoesNotReMark(t *testing.T) {
	tracker := newTestTracker()
	words := testWords()
	review := []models.VocabularyWord{words[0]}

	// The review pool entry is deliberately absent from the tracker set:
	// a miss during review must not add it.
	quiz, err := NewVocabulary(words, review, true, tracker)
	require.NoError(t, err)

	_, err = quiz.Next()
	require.NoError(t, err)
	verdict, err := quiz.Answer("not an option")
	require.NoError(t, err)
	assert.Equal(t, models.VerdictIncorrect, verdict)
	assert.Empty(t, tracker.IncorrectItems())

	// The word stays in the pool until answered correctly
	assert.Equal(t, StateInProgress, quiz.State())
	question, err := quiz.Next()
	require.NoError(t, err)
	assert.Equal(t, words[0].ID, question.Target.ID)
}
