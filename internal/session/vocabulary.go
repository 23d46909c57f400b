package session

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/kanasensei/internal/progress"
	"github.com/example/kanasensei/pkg/models"
)

// VocabDirection of a vocabulary question
type VocabDirection string

const (
	// DirectionKanaToMeaning shows the kana word and offers translations
	DirectionKanaToMeaning VocabDirection = "kanaToMeaning"
	// DirectionMeaningToKana shows the translation and offers kana words
	DirectionMeaningToKana VocabDirection = "meaningToKana"
)

// VocabQuestion is one multiple-choice vocabulary prompt
type VocabQuestion struct {
	Target    models.VocabularyWord `json:"target"`
	Direction VocabDirection        `json:"direction"`
	Options   []string              `json:"options"`
}

// VocabularyQuiz asks multiple-choice questions over the vocabulary list.
// The normal mode is endless like the comprehensive quiz. Review mode
// draws only from the incorrect set: a correct answer retires the word,
// and the quiz completes once the set is exhausted. Methods are safe for
// concurrent use.
type VocabularyQuiz struct {
	ID      string
	Review  bool
	all     []models.VocabularyWord
	tracker *progress.Tracker

	mu       sync.Mutex
	pool     []models.VocabularyWord
	rnd      *rand.Rand
	current  *VocabQuestion
	answered bool
	state    State
	stats    ComprehensiveStats
}

// NewVocabulary starts a vocabulary quiz. In review mode the draw pool is
// the caller-supplied review set; otherwise it is the full list, which
// also always serves as the distractor source.
func NewVocabulary(all, reviewPool []models.VocabularyWord, review bool, tracker *progress.Tracker) (*VocabularyQuiz, error) {
	pool := all
	if review {
		pool = reviewPool
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("no vocabulary words available for this session")
	}
	drawPool := make([]models.VocabularyWord, len(pool))
	copy(drawPool, pool)
	return &VocabularyQuiz{
		ID:      uuid.NewString(),
		Review:  review,
		all:     all,
		pool:    drawPool,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		tracker: tracker,
		state:   StateInProgress,
	}, nil
}

// State returns the current quiz state. Only review mode ever completes.
func (q *VocabularyQuiz) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Next draws the next question, or an error once a review pass has
// retired every word
func (q *VocabularyQuiz) Next() (VocabQuestion, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.state == StateCompleted {
		return VocabQuestion{}, fmt.Errorf("review session is completed")
	}
	target := q.pool[q.rnd.Intn(len(q.pool))]
	direction := DirectionKanaToMeaning
	if q.rnd.Intn(2) == 0 {
		direction = DirectionMeaningToKana
	}

	question := VocabQuestion{
		Target:    target,
		Direction: direction,
		Options:   q.buildOptions(target, direction),
	}
	q.current = &question
	q.answered = false
	return question, nil
}

// buildOptions assembles answer choices: the target plus distractors of
// the same base script, falling back to the full list. Options showing
// identical text are skipped.
func (q *VocabularyQuiz) buildOptions(target models.VocabularyWord, direction VocabDirection) []string {
	display := func(w models.VocabularyWord) string {
		if direction == DirectionKanaToMeaning {
			return w.Translation
		}
		return w.Kana
	}

	var sameScript []models.VocabularyWord
	for _, w := range q.all {
		if w.ID != target.ID && w.BaseScript == target.BaseScript {
			sameScript = append(sameScript, w)
		}
	}

	options := []string{display(target)}
	seen := map[string]bool{display(target): true}
	appendFrom := func(candidates []models.VocabularyWord) {
		q.rnd.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, w := range candidates {
			if len(options) == optionCount {
				return
			}
			if seen[display(w)] {
				continue
			}
			seen[display(w)] = true
			options = append(options, display(w))
		}
	}
	appendFrom(sameScript)
	if len(options) < optionCount {
		rest := make([]models.VocabularyWord, len(q.all))
		copy(rest, q.all)
		appendFrom(rest)
	}

	q.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// Answer scores the selected option against the current question. In
// review mode a correct answer clears the word from the incorrect set and
// retires it from the pool; a wrong answer leaves the set untouched since
// the word is already in it.
func (q *VocabularyQuiz) Answer(selected string) (models.Verdict, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.current == nil {
		return models.VerdictUnknown, fmt.Errorf("no question is pending")
	}
	if q.answered {
		return models.VerdictUnknown, fmt.Errorf("question was already answered")
	}
	q.answered = true

	target := q.current.Target
	want := target.Translation
	if q.current.Direction == DirectionMeaningToKana {
		want = target.Kana
	}
	correct := selected == want

	q.stats.Answered++
	if correct {
		q.stats.Correct++
		q.stats.Streak++
		if q.Review {
			q.tracker.ClearIncorrect(target.Key())
			q.retire(target.ID)
		}
		return models.VerdictCorrect, nil
	}
	q.stats.Streak = 0
	if !q.Review {
		q.tracker.MarkIncorrect(models.VocabularyItem(target))
	}
	return models.VerdictIncorrect, nil
}

// retire removes a word from the draw pool and completes the review pass
// when the pool empties
func (q *VocabularyQuiz) retire(id string) {
	for i, w := range q.pool {
		if w.ID == id {
			q.pool = append(q.pool[:i], q.pool[i+1:]...)
			break
		}
	}
	if len(q.pool) == 0 {
		q.state = StateCompleted
		q.tracker.AppendOutcome(models.SessionOutcome{
			QuizKind: models.QuizVocabulary,
			Score:    q.stats.Correct,
			Total:    q.stats.Answered,
		})
	}
}

// Stats returns the cumulative scoreboard
func (q *VocabularyQuiz) Stats() ComprehensiveStats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.stats
}
