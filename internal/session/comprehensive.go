package session

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/kanasensei/internal/progress"
	"github.com/example/kanasensei/internal/romaji"
	"github.com/example/kanasensei/pkg/models"
)

// Direction of a comprehensive question
type Direction string

const (
	// DirectionCharToRomaji shows the glyph and takes free-text romaji
	DirectionCharToRomaji Direction = "charToRomaji"
	// DirectionRomajiToChar shows the romaji and offers glyph choices
	DirectionRomajiToChar Direction = "romajiToChar"
)

const optionCount = 4

// ComprehensiveQuestion is one prompt of the open-ended quiz. Options is
// populated only for the glyph-choice direction.
type ComprehensiveQuestion struct {
	Target    models.Character `json:"target"`
	Direction Direction        `json:"direction"`
	Options   []string         `json:"options,omitempty"`
}

// ComprehensiveStats is the cumulative scoreboard of an open-ended quiz
type ComprehensiveStats struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
	Streak   int `json:"streak"`
}

// ComprehensiveQuiz serves an endless stream of single questions drawn
// from the given pool, alternating randomly between the two directions.
// It has no completion state; the caller abandons it whenever done.
// Methods are safe for concurrent use.
type ComprehensiveQuiz struct {
	ID      string
	pool    []models.Character
	tracker *progress.Tracker

	mu       sync.Mutex
	rnd      *rand.Rand
	current  *ComprehensiveQuestion
	answered bool
	stats    ComprehensiveStats
}

// NewComprehensive starts an open-ended quiz over the given characters
func NewComprehensive(pool []models.Character, tracker *progress.Tracker) (*ComprehensiveQuiz, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("no characters available for the quiz")
	}
	chars := make([]models.Character, len(pool))
	copy(chars, pool)
	return &ComprehensiveQuiz{
		ID:      uuid.NewString(),
		pool:    chars,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		tracker: tracker,
	}, nil
}

// Next draws the next question. Calling it before the current question is
// answered discards that question without scoring it.
func (q *ComprehensiveQuiz) Next() ComprehensiveQuestion {
	q.mu.Lock()
	defer q.mu.Unlock()
	target := q.pool[q.rnd.Intn(len(q.pool))]
	direction := DirectionCharToRomaji
	if q.rnd.Intn(2) == 0 {
		direction = DirectionRomajiToChar
	}

	question := ComprehensiveQuestion{Target: target, Direction: direction}
	if direction == DirectionRomajiToChar {
		question.Options = q.buildOptions(target)
	}
	q.current = &question
	q.answered = false
	return question
}

// buildOptions assembles glyph choices: the target plus distractors drawn
// from the same script family, falling back to the whole pool when the
// family is too small. Duplicate glyphs are skipped so every option reads
// differently.
func (q *ComprehensiveQuiz) buildOptions(target models.Character) []string {
	family := target.Type.DistractorFamily()
	var sameFamily []models.Character
	for _, c := range q.pool {
		if c.Char != target.Char && c.Type.DistractorFamily() == family {
			sameFamily = append(sameFamily, c)
		}
	}

	options := []string{target.Char}
	seen := map[string]bool{target.Char: true}
	appendFrom := func(candidates []models.Character) {
		q.rnd.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, c := range candidates {
			if len(options) == optionCount {
				return
			}
			if seen[c.Char] {
				continue
			}
			seen[c.Char] = true
			options = append(options, c.Char)
		}
	}
	appendFrom(sameFamily)
	if len(options) < optionCount {
		rest := make([]models.Character, len(q.pool))
		copy(rest, q.pool)
		appendFrom(rest)
	}

	q.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// Answer scores the current question. Free-text answers are compared as
// normalized romaji; glyph choices by identity. The first answer per
// question counts; repeats are rejected.
func (q *ComprehensiveQuiz) Answer(input string) (models.Verdict, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.current == nil {
		return models.VerdictUnknown, fmt.Errorf("no question is pending")
	}
	if q.answered {
		return models.VerdictUnknown, fmt.Errorf("question was already answered")
	}
	q.answered = true

	var correct bool
	switch q.current.Direction {
	case DirectionRomajiToChar:
		correct = romaji.IsCorrectGlyph(input, q.current.Target.Char)
	default:
		correct = romaji.IsCorrect(input, q.current.Target.Romaji)
	}

	q.stats.Answered++
	q.tracker.RecordSeen(q.current.Target)
	if correct {
		q.stats.Correct++
		q.stats.Streak++
		return models.VerdictCorrect, nil
	}
	q.stats.Streak = 0
	q.tracker.MarkIncorrect(models.CharacterItem(q.current.Target))
	return models.VerdictIncorrect, nil
}

// Stats returns the cumulative scoreboard
func (q *ComprehensiveQuiz) Stats() ComprehensiveStats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.stats
}
