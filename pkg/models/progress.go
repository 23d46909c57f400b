package models

import "time"

// QuizKind names the session flavor recorded in the session history
type QuizKind string

const (
	QuizKanaGrid      QuizKind = "kanaGrid"
	QuizComprehensive QuizKind = "comprehensive"
	QuizVocabulary    QuizKind = "vocabulary"
	QuizMatchingGame  QuizKind = "matchingGame"
)

// SeenRecord marks that a character has been shown to the learner
type SeenRecord struct {
	Char     string     `json:"char" db:"char"`
	Type     ScriptType `json:"type" db:"script_type"`
	LastSeen time.Time  `json:"last_seen" db:"last_seen"`
}

// SessionOutcome is one append-only entry in the session history
type SessionOutcome struct {
	ID        int64       `json:"id" db:"id"`
	QuizKind  QuizKind    `json:"quiz_kind" db:"quiz_kind"`
	Score     int         `json:"score" db:"score"`
	Total     int         `json:"total" db:"total"`
	Missed    []StudyItem `json:"missed,omitempty"`
	Timestamp time.Time   `json:"timestamp" db:"created_at"`
}

// ChatTurn is one persisted message of the tutor conversation
type ChatTurn struct {
	ID        int64     `json:"id" db:"id"`
	Role      string    `json:"role" db:"role"` // "user" or "model"
	Text      string    `json:"text" db:"content"`
	Timestamp time.Time `json:"timestamp" db:"created_at"`
}

// Preferences holds optional user-level settings
type Preferences struct {
	DisplayName string `json:"display_name,omitempty"`
}

// StudySummary is the read-only projection of the progress record handed
// to external collaborators such as the chatbot. It never exposes the
// mutable record itself.
type StudySummary struct {
	SeenCount       int             `json:"seen_count"`
	StudyStreak     int             `json:"study_streak"`
	IncorrectCount  int             `json:"incorrect_count"`
	RecentIncorrect []string        `json:"recent_incorrect,omitempty"`
	RecentOutcomes  []SessionOutcome `json:"recent_outcomes,omitempty"`
}
