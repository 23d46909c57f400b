package models

// Verdict is the tri-state outcome of checking a practice item
type Verdict string

const (
	VerdictUnknown   Verdict = ""
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
)

// PracticeItem binds a study item into one running session. The instance
// id disambiguates repeated glyphs within a single grid; it is never
// persisted, only the outcome feeds the progress record.
type PracticeItem struct {
	InstanceID string    `json:"instance_id"`
	Item       StudyItem `json:"item"`
	UserAnswer string    `json:"user_answer"`
	Verdict    Verdict   `json:"verdict"`
	Resolved   bool      `json:"resolved"`
}
