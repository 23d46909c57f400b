package models

// CardKind tells which face a match card carries
type CardKind string

const (
	CardKana   CardKind = "kana"
	CardRomaji CardKind = "romaji"
)

// MatchCard is one face in the matching game. Exactly two cards share a
// PairKey and together form a match.
type MatchCard struct {
	ID      string   `json:"id"`
	Kind    CardKind `json:"kind"`
	Value   string   `json:"value"`
	PairKey string   `json:"pair_key"`
	// Set for kana cards so the hiragana-katakana mode can require the
	// two halves of a match to come from different scripts.
	SourceScript string `json:"source_script,omitempty"`
	Flipped      bool   `json:"flipped"`
	Matched      bool   `json:"matched"`
}

// KanaPair links the hiragana and katakana spellings of one syllable for
// the hiragana-katakana matching mode
type KanaPair struct {
	ID           string    `json:"id"`
	Hiragana     Character `json:"hiragana"`
	Katakana     Character `json:"katakana"`
	CommonRomaji string    `json:"common_romaji"`
}
