package models

// ScriptType identifies the script subtype a character belongs to
type ScriptType string

const (
	ScriptHiragana           ScriptType = "hiragana"
	ScriptKatakana           ScriptType = "katakana"
	ScriptKanji              ScriptType = "kanji"
	ScriptHiraganaDakuten    ScriptType = "hiragana-dakuten"
	ScriptHiraganaHandakuten ScriptType = "hiragana-handakuten"
	ScriptHiraganaYoon       ScriptType = "hiragana-yoon"
	ScriptKatakanaDakuten    ScriptType = "katakana-dakuten"
	ScriptKatakanaHandakuten ScriptType = "katakana-handakuten"
	ScriptKatakanaYoon       ScriptType = "katakana-yoon"
	ScriptKatakanaExtended   ScriptType = "katakana-extended"
)

// BaseScript collapses a subtype to its top-level script family
func (t ScriptType) BaseScript() string {
	switch {
	case t == ScriptKanji:
		return "kanji"
	case t == ScriptHiragana, t == ScriptHiraganaDakuten, t == ScriptHiraganaHandakuten, t == ScriptHiraganaYoon:
		return "hiragana"
	default:
		return "katakana"
	}
}

// DistractorFamily groups subtypes for multiple-choice option pools.
// Extended katakana is kept apart so normal katakana questions do not
// surface ヴァ-style options.
func (t ScriptType) DistractorFamily() string {
	if t == ScriptKatakanaExtended {
		return "katakana-extended"
	}
	return t.BaseScript()
}

// Example is a sample word illustrating the use of a character
type Example struct {
	Word        string `json:"word"`
	Romaji      string `json:"romaji"`
	Translation string `json:"translation"`
}

// Character represents a single learnable kana or kanji glyph
type Character struct {
	Char   string     `json:"char"`
	Romaji string     `json:"romaji"`
	Type   ScriptType `json:"type"`
	// Optional fields
	Example *Example `json:"example,omitempty"`
	Note    string   `json:"note,omitempty"`
	// Kanji only
	Onyomi  string `json:"onyomi,omitempty"`
	Kunyomi string `json:"kunyomi,omitempty"`
	Meaning string `json:"meaning,omitempty"`
}

// Key returns the composite identity used for deduplication and for
// membership in the persisted incorrect-items set. The same glyph in two
// subtypes counts as two distinct items.
func (c Character) Key() string {
	return "char:" + c.Char + ":" + string(c.Type)
}
