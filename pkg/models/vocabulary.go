package models

// VocabularyWord is an example word derived from the character catalog
type VocabularyWord struct {
	ID          string     `json:"id"`
	Kana        string     `json:"kana"`
	Romaji      string     `json:"romaji"`
	Translation string     `json:"translation"`
	BaseScript  string     `json:"base_script"` // hiragana, katakana or mixed
	SourceType  ScriptType `json:"source_type,omitempty"`
}

// VocabularyID derives the stable identity of a word from its kana form
// and translation. Derivation must be deterministic so the same word maps
// to the same incorrect-set key across sessions.
func VocabularyID(word, translation string) string {
	return word + "-" + translation
}

// Key returns the composite identity used in the incorrect-items set
func (v VocabularyWord) Key() string {
	return "vocab:" + v.ID
}
