package models

// ItemKind discriminates the two item variants a session can contain
type ItemKind string

const (
	ItemCharacter  ItemKind = "character"
	ItemVocabulary ItemKind = "vocabulary"
)

// StudyItem is a tagged union of Character and VocabularyWord. Exactly one
// of the two pointers is set, as named by Kind.
type StudyItem struct {
	Kind       ItemKind        `json:"kind"`
	Character  *Character      `json:"character,omitempty"`
	Vocabulary *VocabularyWord `json:"vocabulary,omitempty"`
}

// CharacterItem wraps a character into a StudyItem
func CharacterItem(c Character) StudyItem {
	return StudyItem{Kind: ItemCharacter, Character: &c}
}

// VocabularyItem wraps a vocabulary word into a StudyItem
func VocabularyItem(v VocabularyWord) StudyItem {
	return StudyItem{Kind: ItemVocabulary, Vocabulary: &v}
}

// Key returns the composite identity of the wrapped item
func (i StudyItem) Key() string {
	switch i.Kind {
	case ItemVocabulary:
		return i.Vocabulary.Key()
	default:
		return i.Character.Key()
	}
}

// Glyph returns the displayed form of the item
func (i StudyItem) Glyph() string {
	switch i.Kind {
	case ItemVocabulary:
		return i.Vocabulary.Kana
	default:
		return i.Character.Char
	}
}

// Romaji returns the raw (unnormalized) romanization of the item
func (i StudyItem) Romaji() string {
	switch i.Kind {
	case ItemVocabulary:
		return i.Vocabulary.Romaji
	default:
		return i.Character.Romaji
	}
}
