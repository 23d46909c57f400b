// Package catalog holds the static character dataset and the vocabulary
// derived from it. The catalog is loaded once at startup and never
// mutated afterwards.
package catalog

import (
	"fmt"
	"strings"

	"github.com/example/kanasensei/pkg/models"
)

// Glyphs carrying the handakuten mark; these get their own subtype within
// the dakuten/handakuten dataset groups.
var handakutenGlyphs = map[string]bool{
	"ぱ": true, "ぴ": true, "ぷ": true, "ぺ": true, "ぽ": true,
	"パ": true, "ピ": true, "プ": true, "ペ": true, "ポ": true,
}

// Catalog is the immutable set of characters plus derived vocabulary
type Catalog struct {
	characters []models.Character
	vocabulary []models.VocabularyWord
}

// Load builds the catalog from the embedded dataset. It fails when the
// dataset resolves to zero characters; callers treat that as fatal since
// the application has nothing to teach.
func Load() (*Catalog, error) {
	var chars []models.Character
	for _, group := range characterLibrary {
		for _, raw := range group.chars {
			chars = append(chars, models.Character{
				Char:    raw.kana,
				Romaji:  raw.romaji,
				Type:    subtypeFor(group.name, raw.kana),
				Example: raw.example,
				Note:    raw.note,
			})
		}
	}
	if len(chars) == 0 {
		return nil, fmt.Errorf("character dataset is empty")
	}
	return &Catalog{
		characters: chars,
		vocabulary: deriveVocabulary(chars),
	}, nil
}

// subtypeFor maps a dataset group to the script subtype of one glyph.
// The dakuten/handakuten groups are mixed and split per glyph.
func subtypeFor(group, kana string) models.ScriptType {
	switch group {
	case "hiragana":
		return models.ScriptHiragana
	case "katakana":
		return models.ScriptKatakana
	case "kanji":
		return models.ScriptKanji
	case "hiragana_dakuten_handakuten":
		if handakutenGlyphs[kana] {
			return models.ScriptHiraganaHandakuten
		}
		return models.ScriptHiraganaDakuten
	case "katakana_dakuten_handakuten":
		if handakutenGlyphs[kana] {
			return models.ScriptKatakanaHandakuten
		}
		return models.ScriptKatakanaDakuten
	case "hiragana_yoon":
		return models.ScriptHiraganaYoon
	case "katakana_yoon":
		return models.ScriptKatakanaYoon
	case "katakana_extended":
		return models.ScriptKatakanaExtended
	default:
		return models.ScriptHiragana
	}
}

// deriveVocabulary turns character example words into vocabulary entries,
// de-duplicated by (word, translation)
func deriveVocabulary(chars []models.Character) []models.VocabularyWord {
	var words []models.VocabularyWord
	seen := make(map[string]bool)
	for _, c := range chars {
		ex := c.Example
		if ex == nil || ex.Word == "" || ex.Translation == "" {
			continue
		}
		id := models.VocabularyID(ex.Word, ex.Translation)
		if seen[id] {
			continue
		}
		seen[id] = true
		words = append(words, models.VocabularyWord{
			ID:          id,
			Kana:        ex.Word,
			Romaji:      ex.Romaji,
			Translation: ex.Translation,
			BaseScript:  baseScriptForWord(c.Type),
			SourceType:  c.Type,
		})
	}
	return words
}

func baseScriptForWord(source models.ScriptType) string {
	switch {
	case strings.HasPrefix(string(source), "hiragana"):
		return "hiragana"
	case strings.HasPrefix(string(source), "katakana"):
		return "katakana"
	default:
		return "mixed"
	}
}

// Characters returns a copy of the full character list
func (c *Catalog) Characters() []models.Character {
	out := make([]models.Character, len(c.characters))
	copy(out, c.characters)
	return out
}

// ByTypes returns the characters whose subtype is in the given set
func (c *Catalog) ByTypes(types ...models.ScriptType) []models.Character {
	want := make(map[models.ScriptType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	var out []models.Character
	for _, ch := range c.characters {
		if want[ch.Type] {
			out = append(out, ch)
		}
	}
	return out
}

// Vocabulary returns a copy of the derived vocabulary list
func (c *Catalog) Vocabulary() []models.VocabularyWord {
	out := make([]models.VocabularyWord, len(c.vocabulary))
	copy(out, c.vocabulary)
	return out
}

// WithExtra returns a new catalog extended by imported characters.
// Imports with a (glyph, subtype) identity already present are skipped so
// the embedded dataset always wins. Vocabulary is re-derived.
func (c *Catalog) WithExtra(extra []models.Character) *Catalog {
	known := make(map[string]bool, len(c.characters))
	for _, ch := range c.characters {
		known[ch.Key()] = true
	}
	merged := make([]models.Character, len(c.characters), len(c.characters)+len(extra))
	copy(merged, c.characters)
	for _, ch := range extra {
		if ch.Char == "" || known[ch.Key()] {
			continue
		}
		known[ch.Key()] = true
		merged = append(merged, ch)
	}
	return &Catalog{
		characters: merged,
		vocabulary: deriveVocabulary(merged),
	}
}
