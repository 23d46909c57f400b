// Package romaji evaluates learner answers against catalog romanizations.
package romaji

import "strings"

// Normalize reduces a catalog romanization to its canonical comparable
// form: any parenthetical annotation is dropped, only the first of the
// "/"-separated alternates is kept, and the result is trimmed and
// lower-cased. Normalize is idempotent.
func Normalize(romaji string) string {
	s := romaji
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "/"); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// IsCorrect reports whether the user input matches the target
// romanization. Comparison is exact on the normalized forms: no fuzzy
// matching, no partial credit.
func IsCorrect(userInput, target string) bool {
	return Normalize(userInput) == Normalize(target)
}

// IsCorrectGlyph reports whether a multiple-choice selection matches the
// expected glyph. Correctness here is identity on the glyph itself, not
// on romanization.
func IsCorrectGlyph(selected, target string) bool {
	return selected == target
}
