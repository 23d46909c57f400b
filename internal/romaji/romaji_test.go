package romaji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "ka", "ka"},
		{"uppercase", "KA", "ka"},
		{"surrounding spaces", "  shi  ", "shi"},
		{"parenthetical dropped", "n (n')", "n"},
		{"first alternate wins", "shi/si", "shi"},
		{"alternate then parenthetical", "ji/zi (dakuten)", "ji"},
		{"empty", "", ""},
		{"only parenthetical", "(particle)", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"ka", "SHI/si", "fu (hu)", "  tsu/tu  "} {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestIsCorrect(t *testing.T) {
	assert.True(t, IsCorrect("KA", "ka"))
	assert.True(t, IsCorrect(" shi ", "shi/si"))
	assert.True(t, IsCorrect("si", "si/shi"))
	assert.True(t, IsCorrect("n", "n (n')"))
	assert.False(t, IsCorrect("ga", "ka"))
	assert.False(t, IsCorrect("", "ka"))
}

func TestIsCorrectGlyph(t *testing.T) {
	assert.True(t, IsCorrectGlyph("あ", "あ"))
	assert.False(t, IsCorrectGlyph("ア", "あ"))
	assert.False(t, IsCorrectGlyph("", "あ"))
}
