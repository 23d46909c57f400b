// Package speech describes pronunciation playback. Audio is rendered by
// the client's speech synthesizer; the server only hands out utterance
// descriptors so every page pronounces kana the same way.
package speech

// Utterance is a playback descriptor for one piece of Japanese text
type Utterance struct {
	Text string  `json:"text"`
	Lang string  `json:"lang"`
	Rate float64 `json:"rate"`
}

// Pronouncer turns text into an utterance descriptor
type Pronouncer interface {
	Utter(text string) Utterance
}

// Japanese pronounces text with the ja-JP voice at a learner-friendly
// pace
type Japanese struct{}

// NewJapanese creates the default pronouncer
func NewJapanese() Japanese {
	return Japanese{}
}

// Utter builds the descriptor for the given text
func (Japanese) Utter(text string) Utterance {
	return Utterance{Text: text, Lang: "ja-JP", Rate: 0.8}
}
