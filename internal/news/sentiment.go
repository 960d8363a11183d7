package news

import "strings"

// Sentiment is a coarse classification of a headline's tone.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

var (
	positiveWords = []string{
		"rise", "growth", "profit", "gain", "high",
		"bull", "surge", "increase", "boom", "rally",
	}
	negativeWords = []string{
		"fall", "drop", "loss", "decline", "low",
		"bear", "crash", "plunge", "slump", "recession",
	}
)

// Analyze classifies a headline by keyword match. A title carrying both
// positive and negative cues is neutral.
func Analyze(title string) Sentiment {
	t := strings.ToLower(title)

	pos := containsAny(t, positiveWords)
	neg := containsAny(t, negativeWords)

	switch {
	case pos && !neg:
		return Positive
	case neg && !pos:
		return Negative
	default:
		return Neutral
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
