// Package sentiment classifies a single chat message as positive, negative
// or neutral using a fixed keyword heuristic. It is deliberately crude: no
// model, no word boundaries, no memory across turns.
package sentiment

import (
	"strings"

	"github.com/talentscout/screening/internal/screening/model"
)

const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"
)

var positiveWords = []string{
	"excited", "happy", "great", "excellent", "good", "love",
	"wonderful", "fantastic", "amazing", "looking forward",
}

var negativeWords = []string{
	"worried", "nervous", "concerned", "difficult", "hard",
	"confused", "frustrated", "anxious", "stress",
}

// Analyze scores text by counting keyword occurrences (substring
// containment on the lowercased text). Score is count/3 capped at 1.0 for
// the winning polarity, or a fixed 0.5 on ties including the all-zero case.
func Analyze(text string) model.SentimentSample {
	lower := strings.ToLower(text)

	var pos, neg int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	switch {
	case pos > neg:
		return model.SentimentSample{Sentiment: Positive, Score: capped(pos)}
	case neg > pos:
		return model.SentimentSample{Sentiment: Negative, Score: capped(neg)}
	default:
		return model.SentimentSample{Sentiment: Neutral, Score: 0.5}
	}
}

func capped(count int) float64 {
	score := float64(count) / 3
	if score > 1.0 {
		return 1.0
	}
	return score
}
