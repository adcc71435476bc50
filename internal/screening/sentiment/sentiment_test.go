package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		sentiment string
		score     float64
	}{
		{"empty text is neutral", "", Neutral, 0.5},
		{"no keywords is neutral", "I write software for a living", Neutral, 0.5},
		{"single positive", "I'm excited about this role", Positive, 1.0 / 3},
		{"single negative", "I'm a bit nervous about the interview", Negative, 1.0 / 3},
		{"equal counts tie to neutral", "I'm excited but also nervous", Neutral, 0.5},
		{"positive majority", "great company, excellent team, good culture", Positive, 1.0},
		{"score capped at one", "excited happy great excellent good love", Positive, 1.0},
		{"case insensitive", "This is GREAT", Positive, 1.0 / 3},
		{"substring containment counts embedded keywords", "I am hardworking", Negative, 1.0 / 3},
		{"multi word keyword", "looking forward to hearing from you", Positive, 1.0 / 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := Analyze(tt.text)
			assert.Equal(t, tt.sentiment, sample.Sentiment)
			assert.InDelta(t, tt.score, sample.Score, 1e-9)
			assert.GreaterOrEqual(t, sample.Score, 0.0)
			assert.LessOrEqual(t, sample.Score, 1.0)
		})
	}
}
