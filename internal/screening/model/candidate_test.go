package model

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fullProfile() CandidateProfile {
	return CandidateProfile{
		Name:       strPtr("John Doe"),
		Email:      strPtr("john.doe@example.com"),
		Phone:      strPtr("(555) 123-4567"),
		Experience: strPtr("5 years"),
		Position:   strPtr("Backend Engineer"),
		Location:   strPtr("Austin, Texas"),
		TechStack:  strPtr("Go, PostgreSQL, Redis"),
	}
}

func TestCandidateProfileComplete(t *testing.T) {
	profile := fullProfile()
	assert.True(t, profile.Complete())

	profile.TechStack = nil
	assert.False(t, profile.Complete())

	var empty CandidateProfile
	assert.False(t, empty.Complete())
}

func TestCandidateProfileJSONUsesNullForUnsetFields(t *testing.T) {
	var profile CandidateProfile
	profile.Email = strPtr("john@example.com")

	b, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name":null`)
	assert.Contains(t, string(b), `"email":"john@example.com"`)
	assert.Contains(t, string(b), `"tech_stack":null`)
}

func TestNewSessionStateIDFormat(t *testing.T) {
	state := NewSessionState()
	assert.Regexp(t, regexp.MustCompile(`^\d{8}_\d{6}$`), state.SessionID)
	assert.Equal(t, StageGreeting, state.Stage)
	assert.False(t, state.QuestionsAsked)
	assert.Empty(t, state.SentimentScores)
}

func TestNewCandidateRecordAveragesSentiment(t *testing.T) {
	state := NewSessionState()
	state.CandidateInfo = fullProfile()
	state.SentimentScores = []SentimentSample{
		{Sentiment: "positive", Score: 1.0},
		{Sentiment: "neutral", Score: 0.5},
	}

	transcript := []TranscriptEntry{{User: "hi", Bot: "hello"}}
	record := NewCandidateRecord(state, transcript)

	assert.Equal(t, state.SessionID, record.SessionID)
	assert.Equal(t, transcript, record.ConversationHistory)
	assert.InDelta(t, 0.75, record.SentimentAnalysis.AverageSentiment, 1e-9)
	assert.Len(t, record.SentimentAnalysis.Scores, 2)
}

func TestNewCandidateRecordWithNoSamples(t *testing.T) {
	state := NewSessionState()
	record := NewCandidateRecord(state, nil)

	assert.Zero(t, record.SentimentAnalysis.AverageSentiment)

	// scores must serialize as an empty array, not null
	b, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"scores":[]`)
}

func TestCandidateRecordWireFormat(t *testing.T) {
	state := NewSessionState()
	state.CandidateInfo = fullProfile()
	state.SentimentScores = []SentimentSample{{Sentiment: "positive", Score: 0.67}}

	record := NewCandidateRecord(state, []TranscriptEntry{{User: "hi", Bot: "hello"}})
	b, err := json.MarshalIndent(record, "", "  ")
	require.NoError(t, err)

	out := string(b)
	assert.Contains(t, out, `"session_id"`)
	assert.Contains(t, out, `"timestamp"`)
	assert.Contains(t, out, `"candidate_info"`)
	assert.Contains(t, out, `"conversation_history"`)
	assert.Contains(t, out, `"sentiment_analysis"`)
	assert.Contains(t, out, `"average_sentiment"`)
	assert.Contains(t, out, `"user": "hi"`)
	assert.Contains(t, out, `"bot": "hello"`)
}
