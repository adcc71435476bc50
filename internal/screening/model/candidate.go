package model

import (
	"time"
)

// Stage is the coarse phase marker of a screening conversation. It only
// annotates the model prompt; it never gates extraction or validation.
type Stage string

const (
	StageGreeting   Stage = "greeting"
	StageCollecting Stage = "collecting_info"
	StageTechnical  Stage = "technical_questions"
	StageEnded      Stage = "ended"
)

// CandidateProfile holds the seven screening fields. A nil field is
// "not collected yet"; a set field is never overwritten by later
// extraction (first write wins, enforced at the extraction sites).
type CandidateProfile struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Experience *string `json:"experience"`
	Position   *string `json:"position"`
	Location   *string `json:"location"`
	TechStack  *string `json:"tech_stack"`
}

// Complete reports whether every field has been collected.
func (p *CandidateProfile) Complete() bool {
	return p.Name != nil && p.Email != nil && p.Phone != nil &&
		p.Experience != nil && p.Position != nil && p.Location != nil &&
		p.TechStack != nil
}

// SentimentSample is one per-message sentiment classification, appended
// in turn order and never revised.
type SentimentSample struct {
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

// TranscriptEntry is one user message and the assistant response it
// produced. The full transcript is owned by the caller and round-tripped
// through every turn.
type TranscriptEntry struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// sessionIDLayout gives ids the shape 20241221_143022. Second-level
// granularity means two sessions started within the same second collide;
// accepted for this system (single operator, one session at a time).
const sessionIDLayout = "20060102_150405"

// SessionState is the mutable record of a single screening session. It is
// created on the first turn, mutated by the orchestrator every turn, and
// flushed to the candidate store exactly once when the conversation ends
// with a complete profile.
type SessionState struct {
	SessionID       string            `json:"session_id"`
	CandidateInfo   CandidateProfile  `json:"candidate_info"`
	Stage           Stage             `json:"stage"`
	QuestionsAsked  bool              `json:"questions_asked"`
	SentimentScores []SentimentSample `json:"sentiment_scores"`
}

// NewSessionState returns a fresh greeting-stage state with an id derived
// from the current clock.
func NewSessionState() *SessionState {
	return &SessionState{
		SessionID: time.Now().Format(sessionIDLayout),
		Stage:     StageGreeting,
	}
}

// CandidateRecord is the persisted shape of a completed session. Written
// once, never updated in place.
type CandidateRecord struct {
	SessionID           string            `json:"session_id"`
	Timestamp           string            `json:"timestamp"`
	CandidateInfo       CandidateProfile  `json:"candidate_info"`
	ConversationHistory []TranscriptEntry `json:"conversation_history"`
	SentimentAnalysis   SentimentSummary  `json:"sentiment_analysis"`
}

// SentimentSummary carries the per-turn samples plus their arithmetic mean.
type SentimentSummary struct {
	Scores           []SentimentSample `json:"scores"`
	AverageSentiment float64           `json:"average_sentiment"`
}

// NewCandidateRecord snapshots a session and transcript into the persisted
// record shape. The average sentiment is 0 when no samples were taken.
func NewCandidateRecord(state *SessionState, transcript []TranscriptEntry) *CandidateRecord {
	scores := state.SentimentScores
	if scores == nil {
		scores = []SentimentSample{}
	}
	var avg float64
	if len(scores) > 0 {
		var sum float64
		for _, s := range scores {
			sum += s.Score
		}
		avg = sum / float64(len(scores))
	}
	return &CandidateRecord{
		SessionID:           state.SessionID,
		Timestamp:           time.Now().Format(time.RFC3339),
		CandidateInfo:       state.CandidateInfo,
		ConversationHistory: transcript,
		SentimentAnalysis: SentimentSummary{
			Scores:           scores,
			AverageSentiment: avg,
		},
	}
}
