// Package conversations implements the screening turn pipeline: one user
// message in, sentiment and field extraction applied to session state, a
// single chat-model call, and the assistant reply out. Termination handling
// and completion-triggered persistence also live here.
package conversations

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/talentscout/screening/internal/screening/extract"
	"github.com/talentscout/screening/internal/screening/model"
	"github.com/talentscout/screening/internal/screening/prompts"
	"github.com/talentscout/screening/internal/screening/sentiment"
	logx "github.com/talentscout/screening/pkg/logger"
)

// endingKeywords terminate the session when any of them appears anywhere in
// a message, case-insensitively.
var endingKeywords = []string{"bye", "goodbye", "exit", "quit", "end chat", "stop"}

const (
	greetingFormat = "Hello! I'm the %s Hiring Assistant. I'm here to help with your initial screening for technology positions. I'll be asking you some questions about your background and technical skills.\n\nLet's start with something simple - could you please tell me your full name?"

	completeFarewellFormat = "Thank you for your time! We have recorded your information and will review your profile. Our recruitment team will contact you within 3-5 business days regarding the next steps.\n\nYour application has been saved (Reference: %s)\n\nBest of luck with your application!"

	incompleteFarewell = "Thank you for your time! Feel free to return anytime to complete your application. Have a great day!"

	apologyFormat = "I apologize, but I encountered an error: %v. Please try again."
)

// Orchestrator processes screening turns. All collaborators are injected at
// construction; it holds no per-session state of its own, so one instance
// can serve any number of independent sessions.
type Orchestrator struct {
	chatModel einomodel.BaseChatModel
	store     model.CandidateStore
	promptCfg model.PromptConfig
}

func NewOrchestrator(chatModel einomodel.BaseChatModel, store model.CandidateStore, promptCfg model.PromptConfig) *Orchestrator {
	return &Orchestrator{
		chatModel: chatModel,
		store:     store,
		promptCfg: promptCfg,
	}
}

// TurnResult is everything a caller gets back from one processed turn.
type TurnResult struct {
	Reply     string
	History   []model.TranscriptEntry
	State     *model.SessionState
	Ended     bool
	SavedAs   string            // store key, set only when the record was persisted this turn
	Extracted map[string]string // fields newly committed by extraction this turn
}

// NewSession returns the fixed opening message and a fresh session state.
func (o *Orchestrator) NewSession() (string, *model.SessionState) {
	return fmt.Sprintf(greetingFormat, o.promptCfg.AgencyName), model.NewSessionState()
}

// ProcessTurn runs one full turn. A termination keyword ends the session
// immediately, skipping sentiment, extraction and the model call. Otherwise
// the message is scored and scanned, the prompt is assembled from the live
// state plus the prior transcript, and the model is invoked once. A model
// failure becomes an in-band apology reply; the only error this method
// returns is a persistence fault, which the caller must surface.
func (o *Orchestrator) ProcessTurn(ctx context.Context, message string, history []model.TranscriptEntry, state *model.SessionState) (*TurnResult, error) {
	if state == nil {
		state = model.NewSessionState()
	}

	if containsEndingKeyword(message) {
		return o.endSession(ctx, message, history, state)
	}

	sample := sentiment.Analyze(message)
	state.SentimentScores = append(state.SentimentScores, sample)

	extracted := extract.Scan(message, &state.CandidateInfo)
	if len(extracted) > 0 {
		ev := logx.Debug().Str("session_id", state.SessionID)
		for field, value := range extracted {
			ev = ev.Str(field, value)
		}
		ev.Msg("extracted candidate fields")
	}

	reply, err := o.generate(ctx, message, history, state, sample)
	if err != nil {
		logx.Error().Err(err).Str("session_id", state.SessionID).Msg("model call failed")
		reply = fmt.Sprintf(apologyFormat, err)
		history = append(history, model.TranscriptEntry{User: message, Bot: reply})
		return &TurnResult{Reply: reply, History: history, State: state, Extracted: extracted}, nil
	}

	// Stage advancement happens only after a successful model call. The
	// greeting exit keys off prior history length, not collected fields;
	// the technical-questions flag is a one-shot latch.
	if state.Stage == model.StageGreeting && len(history) > 0 {
		state.Stage = model.StageCollecting
	}
	if state.CandidateInfo.Complete() && !state.QuestionsAsked {
		state.Stage = model.StageTechnical
		state.QuestionsAsked = true
	}

	history = append(history, model.TranscriptEntry{User: message, Bot: reply})
	return &TurnResult{Reply: reply, History: history, State: state, Extracted: extracted}, nil
}

// generate assembles the turn prompt and performs the single model call.
func (o *Orchestrator) generate(ctx context.Context, message string, history []model.TranscriptEntry, state *model.SessionState, sample model.SentimentSample) (string, error) {
	system, err := prompts.RenderSystem(ctx, o.promptCfg, state, sample)
	if err != nil {
		return "", err
	}

	msgs := make([]*schema.Message, 0, len(history)*2+2)
	msgs = append(msgs, schema.SystemMessage(system))
	for _, entry := range history {
		msgs = append(msgs,
			schema.UserMessage(entry.User),
			schema.AssistantMessage(entry.Bot, nil),
		)
	}
	msgs = append(msgs, schema.UserMessage(message))

	out, err := o.chatModel.Generate(ctx, msgs)
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", fmt.Errorf("empty model response")
	}

	if out.ResponseMeta != nil && out.ResponseMeta.Usage != nil {
		logx.Debug().
			Str("session_id", state.SessionID).
			Int("prompt_tokens", out.ResponseMeta.Usage.PromptTokens).
			Int("completion_tokens", out.ResponseMeta.Usage.CompletionTokens).
			Int("total_tokens", out.ResponseMeta.Usage.TotalTokens).
			Msg("LLM usage")
	}

	return out.Content, nil
}

// endSession transitions to the ended stage. A complete profile is flushed
// to the store; the record snapshots the transcript before the farewell
// turn is appended, and a session is persisted at most once even if the
// caller feeds further terminating messages through.
func (o *Orchestrator) endSession(ctx context.Context, message string, history []model.TranscriptEntry, state *model.SessionState) (*TurnResult, error) {
	alreadyEnded := state.Stage == model.StageEnded
	state.Stage = model.StageEnded

	if state.CandidateInfo.Complete() && !alreadyEnded {
		record := model.NewCandidateRecord(state, history)
		key, err := o.store.Save(ctx, record)
		if err != nil {
			return nil, fmt.Errorf("persist candidate %s: %w", state.SessionID, err)
		}
		logx.Info().Str("session_id", state.SessionID).Str("key", key).Msg("candidate record saved")

		farewell := fmt.Sprintf(completeFarewellFormat, state.SessionID)
		history = append(history, model.TranscriptEntry{User: message, Bot: farewell})
		return &TurnResult{Reply: farewell, History: history, State: state, Ended: true, SavedAs: key}, nil
	}

	history = append(history, model.TranscriptEntry{User: message, Bot: incompleteFarewell})
	return &TurnResult{Reply: incompleteFarewell, History: history, State: state, Ended: true}, nil
}

func containsEndingKeyword(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range endingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
