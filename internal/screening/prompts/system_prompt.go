package prompts

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/talentscout/screening/internal/screening/model"
	"github.com/talentscout/screening/internal/screening/sentiment"
)

//go:embed template/system_prompt.txt
var screeningSystemPrompt string

// supportiveDirective is appended when the latest sentiment sample is
// strongly negative so the model softens its tone for this turn.
const supportiveDirective = "NOTE: User seems stressed/nervous. Be extra encouraging and supportive.\n"

// RenderSystem renders the screening system prompt for one turn: the base
// persona template plus a snapshot of the live session state and the most
// recent sentiment sample.
func RenderSystem(ctx context.Context, cfg model.PromptConfig, state *model.SessionState, latest model.SentimentSample) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(screeningSystemPrompt),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"AgencyName": cfg.AgencyName,
		"Specialty":  cfg.Specialty,
	})
	if err != nil {
		return "", fmt.Errorf("system prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("system prompt render: empty result")
	}

	return msgs[0].Content + stateContext(state, latest), nil
}

// stateContext renders the per-turn context block the model sees alongside
// the base persona: collected fields, stage, question flag and sentiment.
func stateContext(state *model.SessionState, latest model.SentimentSample) string {
	info, err := json.MarshalIndent(state.CandidateInfo, "", "  ")
	if err != nil {
		info = []byte("{}")
	}

	var b strings.Builder
	b.WriteString("\n\nCurrent candidate information collected:\n")
	b.Write(info)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Conversation stage: %s\n", state.Stage)
	fmt.Fprintf(&b, "Technical questions asked: %t\n", state.QuestionsAsked)
	fmt.Fprintf(&b, "User sentiment: %s (score: %.2f)\n", latest.Sentiment, latest.Score)

	if latest.Sentiment == sentiment.Negative && latest.Score > 0.6 {
		b.WriteString(supportiveDirective)
	}
	return b.String()
}
