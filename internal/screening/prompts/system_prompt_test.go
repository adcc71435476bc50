package prompts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentscout/screening/internal/screening/model"
)

func strPtr(s string) *string { return &s }

func testCfg() model.PromptConfig {
	return model.PromptConfig{AgencyName: "TalentScout", Specialty: "technology placements"}
}

func TestRenderSystemIncludesPersonaAndState(t *testing.T) {
	state := model.NewSessionState()
	state.CandidateInfo.Email = strPtr("john@example.com")
	state.Stage = model.StageCollecting

	out, err := RenderSystem(context.Background(), testCfg(), state, model.SentimentSample{Sentiment: "neutral", Score: 0.5})
	require.NoError(t, err)

	assert.Contains(t, out, "TalentScout")
	assert.Contains(t, out, "technology placements")
	assert.Contains(t, out, `"email": "john@example.com"`)
	assert.Contains(t, out, "Conversation stage: collecting_info")
	assert.Contains(t, out, "Technical questions asked: false")
	assert.Contains(t, out, "User sentiment: neutral (score: 0.50)")
	assert.NotContains(t, out, "extra encouraging")
}

func TestRenderSystemSupportiveDirectiveThreshold(t *testing.T) {
	state := model.NewSessionState()

	// negative at exactly 0.6 stays below the threshold
	out, err := RenderSystem(context.Background(), testCfg(), state, model.SentimentSample{Sentiment: "negative", Score: 0.6})
	require.NoError(t, err)
	assert.NotContains(t, out, "extra encouraging")

	out, err = RenderSystem(context.Background(), testCfg(), state, model.SentimentSample{Sentiment: "negative", Score: 1.0})
	require.NoError(t, err)
	assert.Contains(t, out, "extra encouraging and supportive")

	// a high positive score never triggers it
	out, err = RenderSystem(context.Background(), testCfg(), state, model.SentimentSample{Sentiment: "positive", Score: 1.0})
	require.NoError(t, err)
	assert.NotContains(t, out, "extra encouraging")
}
