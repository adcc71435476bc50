// Package llm constructs the concrete chat model behind the screening
// orchestrator. The orchestrator itself only depends on the eino
// BaseChatModel interface, so any provider can be substituted.
package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"google.golang.org/genai"

	"github.com/talentscout/screening/internal/screening/model"
	logx "github.com/talentscout/screening/pkg/logger"
)

// Config holds everything needed to build the screening chat model.
type Config struct {
	APIKey     string
	BaseURL    string
	Generation model.GenerationConfig
}

// NewChatModel creates the Gemini-backed screening model. Temperature and
// the response-length cap are fixed at construction; each turn is a single
// synchronous Generate call.
func NewChatModel(ctx context.Context, cfg Config) (*gemini.ChatModel, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Generation.Model,
		Temperature: &cfg.Generation.Temperature,
		MaxTokens:   &cfg.Generation.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating screening model")
		return nil, fmt.Errorf("error creating screening model: %w", err)
	}

	return chatModel, nil
}
