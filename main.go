package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/talentscout/screening/internal/core"
	"github.com/talentscout/screening/internal/screening/conversations"
	"github.com/talentscout/screening/internal/screening/llm"
	"github.com/talentscout/screening/internal/screening/model"
	"github.com/talentscout/screening/internal/screening/repo"
	"github.com/talentscout/screening/internal/screening/report"
	logx "github.com/talentscout/screening/pkg/logger"
	pkgredis "github.com/talentscout/screening/pkg/redis"
)

// AppConfig defines all configurable parameters for the screening demo,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure
	Redis pkgredis.Config
	Store model.StoreConfig

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Screening configs
	Generation model.GenerationConfig
	Prompt     model.PromptConfig
}

func main() {
	fmt.Println("Running candidate screening conversation...")
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialise candidate store: %v", err)
	}

	chatModel, err := llm.NewChatModel(ctx, llm.Config{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Generation: cfg.Generation,
	})
	if err != nil {
		log.Fatalf("Failed to create chat model: %v", err)
	}

	orch := conversations.NewOrchestrator(chatModel, store, cfg.Prompt)

	greeting, state := orch.NewSession()
	fmt.Printf("Assistant: %s\n", greeting)

	// A scripted end-to-end screening conversation: every field gets
	// collected, then a goodbye triggers persistence.
	turns := []string{
		"Hi! My name is John Doe and I'm excited to apply.",
		"You can reach me at john.doe@example.com or (555) 123-4567.",
		"I have 5 years of experience and I'm looking for a backend engineer position.",
		"I'm based in Austin, Texas. My stack is Go, PostgreSQL, Redis and Kubernetes.",
		"Thanks, bye!",
	}

	var history []model.TranscriptEntry
	for i, message := range turns {
		fmt.Printf("\nTurn %d\nCandidate: %s\n", i+1, message)

		result, err := orch.ProcessTurn(ctx, message, history, state)
		if err != nil {
			log.Fatalf("Failed to process turn %d: %v", i+1, err)
		}
		history = result.History
		state = result.State

		fmt.Printf("Assistant: %s\n", result.Reply)
		if result.SavedAs != "" {
			fmt.Printf("Candidate record saved: %s\n", result.SavedAs)
		}
		if result.Ended {
			break
		}

		// slight delay between turns for readability
		time.Sleep(500 * time.Millisecond)
	}

	records, err := store.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list candidate records: %v", err)
	}

	stats := report.BuildStatistics(records)
	fmt.Printf("\nCandidates screened so far: %d\n", stats.TotalCandidates)
	if stats.AverageExperienceYears > 0 {
		fmt.Printf("Average experience: %.1f years\n", stats.AverageExperienceYears)
	}
	if top := stats.TopTechnologies(10); len(top) > 0 {
		fmt.Printf("Most common technologies: %s\n", strings.Join(top, ", "))
	}
	for _, record := range records {
		fmt.Println()
		fmt.Print(report.FormatCandidate(record))
	}
}

func newStore(cfg AppConfig) (model.CandidateStore, error) {
	switch cfg.Store.Backend {
	case "redis":
		rdb, err := cfg.Redis.New()
		if err != nil {
			return nil, fmt.Errorf("initialise redis client: %w", err)
		}
		return repo.NewRedisCandidateStore(rdb), nil
	case "file":
		return repo.NewFileCandidateStore(cfg.Store.Dir), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
