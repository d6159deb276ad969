package agent

import (
	"context"
	"fmt"

	"github.com/JulienMartel/old-binder/internal/agent/deps"
	"github.com/JulienMartel/old-binder/internal/agent/validation"
	"github.com/JulienMartel/old-binder/internal/config"
)

// NewCompletionClient creates the completion client for the configured provider
func NewCompletionClient(ctx context.Context, cfg *config.Config) (deps.CompletionClient, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAITimeout), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiBaseURL)
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
}

// NewRecommenderFromConfig builds the completion client and the Recommender in one step
func NewRecommenderFromConfig(ctx context.Context, cfg *config.Config) (*Recommender, error) {
	client, err := NewCompletionClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts := RecommenderOptions{
		AuthorModel:    cfg.AuthorModel,
		RecommendModel: cfg.RecommendModel,
	}
	if cfg.NormalizeRecommendations {
		opts.Normalizer = validation.DefaultPipeline()
	}

	return NewRecommender(client, opts), nil
}
