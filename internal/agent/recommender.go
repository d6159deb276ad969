package agent

import (
	"context"

	"github.com/JulienMartel/old-binder/internal/agent/deps"
	"github.com/JulienMartel/old-binder/internal/agent/prompt"
	"github.com/JulienMartel/old-binder/internal/agent/response"
	"github.com/JulienMartel/old-binder/internal/agent/validation"
	"github.com/JulienMartel/old-binder/internal/metrics"
	"github.com/JulienMartel/old-binder/internal/model"
)

const (
	OperationLookupAuthor = "lookup_author"
	OperationRecommend    = "recommend"

	// AuthorTemperature and AuthorMaxTokens keep the author answer short and focused
	AuthorTemperature float32 = 0.7
	AuthorMaxTokens   int32   = 100

	// RecommendTemperature and RecommendMaxTokens leave room for three lines
	RecommendTemperature float32 = 0.8
	RecommendMaxTokens   int32   = 300
)

// RecommenderOptions selects models and optional output normalization
type RecommenderOptions struct {
	AuthorModel    string
	RecommendModel string
	// Normalizer, when set, post-processes recommendation lines.
	// Nil keeps the parsed lines exactly as the model produced them.
	Normalizer *validation.Pipeline
}

// Recommender serves author lookup and recommendation generation.
// It holds no mutable state and is safe for concurrent use.
type Recommender struct {
	author    *Pipeline[string, string]
	recommend *Pipeline[[]string, []string]
}

// NewRecommender wires both flows to the same completion client
func NewRecommender(client deps.CompletionClient, opts RecommenderOptions) *Recommender {
	builder := prompt.NewBuilder()

	parseRecommendations := func(raw string) []string {
		lines := response.ParseRecommendations(raw)
		if opts.Normalizer != nil {
			lines = opts.Normalizer.Apply(lines)
		}
		metrics.RecordParsedLines(OperationRecommend, len(lines))
		return lines
	}

	return &Recommender{
		author: &Pipeline[string, string]{
			Name:  OperationLookupAuthor,
			Build: builder.BuildAuthorPrompt,
			Parse: response.ParseAuthor,
			Options: deps.CompletionOptions{
				Model:       opts.AuthorModel,
				Temperature: AuthorTemperature,
				MaxTokens:   AuthorMaxTokens,
			},
			Client: client,
		},
		recommend: &Pipeline[[]string, []string]{
			Name:  OperationRecommend,
			Build: builder.BuildRecommendationPrompt,
			Parse: parseRecommendations,
			Options: deps.CompletionOptions{
				Model:       opts.RecommendModel,
				Temperature: RecommendTemperature,
				MaxTokens:   RecommendMaxTokens,
			},
			Client: client,
		},
	}
}

// LookupAuthor asks the model for the author of title. The author may be empty.
func (r *Recommender) LookupAuthor(ctx context.Context, title string) (*model.AuthorLookupResult, error) {
	author, err := r.author.Run(ctx, title)
	if err != nil {
		return nil, err
	}
	return &model.AuthorLookupResult{Author: author}, nil
}

// Recommend asks the model for new books based on favoriteBooks.
// An empty list is not rejected here; callers decide whether to allow it.
func (r *Recommender) Recommend(ctx context.Context, favoriteBooks []string) (*model.RecommendationResult, error) {
	recommendations, err := r.recommend.Run(ctx, favoriteBooks)
	if err != nil {
		return nil, err
	}
	return &model.RecommendationResult{Recommendations: recommendations}, nil
}
