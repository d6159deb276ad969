package agent

import (
	"context"
	"fmt"

	"github.com/JulienMartel/old-binder/internal/agent/deps"

	"google.golang.org/genai"
)

const providerGemini = "gemini"

// GeminiClient implements deps.CompletionClient using the Gemini API
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a new GeminiClient authenticated with apiKey.
// An empty baseURL uses the SDK's default endpoint.
func NewGeminiClient(ctx context.Context, apiKey, baseURL string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// Complete generates content for the prompt and returns the first candidate's text
func (c *GeminiClient) Complete(ctx context.Context, prompt string, opts deps.CompletionOptions) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		MaxOutputTokens: opts.MaxTokens,
	}

	resp, err := c.client.Models.GenerateContent(ctx, opts.Model, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}, config)
	if err != nil {
		return "", &UpstreamError{Provider: providerGemini, Err: err}
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", &UpstreamError{Provider: providerGemini, Err: ErrNoChoices}
	}

	// Extract text from the first candidate
	if resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}

	return "", nil
}

var _ deps.CompletionClient = (*GeminiClient)(nil)
