package agent

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/JulienMartel/old-binder/internal/agent/deps"
	"github.com/JulienMartel/old-binder/internal/logging"

	json "github.com/goccy/go-json"
)

const (
	providerOpenAI  = "openai"
	completionsPath = "/v1/completions"
	// maxErrorBody bounds how much of a non-JSON error body ends up in an error message
	maxErrorBody = 512
)

// OpenAIClient implements deps.CompletionClient using the OpenAI text-completions endpoint
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAIClient. The timeout applies to the whole
// HTTP exchange; zero means no client-side timeout.
func NewOpenAIClient(apiKey, baseURL string, timeout time.Duration) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type completionRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int32   `json:"max_tokens"`
}

type completionChoice struct {
	Text         string `json:"text"`
	Index        int    `json:"index"`
	FinishReason string `json:"finish_reason"`
}

type completionResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Choices []completionChoice `json:"choices"`
	Usage   *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt and returns the first choice's raw text
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, opts deps.CompletionOptions) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model:       opts.Model,
		Prompt:      prompt,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Provider: providerOpenAI, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Provider: providerOpenAI, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	var parsed completionResponse
	decodeErr := json.Unmarshal(body, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && parsed.Error != nil {
			return "", &UpstreamError{
				Provider:   providerOpenAI,
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type),
			}
		}
		return "", &UpstreamError{
			Provider:   providerOpenAI,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", truncateBody(body)),
		}
	}

	if decodeErr != nil {
		return "", &UpstreamError{Provider: providerOpenAI, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	if parsed.Error != nil {
		return "", &UpstreamError{
			Provider:   providerOpenAI,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type),
		}
	}
	if len(parsed.Choices) == 0 {
		return "", &UpstreamError{Provider: providerOpenAI, StatusCode: resp.StatusCode, Err: ErrNoChoices}
	}

	event := logging.Debug().Str("provider", providerOpenAI).Str("model", opts.Model)
	if parsed.Usage != nil {
		event = event.
			Int("prompt_tokens", parsed.Usage.PromptTokens).
			Int("completion_tokens", parsed.Usage.CompletionTokens).
			Int("total_tokens", parsed.Usage.TotalTokens)
	}
	event.Msg("Completion received")

	return parsed.Choices[0].Text, nil
}

func truncateBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}

var _ deps.CompletionClient = (*OpenAIClient)(nil)
