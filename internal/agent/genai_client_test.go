package agent

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JulienMartel/old-binder/internal/agent/deps"
)

type geminiRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

func newGeminiTestClient(t *testing.T, status int, body string, got *geminiRequest, gotPath *string) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotPath != nil {
			*gotPath = r.URL.Path
		}
		if got != nil {
			raw, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(raw, got); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client, err := NewGeminiClient(context.Background(), "test-key", srv.URL)
	if err != nil {
		t.Fatalf("NewGeminiClient: %v", err)
	}
	return client
}

func TestGeminiClient_Complete(t *testing.T) {
	var req geminiRequest
	var path string
	client := newGeminiTestClient(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"\n\nFrank Herbert"}]},"finishReason":"STOP"}]}`,
		&req, &path)

	got, err := client.Complete(context.Background(), "Who wrote Dune?", deps.CompletionOptions{
		Model:       "gemini-test",
		Temperature: AuthorTemperature,
		MaxTokens:   AuthorMaxTokens,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "\n\nFrank Herbert" {
		t.Fatalf("expected raw first part text, got %q", got)
	}

	if !strings.HasSuffix(path, "/models/gemini-test:generateContent") {
		t.Fatalf("unexpected path %q", path)
	}
	if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 || req.Contents[0].Parts[0].Text != "Who wrote Dune?" {
		t.Fatalf("unexpected contents: %+v", req.Contents)
	}
	if math.Abs(req.GenerationConfig.Temperature-0.7) > 0.001 {
		t.Fatalf("temperature = %v, want 0.7", req.GenerationConfig.Temperature)
	}
	if req.GenerationConfig.MaxOutputTokens != int(AuthorMaxTokens) {
		t.Fatalf("maxOutputTokens = %d, want %d", req.GenerationConfig.MaxOutputTokens, AuthorMaxTokens)
	}
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	client := newGeminiTestClient(t, http.StatusOK, `{"candidates":[]}`, nil, nil)

	_, err := client.Complete(context.Background(), "prompt", deps.CompletionOptions{Model: "gemini-test"})
	if !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices, got %v", err)
	}
	if !IsUpstreamError(err) {
		t.Fatalf("expected *UpstreamError, got %T", err)
	}
}

func TestGeminiClient_APIError(t *testing.T) {
	client := newGeminiTestClient(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"Request contains an invalid argument.","status":"INVALID_ARGUMENT"}}`, nil, nil)

	_, err := client.Complete(context.Background(), "prompt", deps.CompletionOptions{Model: "gemini-test"})
	if !IsUpstreamError(err) {
		t.Fatalf("expected *UpstreamError, got %T: %v", err, err)
	}
	if IsRateLimitError(err) {
		t.Fatalf("invalid argument must not be classified as rate limited: %v", err)
	}
}
