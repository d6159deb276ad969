package deps

import (
	"context"
)

// CompletionOptions are the per-call model parameters
type CompletionOptions struct {
	Model       string
	Temperature float32
	MaxTokens   int32
}

// CompletionClient abstracts text-completion API calls.
// Complete issues exactly one outbound request and returns the first choice's raw text.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

// CompletionFunc adapts a plain function to CompletionClient
type CompletionFunc func(ctx context.Context, prompt string, opts CompletionOptions) (string, error)

func (f CompletionFunc) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	return f(ctx, prompt, opts)
}
