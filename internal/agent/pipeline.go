package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/JulienMartel/old-binder/internal/agent/deps"
	"github.com/JulienMartel/old-binder/internal/logging"
	"github.com/JulienMartel/old-binder/internal/metrics"
)

// Pipeline is one prompt → completion → parse flow.
// Build and Parse are pure; Run makes exactly one completion call and never retries.
type Pipeline[In, Out any] struct {
	Name    string
	Build   func(In) string
	Parse   func(string) Out
	Options deps.CompletionOptions
	Client  deps.CompletionClient
}

// Run builds the prompt for in, completes it and parses the raw text.
// Completion failures are returned wrapped with the pipeline name; there are no partial results.
func (p *Pipeline[In, Out]) Run(ctx context.Context, in In) (Out, error) {
	var zero Out

	prompt := p.Build(in)
	logging.Debug().
		Str("operation", p.Name).
		Str("model", p.Options.Model).
		Str("prompt", prompt).
		Msg("Sending completion prompt")

	start := time.Now()
	raw, err := p.Client.Complete(ctx, prompt, p.Options)
	duration := time.Since(start)
	metrics.RecordCompletion(p.Name, duration, err)

	if err != nil {
		logging.Warn().
			Err(err).
			Str("operation", p.Name).
			Dur("duration", duration).
			Msg("Completion failed")
		return zero, fmt.Errorf("%s: %w", p.Name, err)
	}

	logging.Debug().
		Str("operation", p.Name).
		Dur("duration", duration).
		Int("raw_length", len(raw)).
		Msg("Completion succeeded")

	return p.Parse(raw), nil
}
