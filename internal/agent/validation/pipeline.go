package validation

import (
	"github.com/JulienMartel/old-binder/internal/logging"
)

// Pipeline runs validators over each recommendation line in sequence.
// A corrected line is fed to the remaining validators; a dropped line is removed.
type Pipeline struct {
	validators []Validator
}

// NewPipeline creates a new validation pipeline
func NewPipeline(validators ...Validator) *Pipeline {
	return &Pipeline{validators: validators}
}

// DefaultPipeline strips list prefixes, then drops lines not shaped "{title} by {author}"
func DefaultPipeline() *Pipeline {
	return NewPipeline(
		NewListPrefixValidator(),
		NewTitleAuthorValidator(),
	)
}

// Apply returns the normalized lines in their original order. The result is never nil.
func (p *Pipeline) Apply(lines []string) []string {
	out := make([]string, 0, len(lines))

lines:
	for _, line := range lines {
		for _, v := range p.validators {
			result := v.Validate(line)
			if result.IsValid {
				continue
			}

			if result.Corrected != "" {
				logging.Debug().
					Str("validator", v.Name()).
					Str("reason", result.Reason).
					Str("line", truncateForLog(line, 80)).
					Msg("Recommendation line corrected")
				line = result.Corrected
				continue
			}

			if result.Drop {
				logging.Info().
					Str("validator", v.Name()).
					Str("reason", result.Reason).
					Str("line", truncateForLog(line, 80)).
					Msg("Recommendation line dropped")
				continue lines
			}
		}
		out = append(out, line)
	}

	return out
}
