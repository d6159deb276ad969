package response

import (
	"strings"
)

// ParseAuthor trims surrounding whitespace from the raw completion text.
// An empty result is returned as-is; it is not an error.
func ParseAuthor(raw string) string {
	return strings.TrimSpace(raw)
}

// ParseRecommendations splits the raw completion on newlines and drops empty lines.
// Remaining lines are kept verbatim and in order, including any numbering or
// prefixes the model added against instructions.
func ParseRecommendations(raw string) []string {
	lines := strings.Split(raw, "\n")

	recommendations := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		recommendations = append(recommendations, line)
	}
	return recommendations
}
