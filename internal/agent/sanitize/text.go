// Package sanitize normalizes user-provided text before it reaches a prompt.
package sanitize

import (
	"golang.org/x/text/unicode/norm"
)

// Text normalizes Unicode to NFC so visually identical titles produce the same
// bytes, both in prompts and in favorite-book identity. Nothing else is changed.
func Text(s string) string {
	return norm.NFC.String(s)
}

// Lines applies Text to each entry, preserving order. A nil input stays nil.
func Lines(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Text(l)
	}
	return out
}
