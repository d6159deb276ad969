package validation

import (
	"regexp"
	"strings"
)

// listPrefixRegex matches numbering ("1.", "2)") and bullets ("-", "*", "•") at line start.
// A bullet needs trailing whitespace so markdown emphasis like "*Dune*" survives.
var listPrefixRegex = regexp.MustCompile(`^\s*(?:\d+[.)]\s*|[-*•]\s+)`)

// ListPrefixValidator strips list numbering, bullets and surrounding whitespace
// that the model adds despite being told not to
type ListPrefixValidator struct{}

// NewListPrefixValidator creates a new ListPrefixValidator
func NewListPrefixValidator() *ListPrefixValidator {
	return &ListPrefixValidator{}
}

// Name returns the validator name
func (v *ListPrefixValidator) Name() string {
	return "ListPrefixValidator"
}

// Validate corrects a line that carries a prefix or surrounding whitespace.
// A line that is nothing but a prefix is dropped.
func (v *ListPrefixValidator) Validate(line string) ValidationResult {
	cleaned := strings.TrimSpace(listPrefixRegex.ReplaceAllString(line, ""))

	if cleaned == line {
		return OK()
	}
	if cleaned == "" {
		return Fail("line is empty after removing list prefix")
	}
	return FailWithCorrection("list prefix or surrounding whitespace", cleaned)
}
