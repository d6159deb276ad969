package validation

// ValidationResult is the outcome of validating one recommendation line
type ValidationResult struct {
	IsValid   bool
	Reason    string
	Corrected string // Non-empty if a corrected line is available
	Drop      bool   // True if the line should be removed from the result
}

// OK returns a successful validation result
func OK() ValidationResult {
	return ValidationResult{IsValid: true}
}

// Fail returns a failed validation result; the line is dropped
func Fail(reason string) ValidationResult {
	return ValidationResult{IsValid: false, Reason: reason, Drop: true}
}

// FailWithCorrection returns a failed validation result with a corrected line
func FailWithCorrection(reason, corrected string) ValidationResult {
	return ValidationResult{IsValid: false, Reason: reason, Corrected: corrected}
}

// Validator is the interface for recommendation line rules
type Validator interface {
	// Name returns the validator's name for logging
	Name() string
	// Validate checks one line and returns a validation result
	Validate(line string) ValidationResult
}

// truncateForLog truncates a string for logging purposes
func truncateForLog(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return s
}
