package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// titleAuthorRegex splits "{title} by {author}" on the last " by "
var titleAuthorRegex = regexp.MustCompile(`^(.+)\s+by\s+(.+)$`)

// TitleAuthor represents a recommendation line split into its parts
type TitleAuthor struct {
	Title  string
	Author string
}

// TitleAuthorValidator drops lines that do not read "{title} by {author}"
type TitleAuthorValidator struct{}

// NewTitleAuthorValidator creates a new TitleAuthorValidator
func NewTitleAuthorValidator() *TitleAuthorValidator {
	return &TitleAuthorValidator{}
}

// Name returns the validator name
func (v *TitleAuthorValidator) Name() string {
	return "TitleAuthorValidator"
}

// Validate checks that the line has a non-empty title and author
func (v *TitleAuthorValidator) Validate(line string) ValidationResult {
	if _, ok := ExtractTitleAuthor(line); !ok {
		return Fail(fmt.Sprintf("line %q is not shaped \"{title} by {author}\"", truncateForLog(line, 50)))
	}
	return OK()
}

// ExtractTitleAuthor parses "{title} by {author}". The regex is greedy so a
// title containing " by " keeps it, and the author is whatever follows the last one.
func ExtractTitleAuthor(line string) (TitleAuthor, bool) {
	match := titleAuthorRegex.FindStringSubmatch(line)
	if len(match) < 3 {
		return TitleAuthor{}, false
	}

	title := strings.TrimSpace(match[1])
	author := strings.TrimSpace(match[2])
	if title == "" || author == "" {
		return TitleAuthor{}, false
	}
	return TitleAuthor{Title: title, Author: author}, true
}
