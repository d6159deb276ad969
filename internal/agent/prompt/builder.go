package prompt

import (
	"fmt"
)

// Builder constructs completion prompts. It holds no state; the zero value is ready to use.
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildAuthorPrompt embeds the title verbatim into the author template.
// An empty title still yields a well-formed prompt.
func (b *Builder) BuildAuthorPrompt(title string) string {
	return fmt.Sprintf(AuthorPromptTemplate, title)
}

// BuildRecommendationPrompt renders the favorites one per line into the
// recommendation template. The boilerplate does not depend on the favorites.
func (b *Builder) BuildRecommendationPrompt(favoriteBooks []string) string {
	return fmt.Sprintf(RecommendationPromptTemplate, FavoriteGenre, BuildFavoritesList(favoriteBooks))
}

// BuildAuthorPrompt is a convenience wrapper around the zero Builder
func BuildAuthorPrompt(title string) string {
	return (&Builder{}).BuildAuthorPrompt(title)
}

// BuildRecommendationPrompt is a convenience wrapper around the zero Builder
func BuildRecommendationPrompt(favoriteBooks []string) string {
	return (&Builder{}).BuildRecommendationPrompt(favoriteBooks)
}
