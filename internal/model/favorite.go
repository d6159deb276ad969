package model

// FavoriteBook is a user-curated entry in the form "{title} by {author}".
// The concatenation is the stored identity; two entries are the same book
// only when the strings are equal.
type FavoriteBook string

// NewFavoriteBook builds the display string for a title and author
func NewFavoriteBook(title, author string) FavoriteBook {
	return FavoriteBook(title + " by " + author)
}

func (b FavoriteBook) String() string {
	return string(b)
}

// FavoriteStrings converts favorites to the plain strings the recommender consumes
func FavoriteStrings(books []FavoriteBook) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = string(b)
	}
	return out
}

// AuthorLookupRequest is the body of POST /api/author. Title must be present but may be empty.
type AuthorLookupRequest struct {
	Title *string `json:"title" binding:"required"`
}

// AuthorLookupResult holds a single trimmed line; Author may be empty
type AuthorLookupResult struct {
	Author string `json:"author"`
}

// RecommendationRequest is the body of POST /api/recommend.
// An empty list is accepted; only a missing one is rejected.
type RecommendationRequest struct {
	FavoriteBooks []string `json:"favoriteBooks" binding:"required"`
}

// RecommendationResult holds the non-empty completion lines in model order.
// Entries are expected to read "{Book title} by {Author name}" but are not checked.
type RecommendationResult struct {
	Recommendations []string `json:"recommendations"`
}
