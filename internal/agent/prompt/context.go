package prompt

import (
	"strings"
)

// BuildFavoritesList renders favorites one per line, in the given order.
// Entries are written as-is; an empty list renders as an empty string.
func BuildFavoritesList(favoriteBooks []string) string {
	return strings.Join(favoriteBooks, "\n")
}
