package favorites

import (
	"strings"

	"github.com/JulienMartel/old-binder/internal/model"
)

// List is an ordered collection of favorite books, unique by exact string equality.
// Insertion order is display order.
type List struct {
	books []model.FavoriteBook
}

// NewList creates a list from books, keeping the first occurrence of any duplicate
func NewList(books ...model.FavoriteBook) *List {
	l := &List{books: make([]model.FavoriteBook, 0, len(books))}
	for _, b := range books {
		l.Add(b)
	}
	return l
}

// Add appends book unless an identical entry exists. It reports whether the list changed.
func (l *List) Add(book model.FavoriteBook) bool {
	if l.Contains(book) {
		return false
	}
	l.books = append(l.books, book)
	return true
}

// Remove deletes the entry equal to book. It reports whether the list changed.
func (l *List) Remove(book model.FavoriteBook) bool {
	for i, b := range l.books {
		if b == book {
			l.books = append(l.books[:i], l.books[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether an identical entry exists
func (l *List) Contains(book model.FavoriteBook) bool {
	for _, b := range l.books {
		if b == book {
			return true
		}
	}
	return false
}

// All returns a copy of the entries in insertion order
func (l *List) All() []model.FavoriteBook {
	out := make([]model.FavoriteBook, len(l.books))
	copy(out, l.books)
	return out
}

// Strings returns the entries as the plain strings the recommender consumes
func (l *List) Strings() []string {
	return model.FavoriteStrings(l.books)
}

func (l *List) Len() int {
	return len(l.books)
}

// Search finds entries containing query, case-insensitively
func (l *List) Search(query string) []model.FavoriteBook {
	lowerQuery := strings.ToLower(query)
	var results []model.FavoriteBook
	for _, b := range l.books {
		if strings.Contains(strings.ToLower(string(b)), lowerQuery) {
			results = append(results, b)
		}
	}
	return results
}
