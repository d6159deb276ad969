package favorites

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JulienMartel/old-binder/internal/model"

	json "github.com/goccy/go-json"
)

// SlotKey is the single named slot the favorites are stored under
const SlotKey = "fav-books"

// FileStore persists a List as a flat ordered array of strings in a local JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the list. A missing file yields an empty list.
func (s *FileStore) Load() (*List, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return NewList(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites file: %w", err)
	}

	var slots map[string][]string
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("failed to parse favorites JSON: %w", err)
	}

	books := make([]model.FavoriteBook, 0, len(slots[SlotKey]))
	for _, b := range slots[SlotKey] {
		books = append(books, model.FavoriteBook(b))
	}
	return NewList(books...), nil
}

// Save writes the list atomically, creating the parent directory if needed
func (s *FileStore) Save(l *List) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create favorites directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(map[string][]string{SlotKey: l.Strings()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write favorites file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace favorites file: %w", err)
	}
	return nil
}
