package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/remotetodo/internal/model"
)

// JSON snapshot of the development backend. Single file, human-readable.
// Callers serialize access; the file is replaced atomically on save.

// Store reads and writes a todo snapshot at Path.
type Store struct {
	Path string
}

// New returns a Store for path.
func New(path string) *Store {
	return &Store{Path: path}
}

// Load returns the stored todos. A missing file is an empty snapshot.
func (s *Store) Load() ([]model.Todo, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Todo{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Todo
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}

// Save writes items, creating the parent directory when needed.
func (s *Store) Save(items []model.Todo) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
