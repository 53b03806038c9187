package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Book holds one Memory store per location name
type Book struct {
	locations map[string]*Memory
}

// NewBook creates an empty book
func NewBook() *Book {
	return &Book{locations: make(map[string]*Memory)}
}

// Location returns the store for name, creating it on first use
func (b *Book) Location(name string) *Memory {
	if s, ok := b.locations[name]; ok {
		return s
	}
	s := NewMemory()
	b.locations[name] = s
	return s
}

// Names returns the location names that have a store, sorted
func (b *Book) Names() []string {
	names := make([]string, 0, len(b.locations))
	for name := range b.locations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SaveFile is the on-disk form of a Book
type SaveFile struct {
	SavedAt   string                       `json:"saved_at"`
	Locations map[string]map[string]string `json:"locations"`
}

// Save writes the book to path as JSON, replacing any previous file
func (b *Book) Save(path string) error {
	sf := SaveFile{
		SavedAt:   time.Now().UTC().Format(time.RFC3339),
		Locations: make(map[string]map[string]string, len(b.locations)),
	}
	for name, s := range b.locations {
		if s.Len() == 0 {
			continue
		}
		sf.Locations[name] = s.Snapshot()
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save file: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create save directory: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace save file: %w", err)
	}
	return nil
}

// Load reads a book from path. A missing file yields an empty book and an
// error wrapping os.ErrNotExist.
func Load(path string) (*Book, error) {
	b := NewBook()

	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("read save file: %w", err)
	}

	var sf SaveFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return b, fmt.Errorf("decode save file %s: %w", path, err)
	}

	for name, entries := range sf.Locations {
		s := b.Location(name)
		for k, v := range entries {
			s.Set(k, v)
		}
	}
	return b, nil
}
