package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DateLayout mirrors the locale-style timestamps the dashboard displays.
const DateLayout = "1/2/2006, 3:04:05 PM"

// FileStore persists history items in a single JSON file. Writes are
// serialized by a mutex; the file holds the full item list, newest first.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates the data directory if needed and returns a store
// backed by history.json inside it.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{path: filepath.Join(dataDir, "history.json")}, nil
}

// List returns all items, newest first.
func (s *FileStore) List(_ context.Context) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

// Save inserts or replaces the item by id and trims the list to MaxItems.
func (s *FileStore) Save(_ context.Context, item Item) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = NewID()
	}
	if item.Date == "" {
		item.Date = time.Now().Format(DateLayout)
	}

	items, err := s.readAll()
	if err != nil {
		return Item{}, err
	}

	updated := make([]Item, 0, len(items)+1)
	updated = append(updated, item)
	for _, existing := range items {
		if existing.ID != item.ID {
			updated = append(updated, existing)
		}
	}
	if len(updated) > MaxItems {
		updated = updated[:MaxItems]
	}

	if err := s.writeAll(updated); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Update merges non-empty fields of item into the stored item with the same id.
func (s *FileStore) Update(_ context.Context, item Item) error {
	if item.ID == "" {
		return &ErrMissingID{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.readAll()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == item.ID {
			items[i] = merge(items[i], item)
		}
	}

	return s.writeAll(items)
}

// Delete removes the item with the given id.
func (s *FileStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return &ErrMissingID{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.readAll()
	if err != nil {
		return err
	}

	updated := make([]Item, 0, len(items))
	for _, existing := range items {
		if existing.ID != id {
			updated = append(updated, existing)
		}
	}

	return s.writeAll(updated)
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

// readAll loads the file, treating a missing or corrupt file as empty so a
// damaged history never blocks new saves.
func (s *FileStore) readAll() ([]Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Item{}, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return []Item{}, nil
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *FileStore) writeAll(items []Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// merge overlays non-empty fields of update onto base.
func merge(base, update Item) Item {
	if update.Date != "" {
		base.Date = update.Date
	}
	if update.Kind != "" {
		base.Kind = update.Kind
	}
	if update.Title != "" {
		base.Title = update.Title
	}
	if update.Score != 0 {
		base.Score = update.Score
	}
	if update.Grade != "" {
		base.Grade = update.Grade
	}
	if len(update.Payload) > 0 {
		base.Payload = update.Payload
	}
	return base
}
