// Package history persists analysis snapshots saved from the dashboard.
// Two implementations exist: a flat JSON file (the default) and PostgreSQL.
// Both keep the newest items first and retain at most 50 entries.
package history

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"math/big"
)

// MaxItems is the retention cap applied on every save.
const MaxItems = 50

// idLength is the length of generated item ids.
const idLength = 10

// Item is one saved analysis snapshot. Payload carries the full result the
// dashboard stored; the envelope fields exist for listing without decoding.
type Item struct {
	ID      string          `json:"id"`
	Date    string          `json:"date"`
	Kind    string          `json:"kind,omitempty"`
	Title   string          `json:"title,omitempty"`
	Score   int             `json:"score,omitempty"`
	Grade   string          `json:"grade,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Store is the persistence contract for analysis history.
type Store interface {
	// List returns all items, newest first.
	List(ctx context.Context) ([]Item, error)
	// Save inserts or replaces the item by id, prepends it, and trims the
	// store to MaxItems. Missing id and date are filled in.
	Save(ctx context.Context, item Item) (Item, error)
	// Update merges the given fields into the stored item with the same id.
	Update(ctx context.Context, item Item) error
	// Delete removes the item with the given id. Deleting an unknown id is
	// not an error.
	Delete(ctx context.Context, id string) error
	// Close releases any resources held by the store.
	Close() error
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates a random 10-character base-36 identifier.
func NewID() string {
	b := make([]byte, idLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(idAlphabet))))
		if err != nil {
			// crypto/rand failing means the platform is broken; fall back to
			// a fixed character rather than panicking on a history save.
			b[i] = '0'
			continue
		}
		b[i] = idAlphabet[n.Int64()]
	}
	return string(b)
}
