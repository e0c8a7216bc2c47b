package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists history items in PostgreSQL. It is selected over the file
// store when DATABASE_URL is configured.
type PGStore struct {
	pool *pgxpool.Pool
}

// ConnectPG establishes a connection pool and ensures the history table exists.
func ConnectPG(ctx context.Context, databaseURL string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PGStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PGStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS history_items (
			id         TEXT PRIMARY KEY,
			date       TEXT NOT NULL,
			kind       TEXT NOT NULL DEFAULT '',
			title      TEXT NOT NULL DEFAULT '',
			score      INT NOT NULL DEFAULT 0,
			grade      TEXT NOT NULL DEFAULT '',
			payload    JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	return nil
}

// List returns all items, newest first.
func (s *PGStore) List(ctx context.Context) ([]Item, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, date, kind, title, score, grade, payload
		 FROM history_items ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Date, &item.Kind, &item.Title, &item.Score, &item.Grade, &item.Payload); err != nil {
			return nil, fmt.Errorf("failed to scan history item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Save upserts the item and trims the table to MaxItems by recency.
func (s *PGStore) Save(ctx context.Context, item Item) (Item, error) {
	if item.ID == "" {
		item.ID = NewID()
	}
	if item.Date == "" {
		item.Date = time.Now().Format(DateLayout)
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO history_items (id, date, kind, title, score, grade, payload)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
			date = $2, kind = $3, title = $4, score = $5, grade = $6,
			payload = $7, created_at = NOW()`,
		item.ID, item.Date, item.Kind, item.Title, item.Score, item.Grade, item.Payload)
	if err != nil {
		return Item{}, fmt.Errorf("failed to save history item: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`DELETE FROM history_items WHERE id NOT IN (
			SELECT id FROM history_items ORDER BY created_at DESC LIMIT $1
		)`, MaxItems)
	if err != nil {
		return Item{}, fmt.Errorf("failed to trim history: %w", err)
	}

	return item, nil
}

// Update merges non-empty fields into the stored item with the same id.
func (s *PGStore) Update(ctx context.Context, item Item) error {
	if item.ID == "" {
		return &ErrMissingID{}
	}

	_, err := s.pool.Exec(ctx,
		`UPDATE history_items SET
			date  = COALESCE(NULLIF($2, ''), date),
			kind  = COALESCE(NULLIF($3, ''), kind),
			title = COALESCE(NULLIF($4, ''), title),
			score = CASE WHEN $5 = 0 THEN score ELSE $5 END,
			grade = COALESCE(NULLIF($6, ''), grade),
			payload = COALESCE($7, payload)
		 WHERE id = $1`,
		item.ID, item.Date, item.Kind, item.Title, item.Score, item.Grade, item.Payload)
	if err != nil {
		return fmt.Errorf("failed to update history item: %w", err)
	}
	return nil
}

// Delete removes the item with the given id.
func (s *PGStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &ErrMissingID{}
	}

	_, err := s.pool.Exec(ctx, `DELETE FROM history_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete history item: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PGStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
