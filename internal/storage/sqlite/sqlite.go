// Package sqlite persists the aggregate in a local SQLite database. The blob
// lives in a single keyed row, mirroring the one-key layout of the other
// backends; SQLite only adds durability on disk without a server.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"github.com/greenbank/ledger/internal/ledger"
)

// Store wraps a database handle. All methods are safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS blobs (
			key        TEXT PRIMARY KEY,
			data       BLOB NOT NULL,
			updated_at TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Ready pings the database.
func (s *Store) Ready(ctx context.Context) error { return s.db.PingContext(ctx) }

// Load implements bank.Repo. A missing row or undecodable payload reports no
// blob so the service reseeds.
func (s *Store) Load(ctx context.Context) (ledger.Store, bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM blobs WHERE key = ?`, ledger.StoreKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.Store{}, false, nil
	}
	if err != nil {
		return ledger.Store{}, false, err
	}
	var st ledger.Store
	if err := json.Unmarshal(raw, &st); err != nil {
		return ledger.Store{}, false, nil
	}
	return st, true, nil
}

// Save implements bank.Repo via an upsert on the fixed key.
func (s *Store) Save(ctx context.Context, st ledger.Store) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		ledger.StoreKey, raw, time.Now().UTC().Format(time.RFC3339))
	return err
}
