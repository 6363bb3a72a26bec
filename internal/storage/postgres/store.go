// Package postgres provides a pgx-backed blob backend. Like the other
// backends it stores the whole aggregate under the single fixed key; Postgres
// is only the durable host for the blob, not a relational model of it.
package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenbank/ledger/internal/ledger"
)

// Store holds a pgx connection pool. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string, verifies
// connectivity and ensures the blob table exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if _, err := pool.Exec(ctx, `
		create table if not exists ledger_blobs (
			key        text primary key,
			data       jsonb not null,
			updated_at timestamptz not null default now()
		)`); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// Load implements bank.Repo. A missing row or undecodable payload reports no
// blob so the service reseeds.
func (s *Store) Load(ctx context.Context) (ledger.Store, bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`select data from ledger_blobs where key = $1`, ledger.StoreKey).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
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
	_, err = s.pool.Exec(ctx, `
		insert into ledger_blobs (key, data, updated_at) values ($1, $2, now())
		on conflict (key) do update set data = excluded.data, updated_at = now()`,
		ledger.StoreKey, raw)
	return err
}
