package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenbank/ledger/internal/ledger"
)

func getTestDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres store tests")
	}
	return dsn
}

func mustOpen(t *testing.T, dsn string) *Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func truncate(t *testing.T, s *Store) {
	t.Helper()
	if _, err := s.pool.Exec(context.Background(), `truncate ledger_blobs`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func TestLoadMissingRow(t *testing.T) {
	s := mustOpen(t, getTestDSN(t))
	defer s.Close()
	truncate(t, s)

	_, ok, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatal("empty table reported a blob")
	}
}

func TestSaveLoadUpsert(t *testing.T) {
	s := mustOpen(t, getTestDSN(t))
	defer s.Close()
	truncate(t, s)
	ctx := context.Background()

	if err := s.Save(ctx, ledger.Seed()); err != nil {
		t.Fatalf("save: %v", err)
	}
	st := ledger.Seed()
	st.Account("chq").Balance = decimal.RequireFromString("42.00")
	if err := s.Save(ctx, st); err != nil {
		t.Fatalf("second save: %v", err)
	}

	back, ok, err := s.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if !back.Account("chq").Balance.Equal(decimal.RequireFromString("42.00")) {
		t.Fatalf("upsert did not replace blob: %s", back.Account("chq").Balance)
	}
}
