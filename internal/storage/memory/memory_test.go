package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/greenbank/ledger/internal/ledger"
)

func TestLoadBeforeFirstSave(t *testing.T) {
	s := New()
	_, ok, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatal("empty store reported a blob")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Save(ctx, ledger.Seed()); err != nil {
		t.Fatalf("save: %v", err)
	}
	st, ok, err := s.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if len(st.Accounts) != 2 || !st.Accounts[0].Balance.Equal(decimal.RequireFromString("1490.12")) {
		t.Fatalf("unexpected state: %+v", st.Accounts)
	}
}

func TestLoadedStateDoesNotAliasStored(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.Save(ctx, ledger.Seed()); err != nil {
		t.Fatalf("save: %v", err)
	}

	st, _, _ := s.Load(ctx)
	st.Account("chq").Balance = decimal.Zero
	st.Payees[0].Name = "changed"

	fresh, _, _ := s.Load(ctx)
	if !fresh.Account("chq").Balance.Equal(decimal.RequireFromString("1490.12")) {
		t.Fatal("caller mutation leaked into stored state")
	}
	if fresh.Payees[0].Name != "City Hydro" {
		t.Fatal("caller mutation leaked into stored payees")
	}
}

func TestReset(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.Save(ctx, ledger.Seed()); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Reset()
	if _, ok, _ := s.Load(ctx); ok {
		t.Fatal("reset store still reports a blob")
	}
}
