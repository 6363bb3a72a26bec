// Package memory provides an in-process blob backend used for development and
// tests. It keeps code paths easy to follow while allowing a real backend to
// be plugged in.
package memory

import (
	"context"
	"sync"

	"github.com/greenbank/ledger/internal/ledger"
)

// Store holds the aggregate in memory. It is guarded by an RWMutex and hands
// out deep copies so callers never alias the stored state.
type Store struct {
	mu      sync.RWMutex
	present bool
	data    ledger.Store
}

// New constructs an empty in-memory store: the first Load reports no blob.
func New() *Store {
	return &Store{}
}

// Load implements bank.Repo.
func (s *Store) Load(_ context.Context) (ledger.Store, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.present {
		return ledger.Store{}, false, nil
	}
	return s.data.Clone(), true, nil
}

// Save implements bank.Repo.
func (s *Store) Save(_ context.Context, st ledger.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = st.Clone()
	s.present = true
	return nil
}

// Reset drops the blob entirely, as if it had never been written.
func (s *Store) Reset() {
	s.mu.Lock()
	s.present = false
	s.data = ledger.Store{}
	s.mu.Unlock()
}

// Ready implements the optional readiness check; memory is always ready.
func (s *Store) Ready(_ context.Context) error { return nil }
