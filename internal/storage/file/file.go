// Package file persists the aggregate as a single JSON file. It is the closest
// analogue of the browser blob the demo originally kept: one document, one key,
// reseed on anything unreadable.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/greenbank/ledger/internal/ledger"
)

// Store reads and writes the blob at a fixed path. Writes go through a temp
// file and rename so a crash mid-write cannot leave a half-written blob.
type Store struct {
	mu   sync.Mutex
	path string
}

// New constructs a file store at path. The parent directory must exist.
func New(path string) *Store {
	return &Store{path: path}
}

// Load implements bank.Repo. A missing or undecodable file reports no blob,
// which makes the service reseed.
func (s *Store) Load(_ context.Context) (ledger.Store, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
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

// Save implements bank.Repo.
func (s *Store) Save(_ context.Context, st ledger.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".greenbank-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Ready verifies the parent directory is reachable.
func (s *Store) Ready(_ context.Context) error {
	_, err := os.Stat(filepath.Dir(s.path))
	return err
}
