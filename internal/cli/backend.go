package cli

import (
	"context"
	"log/slog"

	"github.com/greenbank/ledger/internal/config"
	"github.com/greenbank/ledger/internal/service/bank"
	"github.com/greenbank/ledger/internal/storage/file"
	"github.com/greenbank/ledger/internal/storage/memory"
	"github.com/greenbank/ledger/internal/storage/postgres"
	"github.com/greenbank/ledger/internal/storage/sqlite"
)

// openRepo picks the blob backend from configuration: postgres, sqlite, file,
// then in-memory. The returned func releases whatever was opened.
func openRepo(ctx context.Context, cfg config.Config, log *slog.Logger) (bank.Repo, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		pg, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("storage backend: postgres")
		return pg, pg.Close, nil
	case cfg.SQLitePath != "":
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("storage backend: sqlite", "path", cfg.SQLitePath)
		return db, func() { _ = db.Close() }, nil
	case cfg.DataFile != "":
		log.Info("storage backend: file", "path", cfg.DataFile)
		return file.New(cfg.DataFile), func() {}, nil
	default:
		log.Info("storage backend: memory")
		return memory.New(), func() {}, nil
	}
}
