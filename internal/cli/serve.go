package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenbank/ledger/internal/config"
	"github.com/greenbank/ledger/internal/events/kafka"
	"github.com/greenbank/ledger/internal/httpapi"
	"github.com/greenbank/ledger/internal/notify"
	"github.com/greenbank/ledger/internal/service/bank"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := buildLogger(cfg)
	slog.SetDefault(logger)

	repo, closeRepo, err := openRepo(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc := bank.New(repo)

	var notifier notify.Notifier = notify.NewLog(logger)
	if len(cfg.KafkaBrokers) > 0 {
		pub := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		defer pub.Close()
		notifier = pub
		logger.Info("event publisher: kafka", "brokers", cfg.KafkaBrokers)
	}

	if cfg.DevSeed {
		logDevSeed(ctx, svc, logger)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.New(svc, repo, notifier, logger).Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("ledger service listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// logDevSeed forces a first load (seeding the fixture if the blob is absent)
// and logs the demo account ids for easy copy/paste.
func logDevSeed(ctx context.Context, svc bank.Service, l *slog.Logger) {
	accounts, err := svc.Accounts(ctx)
	if err != nil {
		l.Error("dev seed failed", "err", err)
		return
	}
	ids := map[string]string{}
	for _, a := range accounts {
		ids[a.ID] = a.Balance.StringFixed(2)
	}
	l.Info("DEV seed", "accounts", ids)
}
