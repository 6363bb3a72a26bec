// Package cli holds the cobra commands for the GreenBank demo ledger.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenbank/ledger/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "greenbank",
	Short: "GreenBank demo ledger service",
	Long: `GreenBank is a demo banking ledger: account balances, a transaction
history and the four money-movement operations (send, transfer, pay-bill,
deposit) over a single persisted blob. No real money moves anywhere.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(accountsCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// parseLogLevel maps env values to slog.Leveler.
func parseLogLevel(s string) slog.Leveler {
	switch s {
	case "DEBUG", "debug":
		return slog.LevelDebug
	case "WARN", "WARNING", "warn", "warning":
		return slog.LevelWarn
	case "ERROR", "ERR", "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildLogger constructs the process logger from configuration. LogFormat is
// already normalized to lower case by config.FromEnv. Default is JSON to
// stdout.
func buildLogger(cfg config.Config) *slog.Logger {
	level := parseLogLevel(cfg.LogLevel)
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
