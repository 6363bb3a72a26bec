package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenbank/ledger/internal/config"
	"github.com/greenbank/ledger/internal/service/bank"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all state and reseed the demo fixture",
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.Load()
	logger := buildLogger(cfg)

	repo, closeRepo, err := openRepo(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	if err := bank.New(repo).Reset(ctx); err != nil {
		return err
	}
	fmt.Println("ledger reset to the demo seed")
	return nil
}
