package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenbank/ledger/internal/config"
	"github.com/greenbank/ledger/internal/service/bank"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Print account ids and balances",
	RunE:  runAccounts,
}

func runAccounts(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.Load()
	logger := buildLogger(cfg)

	repo, closeRepo, err := openRepo(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	accounts, err := bank.New(repo).Accounts(ctx)
	if err != nil {
		return err
	}
	for _, a := range accounts {
		fmt.Printf("%-6s %-24s %12s\n", a.ID, a.Name, a.Balance.StringFixed(2))
	}
	return nil
}
