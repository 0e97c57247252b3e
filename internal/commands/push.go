package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KJone1/shekel/internal/actual"
	"github.com/KJone1/shekel/internal/config"
)

func newPushCommand() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Import the exported CSV into the Actual budget server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runPush(cmd, cfg, account)
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "target account name (default: first account)")

	return cmd
}

func runPush(cmd *cobra.Command, cfg *config.Config, account string) error {
	// Environment config is a pre-condition: fail before touching the
	// CSV or the network.
	env, err := config.LoadActual()
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.Files.CSV)
	if err != nil {
		return fmt.Errorf("opening %s (run `shekel export` first): %w", cfg.Files.CSV, err)
	}
	defer f.Close()

	fmt.Printf("Connecting to budget: %s\n", env.BudgetID)
	client := actual.NewHTTPClient(env.ServerURL, env.Password, env.BudgetID)
	importer := actual.NewImporter(client, cmd.ErrOrStderr())

	res, err := importer.Run(cmd.Context(), f, account)
	if err != nil {
		return err
	}

	if res.Imported == 0 {
		fmt.Println("No transactions found to import.")
		return nil
	}

	color.Green("Imported %d transactions into %q (%d failed)", res.Imported, res.Account, res.Failed)
	return nil
}
