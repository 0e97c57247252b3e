package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KJone1/shekel/internal/config"
	"github.com/KJone1/shekel/internal/export"
	"github.com/KJone1/shekel/internal/rules"
	"github.com/KJone1/shekel/internal/statement"
)

func newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the budget-app import CSV from the processed workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if out == "" {
				out = cfg.Files.CSV
			}
			return runExport(cfg, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output CSV file (default from config)")

	return cmd
}

func runExport(cfg *config.Config, output string) error {
	txns, err := statement.ReadProcessed(cfg.Files.Workbook)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	if err := export.Write(f, txns, rules.ExportTable(cfg.RentRanges())); err != nil {
		return fmt.Errorf("exporting to %s: %w", output, err)
	}

	color.Green("Successfully created %s with budget categories", output)
	return nil
}
