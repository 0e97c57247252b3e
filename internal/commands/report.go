package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/KJone1/shekel/internal/config"
	"github.com/KJone1/shekel/internal/report"
	"github.com/KJone1/shekel/internal/rules"
	"github.com/KJone1/shekel/internal/statement"
)

func newReportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the Markdown expense report from the processed workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if out == "" {
				out = cfg.Files.Report
			}
			return runReport(cfg, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output report file (default from config)")

	return cmd
}

func runReport(cfg *config.Config, output string) error {
	txns, err := statement.ReadProcessed(cfg.Files.Workbook)
	if err != nil {
		return err
	}

	rentRanges := cfg.RentRanges()
	rep := report.Build(txns, rules.ReportTable(rentRanges), rules.ReportCategories(), report.Options{
		Merchant:       cfg.Insights.Merchant,
		NotablePercent: decimal.NewFromFloat(cfg.Insights.NotablePercent),
		RentRanges:     rentRanges,
	})

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating report %s: %w", output, err)
	}
	defer f.Close()

	if err := rep.Render(f); err != nil {
		return fmt.Errorf("writing report %s: %w", output, err)
	}

	color.Green("Successfully generated %s", output)
	fmt.Printf("Total Spending: %s\n", rep.TotalSpent.StringFixed(2))
	fmt.Printf("Total Transactions: %d\n", rep.TotalTransactions)
	return nil
}
