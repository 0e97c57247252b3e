package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KJone1/shekel/internal/config"
	"github.com/KJone1/shekel/internal/statement"
)

func newProcessCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "process <statement.xlsx>",
		Short: "Clean a raw statement export into the processed workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if out == "" {
				out = cfg.Files.Workbook
			}
			return runProcess(cfg, args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output workbook (default from config)")

	return cmd
}

func runProcess(cfg *config.Config, input, output string) error {
	raw, err := statement.ReadRaw(input)
	if err != nil {
		return err
	}

	txns := statement.Clean(raw, cfg.Overrides)
	if len(txns) == 0 {
		return fmt.Errorf("statement %s: no rows with an amount", input)
	}

	if err := statement.WriteWorkbook(output, txns); err != nil {
		return err
	}

	color.Green("Processed %d transactions into %s", len(txns), output)
	return nil
}
