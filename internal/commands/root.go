// Package commands wires the pipeline stages into the shekel CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KJone1/shekel/internal/buildinfo"
	"github.com/KJone1/shekel/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "shekel",
		Short:   "Clean, categorize, report, and push credit-card statements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "shekel.yaml", "pipeline configuration file")

	rootCmd.AddCommand(newProcessCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newPushCommand())

	return rootCmd
}

// loadConfig resolves the --config flag. An absent file falls back to the
// built-in defaults; a present but malformed file is an error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.LoadOrDefault(path)
}
