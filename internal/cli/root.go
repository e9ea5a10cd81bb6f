// Package cli provides the command-line interface for ad-hoc queries
// against the MicroShift test-run sheet.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/microshift-qe/test-analyzer/internal/config"
	"github.com/microshift-qe/test-analyzer/internal/models"
	"github.com/microshift-qe/test-analyzer/internal/parser"
	"github.com/microshift-qe/test-analyzer/internal/sheets"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose   bool
	sheetName string

	// Global config and sheet source
	cfg    config.Config
	source sheets.Source
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "msta",
	Short: "Query MicroShift CI test results",
	Long: `msta analyzes the MicroShift QE test-run spreadsheet: failed
pipelines per version, failure summaries, per-pipeline trends, failure
reason search, and version-to-version comparison.

Credentials come from GOOGLE_CLIENT_EMAIL and GOOGLE_PRIVATE_KEY.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()

		client, err := sheets.NewClient(context.Background(), sheets.Config{
			SpreadsheetID: cfg.SpreadsheetID,
			ClientEmail:   cfg.ClientEmail,
			PrivateKey:    cfg.PrivateKey,
			DefaultSheet:  cfg.SheetName,
		}, nil)
		if err != nil {
			return fmt.Errorf("connect to sheet: %w", err)
		}
		source = client

		return nil
	},
}

// loadDataset runs one fetch-and-parse cycle for a CLI command.
func loadDataset(ctx context.Context) (*models.Dataset, error) {
	table, err := source.Fetch(ctx, sheetName)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	ds := parser.Build(nil, table.Header, table.Rows)
	if verbose && ds.SkippedRows > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d unparseable rows\n", ds.SkippedRows)
	}
	return ds, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "sheet tab to analyze (default: current month)")

	// Add subcommands
	rootCmd.AddCommand(failuresCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(compareCmd)
}
