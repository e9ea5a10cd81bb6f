package cli

import (
	"context"
	"fmt"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/spf13/cobra"
)

var searchVersion string

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search failure reasons",
	Long: `Case-insensitive substring search over failure reasons.

Examples:
  msta search "ssh connection"
  msta search timeout --version "4.18"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchVersion, "version", "", "filter by MicroShift version (substring)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(context.Background())
	if err != nil {
		return err
	}

	report, err := analysis.SearchFailureReasons(ds, analysis.SearchOptions{
		Term:    args[0],
		Version: searchVersion,
	})
	if err != nil {
		return err
	}

	if len(report.Matches) == 0 {
		fmt.Println("No matches found.")
		return nil
	}

	fmt.Printf("Found %d matches:\n\n", len(report.Matches))
	for i, m := range report.Matches {
		fmt.Printf("%d. %s [%s]\n", i+1, m.PipelineName, m.Version)
		fmt.Printf("   %s run %s\n", m.Date, m.RunID)
		fmt.Printf("   %s\n", m.FailureReason)
		fmt.Println()
	}

	return nil
}
