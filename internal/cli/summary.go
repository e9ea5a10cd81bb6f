package cli

import (
	"context"
	"fmt"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [version|pipeline|reason]",
	Short: "Summarize failures by version, pipeline or reason",
	Long: `Group all FAILURE results by a single key and report per-group
counts with the versions each group occurred in.

Examples:
  msta summary
  msta summary pipeline
  msta summary reason`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	groupByRaw := string(analysis.GroupByVersion)
	if len(args) == 1 {
		groupByRaw = args[0]
	}
	groupBy, err := analysis.ParseGroupBy(groupByRaw)
	if err != nil {
		return err
	}

	ds, err := loadDataset(context.Background())
	if err != nil {
		return err
	}

	summary := analysis.Summarize(ds, groupBy)

	fmt.Printf("%d failures across %d test runs, grouped by %s:\n\n",
		summary.TotalFailures, summary.TotalTestRuns, summary.GroupBy)
	for _, g := range summary.Groups {
		fmt.Printf("%4d  %s\n", g.Count, g.Key)
		if verbose {
			fmt.Printf("      versions: %v\n", g.Versions)
		}
	}

	return nil
}
