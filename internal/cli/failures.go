package cli

import (
	"context"
	"fmt"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/spf13/cobra"
)

var (
	failuresVersion string
	failuresLimit   int
)

var failuresCmd = &cobra.Command{
	Use:   "failures",
	Short: "List failed pipelines, most recent first",
	Long: `List FAILURE pipeline results with their run context.

Examples:
  msta failures
  msta failures --version "4.18.0~0.nightly"
  msta failures --limit 10`,
	Args: cobra.NoArgs,
	RunE: runFailures,
}

func init() {
	failuresCmd.Flags().StringVar(&failuresVersion, "version", "", "filter by MicroShift version (substring)")
	failuresCmd.Flags().IntVarP(&failuresLimit, "limit", "n", analysis.DefaultFailureLimit, "max results")
}

func runFailures(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(context.Background())
	if err != nil {
		return err
	}

	listing := analysis.FailedPipelinesByVersion(ds, analysis.FailuresOptions{
		Version: failuresVersion,
		Limit:   failuresLimit,
	})

	if len(listing.Failures) == 0 {
		fmt.Println("No failures found.")
		return nil
	}

	fmt.Printf("Found %d failures across %d runs:\n\n", len(listing.Failures), listing.TotalRuns)
	for i, f := range listing.Failures {
		fmt.Printf("%d. %s [%s]\n", i+1, f.PipelineName, f.Version)
		fmt.Printf("   %s %s/%s\n", f.Date, f.Architecture, f.Framework)
		fmt.Printf("   %s\n", f.FailureReason)
		fmt.Println()
	}

	if verbose {
		for _, v := range listing.ByVersion {
			fmt.Printf("%s: %d failures on %d dates\n", v.Version, v.TotalFailures, len(v.TestDates))
		}
	}

	return nil
}
