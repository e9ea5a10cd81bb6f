package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/microshift-qe/test-analyzer/internal/models"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <version1> <version2>",
	Short: "Compare test results between two versions",
	Long: `Compute per-version totals, failure rates and failure reason
sets, and report which reasons are unique to each version.

Example:
  msta compare "4.17.0~0.nightly" "4.18.0~0.nightly"`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(context.Background())
	if err != nil {
		return err
	}

	cmp, err := analysis.CompareVersions(ds, args[0], args[1])
	if err != nil {
		return err
	}

	printVersionStats(cmp.Version1)
	fmt.Println()
	printVersionStats(cmp.Version2)
	fmt.Println()

	if len(cmp.UniqueToVersion1) > 0 {
		fmt.Printf("Only in %s: %v\n", cmp.Version1.Version, cmp.UniqueToVersion1)
	}
	if len(cmp.UniqueToVersion2) > 0 {
		fmt.Printf("Only in %s: %v\n", cmp.Version2.Version, cmp.UniqueToVersion2)
	}
	if len(cmp.CommonReasons) > 0 {
		fmt.Printf("Common reasons: %v\n", cmp.CommonReasons)
	}
	fmt.Printf("Better performer: %s\n", cmp.BetterPerformer)

	return nil
}

func printVersionStats(s models.VersionStats) {
	fmt.Printf("%s:\n", s.Version)
	fmt.Printf("  tests: %d, failures: %d, successes: %d\n", s.TotalTests, s.Failures, s.Successes)
	fmt.Printf("  failure rate: %.2f%%\n", s.FailureRate*100)
	if verbose {
		for _, name := range sortedPipelineNames(s.Pipelines) {
			ps := s.Pipelines[name]
			fmt.Printf("  %s: %d failed / %d total\n", name, ps.Failures, ps.Total)
		}
	}
}

// sortedPipelineNames returns the map keys in a stable order for printing.
func sortedPipelineNames(pipelines map[string]models.PipelineStats) []string {
	names := make([]string, 0, len(pipelines))
	for name := range pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
