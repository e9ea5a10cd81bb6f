package cli

import (
	"context"
	"fmt"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/spf13/cobra"
)

var (
	trendsPipeline string
	trendsDays     int
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show per-day failure counts over a recent window",
	Long: `Bucket failure counts by calendar day, anchored at the most
recent run date in the sheet.

Examples:
  msta trends
  msta trends --pipeline "microshift-nightly/install" --days 14`,
	Args: cobra.NoArgs,
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().StringVar(&trendsPipeline, "pipeline", "", "exact pipeline name to analyze")
	trendsCmd.Flags().IntVar(&trendsDays, "days", analysis.DefaultTrendDays, "lookback window in days")
}

func runTrends(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(context.Background())
	if err != nil {
		return err
	}

	report := analysis.PipelineFailureTrends(ds, analysis.TrendOptions{
		Pipeline: trendsPipeline,
		Days:     trendsDays,
	})

	if len(report.Points) == 0 && report.UndatedTotal == 0 {
		fmt.Println("No results in window.")
		return nil
	}

	fmt.Printf("Failure trend over the last %d days:\n\n", report.Days)
	for _, p := range report.Points {
		fmt.Printf("%s  %3d failed / %3d total\n", p.Day, p.Failures, p.Total)
	}
	if report.UndatedTotal > 0 {
		fmt.Printf("\nundated: %d failed / %d total (rows with unparseable dates)\n",
			report.UndatedFailures, report.UndatedTotal)
	}

	return nil
}
