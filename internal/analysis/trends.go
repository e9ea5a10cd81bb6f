package analysis

import (
	"sort"
	"time"

	"github.com/microshift-qe/test-analyzer/internal/models"
)

// DefaultTrendDays is the lookback window when the caller does not supply
// one.
const DefaultTrendDays = 30

// dayLayout formats trend bucket keys.
const dayLayout = "2006-01-02"

// TrendOptions parameterizes PipelineFailureTrends.
type TrendOptions struct {
	// Pipeline restricts the trend to components whose pipeline name
	// matches exactly. Empty covers all pipelines.
	Pipeline string
	// Days is the lookback window, anchored at the latest run date in the
	// dataset. Zero or negative means DefaultTrendDays.
	Days int
}

// PipelineFailureTrends buckets failure counts by calendar day over the
// most recent window of the dataset. The cutoff is anchored at the latest
// parsed run date, not the wall clock, so stale sheets still produce a
// meaningful trend. Runs without a parseable date cannot be placed on the
// timeline and are reported in the undated counters instead.
func PipelineFailureTrends(ds *models.Dataset, opts TrendOptions) models.TrendReport {
	days := opts.Days
	if days <= 0 {
		days = DefaultTrendDays
	}

	report := models.TrendReport{
		Pipeline:    opts.Pipeline,
		Days:        days,
		SkippedRows: ds.SkippedRows,
		Points:      []models.TrendPoint{},
	}

	var latest time.Time
	for i := range ds.Runs {
		if ds.Runs[i].RunDate.After(latest) {
			latest = ds.Runs[i].RunDate
		}
	}
	cutoff := latest.AddDate(0, 0, -days)

	buckets := make(map[string]*models.TrendPoint)

	for i := range ds.Runs {
		run := &ds.Runs[i]

		if !run.Dated() {
			for _, c := range run.Components {
				if opts.Pipeline != "" && c.PipelineName != opts.Pipeline {
					continue
				}
				report.UndatedTotal++
				if c.Failed() {
					report.UndatedFailures++
				}
			}
			continue
		}
		if run.RunDate.Before(cutoff) {
			continue
		}

		day := run.RunDate.Format(dayLayout)
		for _, c := range run.Components {
			if opts.Pipeline != "" && c.PipelineName != opts.Pipeline {
				continue
			}
			point, ok := buckets[day]
			if !ok {
				point = &models.TrendPoint{Day: day}
				buckets[day] = point
			}
			point.Total++
			if c.Failed() {
				point.Failures++
			}
		}
	}

	for _, point := range buckets {
		report.Points = append(report.Points, *point)
	}
	sort.Slice(report.Points, func(i, j int) bool {
		return report.Points[i].Day < report.Points[j].Day
	})

	return report
}
