package analysis

import (
	"fmt"
	"sort"

	"github.com/microshift-qe/test-analyzer/internal/models"
)

// CompareVersions computes per-version test statistics independently for
// both versions and contrasts their failure reason sets. A version with
// no matching runs reports zero totals; absence of data is a reportable
// state, not an error. Only missing version arguments fail.
func CompareVersions(ds *models.Dataset, version1, version2 string) (models.VersionComparison, error) {
	if version1 == "" || version2 == "" {
		return models.VersionComparison{}, fmt.Errorf("%w: both versions must be supplied", ErrInvalidArgument)
	}

	stats1, reasons1 := versionStats(ds, version1)
	stats2, reasons2 := versionStats(ds, version2)

	cmp := models.VersionComparison{
		SkippedRows:      ds.SkippedRows,
		Version1:         stats1,
		Version2:         stats2,
		UniqueToVersion1: difference(reasons1, reasons2),
		UniqueToVersion2: difference(reasons2, reasons1),
		CommonReasons:    intersection(reasons1, reasons2),
	}

	// Lower failure rate wins; version2 wins exact ties.
	if stats1.FailureRate < stats2.FailureRate {
		cmp.BetterPerformer = version1
	} else {
		cmp.BetterPerformer = version2
	}

	return cmp, nil
}

// versionStats aggregates every component of the runs matching one
// version. Unknown-status components count toward totals but neither
// failures nor successes.
func versionStats(ds *models.Dataset, version string) (models.VersionStats, map[string]struct{}) {
	stats := models.VersionStats{
		Version:        version,
		Pipelines:      make(map[string]models.PipelineStats),
		FailureReasons: []string{},
	}
	reasons := make(map[string]struct{})

	for i := range ds.Runs {
		run := &ds.Runs[i]
		if !matchesVersion(run, version) {
			continue
		}
		for _, c := range run.Components {
			stats.TotalTests++
			ps := stats.Pipelines[c.PipelineName]
			ps.Total++

			switch c.Status {
			case models.StatusFailure:
				stats.Failures++
				ps.Failures++
				reasons[c.FailureReason] = struct{}{}
			case models.StatusSuccess:
				stats.Successes++
				ps.Successes++
			}
			stats.Pipelines[c.PipelineName] = ps
		}
	}

	if stats.TotalTests > 0 {
		stats.FailureRate = float64(stats.Failures) / float64(stats.TotalTests)
		stats.SuccessRate = float64(stats.Successes) / float64(stats.TotalTests)
	}
	for r := range reasons {
		stats.FailureReasons = append(stats.FailureReasons, r)
	}
	sort.Strings(stats.FailureReasons)

	return stats, reasons
}

func difference(a, b map[string]struct{}) []string {
	out := []string{}
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func intersection(a, b map[string]struct{}) []string {
	out := []string{}
	for k := range a {
		if _, ok := b[k]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
