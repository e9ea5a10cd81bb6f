package analysis

import (
	"sort"
	"time"

	"github.com/microshift-qe/test-analyzer/internal/models"
)

// DefaultFailureLimit caps the failed-pipelines listing when the caller
// does not supply a limit.
const DefaultFailureLimit = 50

// FailuresOptions parameterizes FailedPipelinesByVersion.
type FailuresOptions struct {
	// Version filters runs by substring containment. Empty matches all.
	Version string
	// Limit caps the number of returned failures. Zero or negative means
	// DefaultFailureLimit.
	Limit int
}

// FailedPipelinesByVersion lists FAILURE components, most recent run date
// first, ties broken by sheet row order. The per-version totals cover all
// matching failures, before the limit is applied. No matches yields an
// empty listing, not an error.
func FailedPipelinesByVersion(ds *models.Dataset, opts FailuresOptions) models.FailureListing {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultFailureLimit
	}

	listing := models.FailureListing{
		VersionFilter: opts.Version,
		TotalRuns:     len(ds.Runs),
		SkippedRows:   ds.SkippedRows,
		Failures:      []models.FailedPipeline{},
		ByVersion:     []models.VersionFailures{},
	}

	type entry struct {
		fp   models.FailedPipeline
		date time.Time
	}
	var entries []entry
	totals := make(map[string]*models.VersionFailures)
	var versionOrder []string

	for i := range ds.Runs {
		run := &ds.Runs[i]
		if !matchesVersion(run, opts.Version) {
			continue
		}
		for _, c := range run.Components {
			if !c.Failed() {
				continue
			}
			entries = append(entries, entry{
				fp: models.FailedPipeline{
					Version:       run.Version,
					RunID:         run.RunID,
					Date:          run.RawDate,
					PipelineName:  c.PipelineName,
					Architecture:  c.Architecture,
					TestType:      c.TestType,
					Framework:     c.Framework,
					FailureReason: c.FailureReason,
				},
				date: run.RunDate,
			})

			vf, ok := totals[run.Version]
			if !ok {
				vf = &models.VersionFailures{Version: run.Version}
				totals[run.Version] = vf
				versionOrder = append(versionOrder, run.Version)
			}
			vf.TotalFailures++
			if len(vf.TestDates) == 0 || vf.TestDates[len(vf.TestDates)-1] != run.RawDate {
				vf.TestDates = append(vf.TestDates, run.RawDate)
			}
		}
	}

	// Most recent first; stable sort preserves sheet row order for ties
	// and keeps undated runs (zero time) last.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].date.After(entries[j].date)
	})

	for _, e := range entries {
		if len(listing.Failures) >= limit {
			break
		}
		listing.Failures = append(listing.Failures, e.fp)
	}
	for _, v := range versionOrder {
		listing.ByVersion = append(listing.ByVersion, *totals[v])
	}

	return listing
}
