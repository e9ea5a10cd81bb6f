package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/microshift-qe/test-analyzer/internal/models"
)

// SearchOptions parameterizes SearchFailureReasons.
type SearchOptions struct {
	// Term is matched case-insensitively as a substring of failure
	// reasons. Must not be empty.
	Term string
	// Version pre-filters runs by substring containment. Empty matches
	// all.
	Version string
}

// SearchFailureReasons finds FAILURE components whose reason contains the
// search term, ordered by run date descending. An empty term is an
// ErrInvalidArgument; a term matching nothing returns an empty report.
func SearchFailureReasons(ds *models.Dataset, opts SearchOptions) (models.SearchReport, error) {
	if strings.TrimSpace(opts.Term) == "" {
		return models.SearchReport{}, fmt.Errorf("%w: search term must not be empty", ErrInvalidArgument)
	}
	term := strings.ToLower(opts.Term)

	report := models.SearchReport{
		SearchTerm:    opts.Term,
		VersionFilter: opts.Version,
		SkippedRows:   ds.SkippedRows,
		Matches:       []models.SearchMatch{},
	}

	type entry struct {
		match models.SearchMatch
		date  time.Time
	}
	var entries []entry

	for i := range ds.Runs {
		run := &ds.Runs[i]
		if !matchesVersion(run, opts.Version) {
			continue
		}
		for _, c := range run.Components {
			if !c.Failed() {
				continue
			}
			if !strings.Contains(strings.ToLower(c.FailureReason), term) {
				continue
			}
			entries = append(entries, entry{
				match: models.SearchMatch{
					Date:          run.RawDate,
					Version:       run.Version,
					RunID:         run.RunID,
					PipelineName:  c.PipelineName,
					Architecture:  c.Architecture,
					TestType:      c.TestType,
					Framework:     c.Framework,
					FailureReason: c.FailureReason,
				},
				date: run.RunDate,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].date.After(entries[j].date)
	})
	for _, e := range entries {
		report.Matches = append(report.Matches, e.match)
	}

	return report, nil
}
