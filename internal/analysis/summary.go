package analysis

import (
	"fmt"
	"sort"

	"github.com/microshift-qe/test-analyzer/internal/models"
)

// GroupBy selects the grouping key of the failure summary. It is a closed
// enum: each variant has its own pure key function.
type GroupBy string

const (
	GroupByVersion  GroupBy = "version"
	GroupByPipeline GroupBy = "pipeline"
	GroupByReason   GroupBy = "reason"
)

// ParseGroupBy validates a caller-supplied group_by value.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(s) {
	case GroupByVersion, GroupByPipeline, GroupByReason:
		return GroupBy(s), nil
	}
	return "", fmt.Errorf("%w: group_by %q (want version, pipeline or reason)", ErrInvalidArgument, s)
}

// groupKey returns the key function for a GroupBy variant. Reason keys
// are whitespace-normalized; grouping is otherwise exact-string.
func groupKey(g GroupBy) func(run *models.PipelineRun, c models.ComponentResult) string {
	switch g {
	case GroupByPipeline:
		return func(_ *models.PipelineRun, c models.ComponentResult) string {
			return c.PipelineName
		}
	case GroupByReason:
		return func(_ *models.PipelineRun, c models.ComponentResult) string {
			return normalizeWhitespace(c.FailureReason)
		}
	default:
		return func(run *models.PipelineRun, _ models.ComponentResult) string {
			return run.Version
		}
	}
}

// Summarize groups every FAILURE component in the dataset by the given
// key and reports, per group, the count and the distinct versions it
// occurred in. Grouped counts always sum to the dataset's total FAILURE
// component count.
func Summarize(ds *models.Dataset, groupBy GroupBy) models.FailureSummary {
	key := groupKey(groupBy)

	summary := models.FailureSummary{
		GroupBy:       string(groupBy),
		TotalTestRuns: len(ds.Runs),
		SkippedRows:   ds.SkippedRows,
		Groups:        []models.FailureGroup{},
	}

	counts := make(map[string]int)
	versions := make(map[string]map[string]struct{})

	for i := range ds.Runs {
		run := &ds.Runs[i]
		for _, c := range run.Components {
			if !c.Failed() {
				continue
			}
			summary.TotalFailures++
			k := key(run, c)
			counts[k]++
			if versions[k] == nil {
				versions[k] = make(map[string]struct{})
			}
			versions[k][run.Version] = struct{}{}
		}
	}

	for k, n := range counts {
		group := models.FailureGroup{Key: k, Count: n}
		for v := range versions[k] {
			group.Versions = append(group.Versions, v)
		}
		sort.Strings(group.Versions)
		summary.Groups = append(summary.Groups, group)
	}

	// Largest groups first, key order for ties, so output is deterministic.
	sort.Slice(summary.Groups, func(i, j int) bool {
		if summary.Groups[i].Count != summary.Groups[j].Count {
			return summary.Groups[i].Count > summary.Groups[j].Count
		}
		return summary.Groups[i].Key < summary.Groups[j].Key
	})

	return summary
}
