// Package analysis implements the read-only query operations over a
// dataset of pipeline runs. Every operation is a pure function: it takes
// an already-built dataset and never mutates it.
package analysis

import (
	"errors"
	"strings"

	"github.com/microshift-qe/test-analyzer/internal/models"
)

// ErrInvalidArgument marks caller-supplied parameters outside their
// recognized domain. Check with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// matchesVersion reports whether a run matches a caller-supplied version
// filter. Filters use substring containment; an empty filter matches
// every run. Grouping keys remain the exact version string.
func matchesVersion(run *models.PipelineRun, filter string) bool {
	return filter == "" || strings.Contains(run.Version, filter)
}

// normalizeWhitespace collapses runs of whitespace so that reasons
// differing only in spacing group together. Punctuation differences
// remain distinct groups.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
