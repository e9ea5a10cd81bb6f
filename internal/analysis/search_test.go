package analysis_test

import (
	"testing"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFailureReasons(t *testing.T) {
	report, err := analysis.SearchFailureReasons(fixture(), analysis.SearchOptions{Term: "SSH"})
	require.NoError(t, err)

	// Case-insensitive, run date descending.
	require.Len(t, report.Matches, 2)
	assert.Equal(t, "1235", report.Matches[0].RunID)
	assert.Equal(t, "1233", report.Matches[1].RunID)
	assert.Equal(t, "ssh connection failed", report.Matches[0].FailureReason)
	assert.Equal(t, "nightly-build/install", report.Matches[0].PipelineName)
	assert.Equal(t, 1, report.SkippedRows, "skipped-row count travels with the report")
}

func TestSearchFailureReasons_EmptyTerm(t *testing.T) {
	for _, term := range []string{"", "   "} {
		_, err := analysis.SearchFailureReasons(fixture(), analysis.SearchOptions{Term: term})
		require.Error(t, err)
		assert.ErrorIs(t, err, analysis.ErrInvalidArgument)
	}
}

func TestSearchFailureReasons_NoMatches(t *testing.T) {
	report, err := analysis.SearchFailureReasons(fixture(), analysis.SearchOptions{Term: "kernel panic"})
	require.NoError(t, err, "a term matching nothing is not an error")
	assert.NotNil(t, report.Matches)
	assert.Empty(t, report.Matches)
}

func TestSearchFailureReasons_VersionFilter(t *testing.T) {
	report, err := analysis.SearchFailureReasons(fixture(), analysis.SearchOptions{
		Term:    "image",
		Version: "4.17",
	})
	require.NoError(t, err)
	require.Len(t, report.Matches, 1)
	assert.Equal(t, "1236", report.Matches[0].RunID)

	// The same term outside the version filter matches nothing.
	report, err = analysis.SearchFailureReasons(fixture(), analysis.SearchOptions{
		Term:    "image",
		Version: "4.18",
	})
	require.NoError(t, err)
	assert.Empty(t, report.Matches)
}
