package analysis_test

import (
	"testing"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroupBy(t *testing.T) {
	for _, valid := range []string{"version", "pipeline", "reason"} {
		g, err := analysis.ParseGroupBy(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(g))
	}

	_, err := analysis.ParseGroupBy("architecture")
	require.Error(t, err)
	assert.ErrorIs(t, err, analysis.ErrInvalidArgument)
}

func TestSummarize_CountsSumToTotalFailures(t *testing.T) {
	ds := fixture()
	want := totalFailures(ds)

	for _, groupBy := range []analysis.GroupBy{
		analysis.GroupByVersion,
		analysis.GroupByPipeline,
		analysis.GroupByReason,
	} {
		summary := analysis.Summarize(ds, groupBy)

		got := 0
		for _, g := range summary.Groups {
			got += g.Count
		}
		assert.Equal(t, want, got, "group_by=%s", groupBy)
		assert.Equal(t, want, summary.TotalFailures, "group_by=%s", groupBy)
		assert.Equal(t, len(ds.Runs), summary.TotalTestRuns)
		assert.Equal(t, ds.SkippedRows, summary.SkippedRows)
	}
}

func TestSummarize_ByVersion(t *testing.T) {
	summary := analysis.Summarize(fixture(), analysis.GroupByVersion)

	require.Len(t, summary.Groups, 2)
	assert.Equal(t, "4.18.0~0.nightly", summary.Groups[0].Key)
	assert.Equal(t, 3, summary.Groups[0].Count)
	assert.Equal(t, "4.17.0~0.nightly", summary.Groups[1].Key)
	assert.Equal(t, 1, summary.Groups[1].Count)
}

func TestSummarize_ByReasonNormalizesWhitespace(t *testing.T) {
	summary := analysis.Summarize(fixture(), analysis.GroupByReason)

	keys := make(map[string]int)
	for _, g := range summary.Groups {
		keys[g.Key] = g.Count
	}

	assert.Equal(t, 2, keys["ssh connection failed"])
	assert.Equal(t, 1, keys["etcd timeout"], "runs of whitespace collapse to one space")
	assert.Equal(t, 1, keys["image pull backoff"])
}

func TestSummarize_GroupVersions(t *testing.T) {
	summary := analysis.Summarize(fixture(), analysis.GroupByPipeline)

	for _, g := range summary.Groups {
		if g.Key == "nightly-build/install" {
			assert.Equal(t, 3, g.Count)
			assert.Equal(t, []string{"4.17.0~0.nightly", "4.18.0~0.nightly"}, g.Versions)
			return
		}
	}
	t.Fatal("nightly-build/install group not found")
}
