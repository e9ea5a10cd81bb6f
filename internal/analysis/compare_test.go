package analysis_test

import (
	"testing"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareVersions(t *testing.T) {
	cmp, err := analysis.CompareVersions(fixture(), "4.18.0~0.nightly", "4.17.0~0.nightly")
	require.NoError(t, err)

	v1 := cmp.Version1
	assert.Equal(t, 4, v1.TotalTests)
	assert.Equal(t, 3, v1.Failures)
	assert.Equal(t, 1, v1.Successes)
	assert.InDelta(t, 0.75, v1.FailureRate, 1e-9)

	// Unknown-status components count toward totals but neither failures
	// nor successes.
	v2 := cmp.Version2
	assert.Equal(t, 3, v2.TotalTests)
	assert.Equal(t, 1, v2.Failures)
	assert.Equal(t, 1, v2.Successes)
	assert.InDelta(t, 1.0/3.0, v2.FailureRate, 1e-9)

	assert.Equal(t, "4.17.0~0.nightly", cmp.BetterPerformer)
	assert.Equal(t, 1, cmp.SkippedRows, "skipped-row count travels with the comparison")

	// Reason sets use exact text.
	assert.ElementsMatch(t, []string{"ssh connection failed", "etcd   timeout"}, cmp.UniqueToVersion1)
	assert.ElementsMatch(t, []string{"image pull backoff"}, cmp.UniqueToVersion2)
	assert.Empty(t, cmp.CommonReasons)

	// Per-pipeline breakdown.
	install := v1.Pipelines["nightly-build/install"]
	assert.Equal(t, 2, install.Total)
	assert.Equal(t, 2, install.Failures)
}

func TestCompareVersions_SameVersion(t *testing.T) {
	cmp, err := analysis.CompareVersions(fixture(), "4.18.0~0.nightly", "4.18.0~0.nightly")
	require.NoError(t, err)

	assert.Equal(t, cmp.Version1.TotalTests, cmp.Version2.TotalTests)
	assert.Equal(t, cmp.Version1.Failures, cmp.Version2.Failures)
	assert.Equal(t, cmp.Version1.FailureRate, cmp.Version2.FailureRate)
	assert.Equal(t, cmp.Version1.FailureReasons, cmp.Version2.FailureReasons)

	assert.Empty(t, cmp.UniqueToVersion1)
	assert.Empty(t, cmp.UniqueToVersion2)
	assert.ElementsMatch(t, cmp.Version1.FailureReasons, cmp.CommonReasons)
}

func TestCompareVersions_AbsentVersionReportsZero(t *testing.T) {
	cmp, err := analysis.CompareVersions(fixture(), "4.18.0~0.nightly", "9.99.0")
	require.NoError(t, err, "absence of data is a reportable state, not an error")

	v2 := cmp.Version2
	assert.Zero(t, v2.TotalTests)
	assert.Zero(t, v2.Failures)
	assert.Zero(t, v2.FailureRate, "no division by zero")
	assert.Empty(t, v2.FailureReasons)

	// The empty version has the lower (zero) failure rate.
	assert.Equal(t, "9.99.0", cmp.BetterPerformer)
}

func TestCompareVersions_MissingArguments(t *testing.T) {
	_, err := analysis.CompareVersions(fixture(), "", "4.18.0~0.nightly")
	require.Error(t, err)
	assert.ErrorIs(t, err, analysis.ErrInvalidArgument)

	_, err = analysis.CompareVersions(fixture(), "4.18.0~0.nightly", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, analysis.ErrInvalidArgument)
}
