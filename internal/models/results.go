package models

// Query result payloads. Every field is JSON-tagged because results cross
// the MCP boundary as serialized text content.

// FailedPipeline is one FAILURE component annotated with its parent run.
type FailedPipeline struct {
	Version       string       `json:"version"`
	RunID         string       `json:"run_id"`
	Date          string       `json:"date"`
	PipelineName  string       `json:"pipeline_name"`
	Architecture  Architecture `json:"architecture"`
	TestType      string       `json:"test_type,omitempty"`
	Framework     Framework    `json:"framework"`
	FailureReason string       `json:"failure_reason"`
}

// VersionFailures aggregates the failures of one version in a listing.
type VersionFailures struct {
	Version       string   `json:"version"`
	TotalFailures int      `json:"total_failures"`
	TestDates     []string `json:"test_dates"`
}

// FailureListing is the result of the failed-pipelines-by-version query.
type FailureListing struct {
	VersionFilter string            `json:"version_filter,omitempty"`
	TotalRuns     int               `json:"total_runs"`
	SkippedRows   int               `json:"skipped_rows"`
	ByVersion     []VersionFailures `json:"by_version"`
	Failures      []FailedPipeline  `json:"failures"`
}

// FailureGroup is one bucket of the failure summary.
type FailureGroup struct {
	Key      string   `json:"key"`
	Count    int      `json:"count"`
	Versions []string `json:"versions"`
}

// FailureSummary groups all FAILURE components by a single key.
type FailureSummary struct {
	GroupBy       string         `json:"group_by"`
	TotalTestRuns int            `json:"total_test_runs"`
	TotalFailures int            `json:"total_failures"`
	SkippedRows   int            `json:"skipped_rows"`
	Groups        []FailureGroup `json:"groups"`
}

// TrendPoint is one calendar day of the failure trend.
type TrendPoint struct {
	Day      string `json:"day"`
	Failures int    `json:"failures"`
	Total    int    `json:"total"`
}

// TrendReport is the time-windowed failure trend for a pipeline.
// Undated counts cover runs whose date column did not parse; they cannot
// be placed on the timeline but are reported alongside it.
type TrendReport struct {
	Pipeline        string       `json:"pipeline,omitempty"`
	Days            int          `json:"days"`
	SkippedRows     int          `json:"skipped_rows"`
	Points          []TrendPoint `json:"points"`
	UndatedTotal    int          `json:"undated_total"`
	UndatedFailures int          `json:"undated_failures"`
}

// SearchMatch is one failure reason matching a search term.
type SearchMatch struct {
	Date          string       `json:"date"`
	Version       string       `json:"version"`
	RunID         string       `json:"run_id"`
	PipelineName  string       `json:"pipeline_name"`
	Architecture  Architecture `json:"architecture"`
	TestType      string       `json:"test_type,omitempty"`
	Framework     Framework    `json:"framework"`
	FailureReason string       `json:"failure_reason"`
}

// SearchReport is the result of a failure reason search.
type SearchReport struct {
	SearchTerm    string        `json:"search_term"`
	VersionFilter string        `json:"version_filter,omitempty"`
	SkippedRows   int           `json:"skipped_rows"`
	Matches       []SearchMatch `json:"matches"`
}

// PipelineStats is the per-pipeline breakdown within a version.
type PipelineStats struct {
	Total     int `json:"total"`
	Failures  int `json:"failures"`
	Successes int `json:"successes"`
}

// VersionStats holds the aggregate test results of one version.
// Rates are fractions in [0, 1] and are 0 when TotalTests is 0.
type VersionStats struct {
	Version        string                   `json:"version"`
	TotalTests     int                      `json:"total_tests"`
	Failures       int                      `json:"failures"`
	Successes      int                      `json:"successes"`
	FailureRate    float64                  `json:"failure_rate"`
	SuccessRate    float64                  `json:"success_rate"`
	Pipelines      map[string]PipelineStats `json:"pipelines"`
	FailureReasons []string                 `json:"failure_reasons"`
}

// VersionComparison contrasts the test results of two versions.
type VersionComparison struct {
	SkippedRows      int          `json:"skipped_rows"`
	Version1         VersionStats `json:"version1"`
	Version2         VersionStats `json:"version2"`
	UniqueToVersion1 []string     `json:"unique_to_version1"`
	UniqueToVersion2 []string     `json:"unique_to_version2"`
	CommonReasons    []string     `json:"common_reasons"`
	BetterPerformer  string       `json:"better_performer"`
}
