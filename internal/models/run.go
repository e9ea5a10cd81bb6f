// Package models defines the record model for MicroShift CI test runs.
package models

import (
	"strings"
	"time"
)

// Architecture is the CPU architecture a pipeline ran on.
type Architecture string

const (
	ArchX8664   Architecture = "x86_64"
	ArchAarch64 Architecture = "aarch64"
	ArchX86     Architecture = "x86"
	ArchUnknown Architecture = "unknown"
)

// Framework is the test framework that produced a component result.
type Framework string

const (
	FrameworkRobot   Framework = "RobotFramework"
	FrameworkGinkgo  Framework = "Ginkgo"
	FrameworkUnknown Framework = "unknown"
)

// Status is the normalized outcome of one pipeline component.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
	// StatusUnknown marks cells with recognizable pipeline tokens but no
	// status token. Unknown results are retained but excluded from failure
	// statistics.
	StatusUnknown Status = "unknown"
)

// UnspecifiedFailure is recorded when a FAILURE cell carries no residual
// reason text. Empty reasons must never silently vanish from summaries.
const UnspecifiedFailure = "unspecified failure"

// NormalizeStatus maps a raw status token to its canonical Status.
// FAILED normalizes to FAILURE; PASS and PASSED normalize to SUCCESS.
// The second return value reports whether the token was recognized.
func NormalizeStatus(token string) (Status, bool) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "SUCCESS", "PASS", "PASSED":
		return StatusSuccess, true
	case "FAILURE", "FAILED":
		return StatusFailure, true
	}
	return StatusUnknown, false
}

// ComponentResult is the outcome of one pipeline (architecture + test type
// + framework) extracted from a single spreadsheet cell.
type ComponentResult struct {
	PipelineName  string       `json:"pipeline_name"`
	Architecture  Architecture `json:"architecture"`
	TestType      string       `json:"test_type,omitempty"`
	Framework     Framework    `json:"framework"`
	Status        Status       `json:"status"`
	FailureReason string       `json:"failure_reason,omitempty"`
}

// Failed reports whether this component counts toward failure statistics.
func (c ComponentResult) Failed() bool {
	return c.Status == StatusFailure
}

// PipelineRun is one spreadsheet row: one CI execution batch covering
// multiple pipelines for one product build.
type PipelineRun struct {
	// RunDate is the parsed date column. The zero time means the raw value
	// did not parse; such runs are retained but cannot be placed on a
	// timeline.
	RunDate time.Time `json:"run_date"`
	// RawDate preserves the date column exactly as it appears in the sheet.
	RawDate          string            `json:"date"`
	RunID            string            `json:"run_id"`
	MicroshiftTarget string            `json:"microshift_target"`
	BrewVersion      string            `json:"brew_version"`
	Version          string            `json:"version"`
	Components       []ComponentResult `json:"components"`
}

// Dated reports whether the run's date column parsed successfully.
func (r PipelineRun) Dated() bool {
	return !r.RunDate.IsZero()
}

// Dataset is the full ordered sequence of pipeline runs built from one
// sheet fetch. Run order equals sheet row order, top to bottom. A Dataset
// is owned by a single invocation and is never shared or cached.
type Dataset struct {
	Runs []PipelineRun `json:"runs"`
	// SkippedRows counts data rows dropped during normalization
	// (malformed or blank-version rows).
	SkippedRows int `json:"skipped_rows"`
}
