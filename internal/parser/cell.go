// Package parser turns raw spreadsheet rows and cells into pipeline run
// records. Cells are loosely formatted, manually maintained multi-line
// text, so parsing is a tolerant token scan rather than a fixed schema
// decode.
package parser

import (
	"strings"

	"github.com/microshift-qe/test-analyzer/internal/models"
)

// testTypeTokens mark a line as a test-type label when any of them appears
// in the line.
var testTypeTokens = []string{"install", "upgrade", "ostree", "rpm", "iso"}

// component accumulates tokens for one in-progress result while scanning
// a cell's lines.
type component struct {
	arch      models.Architecture
	framework models.Framework
	status    models.Status
	testType  string
	archSet   bool
	fwSet     bool
	statusSet bool
	reasons   []string
}

// recognized reports whether the accumulated tokens identify pipeline
// data. Cells without any architecture or framework token are plain
// labels and yield no result.
func (c *component) recognized() bool {
	return c.archSet || c.fwSet
}

func (c *component) result(pipelineLabel string) models.ComponentResult {
	r := models.ComponentResult{
		PipelineName: PipelineName(pipelineLabel, c.testType),
		Architecture: models.ArchUnknown,
		Framework:    models.FrameworkUnknown,
		Status:       models.StatusUnknown,
		TestType:     c.testType,
	}
	if c.archSet {
		r.Architecture = c.arch
	}
	if c.fwSet {
		r.Framework = c.framework
	}
	if c.statusSet {
		r.Status = c.status
	}
	if r.Status == models.StatusFailure {
		reason := strings.TrimSpace(strings.Join(c.reasons, " "))
		if reason == "" {
			reason = models.UnspecifiedFailure
		}
		r.FailureReason = reason
	}
	return r
}

// PipelineName derives the trend-lookup identifier for a component from
// its column header and test type.
func PipelineName(pipelineLabel, testType string) string {
	if testType == "" {
		return pipelineLabel
	}
	return pipelineLabel + "/" + testType
}

// ParseCell decodes one cell's raw text into zero or more component
// results. Lines are classified by token: architecture, framework, status,
// test type, or residual free text. Residual lines become the failure
// reason when the component failed. A repeated architecture, framework or
// status token starts a new component, so multi-test cells produce one
// result each.
func ParseCell(pipelineLabel, raw string) []models.ComponentResult {
	var results []models.ComponentResult
	cur := &component{}

	flush := func() {
		if cur.recognized() {
			results = append(results, cur.result(pipelineLabel))
		}
		cur = &component{}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if status, ok := models.NormalizeStatus(line); ok {
			if cur.statusSet {
				flush()
			}
			cur.status = status
			cur.statusSet = true
			continue
		}
		if arch, ok := matchArchitecture(line); ok {
			if cur.archSet {
				flush()
			}
			cur.arch = arch
			cur.archSet = true
			continue
		}
		if fw, ok := matchFramework(line); ok {
			if cur.fwSet {
				flush()
			}
			cur.framework = fw
			cur.fwSet = true
			continue
		}
		if isTestType(line) {
			cur.testType = line
			continue
		}
		cur.reasons = append(cur.reasons, line)
	}
	flush()

	return results
}

// matchArchitecture recognizes architecture tokens by case-insensitive
// substring match. x86_64 is checked before x86 to avoid shadowing.
func matchArchitecture(line string) (models.Architecture, bool) {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "x86_64"):
		return models.ArchX8664, true
	case strings.Contains(lower, "aarch64"):
		return models.ArchAarch64, true
	case strings.Contains(lower, "x86"):
		return models.ArchX86, true
	}
	return models.ArchUnknown, false
}

func matchFramework(line string) (models.Framework, bool) {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "robotframework"):
		return models.FrameworkRobot, true
	case strings.Contains(lower, "ginkgo"):
		return models.FrameworkGinkgo, true
	}
	return models.FrameworkUnknown, false
}

func isTestType(line string) bool {
	lower := strings.ToLower(line)
	for _, token := range testTypeTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
