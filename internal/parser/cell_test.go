package parser

import (
	"testing"

	"github.com/microshift-qe/test-analyzer/internal/models"
)

func TestParseCell_SingleResult(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantArch   models.Architecture
		wantFw     models.Framework
		wantStatus models.Status
		wantType   string
		wantReason string
	}{
		{
			name:       "failure with reason",
			raw:        "x86_64\ninstall\nRobotFramework\nFAILURE\nssh connection failed",
			wantArch:   models.ArchX8664,
			wantFw:     models.FrameworkRobot,
			wantStatus: models.StatusFailure,
			wantType:   "install",
			wantReason: "ssh connection failed",
		},
		{
			name:       "PASSED normalizes to SUCCESS, no reason",
			raw:        "x86_64\ninstall\nRobotFramework\nPASSED",
			wantArch:   models.ArchX8664,
			wantFw:     models.FrameworkRobot,
			wantStatus: models.StatusSuccess,
			wantType:   "install",
		},
		{
			name:       "PASS normalizes to SUCCESS",
			raw:        "aarch64\nupgrade\nGinkgo\nPASS",
			wantArch:   models.ArchAarch64,
			wantFw:     models.FrameworkGinkgo,
			wantStatus: models.StatusSuccess,
			wantType:   "upgrade",
		},
		{
			name:       "FAILED normalizes to FAILURE",
			raw:        "x86\nostree upgrade\nRobotFramework\nFAILED\npod crash loop",
			wantArch:   models.ArchX86,
			wantFw:     models.FrameworkRobot,
			wantStatus: models.StatusFailure,
			wantType:   "ostree upgrade",
			wantReason: "pod crash loop",
		},
		{
			name:       "failure without residual text gets sentinel reason",
			raw:        "x86_64\ninstall\nRobotFramework\nFAILURE",
			wantArch:   models.ArchX8664,
			wantFw:     models.FrameworkRobot,
			wantStatus: models.StatusFailure,
			wantType:   "install",
			wantReason: models.UnspecifiedFailure,
		},
		{
			name:       "multi-line failure reason is joined",
			raw:        "aarch64\nrpm install\nGinkgo\nFAILURE\netcd timeout\nafter 300s",
			wantArch:   models.ArchAarch64,
			wantFw:     models.FrameworkGinkgo,
			wantStatus: models.StatusFailure,
			wantType:   "rpm install",
			wantReason: "etcd timeout after 300s",
		},
		{
			name:       "arch and framework without status stays unknown",
			raw:        "x86_64\ninstall\nRobotFramework",
			wantArch:   models.ArchX8664,
			wantFw:     models.FrameworkRobot,
			wantStatus: models.StatusUnknown,
			wantType:   "install",
		},
		{
			name:       "case-insensitive token recognition",
			raw:        "X86_64\nISO install\nrobotframework\nfailed\nboot hang",
			wantArch:   models.ArchX8664,
			wantFw:     models.FrameworkRobot,
			wantStatus: models.StatusFailure,
			wantType:   "ISO install",
			wantReason: "boot hang",
		},
		{
			name:       "framework only, unknown architecture",
			raw:        "Ginkgo\nSUCCESS",
			wantArch:   models.ArchUnknown,
			wantFw:     models.FrameworkGinkgo,
			wantStatus: models.StatusSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := ParseCell("nightly-build", tt.raw)
			if len(results) != 1 {
				t.Fatalf("ParseCell() got %d results, want 1", len(results))
			}
			r := results[0]
			if r.Architecture != tt.wantArch {
				t.Errorf("Architecture = %q, want %q", r.Architecture, tt.wantArch)
			}
			if r.Framework != tt.wantFw {
				t.Errorf("Framework = %q, want %q", r.Framework, tt.wantFw)
			}
			if r.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", r.Status, tt.wantStatus)
			}
			if r.TestType != tt.wantType {
				t.Errorf("TestType = %q, want %q", r.TestType, tt.wantType)
			}
			if r.FailureReason != tt.wantReason {
				t.Errorf("FailureReason = %q, want %q", r.FailureReason, tt.wantReason)
			}

			// failure_reason set iff status is FAILURE
			if (r.FailureReason != "") != (r.Status == models.StatusFailure) {
				t.Errorf("FailureReason %q inconsistent with Status %q", r.FailureReason, r.Status)
			}
		})
	}
}

func TestParseCell_NoResults(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty cell", raw: ""},
		{name: "whitespace only", raw: "  \n\t\n "},
		{name: "plain build image label", raw: "microshift-4.18.0-20250621"},
		{name: "status without pipeline tokens", raw: "SUCCESS"},
		{name: "free text only", raw: "see jira MSHIFT-1234\nflaky infra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if results := ParseCell("col", tt.raw); len(results) != 0 {
				t.Errorf("ParseCell() got %d results, want 0: %+v", len(results), results)
			}
		})
	}
}

func TestParseCell_MultipleResults(t *testing.T) {
	raw := "x86_64\ninstall\nRobotFramework\nFAILURE\nssh connection failed\n" +
		"aarch64\ninstall\nRobotFramework\nSUCCESS"

	results := ParseCell("nightly-build", raw)
	if len(results) != 2 {
		t.Fatalf("ParseCell() got %d results, want 2", len(results))
	}

	if results[0].Architecture != models.ArchX8664 || results[0].Status != models.StatusFailure {
		t.Errorf("first result = %+v, want x86_64 FAILURE", results[0])
	}
	if results[0].FailureReason != "ssh connection failed" {
		t.Errorf("first result reason = %q", results[0].FailureReason)
	}
	if results[1].Architecture != models.ArchAarch64 || results[1].Status != models.StatusSuccess {
		t.Errorf("second result = %+v, want aarch64 SUCCESS", results[1])
	}
	if results[1].FailureReason != "" {
		t.Errorf("second result reason = %q, want empty", results[1].FailureReason)
	}
}

func TestPipelineName(t *testing.T) {
	if got := PipelineName("nightly-build", "install"); got != "nightly-build/install" {
		t.Errorf("PipelineName() = %q", got)
	}
	if got := PipelineName("nightly-build", ""); got != "nightly-build" {
		t.Errorf("PipelineName() without test type = %q", got)
	}
}
