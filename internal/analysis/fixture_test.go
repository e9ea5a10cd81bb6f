package analysis_test

import (
	"time"

	"github.com/microshift-qe/test-analyzer/internal/models"
)

func day(d, month, hour int) time.Time {
	return time.Date(2025, time.Month(month), d, hour, 52, 27, 0, time.UTC)
}

// fixture builds a small dataset covering both versions, an undated run
// and an unknown-status component.
func fixture() *models.Dataset {
	return &models.Dataset{
		SkippedRows: 1,
		Runs: []models.PipelineRun{
			{
				RunDate: day(21, 6, 4),
				RawDate: "21/06/2025_04:52:27",
				RunID:   "1233",
				Version: "4.18.0~0.nightly",
				Components: []models.ComponentResult{
					{
						PipelineName:  "nightly-build/install",
						Architecture:  models.ArchX8664,
						TestType:      "install",
						Framework:     models.FrameworkRobot,
						Status:        models.StatusFailure,
						FailureReason: "ssh connection failed",
					},
					{
						PipelineName: "nightly-build/upgrade",
						Architecture: models.ArchX8664,
						TestType:     "upgrade",
						Framework:    models.FrameworkRobot,
						Status:       models.StatusSuccess,
					},
				},
			},
			{
				RunDate: day(23, 6, 4),
				RawDate: "23/06/2025_04:52:27",
				RunID:   "1235",
				Version: "4.18.0~0.nightly",
				Components: []models.ComponentResult{
					{
						PipelineName:  "nightly-build/install",
						Architecture:  models.ArchAarch64,
						TestType:      "install",
						Framework:     models.FrameworkRobot,
						Status:        models.StatusFailure,
						FailureReason: "ssh connection failed",
					},
					{
						PipelineName:  "nightly-build/upgrade",
						Architecture:  models.ArchAarch64,
						TestType:      "upgrade",
						Framework:     models.FrameworkRobot,
						Status:        models.StatusFailure,
						FailureReason: "etcd   timeout",
					},
				},
			},
			{
				// Date column did not parse; run retained without timeline.
				RawDate: "sometime in june",
				RunID:   "1236",
				Version: "4.17.0~0.nightly",
				Components: []models.ComponentResult{
					{
						PipelineName:  "nightly-build/install",
						Architecture:  models.ArchX8664,
						TestType:      "install",
						Framework:     models.FrameworkGinkgo,
						Status:        models.StatusFailure,
						FailureReason: "image pull backoff",
					},
					{
						PipelineName: "nightly-build/upgrade",
						Architecture: models.ArchX8664,
						TestType:     "upgrade",
						Framework:    models.FrameworkGinkgo,
						Status:       models.StatusUnknown,
					},
				},
			},
			{
				RunDate: day(1, 6, 4),
				RawDate: "01/06/2025_04:52:27",
				RunID:   "1230",
				Version: "4.17.0~0.nightly",
				Components: []models.ComponentResult{
					{
						PipelineName: "nightly-build/install",
						Architecture: models.ArchX8664,
						TestType:     "install",
						Framework:    models.FrameworkGinkgo,
						Status:       models.StatusSuccess,
					},
				},
			},
		},
	}
}

// totalFailures counts FAILURE components across the fixture.
func totalFailures(ds *models.Dataset) int {
	n := 0
	for _, run := range ds.Runs {
		for _, c := range run.Components {
			if c.Failed() {
				n++
			}
		}
	}
	return n
}
