package tools

import (
	"context"
	"time"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxFailureLimit bounds the failed-pipelines listing.
const maxFailureLimit = 500

// FailuresInput defines the input schema for the failed-pipelines tool.
type FailuresInput struct {
	Version string `json:"version,omitempty" jsonschema:"Specific MicroShift version to filter (optional)"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Maximum number of results, default 50"`
	Sheet   string `json:"sheet,omitempty" jsonschema:"Sheet tab to analyze, defaults to the current month"`
}

// NewFailuresHandler creates the get_failed_pipelines_by_version handler.
func NewFailuresHandler(deps *Dependencies) mcp.ToolHandlerFor[FailuresInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FailuresInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.Limit < 0 || input.Limit > maxFailureLimit {
			return ErrorResult("Limit must be 1-500", "Reduce limit value"), nil, nil
		}

		ds, err := deps.loadDataset(ctx, input.Sheet)
		if err != nil {
			deps.Logger.Error("dataset load failed", "error", err)
			return ErrorResult("No data available", "Check spreadsheet access and sheet name"), nil, nil
		}

		queryStart := time.Now()
		listing := analysis.FailedPipelinesByVersion(ds, analysis.FailuresOptions{
			Version: input.Version,
			Limit:   input.Limit,
		})
		deps.recordQuery(queryStart)

		deps.Logger.Info("failed pipelines listed",
			"version", input.Version,
			"results", len(listing.Failures),
			"skipped_rows", listing.SkippedRows,
		)

		return JSONResult(listing), nil, nil
	}
}
