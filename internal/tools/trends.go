package tools

import (
	"context"
	"time"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxTrendDays bounds the lookback window.
const maxTrendDays = 365

// TrendsInput defines the input schema for the trends tool.
type TrendsInput struct {
	PipelineName string `json:"pipeline_name,omitempty" jsonschema:"Exact pipeline name to analyze (optional)"`
	Days         int    `json:"days,omitempty" jsonschema:"Lookback window in days, default 30"`
	Sheet        string `json:"sheet,omitempty" jsonschema:"Sheet tab to analyze, defaults to the current month"`
}

// NewTrendsHandler creates the get_pipeline_failure_trends handler.
func NewTrendsHandler(deps *Dependencies) mcp.ToolHandlerFor[TrendsInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input TrendsInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.Days < 0 || input.Days > maxTrendDays {
			return ErrorResult("Days must be 1-365", "Reduce the lookback window"), nil, nil
		}

		ds, err := deps.loadDataset(ctx, input.Sheet)
		if err != nil {
			deps.Logger.Error("dataset load failed", "error", err)
			return ErrorResult("No data available", "Check spreadsheet access and sheet name"), nil, nil
		}

		queryStart := time.Now()
		report := analysis.PipelineFailureTrends(ds, analysis.TrendOptions{
			Pipeline: input.PipelineName,
			Days:     input.Days,
		})
		deps.recordQuery(queryStart)

		deps.Logger.Info("failure trends computed",
			"pipeline", input.PipelineName,
			"days", report.Days,
			"points", len(report.Points),
			"undated", report.UndatedTotal,
		)

		return JSONResult(report), nil, nil
	}
}
