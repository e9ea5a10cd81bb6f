package tools

import (
	"context"
	"time"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SummaryInput defines the input schema for the failure summary tool.
type SummaryInput struct {
	GroupBy string `json:"group_by,omitempty" jsonschema:"Group failures by version, pipeline or reason (default version)"`
	Sheet   string `json:"sheet,omitempty" jsonschema:"Sheet tab to analyze, defaults to the current month"`
}

// NewSummaryHandler creates the get_failure_summary handler.
func NewSummaryHandler(deps *Dependencies) mcp.ToolHandlerFor[SummaryInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SummaryInput) (
		*mcp.CallToolResult, any, error,
	) {
		groupByRaw := input.GroupBy
		if groupByRaw == "" {
			groupByRaw = string(analysis.GroupByVersion)
		}
		groupBy, err := analysis.ParseGroupBy(groupByRaw)
		if err != nil {
			return ErrorResult(err.Error(), "Use group_by version, pipeline or reason"), nil, nil
		}

		ds, err := deps.loadDataset(ctx, input.Sheet)
		if err != nil {
			deps.Logger.Error("dataset load failed", "error", err)
			return ErrorResult("No data available", "Check spreadsheet access and sheet name"), nil, nil
		}

		queryStart := time.Now()
		summary := analysis.Summarize(ds, groupBy)
		deps.recordQuery(queryStart)

		deps.Logger.Info("failure summary computed",
			"group_by", groupBy,
			"groups", len(summary.Groups),
			"total_failures", summary.TotalFailures,
		)

		return JSONResult(summary), nil, nil
	}
}
