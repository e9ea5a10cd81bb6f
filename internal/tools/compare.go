package tools

import (
	"context"
	"errors"
	"time"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CompareInput defines the input schema for the version comparison tool.
type CompareInput struct {
	Version1 string `json:"version1" jsonschema:"required,First MicroShift version to compare"`
	Version2 string `json:"version2" jsonschema:"required,Second MicroShift version to compare"`
	Sheet    string `json:"sheet,omitempty" jsonschema:"Sheet tab to analyze, defaults to the current month"`
}

// NewCompareHandler creates the get_version_comparison handler.
func NewCompareHandler(deps *Dependencies) mcp.ToolHandlerFor[CompareInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CompareInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.Version1 == "" || input.Version2 == "" {
			return ErrorResult("Both versions must be supplied", "Provide version1 and version2"), nil, nil
		}

		ds, err := deps.loadDataset(ctx, input.Sheet)
		if err != nil {
			deps.Logger.Error("dataset load failed", "error", err)
			return ErrorResult("No data available", "Check spreadsheet access and sheet name"), nil, nil
		}

		queryStart := time.Now()
		cmp, err := analysis.CompareVersions(ds, input.Version1, input.Version2)
		if err != nil {
			if errors.Is(err, analysis.ErrInvalidArgument) {
				return ErrorResult(err.Error(), "Provide both versions"), nil, nil
			}
			deps.Logger.Error("comparison failed", "error", err)
			return ErrorResult("Comparison failed", ""), nil, nil
		}
		deps.recordQuery(queryStart)

		deps.Logger.Info("versions compared",
			"version1", input.Version1,
			"version2", input.Version2,
			"better", cmp.BetterPerformer,
		)

		return JSONResult(cmp), nil, nil
	}
}
