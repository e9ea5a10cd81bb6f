package tools

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/microshift-qe/test-analyzer/internal/analysis"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchInput defines the input schema for the failure reason search tool.
type SearchInput struct {
	SearchTerm string `json:"search_term" jsonschema:"required,Text to find in failure reasons (case-insensitive)"`
	Version    string `json:"version,omitempty" jsonschema:"Filter by specific MicroShift version (optional)"`
	Sheet      string `json:"sheet,omitempty" jsonschema:"Sheet tab to analyze, defaults to the current month"`
}

// NewSearchHandler creates the search_failure_reasons handler.
func NewSearchHandler(deps *Dependencies) mcp.ToolHandlerFor[SearchInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (
		*mcp.CallToolResult, any, error,
	) {
		// Validate before fetching; no dataset work is wasted on bad input.
		if strings.TrimSpace(input.SearchTerm) == "" {
			return ErrorResult("Search term cannot be empty", "Provide text to look for in failure reasons"), nil, nil
		}

		ds, err := deps.loadDataset(ctx, input.Sheet)
		if err != nil {
			deps.Logger.Error("dataset load failed", "error", err)
			return ErrorResult("No data available", "Check spreadsheet access and sheet name"), nil, nil
		}

		queryStart := time.Now()
		report, err := analysis.SearchFailureReasons(ds, analysis.SearchOptions{
			Term:    input.SearchTerm,
			Version: input.Version,
		})
		if err != nil {
			if errors.Is(err, analysis.ErrInvalidArgument) {
				return ErrorResult(err.Error(), "Provide a non-empty search term"), nil, nil
			}
			deps.Logger.Error("search failed", "error", err)
			return ErrorResult("Search failed", ""), nil, nil
		}
		deps.recordQuery(queryStart)

		deps.Logger.Info("failure reasons searched",
			"term", input.SearchTerm,
			"version", input.Version,
			"matches", len(report.Matches),
		)

		return JSONResult(report), nil, nil
	}
}
