package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all tools with the MCP server.
// This is called from main after server creation but before Run().
func RegisterAll(server *mcp.Server, deps *Dependencies) {
	// Ping tool - liveness check, no sheet access
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ping",
		Description: "Test tool - responds with pong or echoes input",
	}, NewPingHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_failed_pipelines_by_version",
		Description: "Get failed testing pipelines grouped by MicroShift version",
	}, NewFailuresHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_failure_summary",
		Description: "Get summary of test failures grouped by version, pipeline or reason",
	}, NewSummaryHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_pipeline_failure_trends",
		Description: "Analyze failure trends for testing pipelines over time",
	}, NewTrendsHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_failure_reasons",
		Description: "Search for specific failure reasons across all tests",
	}, NewSearchHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_version_comparison",
		Description: "Compare test results between two MicroShift versions",
	}, NewCompareHandler(deps))
}
