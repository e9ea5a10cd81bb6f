// Package tools provides MCP tool handlers and registration.
package tools

import (
	"log/slog"

	"github.com/microshift-qe/test-analyzer/internal/metrics"
	"github.com/microshift-qe/test-analyzer/internal/sheets"
)

// Dependencies holds shared services for tool handlers.
// Passed to handler factories via closure capture.
type Dependencies struct {
	Source  sheets.Source
	Metrics *metrics.Collector
	Logger  *slog.Logger
}
