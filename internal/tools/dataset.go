package tools

import (
	"context"
	"time"

	"github.com/microshift-qe/test-analyzer/internal/metrics"
	"github.com/microshift-qe/test-analyzer/internal/models"
	"github.com/microshift-qe/test-analyzer/internal/parser"
)

// loadDataset performs one fetch-and-parse cycle. Every tool call builds
// a fresh dataset from a new sheet snapshot; nothing is cached across
// invocations.
func (d *Dependencies) loadDataset(ctx context.Context, sheetName string) (*models.Dataset, error) {
	fetchStart := time.Now()
	table, err := d.Source.Fetch(ctx, sheetName)
	if err != nil {
		return nil, err
	}
	if d.Metrics != nil {
		d.Metrics.RecordTiming(metrics.OpFetch, time.Since(fetchStart))
	}

	parseStart := time.Now()
	ds := parser.Build(d.Logger, table.Header, table.Rows)
	if d.Metrics != nil {
		d.Metrics.RecordParse(time.Since(parseStart), len(ds.Runs), ds.SkippedRows)
	}

	return ds, nil
}

// recordQuery records one query's duration on the collector.
func (d *Dependencies) recordQuery(start time.Time) {
	if d.Metrics != nil {
		d.Metrics.RecordTiming(metrics.OpQuery, time.Since(start))
	}
}
