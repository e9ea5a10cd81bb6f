package parser

import (
	"errors"
	"log/slog"

	"github.com/microshift-qe/test-analyzer/internal/models"
)

// Build applies NormalizeRow to every data row in sheet order and returns
// the resulting dataset. Malformed and blank-version rows are skipped and
// counted, never fatal. Run order in the dataset equals row order in the
// sheet; trend analysis depends on it.
func Build(logger *slog.Logger, header []string, rows [][]string) *models.Dataset {
	ds := &models.Dataset{}

	for i, row := range rows {
		run, err := NormalizeRow(header, row)
		if err != nil {
			ds.SkippedRows++
			if logger != nil {
				// Sheet row numbers are 1-based and include the header.
				if errors.Is(err, ErrBlankVersion) {
					logger.Info("skipping row without version", "sheet_row", i+2)
				} else {
					logger.Warn("skipping malformed row", "sheet_row", i+2, "error", err)
				}
			}
			continue
		}
		ds.Runs = append(ds.Runs, run)
	}

	return ds
}
