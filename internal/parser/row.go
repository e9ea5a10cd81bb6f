package parser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/microshift-qe/test-analyzer/internal/models"
)

// Fixed leading columns of every data row. The layout contract is
// positional and must match the sheet exactly.
const (
	colDate = iota
	colRunID
	colTarget
	colBrewVersion
	colVersion
	fixedColumns
)

// runDateLayout matches the sheet's date column, e.g. "21/06/2025_04:52:27".
const runDateLayout = "02/01/2006_15:04:05"

// Sentinel errors for rows that cannot be normalized. Both are local and
// non-fatal: the dataset builder skips the row and continues.
var (
	ErrMalformedRow = errors.New("malformed row")
	ErrBlankVersion = errors.New("blank version")
)

// ParseRunDate parses the date column. Any value not conforming to the
// layout yields the zero time rather than a guess.
func ParseRunDate(raw string) time.Time {
	t, err := time.Parse(runDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}
	}
	return t
}

// NormalizeRow combines a row's fixed leading columns with the component
// results parsed from its remaining cells into one pipeline run. The
// header row supplies the pipeline-name prefix for each trailing column.
//
// Rows shorter than the fixed column count fail with ErrMalformedRow;
// rows with a blank version column fail with ErrBlankVersion. A run with
// zero parsed components is still a valid run.
func NormalizeRow(header []string, row []string) (models.PipelineRun, error) {
	if len(row) < fixedColumns {
		return models.PipelineRun{}, fmt.Errorf("%w: %d of %d fixed columns", ErrMalformedRow, len(row), fixedColumns)
	}
	version := strings.TrimSpace(row[colVersion])
	if version == "" {
		return models.PipelineRun{}, ErrBlankVersion
	}

	run := models.PipelineRun{
		RunDate:          ParseRunDate(row[colDate]),
		RawDate:          strings.TrimSpace(row[colDate]),
		RunID:            strings.TrimSpace(row[colRunID]),
		MicroshiftTarget: strings.TrimSpace(row[colTarget]),
		BrewVersion:      strings.TrimSpace(row[colBrewVersion]),
		Version:          version,
	}

	for i := fixedColumns; i < len(row); i++ {
		run.Components = append(run.Components, ParseCell(columnLabel(header, i), row[i])...)
	}

	return run, nil
}

// columnLabel returns the header text for a column, or a synthetic name
// when the row is wider than the header.
func columnLabel(header []string, i int) string {
	if i < len(header) {
		if label := strings.TrimSpace(header[i]); label != "" {
			return label
		}
		return fmt.Sprintf("column_%d", i)
	}
	return fmt.Sprintf("extra_col_%d", i-len(header))
}
