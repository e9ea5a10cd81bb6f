// Package sheets provides the read-only Google Sheets collaborator that
// the query tools fetch raw rows from.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// ErrNoData indicates the fetch succeeded but the sheet range is empty,
// or the source is unavailable. Surfaced to callers as "No data
// available"; retry policy belongs to the caller, not here.
var ErrNoData = errors.New("no data available")

// fetchRange covers all columns of a sheet tab. Trailing pipeline columns
// vary per month, so the range is open-ended.
const fetchRange = "A:ZZ"

// Table is one fetched sheet snapshot: row 0 of the range as header, the
// rest as data rows of cell strings.
type Table struct {
	Header []string
	Rows   [][]string
}

// Source is the fetch contract the core depends on. Transport, auth and
// caching behind it are irrelevant to consumers; tests inject fakes.
type Source interface {
	// Fetch returns all rows of the named sheet tab. An empty name selects
	// the default tab configured on the source.
	Fetch(ctx context.Context, sheetName string) (*Table, error)
}

// Config identifies the spreadsheet and the service account reading it.
// The spreadsheet ID is explicit configuration, never process-wide state.
type Config struct {
	SpreadsheetID string
	ClientEmail   string
	PrivateKey    string
	// DefaultSheet overrides the current-month default tab when set.
	DefaultSheet string
}

// Client reads sheet values through the Sheets v4 API using
// service-account credentials.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	defaultSheet  string
	logger        *slog.Logger
}

// NewClient builds the Sheets service from service-account credentials.
// Private keys coming from environment variables carry literal \n escapes;
// they are unescaped here, matching how the sheet owners distribute them.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet ID must be set")
	}
	if cfg.ClientEmail == "" || cfg.PrivateKey == "" {
		return nil, errors.New("service account client email and private key must be set")
	}

	jwtCfg := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")),
		TokenURL:   google.JWTTokenURL,
		Scopes:     []string{sheetsapi.SpreadsheetsReadonlyScope},
	}

	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		defaultSheet:  cfg.DefaultSheet,
		logger:        logger,
	}, nil
}

// DefaultSheetName returns the tab holding the given moment's runs. Tabs
// are created per month and named like "2025_06".
func DefaultSheetName(now time.Time) string {
	return now.Format("2006_01")
}

// Fetch reads all rows of one sheet tab. No retry is performed here.
func (c *Client) Fetch(ctx context.Context, sheetName string) (*Table, error) {
	if sheetName == "" {
		sheetName = c.defaultSheet
	}
	if sheetName == "" {
		sheetName = DefaultSheetName(time.Now())
	}

	resp, err := c.svc.Spreadsheets.Values.
		Get(c.spreadsheetID, sheetName+"!"+fetchRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetch sheet %q: %w", sheetName, err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrNoData, sheetName)
	}

	if c.logger != nil {
		c.logger.Debug("sheet fetched", "sheet", sheetName, "rows", len(resp.Values))
	}

	table := &Table{Header: rowStrings(resp.Values[0])}
	for _, row := range resp.Values[1:] {
		table.Rows = append(table.Rows, rowStrings(row))
	}
	return table, nil
}

// rowStrings flattens one API row. Values arrive as interface{} but the
// sheet contains only strings; anything else is stringified.
func rowStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		if s, ok := v.(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}
