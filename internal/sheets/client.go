// Package sheets reads planning templates and report ranges from Google
// Sheets and xlsx workbooks.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// TemplateRange is the A1 range read from every template tab: the week
// label column and the five weekday columns.
const TemplateRange = "A1:F"

// Client is a read-only Google Sheets client authenticated with an API key.
type Client struct {
	srv *sheets.Service
}

// NewClient creates a Sheets client. Extra options are appended after the
// API key, which lets tests point the client at a local server.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client: %w", err)
	}

	return &Client{srv: srv}, nil
}

// Range returns the raw values of rng, stringified.
func (c *Client) Range(ctx context.Context, spreadsheetID, rng string) ([][]string, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", rng, err)
	}

	return stringify(resp.Values), nil
}

// Workbook reads every tab of the spreadsheet, one Sheet per tab title.
func (c *Client) Workbook(ctx context.Context, spreadsheetID string) ([]entity.Sheet, error) {
	meta, err := c.srv.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet %s: %w", spreadsheetID, err)
	}

	titles := make([]string, 0, len(meta.Sheets))
	ranges := make([]string, 0, len(meta.Sheets))
	for _, s := range meta.Sheets {
		if s.Properties == nil {
			continue
		}
		titles = append(titles, s.Properties.Title)
		ranges = append(ranges, quoteTitle(s.Properties.Title)+"!"+TemplateRange)
	}
	if len(ranges) == 0 {
		return nil, nil
	}

	resp, err := c.srv.Spreadsheets.Values.BatchGet(spreadsheetID).Ranges(ranges...).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read template ranges: %w", err)
	}
	if len(resp.ValueRanges) != len(titles) {
		return nil, fmt.Errorf("expected %d value ranges, got %d", len(titles), len(resp.ValueRanges))
	}

	out := make([]entity.Sheet, len(titles))
	for i, vr := range resp.ValueRanges {
		out[i] = entity.Sheet{Name: titles[i], Rows: stringify(vr.Values)}
	}

	return out, nil
}

func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func stringify(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v != nil {
				cells[j] = fmt.Sprint(v)
			}
		}
		rows[i] = cells
	}
	return rows
}
