package sheets

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidWorkbook is returned when an uploaded document is not a
// readable xlsx workbook.
var ErrInvalidWorkbook = errors.New("invalid xlsx workbook")

// GoogleSource fetches the template workbook from a Google spreadsheet.
type GoogleSource struct {
	Client        *Client
	SpreadsheetID string
}

func (s *GoogleSource) Fetch(ctx context.Context) ([]entity.Sheet, error) {
	return s.Client.Workbook(ctx, s.SpreadsheetID)
}

// WorkbookFile reads the template workbook from an xlsx file on disk.
type WorkbookFile struct {
	Path string
}

func (s *WorkbookFile) Fetch(ctx context.Context) ([]entity.Sheet, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", s.Path, err)
	}
	defer f.Close()

	return readSheets(ctx, f)
}

// ReadWorkbook parses an xlsx document, one Sheet per tab in tab order.
func ReadWorkbook(ctx context.Context, r io.Reader) ([]entity.Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	return readSheets(ctx, f)
}

func readSheets(ctx context.Context, f *excelize.File) ([]entity.Sheet, error) {
	names := f.GetSheetList()
	out := make([]entity.Sheet, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}
		out = append(out, entity.Sheet{Name: name, Rows: rows})
	}
	return out, nil
}
