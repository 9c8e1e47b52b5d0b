package contract

import (
	"context"

	"github.com/diegoclair/gpns-planner/internal/domain/entity"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/source_mock.go -package=mocks . TemplateSource,RangeReader

// TemplateSource fetches the raw template workbook, one sheet per template.
type TemplateSource interface {
	Fetch(ctx context.Context) ([]entity.Sheet, error)
}

// RangeReader reads a raw value range from a spreadsheet.
type RangeReader interface {
	Range(ctx context.Context, spreadsheetID, rng string) ([][]string, error)
}
