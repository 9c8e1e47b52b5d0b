// Package export writes generated plannings as xlsx workbooks or plain text.
package export

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// Supported export formats.
const (
	FormatXLSX = "xlsx"
	FormatText = "txt"
)

// SheetName is the name of the single sheet of an xlsx export.
const SheetName = "Planning"

// Columns are the export headers, in order.
var Columns = []string{"Date", "Jour", "Type de Semaine", "Tâche", "Sous-tâches"}

var columnWidths = []struct {
	from, to string
	width    float64
}{
	{"A", "B", 12},
	{"C", "C", 20},
	{"D", "E", 40},
}

// ContentType returns the MIME type of an export format.
func ContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/plain; charset=utf-8"
}

// FileName builds the download name of an export.
func FileName(p *entity.Planning, format string) string {
	return fmt.Sprintf("Planning_%s_%s_%s.%s",
		p.Template,
		p.Start.Format("02-01-2006"),
		p.End.Format("02-01-2006"),
		format,
	)
}

// Write dispatches on format.
func Write(w io.Writer, format string, p *entity.Planning) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, p)
	case FormatText:
		return WriteText(w, p)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// Row returns the exported cells of one task. Control characters are
// replaced so a cell never spans several text lines or columns.
func Row(t *entity.PlannedTask) []string {
	return []string{
		t.Date.Format(domain.DateLayout),
		cleanCell(t.DayLabel),
		cleanCell(t.WeekLabel),
		cleanCell(t.Task),
		cleanCell(joinSubTasks(t.SubTasks)),
	}
}

func cleanCell(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsControl), " ")
}

func joinSubTasks(subTasks []*entity.SubTask) string {
	texts := make([]string, len(subTasks))
	for i, st := range subTasks {
		texts[i] = st.Text
	}
	return strings.Join(texts, ", ")
}

// WriteText writes the tab separated form: a title line, a blank line, the
// header and one line per task.
func WriteText(w io.Writer, p *entity.Planning) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Planning %s - Du %s au %s\n\n",
		p.Template,
		p.Start.Format(domain.DateLayout),
		p.End.Format(domain.DateLayout),
	)
	b.WriteString(strings.Join(Columns, "\t"))
	b.WriteByte('\n')
	for _, t := range p.Tasks {
		b.WriteString(strings.Join(Row(t), "\t"))
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write text export: %w", err)
	}
	return nil
}

// WriteXLSX writes a workbook with a single "Planning" sheet.
func WriteXLSX(w io.Writer, p *entity.Planning) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DBEAFE"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(Columns))
	if err != nil {
		return fmt.Errorf("failed to name last column: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, t := range p.Tasks {
		cells := Row(t)
		row := make([]any, len(cells))
		for j, c := range cells {
			row[j] = c
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to locate row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	for _, cw := range columnWidths {
		if err := f.SetColWidth(SheetName, cw.from, cw.to, cw.width); err != nil {
			return fmt.Errorf("failed to set width of columns %s-%s: %w", cw.from, cw.to, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx export: %w", err)
	}
	return nil
}
