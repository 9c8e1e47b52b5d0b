package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// sheetTable looks cells up by their column header, lowercased and trimmed.
type sheetTable struct {
	index map[string]int
	rows  [][]string
}

func newSheetTable(values [][]string) sheetTable {
	if len(values) == 0 {
		return sheetTable{}
	}

	index := make(map[string]int, len(values[0]))
	for i, h := range values[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return sheetTable{index: index, rows: values[1:]}
}

func (t sheetTable) cell(row []string, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t sheetTable) number(row []string, col string) float64 {
	return parseNumber(t.cell(row, col))
}

// parseSheetDate reads a d/m/yyyy date. Leading zeros are optional and
// the date must exist in the calendar.
func parseSheetDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid sheet date %q", s)
	}

	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid sheet date %q: %w", s, err)
		}
		fields[i] = n
	}

	day, month, year := fields[0], time.Month(fields[1]), fields[2]
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if year < 1000 || date.Day() != day || date.Month() != month {
		return time.Time{}, fmt.Errorf("invalid sheet date %q", s)
	}
	return date, nil
}

// parseNumber reads a sheet number, accepting a decimal comma. Anything
// unreadable counts as 0.
func parseNumber(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
