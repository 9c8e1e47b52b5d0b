package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
)

// CellWidth is the inner width of a day cell.
const CellWidth = 16

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Width(CellWidth + 2).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Width(CellWidth).Height(3).Padding(0, 0)
	emptyStyle  = cellStyle.BorderForeground(lipgloss.Color("8"))
	dayStyle    = lipgloss.NewStyle().Bold(true)
	weekStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1)
)

// Calendar renders the Monday to Friday grid of a month for a terminal.
func Calendar(cm *entity.CalendarMonth) string {
	var rows []string
	rows = append(rows, titleStyle.Render(fmt.Sprintf("%s %d - %s", cm.MonthName, cm.Year, cm.Template)))

	headers := make([]string, 0, domain.WorkDays)
	for d := domain.Monday; d <= domain.Friday; d++ {
		headers = append(headers, headerStyle.Render(domain.WeekdayNames[d]))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, headers...))

	fallbacks := 0
	for _, week := range cm.Weeks {
		if weekIsEmpty(week) {
			continue
		}

		cells := make([]string, 0, domain.WorkDays)
		for _, day := range week[:domain.WorkDays] {
			cells = append(cells, renderDay(day))
			if day.Task != nil && day.Task.Fallback {
				fallbacks++
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	if fallbacks > 0 {
		rows = append(rows, footerStyle.Render(fmt.Sprintf("* %d jour(s) sans semaine correspondante, première ligne utilisée", fallbacks)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// weekIsEmpty reports whether a grid row has no weekday of the month.
func weekIsEmpty(week entity.CalendarWeek) bool {
	for _, day := range week[:domain.WorkDays] {
		if day.Day != 0 {
			return false
		}
	}
	return true
}

func renderDay(day entity.CalendarDay) string {
	if day.Day == 0 {
		return emptyStyle.Render("")
	}

	lines := []string{dayStyle.Render(strconv.Itoa(day.Day))}
	if day.Task == nil {
		return cellStyle.Render(strings.Join(lines, "\n"))
	}

	task := day.Task.Task
	if day.Task.Fallback {
		task += " *"
	}
	lines = append(lines, taskStyle(day.Task.Color).Render(task), weekStyle.Render(day.Task.WeekLabel))

	style := cellStyle
	if day.Task.Color.Border != "" {
		style = style.BorderForeground(lipgloss.Color(day.Task.Color.Border))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func taskStyle(c entity.Color) lipgloss.Style {
	s := lipgloss.NewStyle().MaxWidth(CellWidth)
	if c.Background != "" {
		s = s.Background(lipgloss.Color(c.Background))
	}
	if c.Foreground != "" {
		s = s.Foreground(lipgloss.Color(c.Foreground))
	}
	return s
}
