package rotation

import (
	"slices"
	"strings"

	"github.com/diegoclair/gpns-planner/internal/domain/entity"
)

// Palette is the fixed set of task colors, assigned cyclically.
var Palette = []entity.Color{
	{Name: "blue", Background: "#dbeafe", Foreground: "#1e40af", Border: "#bfdbfe"},
	{Name: "green", Background: "#dcfce7", Foreground: "#166534", Border: "#bbf7d0"},
	{Name: "purple", Background: "#f3e8ff", Foreground: "#6b21a8", Border: "#e9d5ff"},
	{Name: "yellow", Background: "#fef9c3", Foreground: "#854d0e", Border: "#fef08a"},
	{Name: "indigo", Background: "#e0e7ff", Foreground: "#3730a3", Border: "#c7d2fe"},
	{Name: "red", Background: "#fee2e2", Foreground: "#991b1b", Border: "#fecaca"},
	{Name: "pink", Background: "#fce7f3", Foreground: "#9d174d", Border: "#fbcfe8"},
	{Name: "orange", Background: "#ffedd5", Foreground: "#9a3412", Border: "#fed7aa"},
	{Name: "teal", Background: "#ccfbf1", Foreground: "#115e59", Border: "#99f6e4"},
	{Name: "cyan", Background: "#cffafe", Foreground: "#155e75", Border: "#a5f3fc"},
}

// Neutral is used for tasks missing from the color map.
var Neutral = entity.Color{Name: "gray", Background: "#f3f4f6", Foreground: "#1f2937", Border: "#e5e7eb"}

// ColorMap maps task names to their display color.
type ColorMap map[string]entity.Color

// Lookup returns the color of task, or Neutral.
func (m ColorMap) Lookup(task string) entity.Color {
	if c, ok := m[task]; ok {
		return c
	}
	return Neutral
}

// BuildColorMap assigns palette colors to tasks in first-seen order.
// Templates are visited by name, rows top to bottom, days Monday to Friday,
// so the result only depends on the template contents.
func BuildColorMap(templates []*entity.Template, palette []entity.Color) ColorMap {
	if len(palette) == 0 {
		palette = Palette
	}

	ordered := slices.Clone(templates)
	slices.SortStableFunc(ordered, func(a, b *entity.Template) int {
		return strings.Compare(a.Name, b.Name)
	})

	colors := make(ColorMap)
	next := 0
	for _, t := range ordered {
		if t == nil {
			continue
		}
		for _, row := range t.Rows {
			for _, task := range row.Tasks {
				if strings.TrimSpace(task) == "" {
					continue
				}
				if _, seen := colors[task]; seen {
					continue
				}
				colors[task] = palette[next%len(palette)]
				next++
			}
		}
	}
	return colors
}
