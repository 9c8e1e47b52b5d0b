package entity

import "time"

// DayTask is the resolved task of one date for one template.
type DayTask struct {
	Date      time.Time `json:"date"`
	DayLabel  string    `json:"day_label"`
	WeekLabel string    `json:"week_label"`
	Task      string    `json:"task"`
	Color     Color     `json:"color"`
	// Fallback is set when a six-phase label was missing from the template
	// and the first week row was used instead.
	Fallback bool `json:"fallback,omitempty"`
}

// PlannedTask is one entry of a generated planning.
type PlannedTask struct {
	ID string `json:"id"`
	DayTask
	SubTasks []*SubTask `json:"sub_tasks"`
}

// SubTask is a free-text annotation attached to a planned task.
type SubTask struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Text      string    `json:"text"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Planning is the flat list of tasks generated for a date range.
type Planning struct {
	Template string         `json:"template"`
	Start    time.Time      `json:"start"`
	End      time.Time      `json:"end"`
	Tasks    []*PlannedTask `json:"tasks"`
}

// CalendarDay is one cell of a month grid. Day is 0 for padding cells.
type CalendarDay struct {
	Day  int       `json:"day"`
	Date time.Time `json:"date,omitzero"`
	Task *DayTask  `json:"task,omitempty"`
}

// CalendarWeek holds seven cells, Monday first.
type CalendarWeek [7]CalendarDay

// CalendarMonth is a month grid with resolved tasks for one template.
type CalendarMonth struct {
	Template  string         `json:"template"`
	Year      int            `json:"year"`
	Month     time.Month     `json:"month"`
	MonthName string         `json:"month_name"`
	Weeks     []CalendarWeek `json:"weeks"`
}
