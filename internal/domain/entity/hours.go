package entity

import "time"

// HoursSummary aggregates the worked hours sheet over a period.
type HoursSummary struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Rows    int       `json:"rows"`
	Dropped int       `json:"dropped"`

	TotalHours   float64 `json:"total_hours"`
	InterimHours float64 `json:"interim_hours"`
	// PermanentHours is TotalHours minus InterimHours (CDI staff).
	PermanentHours float64 `json:"permanent_hours"`
	NightHours     float64 `json:"night_hours"`
	AgentHours     float64 `json:"agent_hours"`
	LeaderHours    float64 `json:"leader_hours"`

	// FTE converts TotalHours into full-time equivalents (151.67 h a month).
	FTE              float64 `json:"fte"`
	PermanentPercent float64 `json:"permanent_percent"`
	InterimPercent   float64 `json:"interim_percent"`
	NightPercent     float64 `json:"night_percent"`

	Target        float64 `json:"target"`
	TargetPercent float64 `json:"target_percent"`

	Days []*DayHours `json:"days"`
}

// DayHours is one dated row of the hours sheet.
type DayHours struct {
	Date         time.Time `json:"date"`
	TotalHours   float64   `json:"total_hours"`
	InterimHours float64   `json:"interim_hours"`
	NightHours   float64   `json:"night_hours"`
}
