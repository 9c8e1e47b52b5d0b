package entity

import "time"

// AbsenceSummary aggregates the hours and absences sheet over a period.
type AbsenceSummary struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Rows  int       `json:"rows"`
	// Dropped counts rows whose date could not be parsed.
	Dropped int `json:"dropped"`

	WorkedHours     float64 `json:"worked_hours"`
	UnjustifiedHrs  float64 `json:"unjustified_hours"`
	LateHrs         float64 `json:"late_hours"`
	SickHrs         float64 `json:"sick_hours"`
	PaidLeaveHrs    float64 `json:"paid_leave_hours"`
	UnjustifiedDays float64 `json:"unjustified_days"`
	LateDays        float64 `json:"late_days"`
	SickDays        float64 `json:"sick_days"`
	PaidLeaveDays   float64 `json:"paid_leave_days"`

	// AbsenceHours is unjustified + paid leave + sick hours.
	AbsenceHours float64 `json:"absence_hours"`
	// AbsenceDays sums every day counter, lateness included.
	AbsenceDays float64 `json:"absence_days"`
	// Absenteeism is AbsenceHours over WorkedHours, in percent.
	Absenteeism float64 `json:"absenteeism"`
}
