package domain

import "time"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WorkDays is the number of task slots in a week row (Monday to Friday).
const WorkDays = 5

// WeekdayNames maps ISO 8601 weekday numbers to the French labels used in templates
var WeekdayNames = map[int]string{
	Monday:    "Lundi",
	Tuesday:   "Mardi",
	Wednesday: "Mercredi",
	Thursday:  "Jeudi",
	Friday:    "Vendredi",
	Saturday:  "Samedi",
	Sunday:    "Dimanche",
}

// WeekdayNumbers maps weekday numbers as strings to integers
var WeekdayNumbers = map[string]int{
	"1": Monday,
	"2": Tuesday,
	"3": Wednesday,
	"4": Thursday,
	"5": Friday,
	"6": Saturday,
	"7": Sunday,
}

// MonthNames holds the French month names, January first.
var MonthNames = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// DefaultActiveDays represents Monday through Friday in ISO format
var DefaultActiveDays = []int{Monday, Tuesday, Wednesday, Thursday, Friday}

// DefaultNotificationTime is used when a subscription is created without a time
const DefaultNotificationTime = "07:00"

// DateLayout is the dd/mm/yyyy layout used in exports and spreadsheet rows.
const DateLayout = "02/01/2006"

// ISODate is the layout accepted by the HTTP API and the CLI.
const ISODate = "2006-01-02"

// DefaultCycleReference is the Monday on which the six-phase cycle starts
// with "Semaine paire 1".
var DefaultCycleReference = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

// ISOWeekday converts Go's Sunday-first weekday into ISO 8601 numbering.
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return Sunday
	}
	return int(d)
}

// CivilDate drops the clock and zone of t, keeping its calendar date in UTC.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
