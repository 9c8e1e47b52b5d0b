package service

import (
	"errors"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/internal/sheets"
	"go.uber.org/zap"
)

var (
	ErrTemplateNotFound  = errors.New("template not found")
	ErrSubTaskNotFound   = errors.New("sub-task not found")
	ErrEmptySubTask      = errors.New("sub-task text is required")
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrNoData            = errors.New("no data for period")
	ErrInvalidTime       = errors.New("invalid time format, use HH:MM (24-hour format), example: 07:30")
	ErrNotSubscribed     = errors.New("channel has no subscription")

	ErrAbsencesNotConfigured = errors.New("absences spreadsheet is not configured")
	ErrHoursNotConfigured    = errors.New("hours spreadsheet is not configured")
	ErrVisitsNotConfigured   = errors.New("visits spreadsheet is not configured")
)

// Options carries the dependencies and settings shared by the services.
type Options struct {
	DataManager contract.DataManager
	Slack       contract.SlackClient
	Logger      *zap.Logger

	// Templates is where LoadTemplates reads the workbook from. Nil means
	// the built-in templates are always used.
	Templates contract.TemplateSource
	Rotations sheets.RotationConfig

	// Sheets reads the staff and visits spreadsheets. The hours and
	// absences tabs live in the staff spreadsheet.
	Sheets          contract.RangeReader
	AbsencesSheetID string
	AbsencesRange   string
	HoursRange      string
	HoursTarget     float64
	VisitsSheetID   string
	VisitsRange     string

	// Location is the timezone of notification times and of "today".
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.AbsencesRange == "" {
		o.AbsencesRange = DefaultAbsencesRange
	}
	if o.HoursRange == "" {
		o.HoursRange = DefaultHoursRange
	}
	if o.HoursTarget <= 0 {
		o.HoursTarget = DefaultHoursTarget
	}
	if o.VisitsRange == "" {
		o.VisitsRange = DefaultVisitsRange
	}
}
