package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/sheets"
	"github.com/joho/godotenv"
)

const defaultRotations = "Est:week_of_month,Ouest:six_phase"

type Config struct {
	Port         string
	DatabasePath string
	LogLevel     string
	Location     *time.Location

	SlackBotToken      string
	SlackSigningSecret string

	GoogleAPIKey           string
	TemplatesSpreadsheetID string
	// TemplatesFile is a local xlsx workbook used instead of the spreadsheet.
	TemplatesFile string
	Rotations     sheets.RotationConfig

	// AbsencesSpreadsheetID is the staff spreadsheet holding the absences
	// and the hours tabs.
	AbsencesSpreadsheetID string
	AbsencesRange         string
	HoursRange            string
	// HoursTarget is the monthly hours objective; 0 keeps the default.
	HoursTarget float64

	VisitsSpreadsheetID string
	VisitsRange         string
}

// LoadEnvFile reads a dotenv file into the environment. A missing default
// .env is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func Load() (*Config, error) {
	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Europe/Paris"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	kinds, err := sheets.ParseRotationKinds(getEnv("TEMPLATE_ROTATIONS", defaultRotations))
	if err != nil {
		return nil, fmt.Errorf("invalid TEMPLATE_ROTATIONS: %w", err)
	}

	reference := domain.DefaultCycleReference
	if value := os.Getenv("CYCLE_REFERENCE_DATE"); value != "" {
		reference, err = time.Parse(domain.ISODate, value)
		if err != nil {
			return nil, fmt.Errorf("invalid CYCLE_REFERENCE_DATE: %w", err)
		}
		if reference.Weekday() != time.Monday {
			return nil, fmt.Errorf("CYCLE_REFERENCE_DATE must be a Monday, got %s", reference.Weekday())
		}
	}

	var hoursTarget float64
	if value := os.Getenv("HOURS_TARGET"); value != "" {
		hoursTarget, err = strconv.ParseFloat(value, 64)
		if err != nil || hoursTarget <= 0 {
			return nil, fmt.Errorf("invalid HOURS_TARGET %q: must be a positive number", value)
		}
	}

	return &Config{
		Port:                   getEnv("PORT", "3000"),
		DatabasePath:           getEnv("DATABASE_PATH", "./planner.db"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		Location:               loc,
		SlackBotToken:          getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret:     getEnv("SLACK_SIGNING_SECRET", ""),
		GoogleAPIKey:           getEnv("GOOGLE_API_KEY", ""),
		TemplatesSpreadsheetID: getEnv("TEMPLATES_SPREADSHEET_ID", ""),
		TemplatesFile:          getEnv("TEMPLATES_FILE", ""),
		Rotations: sheets.RotationConfig{
			Kinds:     kinds,
			Reference: reference,
		},
		AbsencesSpreadsheetID: getEnv("ABSENCES_SPREADSHEET_ID", ""),
		AbsencesRange:         getEnv("ABSENCES_RANGE", ""),
		HoursRange:            getEnv("HOURS_RANGE", ""),
		HoursTarget:           hoursTarget,
		VisitsSpreadsheetID:   getEnv("VISITS_SPREADSHEET_ID", ""),
		VisitsRange:           getEnv("VISITS_RANGE", ""),
	}, nil
}

// SlackEnabled reports whether the Slack credentials are configured.
func (c *Config) SlackEnabled() bool {
	return c.SlackBotToken != "" && c.SlackSigningSecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
