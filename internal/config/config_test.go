package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_PATH", "LOG_LEVEL", "TIMEZONE",
		"SLACK_BOT_TOKEN", "SLACK_SIGNING_SECRET",
		"GOOGLE_API_KEY", "TEMPLATES_SPREADSHEET_ID", "TEMPLATES_FILE",
		"TEMPLATE_ROTATIONS", "CYCLE_REFERENCE_DATE",
		"ABSENCES_SPREADSHEET_ID", "ABSENCES_RANGE", "HOURS_RANGE", "HOURS_TARGET",
		"VISITS_SPREADSHEET_ID", "VISITS_RANGE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "./planner.db", cfg.DatabasePath)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "Europe/Paris", cfg.Location.String())
		assert.Equal(t, map[string]entity.RotationKind{
			"Est":   entity.RotationWeekOfMonth,
			"Ouest": entity.RotationSixPhase,
		}, cfg.Rotations.Kinds)
		assert.True(t, cfg.Rotations.Reference.Equal(domain.DefaultCycleReference))
		assert.False(t, cfg.SlackEnabled())
		assert.Zero(t, cfg.HoursTarget)
	})

	t.Run("Should read the environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "8080")
		t.Setenv("TIMEZONE", "UTC")
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
		t.Setenv("SLACK_SIGNING_SECRET", "secret")
		t.Setenv("TEMPLATE_ROTATIONS", "Nord:b")
		t.Setenv("CYCLE_REFERENCE_DATE", "2025-01-06")
		t.Setenv("ABSENCES_RANGE", "Feuil1!A1:P")
		t.Setenv("HOURS_TARGET", "3200.5")
		t.Setenv("VISITS_SPREADSHEET_ID", "visits-sheet")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, time.UTC, cfg.Location)
		assert.True(t, cfg.SlackEnabled())
		assert.Equal(t, map[string]entity.RotationKind{"Nord": entity.RotationSixPhase}, cfg.Rotations.Kinds)
		assert.True(t, cfg.Rotations.Reference.Equal(time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, "Feuil1!A1:P", cfg.AbsencesRange)
		assert.Equal(t, "visits-sheet", cfg.VisitsSpreadsheetID)
		assert.Equal(t, 3200.5, cfg.HoursTarget)
	})

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Should reject an unknown timezone", key: "TIMEZONE", value: "Mars/Olympus"},
		{name: "Should reject an unknown rotation kind", key: "TEMPLATE_ROTATIONS", value: "Est:daily"},
		{name: "Should reject a malformed reference date", key: "CYCLE_REFERENCE_DATE", value: "06/01/2025"},
		{name: "Should reject a reference date that is not a Monday", key: "CYCLE_REFERENCE_DATE", value: "2025-01-07"},
		{name: "Should reject a non numeric hours target", key: "HOURS_TARGET", value: "beaucoup"},
		{name: "Should reject a negative hours target", key: "HOURS_TARGET", value: "-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("Should load variables from the given file", func(t *testing.T) {
		const key = "GPNS_PLANNER_TEST_VALUE"
		t.Cleanup(func() { os.Unsetenv(key) })

		path := filepath.Join(t.TempDir(), "planner.env")
		require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))

		require.NoError(t, LoadEnvFile(path))
		assert.Equal(t, "from-file", os.Getenv(key))
	})

	t.Run("Should fail for a missing explicit file", func(t *testing.T) {
		assert.Error(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	})
}
