package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		verbose   bool
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "Should default to info", wantLevel: zapcore.InfoLevel},
		{name: "Should honor the configured level", level: "warn", wantLevel: zapcore.WarnLevel},
		{name: "Should force debug when verbose", level: "error", verbose: true, wantLevel: zapcore.DebugLevel},
		{name: "Should reject an unknown level", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level, tt.verbose)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.True(t, logger.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}
