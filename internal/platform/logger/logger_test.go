package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klowran/cats-api/internal/config"
)

func TestSetup(t *testing.T) {
	restore := slog.Default()
	defer slog.SetDefault(restore)

	tests := []struct {
		name     string
		logLevel string
		enabled  slog.Level
		disabled slog.Level
	}{
		{
			name:     "debug level",
			logLevel: "debug",
			enabled:  slog.LevelDebug,
			disabled: slog.LevelDebug, // nothing below debug to check
		},
		{
			name:     "warn level",
			logLevel: "warn",
			enabled:  slog.LevelWarn,
			disabled: slog.LevelInfo,
		},
		{
			name:     "level is case-insensitive",
			logLevel: "ERROR",
			enabled:  slog.LevelError,
			disabled: slog.LevelWarn,
		},
		{
			name:     "unknown level falls back to info",
			logLevel: "verbose",
			enabled:  slog.LevelInfo,
			disabled: slog.LevelDebug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.enabled))
			if tt.disabled != tt.enabled {
				assert.False(t, log.Enabled(ctx, tt.disabled))
			}

			// Setup installs the logger as the process default.
			assert.Equal(t, log, slog.Default())
		})
	}
}
