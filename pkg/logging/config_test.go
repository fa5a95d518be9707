package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/skycatalog/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	})

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		require.NotNil(t, cfg)
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.Equal(t, "stderr", cfg.Output)
		assert.False(t, cfg.AddCaller)
	})

	t.Run("NewLoggerFromConfig writes JSON to a file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "log.json")
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "debug",
			Format: "json",
			Output: out,
			Fields: map[string]any{"medium": "mem"},
		})
		logger.Info().Msg("catalog mounted")

		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(content), "catalog mounted")
		assert.Contains(t, string(content), `"medium":"mem"`)
	})

	t.Run("Configure filters below level", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "log.json")
		logging.Configure(&logging.Config{Level: "warn", Format: "json", Output: out})

		logging.Debug().Msg("debug message")
		logging.Info().Msg("info message")
		logging.Warn().Msg("warn message")
		logging.Error().Msg("error message")

		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "debug message")
		assert.NotContains(t, string(content), "info message")
		assert.Contains(t, string(content), "warn message")
		assert.Contains(t, string(content), "error message")
	})

	t.Run("console format uses short level names", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "log.txt")
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "info", Format: "console", Output: out, NoColor: true})
		logger.Info().Str("root", "/sky").Msg("console test")

		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(content), "console test")
		assert.Contains(t, string(content), "INF")
	})

	t.Run("ConfigureFromEnv prefers prefixed variables", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "error")
		t.Setenv("SKYCAT_LOG_LEVEL", "debug")
		t.Setenv("LOG_OUTPUT", "discard")

		logging.ConfigureFromEnv()
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warning", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}
