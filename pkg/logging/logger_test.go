package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/skycatalog/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	})

	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logging.SetDefault(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logging.Debug().Msg("debug line")
	logging.Info().Msg("info line")
	logging.Err(assert.AnError).Msg("failed line")

	out := buf.String()
	assert.Contains(t, out, "debug line")
	assert.Contains(t, out, "info line")
	assert.Contains(t, out, assert.AnError.Error())

	buf.Reset()
	logging.Component("cursor").Debug().Msg("replay")
	assert.Contains(t, buf.String(), `"component":"cursor"`)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)
	logger.Info().Msg("json test")
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRoot(ctx, "/sky")
	ctx = logging.WithCommand(ctx, "describe")

	logging.FromContext(ctx).Info().Msg("from context")

	assert.True(t, tl.Contains("from context"))
	assert.True(t, tl.Contains(`"root":"/sky"`))
	assert.True(t, tl.Contains(`"command":"describe"`))
	assert.Len(t, tl.Lines(), 1)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, logging.Default(), logging.FromContext(nil))
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNopLogger()
	logger.Error().Msg("discarded")
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
