package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithField adds a single field to the logger in the context.
func WithField(ctx context.Context, key string, value any) context.Context {
	logger := FromContext(ctx)
	newLogger := addField(logger.With(), key, value).Logger()
	return WithLogger(ctx, &newLogger)
}

// WithRoot adds the catalog root to the context logger.
func WithRoot(ctx context.Context, root string) context.Context {
	return WithField(ctx, "root", root)
}

// WithCommand adds the CLI command name to the context logger.
func WithCommand(ctx context.Context, command string) context.Context {
	return WithField(ctx, "command", command)
}
