package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// ContextWithSignals returns a context cancelled on SIGINT or SIGTERM, so a
// long list walk stops and the catalog still gets closed.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
