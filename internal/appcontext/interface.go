// Package appcontext provides the shared application context interface
// used by all commands. Commands depend on this interface rather than on
// the concrete App, so they can be tested with Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/skycatalog"
)

// Interface defines what commands need from the application.
type Interface interface {
	// Catalog returns the catalog opened on the configured medium and root,
	// creating it on first use.
	Catalog() (skycatalog.Catalog, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
