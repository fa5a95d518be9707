// Package app provides the application context and dependency management
// for the skycat CLI. It centralizes configuration, logging and the
// catalog instance, and hands them to commands through appcontext.Interface.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/skycatalog"
	"github.com/agentstation/skycatalog/internal/appcontext"
	"github.com/agentstation/skycatalog/pkg/errors"
	"github.com/agentstation/skycatalog/pkg/sky"
)

// App represents the skycat application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Output writer for commands, stdout when nil
	out io.Writer

	// Catalog instance (lazy-initialized)
	mu          sync.Mutex
	catalog     skycatalog.Catalog
	catalogOpts []skycatalog.Option
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with the loaded configuration, which can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Catalog returns the catalog opened on the configured medium and root,
// creating it on first use.
func (a *App) Catalog() (skycatalog.Catalog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		return a.catalog, nil
	}
	if a.config.Root == "" {
		return nil, errors.NewConfigError("root", "no catalog root configured (use --root or SKYCAT_ROOT)", nil)
	}

	cat, err := skycatalog.Open(a.config.Medium, a.config.Root, a.buildCatalogOptions()...)
	if err != nil {
		return nil, err
	}

	a.catalog = cat
	return cat, nil
}

// Shutdown releases the catalog, if one was opened.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog == nil {
		return nil
	}
	err := a.catalog.Close()
	a.catalog = nil
	return err
}

// buildCatalogOptions constructs catalog options from the app configuration.
func (a *App) buildCatalogOptions() []skycatalog.Option {
	logger := a.logger.With().Str("component", "catalog").Logger()

	opts := []skycatalog.Option{
		skycatalog.WithLanguage(sky.ParseLanguage(a.config.Language)),
		skycatalog.WithIndexedCursors(a.config.IndexedCursors),
		skycatalog.WithLogger(&logger),
	}

	return append(opts, a.catalogOpts...)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCatalog sets a custom catalog instance (useful for testing).
func WithCatalog(cat skycatalog.Catalog) Option {
	return func(a *App) error {
		a.catalog = cat
		return nil
	}
}

// WithCatalogOptions adds options used when the catalog is opened,
// e.g. skycatalog.WithFS to serve an embedded catalog.
func WithCatalogOptions(opts ...skycatalog.Option) Option {
	return func(a *App) error {
		a.catalogOpts = append(a.catalogOpts, opts...)
		return nil
	}
}

// WithOutput sets where commands write their output.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
