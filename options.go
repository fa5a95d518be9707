package skycatalog

import (
	"io/fs"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/skycatalog/pkg/errors"
	"github.com/agentstation/skycatalog/pkg/logging"
	"github.com/agentstation/skycatalog/pkg/medium"
	"github.com/agentstation/skycatalog/pkg/sky"
)

// Option is a function that configures a Catalog instance
type Option func(*config) error

// config holds the settings applied by options
type config struct {
	language sky.Language
	mounter  medium.Mounter
	logger   *zerolog.Logger
	indexed  bool
}

func defaultConfig() *config {
	return &config{
		language: sky.English,
		mounter:  medium.DefaultMounter{},
		logger:   logging.Component("catalog"),
	}
}

// WithLanguage sets the language of constellation names
func WithLanguage(lang sky.Language) Option {
	return func(c *config) error {
		c.language = lang
		return nil
	}
}

// WithMounter sets how InitDatabase turns a medium selector into a filesystem
func WithMounter(m medium.Mounter) Option {
	return func(c *config) error {
		if m == nil {
			return errors.NewValidationError("mounter", nil, "cannot be nil")
		}
		c.mounter = m
		return nil
	}
}

// WithFS serves the catalog from an io/fs filesystem, e.g. an embed.FS.
// The medium selector passed to InitDatabase is then only a label.
func WithFS(fsys fs.FS) Option {
	return func(c *config) error {
		if fsys == nil {
			return errors.NewValidationError("fs", nil, "cannot be nil")
		}
		c.mounter = medium.FSMounter{FS: fsys}
		return nil
	}
}

// WithAfero serves the catalog from an afero filesystem
func WithAfero(fsys afero.Fs) Option {
	return func(c *config) error {
		if fsys == nil {
			return errors.NewValidationError("fs", nil, "cannot be nil")
		}
		c.mounter = medium.AferoMounter{Fs: fsys}
		return nil
	}
}

// WithLogger sets the logger for debug events
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "cannot be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithIndexedCursors makes list cursors hold their entries in memory,
// so stepping back no longer re-reads the directory
func WithIndexedCursors(enabled bool) Option {
	return func(c *config) error {
		c.indexed = enabled
		return nil
	}
}
