// Package skycatalog reads a flat-file astronomical catalog of stars,
// Messier, NGC and IC objects and constellations.
//
// The catalog is a directory tree of small text records on a mounted medium:
//
//	<root>/star.cnt                    count of star records
//	<root>/star/000001.txt             one star, 9 lines
//	<root>/ngc/000001.txt              one NGC object, 6 lines
//	<root>/const/ORI/star/000001.txt   constellation-scoped subset
//	<root>/const/ORI/eng.tsl           constellation name, one line
//
// A Catalog offers direct lookups plus two independent list cursors, one over
// objects and one over constellations. Lookups never fail: a missing record
// comes back as the zero sky.Object, and a missing translation falls back to
// the constellation abbreviation.
//
// A Catalog is not safe for concurrent use.
package skycatalog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agentstation/skycatalog/pkg/cursor"
	"github.com/agentstation/skycatalog/pkg/errors"
	"github.com/agentstation/skycatalog/pkg/medium"
	"github.com/agentstation/skycatalog/pkg/paths"
	"github.com/agentstation/skycatalog/pkg/record"
	"github.com/agentstation/skycatalog/pkg/sky"
)

// Catalog gives read-only access to one catalog root
type Catalog interface {
	// InitDatabase mounts the medium and validates root through its star
	// count file. Calling it again closes open lists and switches roots.
	InitDatabase(selector, root string) error

	// Description reads the four count files. Missing ones are unknown.
	Description() sky.Description

	// Object looks up one record, optionally scoped to a constellation.
	// It returns the zero Object when the record does not exist.
	Object(abbrev string, id int64, cat sky.Category) sky.Object

	// OpenObjectList opens the object cursor on a category directory,
	// optionally scoped to a constellation
	OpenObjectList(abbrev string, cat sky.Category) error
	NextObject() bool
	PreviousObject() bool
	CurrentObject() (sky.Object, bool)
	ObjectPosition() int
	CloseObjectList()

	// OpenConstellationList opens the constellation cursor
	OpenConstellationList() error
	NextConstellation() bool
	PreviousConstellation() bool
	CurrentConstellation() (sky.Constellation, bool)
	ConstellationPosition() int
	CloseConstellationList()

	// Constellation resolves a full name in the current language
	Constellation(abbrev string) sky.Constellation

	// SetLanguage affects translations resolved from now on
	SetLanguage(lang sky.Language)
	Language() sky.Language

	// Root returns the validated root, or "" before InitDatabase
	Root() string
	Initialized() bool

	// Close releases both cursors and forgets the database
	Close() error
}

// catalog is the internal implementation of the Catalog interface
type catalog struct {
	config   *config
	logger   *zerolog.Logger
	language sky.Language

	medium *medium.Medium
	root   string

	objects        *cursor.Cursor
	objectCategory sky.Category
	constellations *cursor.Cursor
}

// New creates a new Catalog with the given options. The catalog holds no
// database until InitDatabase succeeds.
func New(opts ...Option) (Catalog, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	return &catalog{
		config:   cfg,
		logger:   cfg.logger,
		language: cfg.language,
	}, nil
}

// Open creates a Catalog and initializes it on root.
func Open(selector, root string, opts ...Option) (Catalog, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := c.InitDatabase(selector, root); err != nil {
		return nil, err
	}
	return c, nil
}

// InitDatabase implements Catalog.
func (c *catalog) InitDatabase(selector, root string) error {
	m, err := medium.Mount(c.config.mounter, selector)
	if err != nil {
		c.logger.Debug().Err(err).Str("medium", selector).Msg("mount failed")
		return err
	}

	countFile := paths.CountFile(root, sky.Star)
	f, err := m.Open(countFile)
	if err != nil {
		return errors.NewRootError(root, "missing star count file", err)
	}
	count := record.ParseCount(f)
	_ = f.Close()
	if !count.Known() {
		return errors.NewRootError(root, "unreadable star count file", nil)
	}

	_ = c.closeCursors()

	c.medium = m
	c.root = root
	c.objects = c.newCursor("objects", cursor.WithFilter(cursor.RecordFilter))
	c.constellations = c.newCursor("constellations")

	c.logger.Debug().
		Str("medium", selector).
		Str("root", root).
		Int("stars", int(count)).
		Msg("catalog initialized")
	return nil
}

func (c *catalog) newCursor(name string, opts ...cursor.Option) *cursor.Cursor {
	logger := c.logger.With().Str("cursor", name).Logger()
	opts = append(opts, cursor.WithLogger(&logger))
	if c.config.indexed {
		opts = append(opts, cursor.WithIndex())
	}
	return cursor.New(c.medium, opts...)
}

// Description implements Catalog.
func (c *catalog) Description() sky.Description {
	d := sky.UnknownDescription()
	if !c.Initialized() {
		return d
	}
	for _, cat := range sky.Categories {
		d.Set(cat, c.count(cat))
	}
	return d
}

// count reads one count file, unknown when absent.
func (c *catalog) count(cat sky.Category) sky.Count {
	path := paths.CountFile(c.root, cat)
	f, err := c.medium.Open(path)
	if err != nil {
		c.logger.Debug().Str("path", path).Msg("count file missing")
		return sky.CountUnknown
	}
	defer f.Close()
	return record.ParseCount(f)
}

// SetLanguage implements Catalog.
func (c *catalog) SetLanguage(lang sky.Language) {
	c.language = lang
}

// Language implements Catalog.
func (c *catalog) Language() sky.Language {
	return c.language
}

// Root implements Catalog.
func (c *catalog) Root() string {
	return c.root
}

// Initialized implements Catalog.
func (c *catalog) Initialized() bool {
	return c.medium != nil
}

// Close implements Catalog.
func (c *catalog) Close() error {
	err := c.closeCursors()
	c.medium = nil
	c.root = ""
	c.objects = nil
	c.constellations = nil
	return err
}

func (c *catalog) closeCursors() error {
	var first error
	for _, cur := range []*cursor.Cursor{c.objects, c.constellations} {
		if cur == nil {
			continue
		}
		if err := cur.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
