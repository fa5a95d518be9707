// Package cursor provides bidirectional navigation over a directory whose
// listing can only be read forward.
//
// By default Previous rewinds the listing and replays it up to the preceding
// entry, so memory stays constant and a step back costs O(position) entry
// reads. WithIndex trades that for an in-memory list of the accepted entries,
// built once at Open, which makes both directions O(1).
package cursor

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/skycatalog/pkg/logging"
	"github.com/agentstation/skycatalog/pkg/medium"
	"github.com/agentstation/skycatalog/pkg/paths"
)

// Filter reports whether an entry takes part in navigation. Rejected entries
// are skipped and never counted as a position.
type Filter func(e *medium.Entry) bool

// RecordFilter accepts record files and rejects everything else.
func RecordFilter(e *medium.Entry) bool {
	return !e.IsDir() && paths.IsRecordName(e.Name())
}

// Option configures a Cursor.
type Option func(*Cursor)

// WithFilter sets the entry filter. Without one every entry is accepted.
func WithFilter(f Filter) Option {
	return func(c *Cursor) {
		c.filter = f
	}
}

// WithIndex materialises the accepted entries at Open.
func WithIndex() Option {
	return func(c *Cursor) {
		c.indexed = true
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Cursor) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Cursor walks the entries of one directory. Position 0 means no entry is
// current; after a successful Next or Previous the position is the 1-based
// index of the current entry among accepted entries.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	medium  *medium.Medium
	filter  Filter
	indexed bool
	logger  *zerolog.Logger

	open     bool
	path     string
	dir      *medium.Dir
	index    []*medium.Entry
	position int
	current  *medium.Entry
}

// New returns a closed cursor over m.
func New(m *medium.Medium, opts ...Option) *Cursor {
	c := &Cursor{
		medium: m,
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open closes any previous listing and opens path at position 0.
func (c *Cursor) Open(path string) error {
	_ = c.Close()

	dir, err := c.medium.OpenDir(path)
	if err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("cursor open failed")
		return err
	}

	if c.indexed {
		index, err := c.collect(dir)
		closeErr := dir.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return closeErr
		}
		c.index = index
	} else {
		c.dir = dir
	}

	c.open = true
	c.path = path
	c.logger.Debug().Str("path", path).Bool("indexed", c.indexed).Int("entries", len(c.index)).Msg("cursor opened")
	return nil
}

// collect lists every accepted entry of dir.
func (c *Cursor) collect(dir *medium.Dir) ([]*medium.Entry, error) {
	var index []*medium.Entry
	for {
		e, err := dir.Next()
		if err == io.EOF {
			return index, nil
		}
		if err != nil {
			return nil, err
		}
		if c.accept(e) {
			index = append(index, e)
		}
	}
}

func (c *Cursor) accept(e *medium.Entry) bool {
	return c.filter == nil || c.filter(e)
}

// Next advances to the next accepted entry. When none remains it reports
// false and the cursor keeps its current entry and position.
func (c *Cursor) Next() bool {
	if !c.open {
		return false
	}

	if c.indexed {
		if c.position >= len(c.index) {
			return false
		}
		c.moveTo(c.index[c.position], c.position+1)
		return true
	}

	e, ok := c.nextAccepted()
	if !ok {
		return false
	}
	c.moveTo(e, c.position+1)
	return true
}

// nextAccepted reads the listing forward to the next accepted entry.
func (c *Cursor) nextAccepted() (*medium.Entry, bool) {
	for {
		e, err := c.dir.Next()
		if err != nil {
			if err != io.EOF {
				c.logger.Debug().Err(err).Str("path", c.path).Msg("directory listing failed")
			}
			return nil, false
		}
		if c.accept(e) {
			return e, true
		}
		_ = e.Close()
	}
}

// Previous steps back to the preceding accepted entry. At position 0 or 1
// it reports false and changes nothing.
func (c *Cursor) Previous() bool {
	if !c.open || c.position <= 1 {
		return false
	}
	target := c.position - 1

	if c.indexed {
		c.moveTo(c.index[target-1], target)
		return true
	}

	if err := c.dir.Rewind(); err != nil {
		c.logger.Debug().Err(err).Str("path", c.path).Msg("directory rewind failed")
		return false
	}

	var e *medium.Entry
	for visited := 0; visited < target; visited++ {
		if e != nil {
			_ = e.Close()
		}
		var ok bool
		e, ok = c.nextAccepted()
		if !ok {
			// The directory shrank under us: start over from the top.
			c.logger.Debug().Str("path", c.path).Int("position", c.position).Int("visited", visited).Msg("directory shrank during replay")
			c.reset()
			return false
		}
	}

	c.logger.Debug().Str("path", c.path).Int("position", target).Int("reads", target).Msg("cursor replayed")
	c.moveTo(e, target)
	return true
}

// reset drops the current entry and restarts the listing at position 0.
func (c *Cursor) reset() {
	c.release()
	c.position = 0
	if c.dir != nil {
		if err := c.dir.Rewind(); err != nil {
			c.logger.Debug().Err(err).Str("path", c.path).Msg("directory rewind failed")
		}
	}
}

func (c *Cursor) moveTo(e *medium.Entry, position int) {
	if c.current != e {
		c.release()
	}
	c.current = e
	c.position = position
}

func (c *Cursor) release() {
	if c.current != nil {
		_ = c.current.Close()
		c.current = nil
	}
}

// Current returns the current entry, or false at position 0.
func (c *Cursor) Current() (*medium.Entry, bool) {
	if !c.open || c.position == 0 || c.current == nil {
		return nil, false
	}
	return c.current, true
}

// Position returns the 1-based position of the current entry, 0 if none.
func (c *Cursor) Position() int {
	return c.position
}

// Path returns the directory the cursor was opened on.
func (c *Cursor) Path() string {
	return c.path
}

// IsOpen reports whether Open succeeded and Close has not been called since.
func (c *Cursor) IsOpen() bool {
	return c.open
}

// Close releases the directory and the current entry and resets the
// position. Closing a closed cursor is a no-op.
func (c *Cursor) Close() error {
	if !c.open {
		return nil
	}
	c.release()
	var err error
	if c.dir != nil {
		err = c.dir.Close()
		c.dir = nil
	}
	c.index = nil
	c.position = 0
	c.open = false
	c.logger.Debug().Str("path", c.path).Msg("cursor closed")
	return err
}
