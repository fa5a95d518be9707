package skycatalog

import (
	"github.com/agentstation/skycatalog/pkg/errors"
	"github.com/agentstation/skycatalog/pkg/paths"
	"github.com/agentstation/skycatalog/pkg/record"
	"github.com/agentstation/skycatalog/pkg/sky"
)

// Object implements Catalog.
func (c *catalog) Object(abbrev string, id int64, cat sky.Category) sky.Object {
	if !c.Initialized() || !cat.Valid() {
		return sky.Object{}
	}

	path := paths.RecordFile(c.root, abbrev, cat, id)
	f, err := c.medium.Open(path)
	if err != nil {
		c.logger.Debug().Str("path", path).Msg("record not found")
		return sky.Object{}
	}
	defer f.Close()

	return record.ParseObject(f, id, cat)
}

// OpenObjectList implements Catalog.
func (c *catalog) OpenObjectList(abbrev string, cat sky.Category) error {
	if !c.Initialized() {
		return errors.ErrNotInitialized
	}
	if !cat.Valid() {
		return errors.NewValidationError("category", cat, "must be one of star, messier, ngc, ic")
	}

	c.objectCategory = cat
	return c.objects.Open(paths.CategoryDir(c.root, abbrev, cat))
}

// NextObject implements Catalog.
func (c *catalog) NextObject() bool {
	return c.objects != nil && c.objects.Next()
}

// PreviousObject implements Catalog.
func (c *catalog) PreviousObject() bool {
	return c.objects != nil && c.objects.Previous()
}

// CurrentObject implements Catalog. The identifier comes from the file name
// of the current entry.
func (c *catalog) CurrentObject() (sky.Object, bool) {
	if c.objects == nil {
		return sky.Object{}, false
	}
	e, ok := c.objects.Current()
	if !ok {
		return sky.Object{}, false
	}
	id, ok := paths.IDFromRecordName(e.Name())
	if !ok {
		return sky.Object{}, false
	}

	r, err := e.Reader()
	if err != nil {
		c.logger.Debug().Err(err).Str("path", e.Path()).Msg("record unreadable")
		return sky.Object{}, false
	}
	defer e.Close()

	obj := record.ParseObject(r, id, c.objectCategory)
	return obj, !obj.IsZero()
}

// ObjectPosition implements Catalog.
func (c *catalog) ObjectPosition() int {
	if c.objects == nil {
		return 0
	}
	return c.objects.Position()
}

// CloseObjectList implements Catalog.
func (c *catalog) CloseObjectList() {
	if c.objects != nil {
		_ = c.objects.Close()
	}
}
