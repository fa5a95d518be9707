package skycatalog

import (
	"github.com/agentstation/skycatalog/pkg/errors"
	"github.com/agentstation/skycatalog/pkg/paths"
	"github.com/agentstation/skycatalog/pkg/record"
	"github.com/agentstation/skycatalog/pkg/sky"
)

// Constellation implements Catalog. The full name falls back to the
// abbreviation when the translation file is absent or empty.
func (c *catalog) Constellation(abbrev string) sky.Constellation {
	constellation := sky.Constellation{Abbreviation: abbrev, FullName: abbrev}
	if !c.Initialized() || abbrev == "" {
		return constellation
	}

	path := paths.TranslationFile(c.root, abbrev, c.language)
	f, err := c.medium.Open(path)
	if err != nil {
		c.logger.Debug().Str("path", path).Str("language", c.language.String()).Msg("translation missing")
		return constellation
	}
	defer f.Close()

	if name := record.ParseTranslation(f); name != "" {
		constellation.FullName = name
	}
	return constellation
}

// OpenConstellationList implements Catalog.
func (c *catalog) OpenConstellationList() error {
	if !c.Initialized() {
		return errors.ErrNotInitialized
	}
	return c.constellations.Open(paths.ConstellationsDir(c.root))
}

// NextConstellation implements Catalog.
func (c *catalog) NextConstellation() bool {
	return c.constellations != nil && c.constellations.Next()
}

// PreviousConstellation implements Catalog.
func (c *catalog) PreviousConstellation() bool {
	return c.constellations != nil && c.constellations.Previous()
}

// CurrentConstellation implements Catalog. Every entry of the constellation
// directory is a constellation; its name is the abbreviation.
func (c *catalog) CurrentConstellation() (sky.Constellation, bool) {
	if c.constellations == nil {
		return sky.Constellation{}, false
	}
	e, ok := c.constellations.Current()
	if !ok {
		return sky.Constellation{}, false
	}
	return c.Constellation(e.Name()), true
}

// ConstellationPosition implements Catalog.
func (c *catalog) ConstellationPosition() int {
	if c.constellations == nil {
		return 0
	}
	return c.constellations.Position()
}

// CloseConstellationList implements Catalog.
func (c *catalog) CloseConstellationList() {
	if c.constellations != nil {
		_ = c.constellations.Close()
	}
}
