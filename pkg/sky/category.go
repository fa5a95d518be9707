// Package sky defines the value types returned by the catalog: object and
// constellation records, per-category counts, and the Category and Language
// enumerations that select directories and translation files.
package sky

import (
	"fmt"
	"strings"

	"github.com/agentstation/skycatalog/pkg/errors"
)

// Category selects an object family. It fixes both the directory segment
// of its records and whether a record carries stellar motion fields.
type Category int

// Categories. The zero value is not a valid category.
const (
	CategoryNone Category = iota
	Star
	Messier
	NGC
	IC
)

// Categories lists the valid categories in catalog order.
var Categories = []Category{Star, Messier, NGC, IC}

// Dir returns the directory segment for the category, or "" if invalid.
func (c Category) Dir() string {
	switch c {
	case Star:
		return "star"
	case Messier:
		return "messier"
	case NGC:
		return "ngc"
	case IC:
		return "ic"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	if d := c.Dir(); d != "" {
		return d
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Valid reports whether c is one of the four catalog categories.
func (c Category) Valid() bool {
	return c.Dir() != ""
}

// HasStellarMotion reports whether records of this category carry
// RA drift, Dec drift and parallax lines.
func (c Category) HasStellarMotion() bool {
	return c == Star
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.Dir()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory parses a directory name ("star", "messier", "ngc", "ic"),
// case-insensitively. "m" and "stars" are accepted as shorthands.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "star", "stars":
		return Star, nil
	case "messier", "m":
		return Messier, nil
	case "ngc":
		return NGC, nil
	case "ic":
		return IC, nil
	default:
		return CategoryNone, errors.NewValidationError("category", s, "must be one of star, messier, ngc, ic")
	}
}
