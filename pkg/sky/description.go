package sky

import "strconv"

// Count is the number of records of one category, or CountUnknown.
type Count int

// CountUnknown marks a count file that is missing or unreadable.
const CountUnknown Count = -1

// Known reports whether the count file was present and readable.
func (c Count) Known() bool {
	return c >= 0
}

// String implements fmt.Stringer.
func (c Count) String() string {
	if !c.Known() {
		return "unknown"
	}
	return strconv.Itoa(int(c))
}

// Description is the content summary of a catalog root, one count per
// category. Each count is independent: a catalog may ship without some
// categories.
type Description struct {
	Stars   Count `json:"stars" yaml:"stars"`
	Messier Count `json:"messier" yaml:"messier"`
	NGC     Count `json:"ngc" yaml:"ngc"`
	IC      Count `json:"ic" yaml:"ic"`
}

// UnknownDescription returns a description with every count unknown.
func UnknownDescription() Description {
	return Description{
		Stars:   CountUnknown,
		Messier: CountUnknown,
		NGC:     CountUnknown,
		IC:      CountUnknown,
	}
}

// Count returns the count of the given category.
func (d Description) Count(c Category) Count {
	switch c {
	case Star:
		return d.Stars
	case Messier:
		return d.Messier
	case NGC:
		return d.NGC
	case IC:
		return d.IC
	default:
		return CountUnknown
	}
}

// Set stores the count of the given category. Invalid categories are ignored.
func (d *Description) Set(c Category, n Count) {
	switch c {
	case Star:
		d.Stars = n
	case Messier:
		d.Messier = n
	case NGC:
		d.NGC = n
	case IC:
		d.IC = n
	}
}
