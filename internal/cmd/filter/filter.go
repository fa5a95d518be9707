// Package filter narrows object lists walked by the CLI.
package filter

import (
	"strings"

	"github.com/agentstation/skycatalog/pkg/sky"
)

// ObjectFilter selects objects by brightness and text
type ObjectFilter struct {
	// MaxMagnitude keeps objects at least this bright. Zero disables it.
	MaxMagnitude float64
	// Search matches designation or name, case-insensitively
	Search string
	// MovingOnly keeps stars with a measured proper motion
	MovingOnly bool
}

// Apply filters a slice of objects
func (f *ObjectFilter) Apply(objs []sky.Object) []sky.Object {
	if f.IsEmpty() {
		return objs
	}

	var filtered []sky.Object
	for _, obj := range objs {
		if f.Match(obj) {
			filtered = append(filtered, obj)
		}
	}
	return filtered
}

// IsEmpty reports whether f lets every object through.
func (f *ObjectFilter) IsEmpty() bool {
	return f == nil || (f.MaxMagnitude == 0 && f.Search == "" && !f.MovingOnly)
}

// Match reports whether obj passes every set criterion.
func (f *ObjectFilter) Match(obj sky.Object) bool {
	if f.IsEmpty() {
		return true
	}
	if f.MaxMagnitude != 0 && obj.Magnitude > f.MaxMagnitude {
		return false
	}
	if f.Search != "" && !f.matchesSearch(obj) {
		return false
	}
	if f.MovingOnly && !moving(obj) {
		return false
	}
	return true
}

func (f *ObjectFilter) matchesSearch(obj sky.Object) bool {
	search := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(obj.Designation), search) ||
		strings.Contains(strings.ToLower(obj.Name), search)
}

func moving(obj sky.Object) bool {
	return obj.HasStellarMotion() && (*obj.RADrift != 0 || *obj.DecDrift != 0)
}
