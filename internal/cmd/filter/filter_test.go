package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/skycatalog/pkg/sky"
)

func star(id int64, name string, mag, raDrift, decDrift float64) sky.Object {
	return sky.Object{
		ID:          id,
		Category:    sky.Star,
		Designation: "SAO " + name,
		Name:        name,
		Magnitude:   mag,
		RADrift:     sky.Measured(raDrift),
		DecDrift:    sky.Measured(decDrift),
		Parallax:    sky.Measured(0),
	}
}

func TestObjectFilter(t *testing.T) {
	vega := star(1, "Vega", 0.03, 0.2, 0.28)
	fixed := star(2, "Fixed", 4.5, 0, 0)
	m31 := sky.Object{ID: 31, Category: sky.Messier, Designation: "M 31", Name: "Andromeda Galaxy", Magnitude: 3.4}
	all := []sky.Object{vega, fixed, m31}

	tests := []struct {
		name   string
		filter *ObjectFilter
		want   []int64
	}{
		{"nil", nil, []int64{1, 2, 31}},
		{"empty", &ObjectFilter{}, []int64{1, 2, 31}},
		{"magnitude", &ObjectFilter{MaxMagnitude: 3.4}, []int64{1, 31}},
		{"search name", &ObjectFilter{Search: "andromeda"}, []int64{31}},
		{"search designation", &ObjectFilter{Search: "SAO"}, []int64{1, 2}},
		{"moving", &ObjectFilter{MovingOnly: true}, []int64{1}},
		{"combined", &ObjectFilter{Search: "a", MaxMagnitude: 1}, []int64{1}},
		{"nothing", &ObjectFilter{Search: "comet"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int64
			for _, obj := range tt.filter.Apply(all) {
				got = append(got, obj.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
