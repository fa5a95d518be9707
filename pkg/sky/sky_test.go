package sky

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/skycatalog/pkg/errors"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		category Category
		dir      string
		motion   bool
	}{
		{Star, "star", true},
		{Messier, "messier", false},
		{NGC, "ngc", false},
		{IC, "ic", false},
	}
	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			assert.Equal(t, tt.dir, tt.category.Dir())
			assert.Equal(t, tt.dir, tt.category.String())
			assert.True(t, tt.category.Valid())
			assert.Equal(t, tt.motion, tt.category.HasStellarMotion())

			parsed, err := ParseCategory(tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.category, parsed)
		})
	}

	assert.False(t, CategoryNone.Valid())
	assert.Equal(t, "", CategoryNone.Dir())
	assert.Equal(t, "category(9)", Category(9).String())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" NGC ")
	require.NoError(t, err)
	assert.Equal(t, NGC, c)

	c, err = ParseCategory("M")
	require.NoError(t, err)
	assert.Equal(t, Messier, c)

	_, err = ParseCategory("comet")
	assert.True(t, errors.IsValidationError(err))

	var target Category
	require.NoError(t, target.UnmarshalText([]byte("ic")))
	assert.Equal(t, IC, target)
	assert.Error(t, target.UnmarshalText([]byte("planet")))
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "eng", English.Token())
	assert.Equal(t, "lat", Latin.Token())
	assert.Equal(t, "fra", French.Token())
	assert.Equal(t, English, Language(0))
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"", English},
		{"eng", English},
		{"english", English},
		{"lat", Latin},
		{"Latin", Latin},
		{"la", Latin},
		{"fra", French},
		{"french", French},
		{"fr", French},
		{"fr-CA", French},
		{"en-GB", English},
		{"not a tag!", English},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLanguage(tt.in))
		})
	}
}

func TestObject(t *testing.T) {
	t.Run("zero value is the sentinel", func(t *testing.T) {
		var o Object
		assert.True(t, o.IsZero())
		assert.False(t, o.HasStellarMotion())
		assert.Equal(t, "<no object>", o.String())
	})

	t.Run("file name round-trips the identifier", func(t *testing.T) {
		o := Object{ID: 42, Category: Star, Designation: "NGC Test", Name: "Test Star"}
		assert.Equal(t, "000042.txt", o.FileName())
		assert.Equal(t, "NGC Test (Test Star)", o.String())
		assert.False(t, o.IsZero())
	})

	t.Run("measured zero drift is not absent", func(t *testing.T) {
		o := Object{ID: 1, RADrift: Measured(0), DecDrift: Measured(0), Parallax: Measured(0)}
		assert.True(t, o.HasStellarMotion())
		require.NotNil(t, o.RADrift)
		assert.Zero(t, *o.RADrift)
	})

	t.Run("json omits absent drift", func(t *testing.T) {
		data, err := json.Marshal(Object{ID: 31, Category: Messier, Designation: "M 31"})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"category":"messier"`)
		assert.NotContains(t, string(data), "ra_drift")
	})
}

func TestConstellation(t *testing.T) {
	assert.True(t, Constellation{}.IsZero())
	assert.False(t, Constellation{Abbreviation: "ORI", FullName: "ORI"}.Translated())
	assert.True(t, Constellation{Abbreviation: "ORI", FullName: "Orion"}.Translated())
}

func TestDescription(t *testing.T) {
	d := UnknownDescription()
	for _, c := range Categories {
		assert.False(t, d.Count(c).Known())
	}

	d.Set(Star, 120)
	d.Set(NGC, 0)
	d.Set(CategoryNone, 5)
	assert.Equal(t, Count(120), d.Stars)
	assert.True(t, d.Count(NGC).Known())
	assert.Equal(t, "0", d.Count(NGC).String())
	assert.Equal(t, "unknown", d.Count(Messier).String())
	assert.Equal(t, CountUnknown, d.Count(CategoryNone))
}
