package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/skycatalog/pkg/errors"
	"github.com/agentstation/skycatalog/pkg/sky"
)

var orion = sky.Object{
	ID: 1976, Category: sky.NGC, Designation: "NGC 1976", Name: "Orion Nebula",
	Constellation: "ORI", RA: 83.82, Dec: -5.39, Magnitude: 4,
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", "yaml", "wide", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	assert.True(t, errors.IsValidationError(err))
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestFormatObjectsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatObjects(&buf, FormatTable, []sky.Object{orion}))
	out := buf.String()
	assert.Contains(t, out, "DESIGNATION")
	assert.Contains(t, out, "Orion Nebula")
	assert.NotContains(t, out, "PARALLAX")

	buf.Reset()
	require.NoError(t, FormatObjects(&buf, FormatWide, []sky.Object{orion}))
	assert.Contains(t, buf.String(), "PARALLAX")
}

func TestFormatObjectsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatObjects(&buf, FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, FormatObject(&buf, FormatJSON, orion))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "ngc", decoded["category"])
	assert.Equal(t, "Orion Nebula", decoded["name"])
	assert.NotContains(t, decoded, "parallax")
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatConstellations(&buf, FormatYAML, []sky.Constellation{{Abbreviation: "ORI", FullName: "Orion"}}))
	assert.Contains(t, buf.String(), "abbreviation: ORI")
	assert.Contains(t, buf.String(), "full_name: Orion")
}

func TestFormatDescription(t *testing.T) {
	d := sky.UnknownDescription()
	d.Set(sky.NGC, 7840)

	var buf bytes.Buffer
	require.NoError(t, FormatDescription(&buf, FormatTable, d))
	assert.Contains(t, buf.String(), "7,840")
	assert.Contains(t, buf.String(), "unknown")

	buf.Reset()
	require.NoError(t, FormatDescription(&buf, FormatJSON, d))
	assert.Contains(t, buf.String(), `"ngc": 7840`)
	assert.Contains(t, buf.String(), `"messier": -1`)
}

func TestFormatAnyReflection(t *testing.T) {
	type info struct {
		Version string   `json:"version"`
		Commit  string   `json:"git_commit"`
		Extra   *float64 `json:"extra,omitempty"`
	}

	var buf bytes.Buffer
	require.NoError(t, FormatAny(&buf, FormatTable, info{Version: "1.0.0", Commit: "abc123"}))
	out := buf.String()
	assert.Contains(t, out, "Git Commit")
	assert.Contains(t, out, "abc123")

	buf.Reset()
	require.NoError(t, FormatAny(&buf, FormatTable, []info{{Version: "1.0.0"}}))
	assert.Contains(t, buf.String(), "VERSION")
}
