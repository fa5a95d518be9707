package describe

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/skycatalog"
	"github.com/agentstation/skycatalog/internal/appcontext"
	"github.com/agentstation/skycatalog/internal/catalogtest"
	"github.com/agentstation/skycatalog/pkg/errors"
	"github.com/agentstation/skycatalog/pkg/sky"
)

func TestDescribeCommand(t *testing.T) {
	catalog := catalogtest.Open(t)

	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{"json", func(t *testing.T, out string) {
			var d sky.Description
			require.NoError(t, json.Unmarshal([]byte(out), &d))
			assert.Equal(t, sky.Description{Stars: 3, Messier: sky.CountUnknown, NGC: 2, IC: 0}, d)
		}},
		{"yaml", func(t *testing.T, out string) {
			assert.Contains(t, out, "stars: 3")
			assert.Contains(t, out, "messier: -1")
		}},
		{"table", func(t *testing.T, out string) {
			assert.Contains(t, out, "unknown")
			assert.Contains(t, out, "ngc")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			app := &appcontext.Mock{
				CatalogFunc:      func() (skycatalog.Catalog, error) { return catalog, nil },
				OutputFormatFunc: func() string { return tt.format },
			}
			cmd := NewCommand(app)
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetArgs(nil)
			require.NoError(t, cmd.Execute())
			tt.check(t, out.String())
		})
	}
}

func TestDescribeCommandBadFormat(t *testing.T) {
	app := &appcontext.Mock{OutputFormatFunc: func() string { return "xml" }}
	cmd := NewCommand(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)
	assert.True(t, errors.IsValidationError(cmd.Execute()))
}
