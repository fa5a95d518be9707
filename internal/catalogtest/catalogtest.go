// Package catalogtest builds small in-memory catalogs for command tests.
package catalogtest

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/agentstation/skycatalog"
	"github.com/agentstation/skycatalog/pkg/constants"
	"github.com/agentstation/skycatalog/pkg/logging"
)

// Root is the catalog root of the fixture.
const Root = "/sd/db"

// Files returns the fixture: three stars, two NGC objects, no Messier
// count and three constellations.
func Files() map[string]string {
	return map[string]string{
		Root + "/star.cnt":                  "3\n",
		Root + "/ngc.cnt":                   "2\n",
		Root + "/ic.cnt":                    "0\n",
		Root + "/star/000001.txt":           "SAO 1\nAlnitak\nORI\n85.19\n-1.94\n1.74\n0.0035\n0.0025\n4.43\n",
		Root + "/star/000002.txt":           "SAO 2\nDeneb\nCYG\n310.36\n45.28\n1.25\n0.0015\n0.0018\n2.29\n",
		Root + "/star/000003.txt":           "SAO 3\n\nAND\n2.1\n29.09\n2.06\n0.1\n-0.16\n33.6\n",
		Root + "/ngc/007000.txt":            "NGC 7000\nNorth America\nCYG\n314.7\n44.3\n4.0\n",
		Root + "/ngc/001976.txt":            "NGC 1976\nOrion Nebula\nORI\n83.82\n-5.39\n4.0\n",
		Root + "/const/ORI/eng.tsl":         "Orion\n",
		Root + "/const/ORI/fra.tsl":         "Orion\n",
		Root + "/const/ORI/ngc/001976.txt":  "NGC 1976\nOrion Nebula\nORI\n83.82\n-5.39\n4.0\n",
		Root + "/const/CYG/eng.tsl":         "Cygnus\n",
		Root + "/const/CYG/fra.tsl":         "Cygne\n",
		Root + "/const/AND/star/000003.txt": "SAO 3\n\nAND\n2.1\n29.09\n2.06\n0.1\n-0.16\n33.6\n",
	}
}

// Fs writes Files into a fresh in-memory filesystem.
func Fs(t testing.TB) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range Files() {
		if err := afero.WriteFile(fsys, name, []byte(content), constants.FilePermissions); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return fsys
}

// Open returns a catalog initialized on the fixture.
func Open(t testing.TB, opts ...skycatalog.Option) skycatalog.Catalog {
	t.Helper()
	opts = append([]skycatalog.Option{
		skycatalog.WithAfero(Fs(t)),
		skycatalog.WithLogger(logging.NewNopLogger()),
	}, opts...)
	c, err := skycatalog.Open(constants.MediumMemory, Root, opts...)
	if err != nil {
		t.Fatalf("opening fixture catalog: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}
