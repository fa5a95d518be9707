package cursor

import (
	"fmt"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/skycatalog/pkg/constants"
	"github.com/agentstation/skycatalog/pkg/logging"
	"github.com/agentstation/skycatalog/pkg/medium"
)

const recordDir = "/db/ngc"

// fixture writes n records plus entries the record filter must skip.
func fixture(t *testing.T, n int) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("%s/%06d.txt", recordDir, i)
		require.NoError(t, afero.WriteFile(fsys, name, []byte(fmt.Sprintf("NGC %d\n", i)), constants.FilePermissions))
	}
	require.NoError(t, afero.WriteFile(fsys, recordDir+"/000002.bak", []byte("x"), constants.FilePermissions))
	require.NoError(t, afero.WriteFile(fsys, recordDir+"/index.md", []byte("x"), constants.FilePermissions))
	require.NoError(t, fsys.MkdirAll(recordDir+"/000099.txt", constants.DirPermissions))
	return fsys
}

type mode struct {
	name string
	opts []Option
}

var modes = []mode{
	{"replay", []Option{WithFilter(RecordFilter)}},
	{"indexed", []Option{WithFilter(RecordFilter), WithIndex()}},
}

func currentName(t *testing.T, c *Cursor) string {
	t.Helper()
	e, ok := c.Current()
	require.True(t, ok)
	return e.Name()
}

func TestNextVisitsEveryRecord(t *testing.T) {
	for _, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			const n = 5
			c := New(medium.New(fixture(t, n)), m.opts...)
			require.NoError(t, c.Open(recordDir))
			defer c.Close()

			_, ok := c.Current()
			assert.False(t, ok)
			assert.Equal(t, 0, c.Position())

			for i := 1; i <= n; i++ {
				require.True(t, c.Next(), "next %d", i)
				assert.Equal(t, i, c.Position())
				assert.Equal(t, fmt.Sprintf("%06d.txt", i), currentName(t, c))
			}

			assert.False(t, c.Next())
			assert.Equal(t, n, c.Position())
			assert.Equal(t, fmt.Sprintf("%06d.txt", n), currentName(t, c))

			assert.False(t, c.Next())
			assert.Equal(t, n, c.Position())
		})
	}
}

func TestPreviousReturnsPrecedingEntry(t *testing.T) {
	for _, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			const n = 6
			c := New(medium.New(fixture(t, n)), m.opts...)

			for k := 2; k <= n; k++ {
				require.NoError(t, c.Open(recordDir))

				var seen []string
				for i := 0; i < k; i++ {
					require.True(t, c.Next())
					seen = append(seen, readCurrent(t, c))
				}

				require.True(t, c.Previous(), "previous from %d", k)
				assert.Equal(t, k-1, c.Position())
				assert.Equal(t, seen[k-2], readCurrent(t, c))

				// Next resumes after the entry Previous returned.
				require.True(t, c.Next())
				assert.Equal(t, k, c.Position())
				assert.Equal(t, seen[k-1], readCurrent(t, c))
			}
			require.NoError(t, c.Close())
		})
	}
}

func readCurrent(t *testing.T, c *Cursor) string {
	t.Helper()
	e, ok := c.Current()
	require.True(t, ok)
	r, err := e.Reader()
	require.NoError(t, err)
	var out []byte
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return string(out)
		}
		require.NoError(t, err)
		out = append(out, b)
	}
}

func TestPreviousWalksBackToStart(t *testing.T) {
	for _, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			c := New(medium.New(fixture(t, 4)), m.opts...)
			require.NoError(t, c.Open(recordDir))
			defer c.Close()

			for c.Next() {
			}
			var names []string
			names = append(names, currentName(t, c))
			for c.Previous() {
				names = append(names, currentName(t, c))
			}
			assert.Equal(t, []string{"000004.txt", "000003.txt", "000002.txt", "000001.txt"}, names)
			assert.Equal(t, 1, c.Position())
		})
	}
}

func TestPreviousAtStartDoesNothing(t *testing.T) {
	for _, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			c := New(medium.New(fixture(t, 3)), m.opts...)
			require.NoError(t, c.Open(recordDir))
			defer c.Close()

			assert.False(t, c.Previous())
			assert.Equal(t, 0, c.Position())
			_, ok := c.Current()
			assert.False(t, ok)

			require.True(t, c.Next())
			assert.False(t, c.Previous())
			assert.Equal(t, 1, c.Position())
			assert.Equal(t, "000001.txt", currentName(t, c))

			// The listing was not disturbed either.
			require.True(t, c.Next())
			assert.Equal(t, "000002.txt", currentName(t, c))
		})
	}
}

func TestNoFilterCountsEveryEntry(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, abbrev := range []string{"AND", "CYG", "ORI"} {
		require.NoError(t, fsys.MkdirAll("/db/const/"+abbrev, constants.DirPermissions))
	}

	c := New(medium.New(fsys))
	require.NoError(t, c.Open("/db/const"))
	defer c.Close()

	var names []string
	for c.Next() {
		names = append(names, currentName(t, c))
	}
	assert.Equal(t, []string{"AND", "CYG", "ORI"}, names)
	require.True(t, c.Previous())
	assert.Equal(t, "CYG", currentName(t, c))
}

func TestEmptyDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(recordDir, constants.DirPermissions))

	for _, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			c := New(medium.New(fsys), m.opts...)
			require.NoError(t, c.Open(recordDir))
			defer c.Close()

			assert.False(t, c.Next())
			assert.False(t, c.Previous())
			assert.Equal(t, 0, c.Position())
		})
	}
}

func TestDirectoryShrinksDuringReplay(t *testing.T) {
	fsys := fixture(t, 4)
	c := New(medium.New(fsys), WithFilter(RecordFilter))
	require.NoError(t, c.Open(recordDir))
	defer c.Close()

	for i := 0; i < 4; i++ {
		require.True(t, c.Next())
	}

	for i := 1; i <= 4; i++ {
		require.NoError(t, fsys.Remove(fmt.Sprintf("%s/%06d.txt", recordDir, i)))
	}
	require.NoError(t, afero.WriteFile(fsys, recordDir+"/000005.txt", []byte("NGC 5\n"), constants.FilePermissions))

	assert.False(t, c.Previous())
	assert.Equal(t, 0, c.Position())
	_, ok := c.Current()
	assert.False(t, ok)

	// The listing restarted from the top.
	require.True(t, c.Next())
	assert.Equal(t, "000005.txt", currentName(t, c))
}

func TestOpenAndClose(t *testing.T) {
	logger := logging.NewTestLogger(t)
	c := New(medium.New(fixture(t, 2)), WithFilter(RecordFilter), WithLogger(logger.Logger))

	assert.False(t, c.IsOpen())
	assert.False(t, c.Next())
	assert.False(t, c.Previous())
	assert.NoError(t, c.Close())

	err := c.Open("/db/missing")
	assert.Error(t, err)
	assert.False(t, c.IsOpen())
	assert.True(t, logger.Contains("cursor open failed"))

	require.NoError(t, c.Open(recordDir))
	assert.True(t, c.IsOpen())
	assert.Equal(t, recordDir, c.Path())
	require.True(t, c.Next())
	require.True(t, c.Next())

	// Reopening starts over.
	require.NoError(t, c.Open(recordDir))
	assert.Equal(t, 0, c.Position())
	require.True(t, c.Next())
	assert.Equal(t, "000001.txt", currentName(t, c))

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.False(t, c.IsOpen())
	assert.Equal(t, 0, c.Position())
	_, ok := c.Current()
	assert.False(t, ok)
	assert.False(t, c.Next())
}

func TestRecordFilter(t *testing.T) {
	fsys := fixture(t, 1)
	d, err := medium.New(fsys).OpenDir(recordDir)
	require.NoError(t, err)
	defer d.Close()

	accepted := map[string]bool{}
	for {
		e, err := d.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		accepted[e.Name()] = RecordFilter(e)
	}
	assert.Equal(t, map[string]bool{
		"000001.txt": true,
		"000002.bak": false,
		"index.md":   false,
		"000099.txt": false,
	}, accepted)
}
