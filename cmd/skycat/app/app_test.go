package app

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/skycatalog"
	"github.com/agentstation/skycatalog/internal/catalogtest"
	"github.com/agentstation/skycatalog/pkg/constants"
	"github.com/agentstation/skycatalog/pkg/errors"
	"github.com/agentstation/skycatalog/pkg/logging"
	"github.com/agentstation/skycatalog/pkg/sky"
)

func testConfig() *Config {
	return &Config{
		Root:      catalogtest.Root,
		Medium:    constants.MediumMemory,
		Language:  "english",
		Format:    "json",
		LogFormat: "json",
		LogOutput: "stderr",
	}
}

// testApp returns an app serving the fixture catalog and writing to out.
func testApp(t *testing.T, out *bytes.Buffer) *App {
	t.Helper()
	app, err := New("1.0.0", "abc123", "2026-01-01", "test",
		WithConfig(testConfig()),
		WithLogger(logging.NewNopLogger()),
		WithCatalogOptions(skycatalog.WithAfero(catalogtest.Fs(t))),
		WithOutput(out),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown(context.Background()) })
	return app
}

func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2026-01-01", "test")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2026-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
}

func TestApp_Catalog_Singleton(t *testing.T) {
	app := testApp(t, &bytes.Buffer{})

	c1, err := app.Catalog()
	require.NoError(t, err)
	c2, err := app.Catalog()
	require.NoError(t, err)
	assert.Same(t, c1, c2)
	assert.Equal(t, catalogtest.Root, c1.Root())
}

func TestApp_Catalog_ThreadSafe(t *testing.T) {
	app := testApp(t, &bytes.Buffer{})

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]skycatalog.Catalog, goroutines)
	errs := make([]error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = app.Catalog()
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
}

func TestApp_Catalog_Errors(t *testing.T) {
	config := testConfig()
	config.Root = ""
	app, err := New("dev", "", "", "", WithConfig(config))
	require.NoError(t, err)
	_, err = app.Catalog()
	assert.Error(t, err)

	// An empty in-memory medium holds no catalog.
	app, err = New("dev", "", "", "", WithConfig(testConfig()))
	require.NoError(t, err)
	_, err = app.Catalog()
	assert.True(t, errors.IsInvalidRoot(err))

	config = testConfig()
	config.Medium = ""
	app, err = New("dev", "", "", "", WithConfig(config))
	require.NoError(t, err)
	_, err = app.Catalog()
	assert.True(t, errors.IsMediumUnavailable(err))
}

func TestApp_CatalogOptionsFromConfig(t *testing.T) {
	config := testConfig()
	config.Language = "fra"
	config.IndexedCursors = true
	app, err := New("dev", "", "", "",
		WithConfig(config),
		WithCatalogOptions(skycatalog.WithAfero(catalogtest.Fs(t))),
	)
	require.NoError(t, err)

	cat, err := app.Catalog()
	require.NoError(t, err)
	assert.Equal(t, sky.French, cat.Language())
	assert.Equal(t, "Cygne", cat.Constellation("CYG").FullName)
}

func TestApp_WithCatalog(t *testing.T) {
	fixture := catalogtest.Open(t)
	app, err := New("dev", "", "", "", WithCatalog(fixture))
	require.NoError(t, err)

	cat, err := app.Catalog()
	require.NoError(t, err)
	assert.Same(t, fixture, cat)
}

func TestApp_Shutdown(t *testing.T) {
	app := testApp(t, &bytes.Buffer{})
	require.NoError(t, app.Shutdown(context.Background()))

	cat, err := app.Catalog()
	require.NoError(t, err)
	require.NoError(t, app.Shutdown(context.Background()))
	assert.False(t, cat.Initialized())

	// Shutdown without a catalog is a no-op.
	require.NoError(t, app.Shutdown(context.Background()))
}

func TestApp_Execute(t *testing.T) {
	var out bytes.Buffer
	app := testApp(t, &out)

	require.NoError(t, app.Execute(context.Background(), []string{"object", "1"}))

	var obj sky.Object
	require.NoError(t, json.Unmarshal(out.Bytes(), &obj))
	assert.Equal(t, "Alnitak", obj.Name)
}

func TestApp_ExecuteFlagsOverrideConfig(t *testing.T) {
	var out bytes.Buffer
	app := testApp(t, &out)

	err := app.Execute(context.Background(), []string{
		"constellation", "CYG", "--language", "french", "--format", "yaml", "--indexed",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "full_name: Cygne")
	assert.Equal(t, "yaml", app.Config().Format)
	assert.True(t, app.Config().IndexedCursors)
	assert.Equal(t, catalogtest.Root, app.Config().Root, "unset flags keep config values")
}

func TestApp_ExecuteErrors(t *testing.T) {
	app := testApp(t, &bytes.Buffer{})

	err := app.Execute(context.Background(), []string{"object", "404"})
	assert.True(t, errors.IsNotFound(err))

	err = app.Execute(context.Background(), []string{"list", "--format", "csv"})
	assert.True(t, errors.IsValidationError(err))

	err = app.Execute(context.Background(), []string{"--config", "/nonexistent/skycat.yaml", "describe"})
	assert.Error(t, err)
}

func TestApp_VersionCommand(t *testing.T) {
	var out bytes.Buffer
	app := testApp(t, &out)

	require.NoError(t, app.Execute(context.Background(), []string{"version"}))
	assert.Equal(t, "skycat 1.0.0\n", out.String())

	out.Reset()
	require.NoError(t, app.Execute(context.Background(), []string{"version", "-v"}))
	assert.Contains(t, out.String(), "commit:     abc123")
	assert.Contains(t, out.String(), "built by:   test")
}
