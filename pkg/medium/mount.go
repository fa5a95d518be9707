package medium

import (
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/agentstation/skycatalog/pkg/constants"
	"github.com/agentstation/skycatalog/pkg/errors"
)

// Mounter turns a medium selector into a filesystem.
type Mounter interface {
	Mount(selector string) (afero.Fs, error)
}

// MounterFunc adapts a function to the Mounter interface.
type MounterFunc func(selector string) (afero.Fs, error)

// Mount calls f(selector).
func (f MounterFunc) Mount(selector string) (afero.Fs, error) {
	return f(selector)
}

// DefaultMounter mounts the host filesystem.
//
// Selectors:
//   - "os": the whole OS filesystem
//   - "mem": an empty in-memory filesystem
//   - anything else: an existing directory, used as the filesystem root
type DefaultMounter struct{}

// Mount implements Mounter.
func (DefaultMounter) Mount(selector string) (afero.Fs, error) {
	switch selector {
	case "":
		return nil, errors.NewMediumError(selector, "empty selector", nil)
	case constants.MediumOS:
		return afero.NewOsFs(), nil
	case constants.MediumMemory:
		return afero.NewMemMapFs(), nil
	}

	osFs := afero.NewOsFs()
	info, err := osFs.Stat(selector)
	if err != nil {
		return nil, errors.NewMediumError(selector, "cannot stat mount point", err)
	}
	if !info.IsDir() {
		return nil, errors.NewMediumError(selector, "mount point is not a directory", nil)
	}
	return afero.NewBasePathFs(osFs, selector), nil
}

// AferoMounter mounts a fixed afero filesystem whatever the selector.
type AferoMounter struct {
	Fs afero.Fs
}

// Mount implements Mounter.
func (m AferoMounter) Mount(selector string) (afero.Fs, error) {
	if m.Fs == nil {
		return nil, errors.NewMediumError(selector, "no filesystem", nil)
	}
	return m.Fs, nil
}

// FSMounter mounts an io/fs filesystem such as embed.FS or fstest.MapFS.
// Catalog paths are absolute; they are mapped onto the unrooted names io/fs
// expects.
type FSMounter struct {
	FS fs.FS
}

// Mount implements Mounter.
func (m FSMounter) Mount(selector string) (afero.Fs, error) {
	if m.FS == nil {
		return nil, errors.NewMediumError(selector, "no filesystem", nil)
	}
	return ioFS{afero.FromIOFS{FS: m.FS}}, nil
}

// ioFS normalises names before handing them to afero.FromIOFS.
type ioFS struct {
	afero.FromIOFS
}

func (f ioFS) Open(name string) (afero.File, error) {
	return f.FromIOFS.Open(ioName(name))
}

func (f ioFS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return f.FromIOFS.OpenFile(ioName(name), flag, perm)
}

func (f ioFS) Stat(name string) (os.FileInfo, error) {
	return f.FromIOFS.Stat(ioName(name))
}

// ioName converts "/db/star" to "db/star" and "/" to ".".
func ioName(name string) string {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" {
		return "."
	}
	return name
}
