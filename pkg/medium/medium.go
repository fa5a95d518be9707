// Package medium is the storage primitive under the catalog: a mounted,
// read-only filesystem offering file open, byte reads, forward-only
// directory listing, rewind and close.
//
// Every handle returned by this package must be closed by its owner.
package medium

import (
	"bufio"
	"io"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/agentstation/skycatalog/pkg/errors"
)

// sectorSize sizes the read buffer of an open file.
const sectorSize = 512

// Medium is a mounted filesystem. It never writes.
type Medium struct {
	fs       afero.Fs
	selector string
}

// Mount mounts selector through m.
func Mount(m Mounter, selector string) (*Medium, error) {
	if m == nil {
		m = DefaultMounter{}
	}
	fsys, err := m.Mount(selector)
	if err != nil {
		if errors.IsMediumUnavailable(err) {
			return nil, err
		}
		return nil, errors.NewMediumError(selector, "mount failed", err)
	}
	if fsys == nil {
		return nil, errors.NewMediumError(selector, "mounter returned no filesystem", nil)
	}
	return &Medium{fs: afero.NewReadOnlyFs(fsys), selector: selector}, nil
}

// New wraps an afero filesystem as a read-only medium.
func New(fsys afero.Fs) *Medium {
	return &Medium{fs: afero.NewReadOnlyFs(fsys)}
}

// Selector returns the selector the medium was mounted with.
func (m *Medium) Selector() string {
	return m.selector
}

// Fs returns the read-only filesystem.
func (m *Medium) Fs() afero.Fs {
	return m.fs
}

// Exists reports whether path names a file or directory.
func (m *Medium) Exists(path string) bool {
	_, err := m.fs.Stat(path)
	return err == nil
}

// Open opens a regular file for byte reads.
func (m *Medium) Open(path string) (*File, error) {
	f, err := m.fs.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, errors.WrapIO("stat", path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, errors.NewIOError("open", path, errors.New("is a directory"))
	}
	return newFile(f, path), nil
}

// OpenDir opens a directory for forward enumeration.
func (m *Medium) OpenDir(path string) (*Dir, error) {
	f, err := m.openDir(path)
	if err != nil {
		return nil, err
	}
	return &Dir{medium: m, path: path, f: f}, nil
}

func (m *Medium) openDir(path string) (afero.File, error) {
	f, err := m.fs.Open(path)
	if err != nil {
		return nil, errors.WrapIO("opendir", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, errors.WrapIO("stat", path, err)
	}
	if !info.IsDir() {
		_ = f.Close()
		return nil, errors.NewIOError("opendir", path, errors.New("not a directory"))
	}
	return f, nil
}

// File is an open file read one byte at a time.
type File struct {
	f    afero.File
	r    *bufio.Reader
	path string
}

func newFile(f afero.File, path string) *File {
	return &File{f: f, r: bufio.NewReaderSize(f, sectorSize), path: path}
}

// ReadByte implements io.ByteReader. It returns io.EOF at end of file and
// after Close.
func (f *File) ReadByte() (byte, error) {
	if f == nil || f.f == nil {
		return 0, io.EOF
	}
	return f.r.ReadByte()
}

// Name returns the path the file was opened with.
func (f *File) Name() string {
	return f.path
}

// rewind moves back to the first byte.
func (f *File) rewind() error {
	if f.f == nil {
		return fs.ErrClosed
	}
	if _, err := f.f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	f.r.Reset(f.f)
	return nil
}

// Close releases the handle. Closing twice is a no-op.
func (f *File) Close() error {
	if f == nil || f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return errors.WrapIO("close", f.path, err)
}
