package medium

import (
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/agentstation/skycatalog/pkg/errors"
	"github.com/agentstation/skycatalog/pkg/paths"
)

// Dir is an open directory listed one entry at a time, in the order the
// filesystem reports them.
type Dir struct {
	medium *Medium
	path   string
	f      afero.File
}

// Path returns the directory path.
func (d *Dir) Path() string {
	return d.path
}

// Next returns the next entry, or io.EOF when the listing is exhausted.
func (d *Dir) Next() (*Entry, error) {
	if d.f == nil {
		return nil, io.EOF
	}
	infos, err := d.f.Readdir(1)
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.WrapIO("readdir", d.path, err)
	}
	if len(infos) == 0 {
		return nil, io.EOF
	}
	return &Entry{medium: d.medium, path: paths.Join(d.path, infos[0].Name()), info: infos[0]}, nil
}

// Rewind restarts the listing from the first entry. afero filesystems do
// not reset a listing on Seek, so the directory is reopened.
func (d *Dir) Rewind() error {
	if d.f != nil {
		_ = d.f.Close()
		d.f = nil
	}
	f, err := d.medium.openDir(d.path)
	if err != nil {
		return err
	}
	d.f = f
	return nil
}

// Close releases the directory. Closing twice is a no-op.
func (d *Dir) Close() error {
	if d == nil || d.f == nil {
		return nil
	}
	err := d.f.Close()
	d.f = nil
	return errors.WrapIO("close", d.path, err)
}

// Entry is one directory entry. Its file is opened on first Reader call
// and must be released with Close.
type Entry struct {
	medium *Medium
	path   string
	info   os.FileInfo
	file   *File
}

// Name returns the base name of the entry.
func (e *Entry) Name() string {
	return e.info.Name()
}

// Path returns the full path of the entry.
func (e *Entry) Path() string {
	return e.path
}

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool {
	return e.info.IsDir()
}

// Reader opens the entry's file, or rewinds it when already open, and
// returns it positioned at the first byte.
func (e *Entry) Reader() (*File, error) {
	if e.file != nil {
		if err := e.file.rewind(); err == nil {
			return e.file, nil
		}
		_ = e.file.Close()
		e.file = nil
	}
	f, err := e.medium.Open(e.path)
	if err != nil {
		return nil, err
	}
	e.file = f
	return f, nil
}

// Close releases the entry's file handle, if any. Closing twice is a no-op.
func (e *Entry) Close() error {
	if e == nil || e.file == nil {
		return nil
	}
	err := e.file.Close()
	e.file = nil
	return err
}
