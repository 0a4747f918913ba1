// Package nessus opens Nessus scan exports for upload. The file content is
// passed through untouched.
package nessus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when the export path does not exist.
var ErrNotFound = errors.New("nessus file does not exist")

// File is an open scan export.
type File struct {
	Path string
	Name string
	Size int64

	f *os.File
}

// Load verifies path and opens it for reading.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, expected a Nessus export", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &File{
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
		f:    f,
	}, nil
}

func (f *File) Read(p []byte) (int, error) {
	return f.f.Read(p)
}

// Close releases the handle. It is safe to call more than once.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}
