package system

import (
	"fmt"
	"log/slog"
	"os"
)

// File is a descriptor known to be a regular file.
type File struct {
	Descriptor
}

// NewFile returns a File for path. With create set a missing path is
// created empty; otherwise it's an ErrMissing error. An existing path that
// isn't a regular file is an ErrNotFile error.
func NewFile(path string, create bool) (*File, error) {
	f := &File{Descriptor: NewDescriptor(path)}

	if !f.Exists() {
		if !create {
			slog.Error("Descriptor doesn't exist", "path", f.resolved())
			return nil, missing(f.resolved())
		}

		slog.Debug("File doesn't exist, attempting to create", "path", f.resolved())
		if err := touch(f.path); err != nil {
			return nil, err
		}
		slog.Debug("Successfully created file descriptor", "path", f.resolved())
	}

	if !f.IsFile() {
		slog.Error("Descriptor is not a file", "path", f.resolved())
		return nil, fmt.Errorf("%w: %s", ErrNotFile, f.resolved())
	}

	return f, nil
}

// touch creates path empty if it doesn't exist, leaving existing contents
// alone.
func touch(path string) error {
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}
	return nil
}
