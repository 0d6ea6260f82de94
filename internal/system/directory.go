package system

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Directory is a descriptor known to be a directory.
type Directory struct {
	Descriptor
}

// NewDirectory returns a Directory for path. With create set, the directory
// and any missing parents are created; otherwise a missing path is an
// ErrMissing error. An existing path that isn't a directory is always an
// ErrNotDirectory error.
func NewDirectory(path string, create bool) (*Directory, error) {
	d := &Directory{Descriptor: NewDescriptor(path)}

	if !d.Exists() {
		if !create {
			slog.Error("Descriptor doesn't exist", "path", d.resolved())
			return nil, missing(d.resolved())
		}
		if err := d.materialize(); err != nil {
			return nil, err
		}
	}

	if !d.IsDir() {
		slog.Error("Descriptor is not a directory", "path", d.resolved())
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, d.resolved())
	}

	return d, nil
}

// TemporaryDirectory creates a uniquely named directory under the OS
// temporary root. The name starts with prefix and ends with suffix; the
// caller owns it and should Cleanup or Scope it.
func TemporaryDirectory(suffix, prefix string) (*Directory, error) {
	path, err := os.MkdirTemp("", prefix+"*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}

	return NewDirectory(path, true)
}

func (d *Directory) materialize() error {
	slog.Debug("Directory doesn't exist, attempting to create", "path", d.resolved())
	if err := os.MkdirAll(d.path, 0o777); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", d.path, err)
	}
	slog.Debug("Successfully created directory descriptor", "path", d.resolved())
	return nil
}

// Cleanup removes the directory and everything below it. Removing a
// directory that is already gone is not an error.
func (d *Directory) Cleanup() error {
	if err := checkRemovable(d.path); err != nil {
		return err
	}

	if err := os.RemoveAll(d.path); err != nil {
		return fmt.Errorf("failed to remove directory %s: %w", d.path, err)
	}
	return nil
}

// Scope recreates the directory if it went missing, runs fn, and then
// removes the directory recursively however fn returns, panics included.
// fn's error is returned as is; a failed cleanup is joined to it.
func (d *Directory) Scope(fn func(*Directory) error) (err error) {
	if !d.Exists() {
		if err := d.materialize(); err != nil {
			return err
		}
	}

	defer func() {
		if cerr := d.Cleanup(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	return fn(d)
}

// WithTemporaryDirectory runs fn inside a scoped TemporaryDirectory.
func WithTemporaryDirectory(suffix, prefix string, fn func(*Directory) error) error {
	d, err := TemporaryDirectory(suffix, prefix)
	if err != nil {
		return err
	}
	return d.Scope(fn)
}
