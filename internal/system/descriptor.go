// Package system provides filesystem descriptors: typed wrappers over a path
// that answer permission questions and, for the specialised descriptors,
// guarantee a property of the path once constructed. A Directory is known to
// be a directory, a File a regular file, and an Executable executable by its
// owner and group.
package system

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

var (
	// ErrMissing is returned when a descriptor's path does not exist and may
	// not be created. Errors wrapping it also match fs.ErrNotExist.
	ErrMissing = errors.New("descriptor doesn't exist")

	// ErrNotDirectory is returned when a path exists but is not a directory.
	ErrNotDirectory = errors.New("descriptor is not a directory")

	// ErrNotFile is returned when a path exists but is not a regular file.
	ErrNotFile = errors.New("descriptor is not a file")

	// ErrNotExecutable is returned when a path could not be made executable.
	ErrNotExecutable = errors.New("failed to change permission(s) on descriptor")

	// ErrUnsafePath is returned when a recursive removal targets a path
	// that must never be deleted.
	ErrUnsafePath = errors.New("unsafe path")
)

func missing(path string) error {
	return fmt.Errorf("%w: %s: %w", ErrMissing, path, fs.ErrNotExist)
}

// Descriptor wraps a filesystem path. It caches nothing: every query goes
// to the filesystem.
type Descriptor struct {
	path string
}

// NewDescriptor returns a Descriptor for the cleaned form of path.
func NewDescriptor(path string) Descriptor {
	return Descriptor{path: filepath.Clean(path)}
}

// Path returns the path as given, cleaned.
func (d Descriptor) Path() string {
	return d.path
}

func (d Descriptor) String() string {
	return d.path
}

// ResolvedPath returns the absolute, symlink-free form of the path.
func (d Descriptor) ResolvedPath() (string, error) {
	return ResolveRealPath(d.path)
}

// resolved is ResolvedPath for log and error messages, falling back to the
// plain path.
func (d Descriptor) resolved() string {
	if p, err := d.ResolvedPath(); err == nil {
		return p
	}
	return d.path
}

// Equal reports whether both descriptors resolve to the same path.
func (d Descriptor) Equal(other Descriptor) bool {
	a, err := d.ResolvedPath()
	if err != nil {
		return false
	}
	b, err := other.ResolvedPath()
	if err != nil {
		return false
	}
	return a == b
}

// Exists reports whether the path exists. Symlinks are followed.
func (d Descriptor) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// IsDir reports whether the path exists and is a directory.
func (d Descriptor) IsDir() bool {
	info, err := os.Stat(d.path)
	return err == nil && info.IsDir()
}

// IsFile reports whether the path exists and is a regular file.
func (d Descriptor) IsFile() bool {
	info, err := os.Stat(d.path)
	return err == nil && info.Mode().IsRegular()
}

// CurrentPermissions returns the permission bits of the path, masked to
// owner, group and other.
func (d Descriptor) CurrentPermissions() (os.FileMode, error) {
	return permissions(d.path)
}

// HasPermissions reports whether the current permission bits equal expected.
func (d Descriptor) HasPermissions(expected os.FileMode) (bool, error) {
	current, err := d.CurrentPermissions()
	if err != nil {
		return false, err
	}
	return current == expected, nil
}

// IsUserReadable reports whether the owner read bit is set.
func (d Descriptor) IsUserReadable() (bool, error) {
	return d.hasBit(PermUserRead)
}

// IsGroupReadable reports whether the group read bit is set.
func (d Descriptor) IsGroupReadable() (bool, error) {
	return d.hasBit(PermGroupRead)
}

func (d Descriptor) hasBit(bit os.FileMode) (bool, error) {
	current, err := d.CurrentPermissions()
	if err != nil {
		return false, err
	}
	return current&bit != 0, nil
}

// IsReadable reports whether the calling process may read the path.
func (d Descriptor) IsReadable() bool {
	return unix.Access(d.path, unix.R_OK) == nil
}

// IsWritable reports whether the calling process may write the path.
func (d Descriptor) IsWritable() bool {
	return unix.Access(d.path, unix.W_OK) == nil
}

// IsExecutable reports whether the path is a regular file the calling
// process may execute. Directories are never executable.
func (d Descriptor) IsExecutable() bool {
	return d.IsFile() && unix.Access(d.path, unix.X_OK) == nil
}

// Remove deletes the path if it is a file or an empty directory.
func (d Descriptor) Remove() error {
	if err := os.Remove(d.path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", d.path, err)
	}
	return nil
}
