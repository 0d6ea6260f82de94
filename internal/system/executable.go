package system

import (
	"fmt"
	"log/slog"
	"os"
)

// Executable is a regular file the calling process may execute.
type Executable struct {
	Descriptor
}

// NewExecutable returns an Executable for path. When path isn't executable
// yet its mode is set to PermExecutable, following symlinks; if that still
// doesn't make it executable the construction fails with ErrNotExecutable.
func NewExecutable(path string) (*Executable, error) {
	e := &Executable{Descriptor: NewDescriptor(path)}
	if e.IsExecutable() {
		return e, nil
	}

	slog.Debug("Descriptor is not executable, attempting to change permission(s)",
		"path", e.resolved(), "mode", fmt.Sprintf("%#o", PermExecutable))

	if err := os.Chmod(e.path, PermExecutable); err != nil {
		return nil, fmt.Errorf("failed to chmod %s: %w", e.resolved(), err)
	}

	if !e.IsExecutable() {
		slog.Error("Failed to change permission(s) on descriptor", "path", e.resolved())
		return nil, fmt.Errorf("%w: %s", ErrNotExecutable, e.resolved())
	}

	slog.Debug("Successfully changed permission(s) on descriptor", "path", e.resolved())
	return e, nil
}
