package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/chainguard-dev/clog"

	"github.com/polyium/polyium/internal/system"
)

// InitWorkspace creates the working and artifacts directories and makes
// sure every script in executables can be run. Relative script paths are
// taken from the working directory.
func InitWorkspace(ctx context.Context, c *Context, executables []string) error {
	log := clog.FromContext(ctx)

	dirs := []struct {
		label string
		path  string
	}{
		{"working", c.Settings.WorkingDirectory},
		{"artifacts", c.Settings.ArtifactsDirectory},
	}
	for _, dir := range dirs {
		d, err := system.NewDirectory(dir.path, true)
		if err != nil {
			return fmt.Errorf("failed to prepare %s directory: %w", dir.label, err)
		}
		log.Debugf("Prepared %s directory: %s", dir.label, d.Path())
		c.UI.Successf("%s directory ready: %s", dir.label, d.Path())
	}

	for _, path := range executables {
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.Settings.WorkingDirectory, path)
		}
		e, err := system.NewExecutable(path)
		if err != nil {
			return fmt.Errorf("failed to prepare executable: %w", err)
		}
		c.UI.Successf("executable ready: %s", e.Path())
	}

	return nil
}

// DirectoryStatus describes one of the workspace directories.
type DirectoryStatus struct {
	Label       string
	Path        string
	Exists      bool
	Permissions string
	Writable    bool
}

// WorkspaceStatus inspects the configured directories without changing
// anything.
func WorkspaceStatus(c *Context) ([]DirectoryStatus, error) {
	dirs := []struct {
		label string
		path  string
	}{
		{"Working directory", c.Settings.WorkingDirectory},
		{"Artifacts directory", c.Settings.ArtifactsDirectory},
		{"Temporary directory", c.Settings.TemporaryDirectory},
	}

	statuses := make([]DirectoryStatus, 0, len(dirs))
	for _, dir := range dirs {
		d := system.NewDescriptor(dir.path)
		status := DirectoryStatus{Label: dir.label, Path: d.Path(), Permissions: "-"}

		if resolved, err := d.ResolvedPath(); err == nil {
			status.Path = resolved
		}
		if d.Exists() {
			perms, err := d.CurrentPermissions()
			if err != nil {
				return nil, err
			}
			status.Exists = true
			status.Permissions = fmt.Sprintf("%#o", uint32(perms))
			status.Writable = d.IsWritable()
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// CleanWorkspace removes the artifacts directory and everything in it after
// asking for confirmation, unless force is set. It reports whether anything
// was removed.
func CleanWorkspace(ctx context.Context, c *Context, force bool) (bool, error) {
	log := clog.FromContext(ctx)
	path := c.Settings.ArtifactsDirectory

	if !system.NewDescriptor(path).Exists() {
		c.UI.Infof("Nothing to clean: %s doesn't exist", path)
		return false, nil
	}

	artifacts, err := system.NewDirectory(path, false)
	if err != nil {
		return false, err
	}

	if !force {
		c.UI.Warningf("This will delete %s and everything in it", artifacts.Path())
		confirm, err := c.UI.PromptYesNo("Are you sure you want to clean the workspace?", false)
		if err != nil {
			return false, err
		}
		if !confirm {
			c.UI.Info("Clean cancelled")
			return false, nil
		}
	}

	log.Debugf("Removing artifacts directory: %s", artifacts.Path())
	if err := artifacts.Cleanup(); err != nil {
		return false, fmt.Errorf("failed to clean workspace: %w", err)
	}
	c.UI.Successf("Removed %s", artifacts.Path())
	return true, nil
}
