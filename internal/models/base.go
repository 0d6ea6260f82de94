package models

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/polyium/polyium/internal/system"
)

// Base holds the runtime directories every polyium program works with.
// Embed it in program-specific settings and call Resolve once decoded.
type Base struct {
	WorkingDirectory       string `json:"working_directory" jsonschema:"default=." jsonschema_description:"The program's runtime working directory. Relative directories are resolved against it unless explicitly specified. It is not created unless create-working-directory is set."`
	CreateWorkingDirectory bool   `json:"create_working_directory" jsonschema:"default=false" jsonschema_description:"Whether to create the working directory if it doesn't already exist."`

	ArtifactsDirectory       string `json:"artifacts_directory" jsonschema:"default=artifacts" jsonschema_description:"The parent directory for output artifacts. A relative value is resolved against the working directory. It is not created unless create-artifacts-directory is set."`
	CreateArtifactsDirectory bool   `json:"create_artifacts_directory" jsonschema:"default=false" jsonschema_description:"Whether to create the artifacts directory if it doesn't already exist."`

	TemporaryDirectory string `json:"temporary_directory" jsonschema_description:"The parent directory for temporary files. Defaults to the operating system's temporary directory. Any other value is created when missing and exported as TMPDIR."`
}

// NewBase returns Base with its defaults.
func NewBase() Base {
	return Base{
		WorkingDirectory:   ".",
		ArtifactsDirectory: "artifacts",
		TemporaryDirectory: os.TempDir(),
	}
}

// Describe implements Describer.
func (b Base) Describe() string {
	return "Runtime directories shared by polyium programs."
}

// Resolve turns every directory into an absolute path and creates the ones
// asked for. A temporary directory other than the OS default is always
// created and becomes the process-wide TMPDIR.
func (b *Base) Resolve() error {
	if err := b.resolveTemporary(); err != nil {
		return err
	}

	slog.Debug("Unevaluated working directory", "path", b.WorkingDirectory)
	if b.WorkingDirectory == "" || b.WorkingDirectory == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		b.WorkingDirectory = cwd
	}
	wd, err := filepath.Abs(b.WorkingDirectory)
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	b.WorkingDirectory = wd
	slog.Debug("Resolved working directory", "path", b.WorkingDirectory)

	if b.ArtifactsDirectory == "" {
		b.ArtifactsDirectory = "artifacts"
	}
	if !filepath.IsAbs(b.ArtifactsDirectory) {
		b.ArtifactsDirectory = filepath.Join(b.WorkingDirectory, b.ArtifactsDirectory)
	}
	b.ArtifactsDirectory = filepath.Clean(b.ArtifactsDirectory)

	if err := ensureDirectory("working", b.WorkingDirectory, b.CreateWorkingDirectory); err != nil {
		return err
	}
	return ensureDirectory("artifacts", b.ArtifactsDirectory, b.CreateArtifactsDirectory)
}

func (b *Base) resolveTemporary() error {
	def := os.TempDir()
	slog.Debug("Default temporary directory", "path", def)

	if b.TemporaryDirectory == "" {
		b.TemporaryDirectory = def
		return nil
	}

	tmp, err := filepath.Abs(b.TemporaryDirectory)
	if err != nil {
		return fmt.Errorf("failed to resolve temporary directory: %w", err)
	}
	b.TemporaryDirectory = tmp

	if tmp == filepath.Clean(def) {
		return nil
	}

	slog.Debug("Evaluating user-specified temporary directory", "path", tmp)
	if _, err := system.NewDirectory(tmp, true); err != nil {
		return fmt.Errorf("unable to create temporary directory %s: %w", tmp, err)
	}

	if err := os.Setenv("TMPDIR", tmp); err != nil {
		return fmt.Errorf("failed to set TMPDIR: %w", err)
	}
	slog.Debug("Updated TMPDIR", "path", tmp)
	return nil
}

// ensureDirectory verifies that an existing path is a directory and creates
// a missing one when create is set. A missing directory that may not be
// created is fine.
func ensureDirectory(label, path string, create bool) error {
	if !create && !system.NewDescriptor(path).Exists() {
		slog.Debug("Directory doesn't exist yet", "kind", label, "path", path)
		return nil
	}

	if _, err := system.NewDirectory(path, create); err != nil {
		return fmt.Errorf("%s directory %s is not a valid directory: %w", label, path, err)
	}

	slog.Debug("Verified valid directory", "kind", label, "path", path)
	return nil
}

// LoadBase returns the default Base overlaid with the settings file at path,
// if any, and resolved.
func LoadBase(path string) (*Base, error) {
	b := NewBase()
	if path != "" {
		if err := Load(path, &b); err != nil {
			return nil, err
		}
	}

	if err := b.Resolve(); err != nil {
		return nil, err
	}
	return &b, nil
}
