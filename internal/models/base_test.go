package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseDefaults(t *testing.T) {
	b, err := LoadBase("")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, cwd, b.WorkingDirectory)
	assert.True(t, filepath.IsAbs(b.WorkingDirectory))
	assert.DirExists(t, b.WorkingDirectory)
	assert.Equal(t, filepath.Join(cwd, "artifacts"), b.ArtifactsDirectory)
	assert.Equal(t, os.TempDir(), b.TemporaryDirectory)
}

func TestBaseDefaultArtifactsDirectoryIsNotCreated(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBase()
	b.WorkingDirectory = tmpDir
	require.NoError(t, b.Resolve())

	assert.Equal(t, filepath.Join(tmpDir, "artifacts"), b.ArtifactsDirectory)
	assert.True(t, filepath.IsAbs(b.ArtifactsDirectory))
	assert.NoDirExists(t, b.ArtifactsDirectory)
}

func TestBaseCreateDirectories(t *testing.T) {
	workDir := filepath.Join(t.TempDir(), "work")

	b := NewBase()
	b.WorkingDirectory = workDir
	b.CreateWorkingDirectory = true
	b.CreateArtifactsDirectory = true
	require.NoError(t, b.Resolve())

	assert.DirExists(t, workDir)
	assert.DirExists(t, filepath.Join(workDir, "artifacts"))
	assert.Equal(t, "work", filepath.Base(b.WorkingDirectory))
}

func TestBaseAbsoluteArtifactsDirectory(t *testing.T) {
	artifacts := filepath.Join(t.TempDir(), "out")

	b := NewBase()
	b.WorkingDirectory = t.TempDir()
	b.ArtifactsDirectory = artifacts
	b.CreateArtifactsDirectory = true
	require.NoError(t, b.Resolve())

	assert.Equal(t, artifacts, b.ArtifactsDirectory)
	assert.DirExists(t, artifacts)
}

func TestBaseRejectsFiles(t *testing.T) {
	tmpDir := t.TempDir()
	plain := filepath.Join(tmpDir, "plain")
	require.NoError(t, os.WriteFile(plain, nil, 0o644))

	b := NewBase()
	b.WorkingDirectory = plain
	assert.Error(t, b.Resolve())

	b = NewBase()
	b.WorkingDirectory = tmpDir
	b.ArtifactsDirectory = "plain"
	assert.Error(t, b.Resolve())
}

func TestBaseTemporaryDirectory(t *testing.T) {
	t.Setenv("TMPDIR", os.Getenv("TMPDIR"))

	custom := filepath.Join(t.TempDir(), "custom-tmp")

	b := NewBase()
	b.WorkingDirectory = t.TempDir()
	b.TemporaryDirectory = custom
	require.NoError(t, b.Resolve())

	assert.DirExists(t, custom)
	assert.Equal(t, custom, b.TemporaryDirectory)
	assert.Equal(t, custom, os.TempDir())
}

func TestLoadBase(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "settings.yaml")
	content := "working-directory: " + tmpDir + "\nartifacts-directory: build\ncreate-artifacts-directory: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	b, err := LoadBase(path)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, b.WorkingDirectory)
	assert.Equal(t, filepath.Join(tmpDir, "build"), b.ArtifactsDirectory)
	assert.DirExists(t, b.ArtifactsDirectory)
	assert.Equal(t, os.TempDir(), b.TemporaryDirectory)
}

func TestBaseSchema(t *testing.T) {
	schema, err := Default().Schema(NewBase())
	require.NoError(t, err)

	assert.Equal(t, "base", schema.Title)
	assert.NotEmpty(t, schema.Description)

	for _, key := range []string{
		"working-directory",
		"create-working-directory",
		"artifacts-directory",
		"create-artifacts-directory",
		"temporary-directory",
	} {
		prop, ok := schema.Properties.Get(key)
		if assert.True(t, ok, key) {
			assert.Equal(t, key, prop.Title)
			assert.NotEmpty(t, prop.Description, key)
		}
	}
}
