package system

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	plainFile := filepath.Join(tmpDir, "plain")
	require.NoError(t, os.WriteFile(plainFile, []byte("x"), 0o644))

	tests := []struct {
		name    string
		path    string
		create  bool
		wantErr error
	}{
		{name: "create missing", path: filepath.Join(tmpDir, "new"), create: true},
		{name: "create missing with parents", path: filepath.Join(tmpDir, "a", "b", "c"), create: true},
		{name: "existing without create", path: tmpDir, create: false},
		{name: "existing with create", path: tmpDir, create: true},
		{name: "missing without create", path: filepath.Join(tmpDir, "absent"), create: false, wantErr: ErrMissing},
		{name: "plain file with create", path: plainFile, create: true, wantErr: ErrNotDirectory},
		{name: "plain file without create", path: plainFile, create: false, wantErr: ErrNotDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDirectory(tt.path, tt.create)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, d)
				return
			}

			require.NoError(t, err)
			assert.True(t, d.Exists())
			assert.True(t, d.IsDir())
		})
	}
}

func TestNewDirectoryWithoutCreateLeavesNoTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "nested")

	_, err := NewDirectory(path, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)

	_, statErr := os.Stat(filepath.Dir(path))
	assert.True(t, os.IsNotExist(statErr))
}

func TestTemporaryDirectory(t *testing.T) {
	d, err := TemporaryDirectory(".suffix", "prefix.")
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Cleanup() })

	assert.True(t, d.Exists())
	assert.True(t, d.IsDir())

	resolved, err := d.ResolvedPath()
	require.NoError(t, err)
	root, err := ResolveRealPath(os.TempDir())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resolved, root+string(filepath.Separator)),
		"%s is not under %s", resolved, root)

	base := filepath.Base(resolved)
	assert.True(t, strings.HasPrefix(base, "prefix."))
	assert.True(t, strings.HasSuffix(base, ".suffix"))

	other, err := TemporaryDirectory("", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = other.Cleanup() })
	assert.False(t, d.Equal(other.Descriptor))
}

func TestDirectoryScope(t *testing.T) {
	d, err := TemporaryDirectory("", "scope-")
	require.NoError(t, err)
	require.True(t, d.Exists())

	err = d.Scope(func(dir *Directory) error {
		assert.True(t, dir.Exists())
		return os.WriteFile(filepath.Join(dir.Path(), "nested.txt"), []byte("data"), 0o644)
	})
	require.NoError(t, err)
	assert.False(t, d.Exists())
}

func TestDirectoryScopeRecreatesMissing(t *testing.T) {
	d, err := NewDirectory(filepath.Join(t.TempDir(), "scoped"), true)
	require.NoError(t, err)
	require.NoError(t, d.Cleanup())
	require.False(t, d.Exists())

	var seen bool
	require.NoError(t, d.Scope(func(dir *Directory) error {
		seen = dir.IsDir()
		return nil
	}))
	assert.True(t, seen)
	assert.False(t, d.Exists())
}

func TestDirectoryScopePropagatesError(t *testing.T) {
	sentinel := errors.New("inside scope")

	d, err := NewDirectory(filepath.Join(t.TempDir(), "failing"), true)
	require.NoError(t, err)

	err = d.Scope(func(dir *Directory) error {
		require.NoError(t, os.MkdirAll(filepath.Join(dir.Path(), "sub", "dir"), 0o755))
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.False(t, d.Exists())
}

func TestDirectoryScopeCleansUpOnPanic(t *testing.T) {
	d, err := NewDirectory(filepath.Join(t.TempDir(), "panicking"), true)
	require.NoError(t, err)

	assert.PanicsWithValue(t, "boom", func() {
		_ = d.Scope(func(*Directory) error {
			panic("boom")
		})
	})
	assert.False(t, d.Exists())
}

func TestWithTemporaryDirectory(t *testing.T) {
	var path string
	err := WithTemporaryDirectory("", "with-", func(d *Directory) error {
		path = d.Path()
		return os.WriteFile(filepath.Join(path, "file"), nil, 0o644)
	})
	require.NoError(t, err)
	require.NotEmpty(t, path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDirectoryCleanupIsIdempotent(t *testing.T) {
	d, err := NewDirectory(filepath.Join(t.TempDir(), "twice"), true)
	require.NoError(t, err)

	require.NoError(t, d.Cleanup())
	require.NoError(t, d.Cleanup())
	assert.False(t, d.Exists())
}
