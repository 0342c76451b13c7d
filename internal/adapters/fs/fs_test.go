package fs_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/internal/adapters/fs"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"))
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"))
	writeFile(t, filepath.Join(tmpDir, "textures", "grass.png"))
	writeFile(t, filepath.Join(tmpDir, "textures", "notes.tmp"))
	writeFile(t, filepath.Join(tmpDir, "README.md"))

	walker := fs.NewWalker()
	var files []string
	for file, err := range walker.WalkFiles(tmpDir, []string{"ignored", "*.tmp"}) {
		require.NoError(t, err)
		files = append(files, file)
	}

	assert.ElementsMatch(t, []string{
		filepath.Join(tmpDir, "README.md"),
		filepath.Join(tmpDir, "textures", "grass.png"),
	}, files)
}

func TestWalker_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a"))
	writeFile(t, filepath.Join(tmpDir, "b"))

	count := 0
	for range fs.NewWalker().WalkFiles(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_ReportsUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.png"))
	locked := filepath.Join(tmpDir, "locked")
	writeFile(t, filepath.Join(locked, "b.png"))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() {
		_ = os.Chmod(locked, 0o750) //nolint:gosec // restore test directory
	})

	var (
		files []string
		errs  []error
	)
	for file, err := range fs.NewWalker().WalkFiles(tmpDir, nil) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		files = append(files, file)
	}

	assert.Equal(t, []string{filepath.Join(tmpDir, "a.png")}, files)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "failed to walk path")
	assert.ErrorIs(t, errs[0], iofs.ErrPermission)
}

func TestWalker_MissingRoot(t *testing.T) {
	var errs []error
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), nil) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], iofs.ErrNotExist)
}

func TestResolver_Glob(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "src", "main.cpp"))
	writeFile(t, filepath.Join(tmpDir, "src", "tools", "gen.cpp"))
	writeFile(t, filepath.Join(tmpDir, "src", "util.hpp"))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "src", "dir.cpp"), 0o750))

	resolver := fs.NewResolver()

	t.Run("doublestar", func(t *testing.T) {
		got, err := resolver.Glob(filepath.Join(tmpDir, "src", "**", "*.cpp"))
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(tmpDir, "src", "main.cpp"),
			filepath.Join(tmpDir, "src", "tools", "gen.cpp"),
		}, got)
	})

	t.Run("literal path", func(t *testing.T) {
		got, err := resolver.Glob(filepath.Join(tmpDir, "src", "main.cpp"))
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(tmpDir, "src", "main.cpp")}, got)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := resolver.Glob(filepath.Join(tmpDir, "src", "missing.cpp"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestOSFS(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "build", "main.o")
	writeFile(t, path)

	stamp := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	osfs := fs.NewOSFS()

	got, err := osfs.ModTime(path)
	require.NoError(t, err)
	assert.True(t, got.Equal(stamp))
	assert.True(t, osfs.Exists(path))

	_, err = osfs.ModTime(filepath.Join(tmpDir, "missing"))
	assert.True(t, errors.Is(err, iofs.ErrNotExist))

	require.NoError(t, osfs.RemoveAll(filepath.Join(tmpDir, "build")))
	assert.False(t, osfs.Exists(path))
	require.NoError(t, osfs.RemoveAll(filepath.Join(tmpDir, "build")), "removing twice is fine")
}
