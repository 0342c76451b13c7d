package fstestfs_test

import (
	iofs "io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/internal/adapters/fs/fstestfs"
)

func TestMapFS(t *testing.T) {
	root := filepath.FromSlash("/project")
	stamp := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	files := fstest.MapFS{
		"src/main.cpp":       {ModTime: stamp},
		"src/net/socket.cpp": {ModTime: stamp.Add(time.Second)},
		"include/util.hpp":   {ModTime: stamp},
		"build/main.o":       {ModTime: stamp},
	}
	m := fstestfs.New(root, files)

	got, err := m.ModTime(filepath.Join(root, "src", "net", "socket.cpp"))
	require.NoError(t, err)
	assert.True(t, got.Equal(stamp.Add(time.Second)))

	_, err = m.ModTime(filepath.Join(root, "src", "missing.cpp"))
	assert.ErrorIs(t, err, iofs.ErrNotExist)

	_, err = m.ModTime(filepath.FromSlash("/elsewhere/a.hpp"))
	assert.ErrorIs(t, err, iofs.ErrNotExist)

	assert.True(t, m.Exists(filepath.Join(root, "include", "util.hpp")))
	assert.True(t, m.Exists(filepath.Join(root, "src")), "implicit directories exist")
	assert.False(t, m.Exists(filepath.FromSlash("/elsewhere")))

	matches, err := m.Glob(filepath.Join(root, "src", "**", "*.cpp"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "src", "main.cpp"),
		filepath.Join(root, "src", "net", "socket.cpp"),
	}, matches)

	require.NoError(t, m.RemoveAll(filepath.Join(root, "build")))
	assert.False(t, m.Exists(filepath.Join(root, "build", "main.o")))
	assert.True(t, m.Exists(filepath.Join(root, "src", "main.cpp")))
}
