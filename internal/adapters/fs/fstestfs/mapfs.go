// Package fstestfs serves an in-memory file tree through the file system ports.
// It backs the planner and builder tests.
package fstestfs

import (
	iofs "io/fs"
	"path"
	"path/filepath"
	"strings"
	"testing/fstest"
	"time"

	"github.com/bmatcuk/doublestar"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.FileSystem    = (*MapFS)(nil)
	_ ports.InputResolver = (*MapFS)(nil)
)

// MapFS serves an in-memory fstest.MapFS under a simulated absolute root.
// Tests drive timestamps by editing the ModTime of the map entries.
type MapFS struct {
	Files fstest.MapFS
	Root  string
}

// New creates a MapFS rooted at root.
func New(root string, files fstest.MapFS) *MapFS {
	return &MapFS{Files: files, Root: filepath.Clean(root)}
}

// ModTime returns the modification time of path.
func (m *MapFS) ModTime(p string) (time.Time, error) {
	rel, ok := m.toRelPath(p)
	if !ok {
		return time.Time{}, &iofs.PathError{Op: "stat", Path: p, Err: iofs.ErrNotExist}
	}
	info, err := iofs.Stat(m.Files, rel)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// Exists reports whether path exists.
func (m *MapFS) Exists(p string) bool {
	rel, ok := m.toRelPath(p)
	if !ok {
		return false
	}
	_, err := iofs.Stat(m.Files, rel)
	return err == nil
}

// RemoveAll removes path and every entry below it.
func (m *MapFS) RemoveAll(p string) error {
	rel, ok := m.toRelPath(p)
	if !ok {
		return nil
	}
	for name := range m.Files {
		if name == rel || strings.HasPrefix(name, rel+"/") {
			delete(m.Files, name)
		}
	}
	return nil
}

// Glob returns the regular files whose path matches pattern, in lexical order.
func (m *MapFS) Glob(pattern string) ([]string, error) {
	rel, ok := m.toRelPath(pattern)
	if !ok {
		return nil, nil
	}

	var matches []string
	err := iofs.WalkDir(m.Files, ".", func(name string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		matched, err := doublestar.Match(rel, name)
		if err != nil {
			return err
		}
		if matched {
			matches = append(matches, filepath.Join(m.Root, filepath.FromSlash(name)))
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
	}
	return matches, nil
}

// toRelPath converts an absolute path into a slash-separated key of the map.
func (m *MapFS) toRelPath(p string) (string, bool) {
	if !filepath.IsAbs(p) {
		return path.Clean(filepath.ToSlash(p)), true
	}
	rel, err := filepath.Rel(m.Root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
