package fs

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface with doublestar globbing.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Glob returns the sorted regular files matching pattern. A pattern without
// glob syntax matches itself if the file exists.
func (r *Resolver) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
	}

	seen := make(map[string]bool, len(matches))
	result := make([]string, 0, len(matches))
	for _, match := range matches {
		match = filepath.Clean(match)
		if seen[match] {
			continue
		}
		info, err := os.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		seen[match] = true
		result = append(result, match)
	}
	sort.Strings(result)

	return result, nil
}
