package ports

import "time"

// FileSystem abstracts the timestamp queries of the planner and artifact removal.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// ModTime returns the modification time of path.
	// A missing path yields an error wrapping fs.ErrNotExist.
	ModTime(path string) (time.Time, error)

	// Exists reports whether path exists.
	Exists(path string) bool

	// RemoveAll removes path and any children it contains.
	RemoveAll(path string) error
}

// InputResolver expands glob patterns, including "**", into matching files.
type InputResolver interface {
	// Glob returns the sorted regular files matching pattern.
	Glob(pattern string) ([]string, error)
}
