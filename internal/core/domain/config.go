// Package domain contains the core models of the incremental build driver.
package domain

import (
	"path/filepath"
	"strings"
)

// ResourceMapping copies every file matched by Pattern into Dest, a sub-path of the
// executable directory.
type ResourceMapping struct {
	Pattern string
	Dest    string
}

// Config is the resolved build configuration. All directory and file fields are
// absolute paths; the loader resolves them against Root.
type Config struct {
	Root string

	Compiler      string
	CompilerFlags []string
	LinkerFlags   []string

	SourceDir  string
	SourceExt  string
	SourceMain string
	HeaderDir  string
	HeaderExt  string
	ObjectDir  string
	ObjectExt  string

	IncludePaths []string
	LibraryPaths []string

	// DependMapping overrides the natural header to source inference. A header may
	// fan out to several sources.
	DependMapping map[string][]string

	ExeDir  string
	ExeFile string

	Resources []ResourceMapping

	SkipLink        bool
	CompileDatabase bool
	Jobs            int
}

// Validate checks the fields a build cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Compiler) == "" {
		return ErrMissingCompiler
	}
	if strings.TrimSpace(c.SourceMain) == "" {
		return ErrMissingEntry
	}
	if c.Jobs < 1 {
		return ErrInvalidJobs
	}
	return nil
}

// ExecutablePath returns the path of the link output.
func (c *Config) ExecutablePath() string {
	return filepath.Join(c.ExeDir, c.ExeFile)
}

// EntryPattern returns the entry source pattern rooted under the source directory.
func (c *Config) EntryPattern() string {
	if filepath.IsAbs(c.SourceMain) {
		return c.SourceMain
	}
	return filepath.Join(c.SourceDir, c.SourceMain)
}

// SearchRoots returns the header directory followed by the extra include paths.
func (c *Config) SearchRoots() []string {
	roots := make([]string, 0, len(c.IncludePaths)+1)
	roots = append(roots, c.HeaderDir)
	return append(roots, c.IncludePaths...)
}

// Rel returns path relative to the project root for display.
// Paths outside the root are returned unchanged.
func (c *Config) Rel(path string) string {
	rel, err := filepath.Rel(c.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// Abs resolves path against the project root.
func (c *Config) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.Root, path)
}
