package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// PathMapper derives source and object paths from header and source paths.
// It only does lexical work and never touches the filesystem.
type PathMapper struct {
	sourceDir string
	sourceExt string
	headerDir string
	headerExt string
	objectDir string
	objectExt string
}

// NewPathMapper creates a PathMapper from the directory and extension settings of cfg.
func NewPathMapper(cfg *Config) PathMapper {
	return PathMapper{
		sourceDir: filepath.Clean(cfg.SourceDir),
		sourceExt: cfg.SourceExt,
		headerDir: filepath.Clean(cfg.HeaderDir),
		headerExt: cfg.HeaderExt,
		objectDir: filepath.Clean(cfg.ObjectDir),
		objectExt: cfg.ObjectExt,
	}
}

// HeaderToSource returns the path where the source implementing header should live.
func (m PathMapper) HeaderToSource(header string) (string, error) {
	return rebase(header, m.headerDir, m.sourceDir, m.sourceExt)
}

// SourceToObject returns the path of the object artifact compiled from source.
func (m PathMapper) SourceToObject(source string) (string, error) {
	return rebase(source, m.sourceDir, m.objectDir, m.objectExt)
}

// SourceToHeader returns the path of the header that naturally maps to source.
func (m PathMapper) SourceToHeader(source string) (string, error) {
	return rebase(source, m.sourceDir, m.headerDir, m.headerExt)
}

// IsHeader reports whether path carries the header extension.
func (m PathMapper) IsHeader(path string) bool {
	return filepath.Ext(path) == "."+strings.TrimPrefix(m.headerExt, ".")
}

// UnderHeaderDir reports whether path lies below the header directory.
func (m PathMapper) UnderHeaderDir(path string) bool {
	return IsUnder(path, m.headerDir)
}

// rebase strips from, swaps the extension to ext and re-roots the remainder under to.
func rebase(path, from, to, ext string) (string, error) {
	rel, err := filepath.Rel(from, filepath.Clean(path))
	if err != nil || !isDescendant(rel) {
		return "", zerr.With(zerr.With(ErrPathMapping, "path", path), "root", from)
	}

	dir, base := filepath.Split(rel)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(to, dir, stem+"."+strings.TrimPrefix(ext, ".")), nil
}

// IsUnder reports whether path lies strictly below dir.
func IsUnder(path, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	return err == nil && isDescendant(rel)
}

func isDescendant(rel string) bool {
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) &&
		!filepath.IsAbs(rel)
}
