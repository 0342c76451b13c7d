// Package resources copies runtime resources next to the built executable.
package resources

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar"
	fsadapter "go.trai.ch/rebuild/internal/adapters/fs"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
	"go.uber.org/multierr"
)

var _ ports.ResourceSyncer = (*Syncer)(nil)

// Syncer implements ports.ResourceSyncer on the local file system.
type Syncer struct {
	walker *fsadapter.Walker
}

// New creates a Syncer that descends into directories with walker.
func New(walker *fsadapter.Walker) *Syncer {
	return &Syncer{walker: walker}
}

// Sync copies the matches of every resource mapping to <exeDir>/<dest>/<basename>.
// A file is copied when its destination is missing or older. Errors of one
// mapping do not stop the others.
func (s *Syncer) Sync(ctx context.Context, cfg *domain.Config) ([]domain.CopiedResource, error) {
	var (
		copied []domain.CopiedResource
		errs   error
	)

	for _, mapping := range cfg.Resources {
		if err := ctx.Err(); err != nil {
			return copied, zerr.Wrap(err, "resource sync interrupted")
		}

		got, err := s.syncMapping(cfg, mapping)
		copied = append(copied, got...)
		if err != nil {
			errs = multierr.Append(errs, zerr.With(err, "pattern", mapping.Pattern))
		}
	}

	if errs != nil {
		return copied, errors.Join(domain.ErrResourceSyncFailed, errs)
	}
	return copied, nil
}

func (s *Syncer) syncMapping(cfg *domain.Config, mapping domain.ResourceMapping) ([]domain.CopiedResource, error) {
	matches, err := doublestar.Glob(cfg.Abs(mapping.Pattern))
	if err != nil {
		return nil, zerr.Wrap(err, "invalid resource pattern")
	}

	destDir := filepath.Join(cfg.Abs(cfg.ExeDir), mapping.Dest)

	var (
		copied []domain.CopiedResource
		errs   error
	)
	for _, src := range matches {
		info, err := os.Stat(src)
		if err != nil {
			errs = multierr.Append(errs, zerr.Wrap(err, "failed to stat resource"))
			continue
		}

		dst := filepath.Join(destDir, filepath.Base(src))
		if !info.IsDir() {
			ok, err := copyIfNewer(src, dst, info)
			if err != nil {
				errs = multierr.Append(errs, err)
			} else if ok {
				copied = append(copied, domain.CopiedResource{Source: src, Destination: dst})
			}
			continue
		}

		for file, err := range s.walker.WalkFiles(src, nil) {
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			rel, err := filepath.Rel(src, file)
			if err != nil {
				errs = multierr.Append(errs, zerr.Wrap(err, "failed to relativize resource"))
				continue
			}
			fileInfo, err := os.Stat(file)
			if err != nil {
				errs = multierr.Append(errs, zerr.Wrap(err, "failed to stat resource"))
				continue
			}
			target := filepath.Join(dst, rel)
			ok, err := copyIfNewer(file, target, fileInfo)
			if err != nil {
				errs = multierr.Append(errs, err)
			} else if ok {
				copied = append(copied, domain.CopiedResource{Source: file, Destination: target})
			}
		}
	}
	return copied, errs
}

// copyIfNewer copies src to dst unless dst exists and is at least as new as src.
func copyIfNewer(src, dst string, info fs.FileInfo) (bool, error) {
	existing, err := os.Stat(dst)
	switch {
	case err == nil:
		if !domain.IsNewer(info.ModTime(), existing.ModTime()) {
			return false, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return false, zerr.With(zerr.Wrap(err, "failed to stat destination"), "path", dst)
	}

	if err := copyFile(src, dst, info); err != nil {
		return false, zerr.With(zerr.With(err, "source", src), "destination", dst)
	}
	return true, nil
}

// copyFile copies content and permissions and carries the modification time over
// so the next comparison sees equal timestamps.
func copyFile(src, dst string, info fs.FileInfo) error {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create resource directory")
	}

	//nolint:gosec // Path comes from the project configuration
	in, err := os.Open(src)
	if err != nil {
		return zerr.Wrap(err, "failed to open resource")
	}
	defer func() { _ = in.Close() }()

	//nolint:gosec // Path comes from the project configuration
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return zerr.Wrap(err, "failed to create resource copy")
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, "failed to copy resource")
	}
	if err := out.Close(); err != nil {
		return zerr.Wrap(err, "failed to close resource copy")
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return zerr.Wrap(err, "failed to preserve resource timestamp")
	}
	return nil
}
