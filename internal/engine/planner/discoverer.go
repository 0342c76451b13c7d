package planner

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Discoverer asks the compiler for the header closure of a single source file.
type Discoverer struct {
	compiler ports.CompilerClient
	logger   ports.Logger
}

// NewDiscoverer creates a Discoverer.
func NewDiscoverer(compiler ports.CompilerClient, logger ports.Logger) *Discoverer {
	return &Discoverer{compiler: compiler, logger: logger}
}

// Discover returns the absolute paths of the project headers source depends on,
// directly or transitively, in the order the compiler reported them.
//
// Only files with the header extension below the header directory or an include
// path are kept. A failing probe is reported as a warning and yields no headers.
func (d *Discoverer) Discover(ctx context.Context, cfg *domain.Config, source string) []string {
	raw, err := d.compiler.Dependencies(ctx, cfg, source)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrDiscoveryFailed.Error()), "source", cfg.Rel(source))
		d.logger.Warn(fmt.Sprintf("%v; assuming no header dependencies", err))
		return nil
	}

	mapper := domain.NewPathMapper(cfg)
	roots := cfg.SearchRoots()
	seen := make(map[string]struct{}, len(raw))
	headers := make([]string, 0, len(raw))

	for _, dep := range raw {
		path := cfg.Abs(dep)
		if !mapper.IsHeader(path) || !underAny(path, roots) {
			continue
		}
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		headers = append(headers, path)
	}

	return headers
}

func underAny(path string, roots []string) bool {
	for _, root := range roots {
		if domain.IsUnder(path, filepath.Clean(root)) {
			return true
		}
	}
	return false
}
