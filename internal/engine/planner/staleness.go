package planner

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
)

// headerCacheSize bounds the header timestamps remembered during one plan.
const headerCacheSize = 4096

type stat struct {
	modTime time.Time
	err     error
}

// Evaluator decides whether the object artifact of a translation unit is stale.
// Header timestamps are memoized, so an Evaluator must not outlive one plan.
type Evaluator struct {
	fs      ports.FileSystem
	cfg     *domain.Config
	headers *lru.Cache[string, stat]
}

// NewEvaluator creates an Evaluator for one planning pass over cfg.
func NewEvaluator(fsys ports.FileSystem, cfg *domain.Config) (*Evaluator, error) {
	cache, err := lru.New[string, stat](headerCacheSize)
	if err != nil {
		return nil, err
	}
	return &Evaluator{fs: fsys, cfg: cfg, headers: cache}, nil
}

// HeaderTime returns the modification time of a header, statting it at most once
// while it stays in the cache.
func (e *Evaluator) HeaderTime(path string) (time.Time, error) {
	if s, ok := e.headers.Get(path); ok {
		return s.modTime, s.err
	}
	t, err := e.fs.ModTime(path)
	e.headers.Add(path, stat{modTime: t, err: err})
	return t, err
}

// IsStale applies the staleness rules to unit against its discovered headers and
// records the source timestamp on unit. The first rule that fires wins.
func (e *Evaluator) IsStale(unit *domain.TranslationUnit, deps []string) (bool, string) {
	objTime, err := e.fs.ModTime(unit.Object)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, "object missing"
		}
		return true, fmt.Sprintf("cannot stat object: %v", err)
	}

	srcTime, err := e.fs.ModTime(unit.Source)
	if err != nil {
		return true, fmt.Sprintf("cannot stat source: %v", err)
	}
	unit.ModTime = srcTime
	if domain.IsNewer(srcTime, objTime) {
		return true, "source changed"
	}

	for _, dep := range deps {
		depTime, err := e.HeaderTime(dep)
		if err != nil {
			return true, fmt.Sprintf("cannot stat %s", e.cfg.Rel(dep))
		}
		if domain.IsNewer(depTime, objTime) {
			return true, e.cfg.Rel(dep) + " changed"
		}
	}

	return false, "up to date"
}
