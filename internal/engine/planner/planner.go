// Package planner walks the header graph of a project and decides which
// translation units must be recompiled.
package planner

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Planner builds the dependency graph of a project breadth-first from its entry units.
type Planner struct {
	discoverer *Discoverer
	fs         ports.FileSystem
	resolver   ports.InputResolver
	logger     ports.Logger
}

// New creates a Planner.
func New(
	compiler ports.CompilerClient,
	fsys ports.FileSystem,
	resolver ports.InputResolver,
	logger ports.Logger,
) *Planner {
	return &Planner{
		discoverer: NewDiscoverer(compiler, logger),
		fs:         fsys,
		resolver:   resolver,
		logger:     logger,
	}
}

// Plan discovers every translation unit reachable from the entry pattern of cfg and
// evaluates its staleness. Units appear in discovery order, entry units first.
// Each header is resolved at most once and each source becomes at most one unit.
// With opts.Force every unit is stale.
func (p *Planner) Plan(ctx context.Context, cfg *domain.Config, opts domain.PlanOptions) (*domain.Plan, error) {
	pattern := cfg.EntryPattern()
	entries, err := p.resolver.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve entry sources"), "pattern", cfg.Rel(pattern))
	}
	if len(entries) == 0 {
		return nil, zerr.With(domain.ErrEntryNotFound, "pattern", cfg.Rel(pattern))
	}

	eval, err := NewEvaluator(p.fs, cfg)
	if err != nil {
		return nil, err
	}

	w := &walk{
		planner: p,
		cfg:     cfg,
		mapper:  domain.NewPathMapper(cfg),
		eval:    eval,
		force:   opts.Force,
		plan:    domain.NewPlan(),
		units:   make(map[domain.InternedString]struct{}),
		headers: make(map[domain.InternedString]struct{}),
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "planning interrupted")
		}
		w.addUnit(ctx, cfg.Abs(entry), true)
	}

	for len(w.queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "planning interrupted")
		}
		header := w.queue[0]
		w.queue = w.queue[1:]

		for _, source := range w.resolve(header) {
			w.addUnit(ctx, source, false)
		}
	}

	return w.plan, nil
}

// walk holds the state of a single Plan call.
type walk struct {
	planner *Planner
	cfg     *domain.Config
	mapper  domain.PathMapper
	eval    *Evaluator
	force   bool
	plan    *domain.Plan

	units   map[domain.InternedString]struct{}
	headers map[domain.InternedString]struct{}
	queue   []string
}

func (w *walk) addUnit(ctx context.Context, source string, entry bool) {
	key := domain.NewInternedString(source)
	if _, ok := w.units[key]; ok {
		return
	}
	w.units[key] = struct{}{}

	object, err := w.mapper.SourceToObject(source)
	if err != nil {
		w.planner.logger.Warn(fmt.Sprintf("skipping %s: %v", w.cfg.Rel(source), err))
		return
	}

	unit := &domain.TranslationUnit{Source: source, Object: object, Entry: entry}
	unit.Dependencies = w.planner.discoverer.Discover(ctx, w.cfg, source)

	stale, reason := w.eval.IsStale(unit, unit.Dependencies)
	if w.force {
		stale, reason = true, "forced"
	}
	unit.Verdict = domain.VerdictFresh
	if stale {
		unit.Verdict = domain.VerdictStale
	}
	unit.Reason = reason
	w.plan.Units = append(w.plan.Units, unit)

	for _, header := range unit.Dependencies {
		w.recordHeader(header, source)

		hk := domain.NewInternedString(header)
		if _, ok := w.headers[hk]; ok {
			continue
		}
		w.headers[hk] = struct{}{}
		w.queue = append(w.queue, header)
	}
}

func (w *walk) recordHeader(header, declaredBy string) {
	dep, ok := w.plan.Headers[header]
	if !ok {
		dep = &domain.HeaderDependency{Path: header}
		if t, err := w.eval.HeaderTime(header); err == nil {
			dep.ModTime = t
		}
		w.plan.Headers[header] = dep
	}
	if !slices.Contains(dep.DeclaredBy, declaredBy) {
		dep.DeclaredBy = append(dep.DeclaredBy, declaredBy)
	}
}

// resolve returns the existing sources that implement header. An override mapping
// replaces the natural mapping entirely; headers outside the header directory have
// no natural source.
func (w *walk) resolve(header string) []string {
	if sources, ok := w.cfg.DependMapping[header]; ok {
		resolved := make([]string, 0, len(sources))
		for _, source := range sources {
			if !w.planner.fs.Exists(source) {
				w.planner.logger.Warn(fmt.Sprintf("mapped source %s of %s does not exist",
					w.cfg.Rel(source), w.cfg.Rel(header)))
				continue
			}
			resolved = append(resolved, source)
		}
		return resolved
	}

	if !w.mapper.UnderHeaderDir(header) {
		return nil
	}

	source, err := w.mapper.HeaderToSource(header)
	if err != nil {
		w.planner.logger.Warn(fmt.Sprintf("skipping %s: %v", w.cfg.Rel(header), err))
		return nil
	}
	if !w.planner.fs.Exists(source) {
		return nil
	}
	return []string{source}
}
