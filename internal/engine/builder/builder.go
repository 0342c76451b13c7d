// Package builder compiles the stale units of a plan and decides whether the
// executable has to be relinked.
package builder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Planner produces the evaluated dependency graph of a project.
type Planner interface {
	Plan(ctx context.Context, cfg *domain.Config, opts domain.PlanOptions) (*domain.Plan, error)
}

// Builder drives one build: plan, compile, link.
type Builder struct {
	planner  Planner
	compiler ports.CompilerClient
	fs       ports.FileSystem
	compdb   ports.CompileDatabase
	renderer ports.Renderer
	logger   ports.Logger
}

// New creates a Builder with the given dependencies.
func New(
	planner Planner,
	compiler ports.CompilerClient,
	fsys ports.FileSystem,
	compdb ports.CompileDatabase,
	renderer ports.Renderer,
	logger ports.Logger,
) *Builder {
	return &Builder{
		planner:  planner,
		compiler: compiler,
		fs:       fsys,
		compdb:   compdb,
		renderer: renderer,
		logger:   logger,
	}
}

// Build plans the project described by cfg, recompiles every stale unit and
// relinks the executable when needed.
//
// The first failed compile stops further compiles and suppresses the link.
// Objects produced before the failure are kept.
func (b *Builder) Build(ctx context.Context, cfg *domain.Config, opts domain.BuildOptions) (*domain.BuildResult, error) {
	plan, err := b.planner.Plan(ctx, cfg, domain.PlanOptions{Force: opts.Force})
	if err != nil {
		return nil, err
	}

	if cfg.CompileDatabase {
		b.writeCompileDatabase(cfg, plan)
	}

	result := &domain.BuildResult{}
	for _, u := range plan.Units {
		if !u.IsStale() {
			result.Skipped = append(result.Skipped, u.Source)
			b.renderer.OnUnitSkipped(cfg.Rel(u.Source))
		}
	}

	jobs := cfg.Jobs
	if opts.Jobs > 0 {
		jobs = opts.Jobs
	}

	if err := b.compileAll(ctx, cfg, plan.Stale(), jobs, result); err != nil {
		b.renderer.OnBuildComplete(result, err)
		return result, err
	}

	if err := ctx.Err(); err != nil {
		err = zerr.Wrap(err, "build interrupted")
		b.renderer.OnBuildComplete(result, err)
		return result, err
	}

	if !cfg.SkipLink {
		if reason := b.linkReason(cfg, plan, len(result.Compiled) > 0); reason != "" {
			if err := b.link(ctx, cfg, plan.Objects()); err != nil {
				b.renderer.OnBuildComplete(result, err)
				return result, err
			}
			result.Linked = true
			result.LinkReason = reason
		}
	}

	result.UpToDate = len(result.Compiled) == 0 && !result.Linked
	b.renderer.OnBuildComplete(result, nil)
	return result, nil
}

// compileAll compiles units in emission order with at most jobs compiles in flight.
func (b *Builder) compileAll(
	ctx context.Context,
	cfg *domain.Config,
	units []*domain.TranslationUnit,
	jobs int,
	result *domain.BuildResult,
) error {
	if len(units) == 0 {
		return nil
	}

	var (
		mu       sync.Mutex
		compiled = make([]bool, len(units))
		warned   = make([]bool, len(units))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	launched := 0
	for i, u := range units {
		// A failed compile cancels gctx; stop launching new ones.
		if gctx.Err() != nil {
			break
		}
		launched++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// In-flight compiles run to completion even after a failure.
			res, err := b.compileUnit(ctx, cfg, u)
			if err != nil {
				return err
			}
			mu.Lock()
			compiled[i] = true
			warned[i] = res.HadDiagnostics
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()

	for i, u := range units {
		if compiled[i] {
			result.Compiled = append(result.Compiled, u.Source)
		}
		if warned[i] {
			result.Warnings = append(result.Warnings, u.Source)
		}
	}

	if err != nil {
		if ctx.Err() != nil && !errors.Is(err, domain.ErrCompileFailed) {
			return zerr.Wrap(ctx.Err(), "build interrupted")
		}
		return err
	}
	// Units never launched are still stale.
	if launched < len(units) && ctx.Err() != nil {
		return zerr.Wrap(ctx.Err(), "build interrupted")
	}
	return nil
}

func (b *Builder) compileUnit(ctx context.Context, cfg *domain.Config, u *domain.TranslationUnit) (domain.CompileResult, error) {
	name := cfg.Rel(u.Source)
	b.renderer.OnCompileStart(name, b.compiler.CompileCommand(cfg, u).Arguments)

	res, err := b.compiler.Compile(ctx, cfg, u)
	b.renderer.OnCompileComplete(name, res.Output, err)
	if err != nil {
		return res, errors.Join(domain.ErrCompileFailed, zerr.With(err, "source", name))
	}
	return res, nil
}

// linkReason returns why the executable must be relinked, or "" if it is up to date.
func (b *Builder) linkReason(cfg *domain.Config, plan *domain.Plan, rebuilt bool) string {
	if rebuilt {
		return "objects rebuilt"
	}

	exe := cfg.ExecutablePath()
	exeTime, err := b.fs.ModTime(exe)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "executable missing"
		}
		return fmt.Sprintf("cannot stat executable: %v", err)
	}

	for _, obj := range plan.Objects() {
		objTime, err := b.fs.ModTime(obj)
		if err != nil {
			return fmt.Sprintf("cannot stat %s", cfg.Rel(obj))
		}
		if domain.IsNewer(objTime, exeTime) {
			return cfg.Rel(obj) + " is newer than the executable"
		}
	}
	return ""
}

func (b *Builder) link(ctx context.Context, cfg *domain.Config, objects []string) error {
	exe := cfg.ExecutablePath()
	name := cfg.Rel(exe)

	b.renderer.OnLinkStart(name, b.compiler.LinkCommand(cfg, objects, exe))
	res, err := b.compiler.Link(ctx, cfg, objects, exe)
	b.renderer.OnLinkComplete(name, res.Output, err)
	if err != nil {
		return errors.Join(domain.ErrLinkFailed, zerr.With(err, "executable", name))
	}
	return nil
}

func (b *Builder) writeCompileDatabase(cfg *domain.Config, plan *domain.Plan) {
	commands := make([]domain.CompileCommand, 0, len(plan.Units))
	for _, u := range plan.Units {
		commands = append(commands, b.compiler.CompileCommand(cfg, u))
	}

	if _, err := b.compdb.Update(cfg, commands); err != nil {
		b.logger.Warn(err.Error())
	}
}
