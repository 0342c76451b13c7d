// Package app implements the application layer for rebuild.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder runs one incremental build of a project.
type Builder interface {
	Build(ctx context.Context, cfg *domain.Config, opts domain.BuildOptions) (*domain.BuildResult, error)
}

// Planner evaluates the staleness of a project without compiling it.
type Planner interface {
	Plan(ctx context.Context, cfg *domain.Config, opts domain.PlanOptions) (*domain.Plan, error)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builder      Builder
	planner      Planner
	fs           ports.FileSystem
	resources    ports.ResourceSyncer
	renderer     ports.Renderer
	newWatcher   ports.WatcherFactory
	logger       ports.Logger
	watch        watchSettings
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	builder Builder,
	planner Planner,
	fsys ports.FileSystem,
	resources ports.ResourceSyncer,
	renderer ports.Renderer,
	newWatcher ports.WatcherFactory,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		builder:      builder,
		planner:      planner,
		fs:           fsys,
		resources:    resources,
		renderer:     renderer,
		newWatcher:   newWatcher,
		logger:       logger,
		watch:        defaultWatchSettings(),
	}
}

// Build loads the configuration at configPath and builds the project once.
// An empty configPath searches for the configuration upwards from the working
// directory. Resources are synchronized after a successful or up-to-date build.
//
// Compile and link failures were already rendered; the returned error then
// wraps domain.ErrBuildFailed.
func (a *App) Build(ctx context.Context, configPath string, opts domain.BuildOptions) error {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return err
	}
	_, err = a.build(ctx, cfg, opts)
	return err
}

func (a *App) build(ctx context.Context, cfg *domain.Config, opts domain.BuildOptions) (*domain.BuildResult, error) {
	result, err := a.builder.Build(ctx, cfg, opts)
	if err != nil {
		if errors.Is(err, domain.ErrCompileFailed) || errors.Is(err, domain.ErrLinkFailed) {
			return result, errors.Join(domain.ErrBuildFailed, err)
		}
		return result, err
	}

	if len(cfg.Resources) == 0 {
		return result, nil
	}

	copied, err := a.resources.Sync(ctx, cfg)
	for _, c := range copied {
		a.renderer.OnResourceCopied(cfg.Rel(c.Source), cfg.Rel(c.Destination))
	}
	result.Resources = copied
	return result, err
}

// Plan loads the configuration and renders the verdict of every unit without
// compiling anything.
func (a *App) Plan(ctx context.Context, configPath string) error {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return err
	}

	plan, err := a.planner.Plan(ctx, cfg, domain.PlanOptions{})
	if err != nil {
		return err
	}

	for _, u := range plan.Units {
		a.renderer.OnUnitPlanned(cfg.Rel(u.Source), u.Verdict, u.Reason)
	}
	return nil
}

// Clean removes the object directory and the executable if they exist.
func (a *App) Clean(_ context.Context, configPath string) error {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return err
	}

	var errs error

	remove := func(path string) {
		if !a.fs.Exists(path) {
			return
		}
		name := cfg.Rel(path)
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := a.fs.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(cfg.ObjectDir)
	remove(cfg.ExecutablePath())

	if errs != nil {
		return errors.Join(domain.ErrCleanFailed, errs)
	}
	return nil
}

// Config loads the configuration and returns it fully resolved.
func (a *App) Config(configPath string) (*domain.Config, error) {
	return a.loadConfig(configPath)
}

func (a *App) loadConfig(configPath string) (*domain.Config, error) {
	if configPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get current working directory")
		}
		configPath, err = a.configLoader.Discover(cwd)
		if err != nil {
			return nil, err
		}
	}

	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}
