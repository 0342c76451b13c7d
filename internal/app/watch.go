package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/rebuild/internal/adapters/watcher" //nolint:depguard // Debouncer is shared with the watcher adapter
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

type watchSettings struct {
	debounce time.Duration
	// built is called after every build of a watch session. Used by tests.
	built func(*domain.BuildResult, error)
}

func defaultWatchSettings() watchSettings {
	return watchSettings{debounce: watcher.DefaultDebounceWindow}
}

// WithDebounceWindow sets how long Watch waits for a burst of changes to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.watch.debounce = d
	return a
}

// Watch builds the project, then rebuilds it whenever a source or header file
// below the source, header or include directories changes. Builds never overlap;
// changes arriving during a build trigger one more build after it.
//
// A failing build is reported and watching continues. Watch returns nil once ctx
// is cancelled.
func (a *App) Watch(ctx context.Context, configPath string, opts domain.BuildOptions) error {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return err
	}

	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Stop()
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(ctx, watchRoots(cfg)); err != nil {
		return zerr.Wrap(err, "failed to start watching")
	}

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.watch.debounce, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range w.Events() {
			if isWatchedFile(cfg, event.Path) {
				debouncer.Add(event.Path)
			}
		}
	}()

	a.rebuild(ctx, cfg, opts)

	// Force applies to the first build only.
	opts.Force = false
	for {
		a.logger.Info("watching for changes...")
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			a.rebuild(ctx, cfg, opts)
		}
	}
}

func (a *App) rebuild(ctx context.Context, cfg *domain.Config, opts domain.BuildOptions) {
	result, err := a.build(ctx, cfg, opts)
	if a.watch.built != nil {
		a.watch.built(result, err)
	}
	if err == nil || ctx.Err() != nil || errors.Is(err, domain.ErrBuildFailed) {
		return
	}
	a.logger.Error(err)
}

// watchRoots returns the directories whose files feed the build.
func watchRoots(cfg *domain.Config) []string {
	roots := []string{cfg.SourceDir}
	for _, dir := range cfg.SearchRoots() {
		if !containsDir(roots, dir) {
			roots = append(roots, dir)
		}
	}
	return roots
}

// containsDir reports whether dir is one of roots or lies below one of them.
func containsDir(roots []string, dir string) bool {
	for _, root := range roots {
		if root == dir || domain.IsUnder(dir, root) {
			return true
		}
	}
	return false
}

func isWatchedFile(cfg *domain.Config, path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return ext != "" && (ext == strings.TrimPrefix(cfg.SourceExt, ".") || ext == strings.TrimPrefix(cfg.HeaderExt, "."))
}
