package app

import "go.trai.ch/rebuild/internal/core/domain"

// OnWatchBuild registers fn to be called after every build of a watch session.
func (a *App) OnWatchBuild(fn func(*domain.BuildResult, error)) *App {
	a.watch.built = fn
	return a
}
