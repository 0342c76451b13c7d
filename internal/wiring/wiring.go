// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rebuild/internal/adapters/compdb"
	_ "go.trai.ch/rebuild/internal/adapters/compiler"
	_ "go.trai.ch/rebuild/internal/adapters/config"
	_ "go.trai.ch/rebuild/internal/adapters/fs"
	_ "go.trai.ch/rebuild/internal/adapters/linear"
	_ "go.trai.ch/rebuild/internal/adapters/logger"
	_ "go.trai.ch/rebuild/internal/adapters/resources"
	_ "go.trai.ch/rebuild/internal/adapters/shell"
	_ "go.trai.ch/rebuild/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/rebuild/internal/app"
	_ "go.trai.ch/rebuild/internal/engine/builder"
	_ "go.trai.ch/rebuild/internal/engine/planner"
)
