package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/adapters/resources" //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/rebuild/internal/engine/builder"
	"go.trai.ch/rebuild/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			builder.NodeID,
			planner.NodeID,
			fs.NodeID,
			resources.NodeID,
			linear.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	b, err := graft.Dep[*builder.Builder](ctx)
	if err != nil {
		return nil, err
	}

	p, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	syncer, err := graft.Dep[ports.ResourceSyncer](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, b, p, fsys, syncer, renderer, newWatcher, log), nil
}
