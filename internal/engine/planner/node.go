package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/adapters/compiler" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			compiler.NodeID,
			fs.NodeID,
			fs.ResolverNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			cc, err := graft.Dep[ports.CompilerClient](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.InputResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(cc, fsys, resolver, log), nil
		},
	})
}
