package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/adapters/compdb"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/compiler" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/linear"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/rebuild/internal/engine/planner"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			planner.NodeID,
			compiler.NodeID,
			fs.NodeID,
			compdb.NodeID,
			linear.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			p, err := graft.Dep[*planner.Planner](ctx)
			if err != nil {
				return nil, err
			}

			cc, err := graft.Dep[ports.CompilerClient](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			db, err := graft.Dep[ports.CompileDatabase](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(p, cc, fsys, db, renderer, log), nil
		},
	})
}
