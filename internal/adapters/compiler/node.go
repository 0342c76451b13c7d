package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/adapters/shell"
	"go.trai.ch/rebuild/internal/core/ports"
)

// NodeID is the unique identifier for the compiler client Graft node.
const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[ports.CompilerClient]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.CompilerClient, error) {
			runner, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner), nil
		},
	})
}
