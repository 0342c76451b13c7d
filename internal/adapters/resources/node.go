package resources

import (
	"context"

	"github.com/grindlemire/graft"
	fsadapter "go.trai.ch/rebuild/internal/adapters/fs"
	"go.trai.ch/rebuild/internal/core/ports"
)

// NodeID is the unique identifier for the resource syncer Graft node.
const NodeID graft.ID = "adapter.resources"

func init() {
	graft.Register(graft.Node[ports.ResourceSyncer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fsadapter.WalkerNodeID},
		Run: func(ctx context.Context) (ports.ResourceSyncer, error) {
			walker, err := graft.Dep[*fsadapter.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return New(walker), nil
		},
	})
}
