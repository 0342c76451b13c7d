package compdb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/core/ports"
)

// NodeID is the unique identifier for the compilation database Graft node.
const NodeID graft.ID = "adapter.compdb"

func init() {
	graft.Register(graft.Node[ports.CompileDatabase]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CompileDatabase, error) {
			return New(), nil
		},
	})
}
