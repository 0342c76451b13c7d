package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the filesystem Graft node.
	NodeID graft.ID = "adapter.fs"
	// ResolverNodeID is the unique identifier for the glob resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
)

func init() {
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewOSFS(), nil
		},
	})

	graft.Register(graft.Node[ports.InputResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InputResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})
}
