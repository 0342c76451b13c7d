package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/adapters/detector"
	"go.trai.ch/rebuild/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.linear"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return NewRenderer(nil, nil, detector.DetectEnvironment() == detector.ModeInteractive), nil
		},
	})
}
