package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/adapters/detector"
)

// NodeID is the unique identifier for the process runner Graft node.
const NodeID graft.ID = "adapter.shell"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (*Runner, error) {
			return NewRunner(detector.DetectEnvironment() == detector.ModeInteractive), nil
		},
	})
}
