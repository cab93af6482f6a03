package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/platdep/internal/adapters/telemetry"
	"go.trai.ch/platdep/internal/core/ports"
)

// NodeID is the unique identifier for the lifecycle dispatcher Graft node.
const NodeID graft.ID = "adapter.host"

func init() {
	graft.Register(graft.Node[ports.Hooks]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.TracerNodeID},
		Run: func(ctx context.Context) (ports.Hooks, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewDispatcher(tracer), nil
		},
	})
}
