package platform

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/platdep/internal/adapters/logger"
	"go.trai.ch/platdep/internal/core/ports"
)

// NodeID is the unique identifier for the platform detector Graft node.
const NodeID graft.ID = "adapter.platform"

func init() {
	graft.Register(graft.Node[ports.PlatformDetector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PlatformDetector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
