package repository

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/platdep/internal/adapters/logger"
	"go.trai.ch/platdep/internal/core/ports"
)

// NodeID is the unique identifier for the package repository Graft node.
const NodeID graft.ID = "adapter.repository"

func init() {
	graft.Register(graft.Node[ports.PackageRepository]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageRepository, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
