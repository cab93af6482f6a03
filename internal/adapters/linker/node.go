package linker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/platdep/internal/core/ports"
)

// NodeID is the unique identifier for the requirement linker Graft node.
const NodeID graft.ID = "adapter.linker"

func init() {
	graft.Register(graft.Node[ports.RequirementLinker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RequirementLinker, error) {
			return New(), nil
		},
	})
}
