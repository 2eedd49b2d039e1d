package modules

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/ports"
)

// NodeID is the unique identifier for the module locator adapter node.
const NodeID graft.ID = "adapter.module_locator"

func init() {
	graft.Register(graft.Node[ports.ModuleLocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleLocator, error) {
			return NewLocator(), nil
		},
	})
}
