package lockgen

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/logger"
	"go.trai.ch/relock/internal/adapters/manifest"
	"go.trai.ch/relock/internal/adapters/modules"
	"go.trai.ch/relock/internal/core/ports"
)

// NodeID is the unique identifier for the generator engine node.
const NodeID graft.ID = "engine.generator"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{manifest.NodeID, modules.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Generator, error) {
			manifests, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.ModuleLocator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(manifests, locator, log), nil
		},
	})
}
