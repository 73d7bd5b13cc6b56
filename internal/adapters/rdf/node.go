package rdf

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ontocheck/internal/adapters/config"
	"go.trai.ch/ontocheck/internal/adapters/logger"
	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports"
)

// NodeID is the unique identifier for the shapes loader Graft node.
const NodeID graft.ID = "adapter.rdf.loader"

func init() {
	graft.Register(graft.Node[ports.ShapesLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ShapesLoader, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(cfg, log)
		},
	})
}
