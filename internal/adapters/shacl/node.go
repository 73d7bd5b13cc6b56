package shacl

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ontocheck/internal/adapters/config"
	"go.trai.ch/ontocheck/internal/adapters/logger"
	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports"
)

// NodeID is the unique identifier for the validation engine Graft node.
const NodeID graft.ID = "adapter.shacl.engine"

func init() {
	graft.Register(graft.Node[ports.Validator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Validator, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(cfg, log), nil
		},
	})
}
