package drift

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ontocheck/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ontocheck/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ontocheck/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports"
)

// NodeID is the unique identifier for the drift checker Graft node.
const NodeID graft.ID = "engine.drift"

func init() {
	graft.Register(graft.Node[*Checker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.HasherNodeID,
			fs.DifferNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Checker, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			differ, err := graft.Dep[ports.Differ](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewChecker(cfg, hasher, differ, log), nil
		},
	})
}
