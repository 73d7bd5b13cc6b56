package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ontocheck/internal/adapters/config"
	"go.trai.ch/ontocheck/internal/adapters/logger"
	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports"
)

const (
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
	DifferNodeID   graft.ID = "adapter.fs.differ"
)

func init() {
	// Resolver Node
	graft.Register(graft.Node[ports.RulesResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RulesResolver, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRulesResolver(cfg, log), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	// Differ Node
	graft.Register(graft.Node[ports.Differ]{
		ID:        DifferNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Differ, error) {
			return NewDiffer(), nil
		},
	})
}
