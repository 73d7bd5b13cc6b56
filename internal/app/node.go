package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ontocheck/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/ontocheck/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/ontocheck/internal/adapters/rdf"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ontocheck/internal/adapters/shacl"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ontocheck/internal/core/ports"
	"go.trai.ch/ontocheck/internal/engine/drift"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the application with the pieces the entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			rdf.NodeID,
			shacl.NodeID,
			drift.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			resolver, err := graft.Dep[ports.RulesResolver](ctx)
			if err != nil {
				return nil, err
			}

			shapes, err := graft.Dep[ports.ShapesLoader](ctx)
			if err != nil {
				return nil, err
			}

			validator, err := graft.Dep[ports.Validator](ctx)
			if err != nil {
				return nil, err
			}

			checker, err := graft.Dep[*drift.Checker](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(resolver, shapes, validator, checker, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
