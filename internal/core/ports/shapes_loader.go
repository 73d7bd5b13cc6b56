package ports

import "go.trai.ch/ontocheck/internal/core/domain"

// ShapesLoader defines the interface for loading SHACL constraint graphs.
//
//go:generate mockgen -source=shapes_loader.go -destination=mocks/mock_shapes_loader.go -package=mocks
type ShapesLoader interface {
	// Load parses the Turtle document at the given absolute path. Loaded
	// graphs are cached, so repeated loads of the same path are cheap.
	Load(absPath string) (*domain.ShapesGraph, error)
}
