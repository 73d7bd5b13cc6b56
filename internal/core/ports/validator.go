package ports

import (
	"context"

	"go.trai.ch/ontocheck/internal/core/domain"
)

// Validator defines the interface to the external SHACL validation engine.
//
//go:generate mockgen -source=validator.go -destination=mocks/mock_validator.go -package=mocks
type Validator interface {
	// Validate checks the data file against the given shapes graph. A nil
	// shapes graph runs the engine with its default behavior.
	// A non-conforming file is not an error: it is reported through the result.
	Validate(ctx context.Context, dataFile string, shapes *domain.ShapesGraph) (*domain.ValidationResult, error)
}
