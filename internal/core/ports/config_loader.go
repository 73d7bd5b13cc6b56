package ports

import "go.trai.ch/ontocheck/internal/core/domain"

// ConfigLoader defines the interface for loading the check configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers and reads the configuration starting from the given
	// working directory. A missing config file is not an error: defaults
	// apply and the base directory falls back to the filesystem root.
	Load(cwd string) (*domain.Config, error)
}
