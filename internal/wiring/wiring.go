// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ontocheck/internal/adapters/config"
	_ "go.trai.ch/ontocheck/internal/adapters/fs"
	_ "go.trai.ch/ontocheck/internal/adapters/logger"
	_ "go.trai.ch/ontocheck/internal/adapters/rdf"
	_ "go.trai.ch/ontocheck/internal/adapters/shacl"
	// Register app and engine nodes.
	_ "go.trai.ch/ontocheck/internal/app"
	_ "go.trai.ch/ontocheck/internal/engine/drift"
)
