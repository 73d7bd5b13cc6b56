// Package domain contains the core types for ontology repository checks.
package domain

// Default values applied when .ontocheck.yaml is absent or partial.
const (
	DefaultRulesFilename = "rules.shacl"
	DefaultMaxDepth      = 5
	DefaultCacheSize     = 100
	DefaultLatestDirname = "latest"
)

// ConfigFileName is the name of the configuration file discovered by walking
// up from the working directory.
const ConfigFileName = ".ontocheck.yaml"

// EngineConfig describes how the external SHACL validation engine is invoked.
type EngineConfig struct {
	// Command is the argv prefix of the engine, e.g. ["pyshacl"].
	Command []string
	// Advanced enables SHACL-AF advanced mode validation.
	Advanced bool
}

// Config holds the resolved configuration for both checks.
type Config struct {
	// RulesFilename is the name of the constraint document searched for in
	// ancestor directories of a data file.
	RulesFilename string
	// MaxDepth bounds how many ancestor levels are searched.
	MaxDepth int
	// CacheSize bounds the shapes graph LRU cache.
	CacheSize int
	// LatestDirname is the name of the canonical snapshot directory.
	LatestDirname string
	// BaseDir is where the ancestor walk stops. It is the directory holding
	// the config file, or the filesystem root when no config file exists.
	BaseDir string
	// Engine configures the external validation engine.
	Engine EngineConfig
}

// DefaultConfig returns a Config with all defaults applied and the given base directory.
func DefaultConfig(baseDir string) *Config {
	return &Config{
		RulesFilename: DefaultRulesFilename,
		MaxDepth:      DefaultMaxDepth,
		CacheSize:     DefaultCacheSize,
		LatestDirname: DefaultLatestDirname,
		BaseDir:       baseDir,
		Engine: EngineConfig{
			Command:  []string{"pyshacl"},
			Advanced: true,
		},
	}
}
