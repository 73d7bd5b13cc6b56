// Package config provides the configuration loader for ontocheck.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers .ontocheck.yaml by walking up from cwd and returns the
// resolved configuration. When no config file exists, defaults apply and the
// base directory is the filesystem root.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	configPath := l.findConfiguration(abs)
	if configPath == "" {
		return domain.DefaultConfig(rootOf(abs)), nil
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // Path discovered under the caller's tree
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file ontocheckFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	cfg := domain.DefaultConfig(filepath.Dir(configPath))
	applyFile(cfg, &file)
	return cfg, nil
}

// findConfiguration walks up from dir looking for the config file.
// Returns "" when the filesystem root is reached without a hit.
func (l *Loader) findConfiguration(dir string) string {
	currentDir := dir
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return ""
		}
		currentDir = parentDir
	}
}

func applyFile(cfg *domain.Config, file *ontocheckFile) {
	if file.RulesFilename != "" {
		cfg.RulesFilename = file.RulesFilename
	}
	if file.MaxDepth > 0 {
		cfg.MaxDepth = file.MaxDepth
	}
	if file.CacheSize > 0 {
		cfg.CacheSize = file.CacheSize
	}
	if file.LatestDirname != "" {
		cfg.LatestDirname = file.LatestDirname
	}
	if len(file.Engine.Command) > 0 {
		cfg.Engine.Command = file.Engine.Command
	}
	if file.Engine.Advanced != nil {
		cfg.Engine.Advanced = *file.Engine.Advanced
	}
}

func rootOf(dir string) string {
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
