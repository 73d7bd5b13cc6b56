// Package fs provides file system adapters for rules discovery and file comparison.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RulesResolver = (*RulesResolver)(nil)

// RulesResolver locates the constraint document governing a data file by
// walking ancestor directories.
type RulesResolver struct {
	cfg    *domain.Config
	logger ports.Logger
}

// NewRulesResolver creates a new RulesResolver.
func NewRulesResolver(cfg *domain.Config, logger ports.Logger) *RulesResolver {
	return &RulesResolver{cfg: cfg, logger: logger}
}

// Resolve walks up from the data file's directory looking for the rules file.
// The walk is bounded to MaxDepth levels and stops at the base directory.
// Returns "" when no rules file is found.
func (r *RulesResolver) Resolve(dataFile string) (string, error) {
	abs, err := filepath.Abs(dataFile)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve data file path"), "path", dataFile)
	}

	dir := filepath.Dir(abs)
	for range r.cfg.MaxDepth {
		candidate := filepath.Join(dir, r.cfg.RulesFilename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			r.logger.Info("found rules file: " + candidate)
			return candidate, nil
		}

		if dir == r.cfg.BaseDir {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return "", nil
}
