// Package shacl invokes the external SHACL validation engine.
package shacl

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Validator = (*Engine)(nil)

// Engine implements ports.Validator by running the configured engine command
// (pyshacl by default) as a subprocess. The engine's exit code carries the
// verdict: 0 conforms, 1 does not conform, anything else is an engine failure.
type Engine struct {
	cfg    *domain.Config
	logger ports.Logger
}

// NewEngine creates a new Engine.
func NewEngine(cfg *domain.Config, logger ports.Logger) *Engine {
	return &Engine{cfg: cfg, logger: logger}
}

// Validate runs the engine against the data file. A nil shapes graph omits
// the shapes argument so the engine falls back to its default behavior.
func (e *Engine) Validate(ctx context.Context, dataFile string, shapes *domain.ShapesGraph) (*domain.ValidationResult, error) {
	if len(e.cfg.Engine.Command) == 0 {
		return nil, domain.ErrEngineNotConfigured
	}

	argv := slices.Clone(e.cfg.Engine.Command)
	if e.cfg.Engine.Advanced {
		// SHACL-AF advanced mode: https://www.w3.org/TR/shacl-af/
		argv = append(argv, "--advanced")
	}
	argv = append(argv, "-f", "human")
	if shapes != nil {
		argv = append(argv, "-s", shapes.Path)
	}
	argv = append(argv, dataFile)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // Engine command comes from config
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return &domain.ValidationResult{Conforms: true, Report: stdout.String()}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return &domain.ValidationResult{Conforms: false, Report: stdout.String()}, nil
	}

	return nil, zerr.With(
		zerr.With(
			zerr.Wrap(err, domain.ErrEngineFailed.Error()),
			"command", strings.Join(argv, " "),
		),
		"stderr", strings.TrimSpace(stderr.String()),
	)
}
