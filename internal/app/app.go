// Package app implements the application layer for ontocheck.
package app

import (
	"context"
	"fmt"
	"runtime"

	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports"
	"go.trai.ch/ontocheck/internal/engine/drift"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	resolver  ports.RulesResolver
	shapes    ports.ShapesLoader
	validator ports.Validator
	checker   *drift.Checker
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	resolver ports.RulesResolver,
	shapes ports.ShapesLoader,
	validator ports.Validator,
	checker *drift.Checker,
	logger ports.Logger,
) *App {
	return &App{
		resolver:  resolver,
		shapes:    shapes,
		validator: validator,
		checker:   checker,
		logger:    logger,
	}
}

// ValidateFiles runs the SHACL check over every file. Files are independent,
// so the batch runs concurrently; the shapes cache is shared and safe.
func (a *App) ValidateFiles(ctx context.Context, files []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, file := range files {
		g.Go(func() error {
			return a.validateFile(ctx, file)
		})
	}

	return g.Wait()
}

func (a *App) validateFile(ctx context.Context, file string) error {
	a.logger.Info("validating " + file)

	rulesPath, err := a.resolver.Resolve(file)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve rules file")
	}

	var shapes *domain.ShapesGraph
	if rulesPath != "" {
		shapes, err = a.shapes.Load(rulesPath)
		if err != nil {
			a.logger.Error(err)
			return err
		}
	}

	result, err := a.validator.Validate(ctx, file, shapes)
	if err != nil {
		wrapped := zerr.With(zerr.With(zerr.Wrap(err, "error validating file"), "file", file), "rules", rulesPath)
		a.logger.Error(wrapped)
		return wrapped
	}

	a.logger.Info(fmt.Sprintf("validation result for %s: conforms=%t", file, result.Conforms))
	if !result.Conforms {
		if result.Report != "" {
			a.logger.Warn(result.Report)
		}
		return zerr.With(zerr.With(domain.ErrValidationFailed, "file", file), "rules", rulesPath)
	}

	return nil
}

// CheckLatest runs the drift check over every ontology root, accumulating
// findings into the caller-owned report. A non-empty report yields
// domain.ErrDriftDetected.
func (a *App) CheckLatest(_ context.Context, dirs []string, report *domain.Report) error {
	for _, dir := range dirs {
		a.checker.Check(dir, report)
	}

	if !report.Empty() {
		return zerr.With(domain.ErrDriftDetected, "findings", len(report.Entries()))
	}
	return nil
}
