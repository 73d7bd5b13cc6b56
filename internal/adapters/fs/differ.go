package fs

import (
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Differ = (*Differ)(nil)

// Differ produces unified diffs of two files.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Unified returns a unified diff of the two files with three lines of context.
func (d *Differ) Unified(leftPath, rightPath string) (string, error) {
	left, err := os.ReadFile(leftPath) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDiffReadFailed.Error()), "path", leftPath)
	}

	right, err := os.ReadFile(rightPath) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDiffReadFailed.Error()), "path", rightPath)
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(left)),
		B:        difflib.SplitLines(string(right)),
		FromFile: leftPath,
		ToFile:   rightPath,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", zerr.Wrap(err, "failed to compute unified diff")
	}
	return text, nil
}
