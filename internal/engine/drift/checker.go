// Package drift implements the latest-snapshot drift check.
package drift

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports"
)

// Checker verifies that the canonical "latest" directory mirrors the
// highest-versioned sibling directory. All findings are accumulated into the
// caller-owned report; nothing is raised for ordinary discrepancies.
type Checker struct {
	cfg    *domain.Config
	hasher ports.Hasher
	differ ports.Differ
	logger ports.Logger
}

// NewChecker creates a new Checker.
func NewChecker(cfg *domain.Config, hasher ports.Hasher, differ ports.Differ, logger ports.Logger) *Checker {
	return &Checker{
		cfg:    cfg,
		hasher: hasher,
		differ: differ,
		logger: logger,
	}
}

// Check compares <ontologyPath>/latest against the newest versioned sibling
// and records every discrepancy in the report.
func (c *Checker) Check(ontologyPath string, report *domain.Report) {
	entries, err := os.ReadDir(ontologyPath)
	if err != nil {
		report.Add("ERROR: can't read %s: %v", ontologyPath, err)
		return
	}

	var folders []string
	for _, entry := range entries {
		if entry.IsDir() && entry.Name() != c.cfg.LatestDirname {
			folders = append(folders, entry.Name())
		}
	}

	if len(folders) == 0 {
		report.Add("No versioned directories found for %s", ontologyPath)
		return
	}

	lastVersion := c.selectLatest(folders)
	if lastVersion == "" {
		report.Add("No versioned directories found for %s", ontologyPath)
		return
	}

	c.logger.Info("latest version of " + ontologyPath + ": " + lastVersion)

	leftDir := filepath.Join(ontologyPath, c.cfg.LatestDirname)
	rightDir := filepath.Join(ontologyPath, lastVersion)

	c.compareDirs(leftDir, c.cfg.LatestDirname, rightDir, lastVersion, report)
}

// selectLatest picks the highest name by semantic version precedence.
// Names that do not parse as versions are skipped with a warning so a stray
// directory cannot mask real drift. Returns "" when nothing parses.
func (c *Checker) selectLatest(folders []string) string {
	var lastName string
	var lastVersion *semver.Version

	for _, name := range folders {
		v, err := semver.NewVersion(name)
		if err != nil {
			c.logger.Warn("skipping non-version directory: " + name)
			continue
		}
		if lastVersion == nil || v.GreaterThan(lastVersion) {
			lastVersion = v
			lastName = name
		}
	}

	return lastName
}

// compareDirs compares two directories entry by entry. Labels are the paths
// relative to the ontology root, used for the "Only in" report entries.
func (c *Checker) compareDirs(leftDir, leftLabel, rightDir, rightLabel string, report *domain.Report) {
	left, err := listNames(leftDir)
	if err != nil {
		report.Add("ERROR: can't find %s", leftDir)
		return
	}

	right, err := listNames(rightDir)
	if err != nil {
		// The version directory vanished between listing and comparison.
		report.Add("ERROR: can't find %s", rightDir)
		return
	}

	if only := sortedDiff(left, right); len(only) > 0 {
		report.Add("Only in %s/: %s", leftLabel, strings.Join(only, ", "))
	}
	if only := sortedDiff(right, left); len(only) > 0 {
		report.Add("Only in %s/: %s", rightLabel, strings.Join(only, ", "))
	}

	c.compareCommon(leftDir, leftLabel, rightDir, rightLabel, sortedIntersection(left, right), report)
}

// compareCommon byte-compares every filename present in both directories,
// descending into subdirectories present on both sides.
func (c *Checker) compareCommon(leftDir, leftLabel, rightDir, rightLabel string, common []string, report *domain.Report) {
	var unreadable []string

	for _, name := range common {
		leftPath := filepath.Join(leftDir, name)
		rightPath := filepath.Join(rightDir, name)

		leftInfo, err := os.Stat(leftPath)
		if err != nil {
			unreadable = append(unreadable, name)
			continue
		}
		rightInfo, err := os.Stat(rightPath)
		if err != nil {
			unreadable = append(unreadable, name)
			continue
		}

		if leftInfo.IsDir() || rightInfo.IsDir() {
			if leftInfo.IsDir() && rightInfo.IsDir() {
				c.compareDirs(leftPath, filepath.Join(leftLabel, name), rightPath, filepath.Join(rightLabel, name), report)
				continue
			}
			// A directory on one side, a file on the other.
			report.Add("ERROR: files are different: %s %s", leftPath, rightPath)
			continue
		}

		equal, err := c.sameContent(leftInfo, rightInfo, leftPath, rightPath)
		if err != nil {
			unreadable = append(unreadable, name)
			continue
		}
		if equal {
			continue
		}

		diff, err := c.differ.Unified(leftPath, rightPath)
		if err != nil {
			unreadable = append(unreadable, name)
			continue
		}
		if diff != "" {
			report.Add("ERROR: files are different: %s %s", leftPath, rightPath)
			c.logger.Warn(diff)
		}
	}

	if len(unreadable) > 0 {
		report.Add("ERROR: couldn't check these files: %s (permission issues?)", strings.Join(unreadable, ", "))
	}
}

// sameContent reports whether two regular files have identical bytes, using
// size and content hash rather than a full byte-by-byte read.
func (c *Checker) sameContent(leftInfo, rightInfo os.FileInfo, leftPath, rightPath string) (bool, error) {
	if leftInfo.Size() != rightInfo.Size() {
		return false, nil
	}

	leftHash, err := c.hasher.ComputeFileHash(leftPath)
	if err != nil {
		return false, err
	}
	rightHash, err := c.hasher.ComputeFileHash(rightPath)
	if err != nil {
		return false, err
	}

	return leftHash == rightHash, nil
}

func listNames(dir string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		names[entry.Name()] = struct{}{}
	}
	return names, nil
}

func sortedDiff(a, b map[string]struct{}) []string {
	var out []string
	for name := range a {
		if _, ok := b[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func sortedIntersection(a, b map[string]struct{}) []string {
	var out []string
	for name := range a {
		if _, ok := b[name]; ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
