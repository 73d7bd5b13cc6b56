// Package rdf loads SHACL constraint documents as parsed Turtle graphs.
package rdf

import (
	"os"
	"path/filepath"
	"time"

	"github.com/deiu/rdf2go"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ShapesLoader = (*Loader)(nil)

// Loader implements ports.ShapesLoader with a process-wide LRU cache keyed by
// absolute rules file path. Entries are immutable once loaded.
type Loader struct {
	logger ports.Logger
	cache  *lru.Cache[string, *domain.ShapesGraph]
}

// NewLoader creates a new Loader with a cache bounded by cfg.CacheSize.
func NewLoader(cfg *domain.Config, logger ports.Logger) (*Loader, error) {
	cache, err := lru.New[string, *domain.ShapesGraph](cfg.CacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create shapes cache")
	}

	return &Loader{
		logger: logger,
		cache:  cache,
	}, nil
}

// Load parses the Turtle document at absPath, consulting the cache first.
func (l *Loader) Load(absPath string) (*domain.ShapesGraph, error) {
	if !filepath.IsAbs(absPath) {
		return nil, zerr.With(domain.ErrNotAbsolutePath, "path", absPath)
	}

	if shapes, ok := l.cache.Get(absPath); ok {
		return shapes, nil
	}

	l.logger.Info("loading shapes graph from " + absPath)

	f, err := os.Open(absPath) //nolint:gosec // Absolute path resolved by the rules resolver
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrShapesReadFailed.Error()), "path", absPath)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	graph := rdf2go.NewGraph("file://" + absPath)
	if err := graph.Parse(f, "text/turtle"); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrShapesParseFailed.Error()), "path", absPath)
	}

	shapes := &domain.ShapesGraph{
		Path:     absPath,
		Triples:  graph.Len(),
		LoadedAt: time.Now(),
	}
	l.cache.Add(absPath, shapes)

	return shapes, nil
}

// CacheLen returns the number of cached shapes graphs. Used for testing.
func (l *Loader) CacheLen() int {
	return l.cache.Len()
}
