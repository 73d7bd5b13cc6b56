package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ontocheck/internal/adapters/config"
	"go.trai.ch/ontocheck/internal/core/domain"
	"go.trai.ch/ontocheck/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	return config.NewLoader(log)
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	loader := newLoader(t)

	cfg, err := loader.Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultRulesFilename, cfg.RulesFilename)
	assert.Equal(t, domain.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, domain.DefaultCacheSize, cfg.CacheSize)
	// Without a config file the walk has no anchor, so the base directory is
	// the filesystem root.
	assert.Equal(t, filepath.Dir(cfg.BaseDir), cfg.BaseDir)
}

func TestLoad_DiscoversConfigInAncestor(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "ontologies", "controlled-vocabularies")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	content := `
rules_filename: shapes.ttl
max_depth: 3
cache_size: 10
latest_dirname: current
engine:
  command: [python, -m, pyshacl]
  advanced: false
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, domain.ConfigFileName), []byte(content), 0o600))

	loader := newLoader(t)
	cfg, err := loader.Load(nested)
	require.NoError(t, err)

	assert.Equal(t, "shapes.ttl", cfg.RulesFilename)
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.Equal(t, 10, cfg.CacheSize)
	assert.Equal(t, "current", cfg.LatestDirname)
	assert.Equal(t, tmpDir, cfg.BaseDir)
	assert.Equal(t, []string{"python", "-m", "pyshacl"}, cfg.Engine.Command)
	assert.False(t, cfg.Engine.Advanced)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, domain.ConfigFileName), []byte("max_depth: 2\n"), 0o600))

	loader := newLoader(t)
	cfg, err := loader.Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.MaxDepth)
	assert.Equal(t, domain.DefaultRulesFilename, cfg.RulesFilename)
	assert.Equal(t, domain.DefaultCacheSize, cfg.CacheSize)
	assert.True(t, cfg.Engine.Advanced)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, domain.ConfigFileName), []byte("rules_filename: [unclosed"), 0o600))

	loader := newLoader(t)
	_, err := loader.Load(tmpDir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}
