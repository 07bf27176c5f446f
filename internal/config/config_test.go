package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.8, cfg.Consensus.SimilarityThreshold)
	assert.Equal(t, 1.0, cfg.Scorer.Weights.Structural)
	assert.Equal(t, 1.0, cfg.Scorer.Weights.Completeness)
	assert.Equal(t, 1.0, cfg.Scorer.Weights.Category)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "consensus.db", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
consensus:
  similarity_threshold: 0.9
store:
  driver: postgres
  database_url: postgres://localhost/consensus
log:
  level: debug
  format: console
`), 0o644))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.9, cfg.Consensus.SimilarityThreshold)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/consensus", cfg.Store.DatabaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Unset keys keep their defaults.
	assert.Equal(t, 1.0, cfg.Scorer.Weights.Structural)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONSENSUS_LOG_LEVEL", "warn")
	t.Setenv("CONSENSUS_STORE_DRIVER", "postgres")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "postgres", cfg.Store.Driver)
}

func TestInitLogger_BadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	require.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "console"}))
}
