package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/config"
	"go.trai.ch/relock/internal/adapters/logger"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	loader := config.NewLoader(logger.New())

	cfg, err := loader.Load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.Packages)
	assert.Zero(t, cfg.Parallelism)
	assert.True(t, cfg.Dev)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	content := `version: "1"
packages:
  - services/api
  - services/worker
parallelism: 4
dev: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte(content), 0o600))

	loader := config.NewLoader(logger.New())
	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"services/api", "services/worker"}, cfg.Packages)
	assert.Equal(t, 4, cfg.Parallelism)
	assert.False(t, cfg.Dev)
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte("packages: {"), 0o600))

	loader := config.NewLoader(logger.New())
	_, err := loader.Load(dir)
	assert.Error(t, err)
}
