package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pylaunch/pkg/types"
)

func TestLoadConfigFirstRun(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "pylaunch")

	v, err := loadConfig(configDir)
	require.NoError(t, err)

	// First run materializes the directory and a commented default
	// file.
	assert.DirExists(t, configDir)
	assert.FileExists(t, filepath.Join(configDir, configFileExt))

	cfg := buildLauncherConfig(v)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadConfigRespectsExistingFile(t *testing.T) {
	configDir := t.TempDir()
	custom := `venv_dir: .env
index_url: https://pypi.org/simple
required_imports: [requests]
required_packages: [requests]
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt), []byte(custom), 0o644))

	v, err := loadConfig(configDir)
	require.NoError(t, err)

	cfg := buildLauncherConfig(v)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ".env", cfg.VenvDirName)
	assert.Equal(t, "https://pypi.org/simple", cfg.IndexURL)
	assert.Equal(t, []string{"requests"}, cfg.RequiredImports)
	// Unset keys fall back to defaults.
	assert.Equal(t, types.DefaultRequirementsFile, cfg.RequirementsFile)
}

func TestLoadConfigIdempotent(t *testing.T) {
	configDir := t.TempDir()
	path := filepath.Join(configDir, configFileExt)
	require.NoError(t, os.WriteFile(path, []byte("venv_dir: .custom\n"), 0o644))

	_, err := loadConfig(configDir)
	require.NoError(t, err)

	// An existing config.yaml is never overwritten.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "venv_dir: .custom\n", string(data))
}
