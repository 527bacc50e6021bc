package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir(t *testing.T) {
	dir := DefaultConfigDir()
	assert.NotEmpty(t, dir)
	assert.Contains(t, dir, ".webstart")
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "config.yaml")
}

func TestDefaultHistoryPath(t *testing.T) {
	path := DefaultHistoryPath()
	assert.Contains(t, path, "history.db")
}

func TestLoadConfig_NotFound(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing", "config.yaml"))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://api.github.com", cfg.Registry.APIURL)
	assert.Equal(t, "webstart-templates", cfg.Registry.Owner)
	assert.Equal(t, "project-template", cfg.Registry.Topic)
	assert.False(t, cfg.History.Disabled)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("registry: [not: a: mapping"), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(configPath)
	assert.Error(t, err)
}

func TestLoadConfig_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
registry:
  api_url: https://git.internal.example.com/api/v3
  owner: platform-team
  topic: starter-kit
history:
  disabled: true
`
	err := os.WriteFile(configPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://git.internal.example.com/api/v3", cfg.Registry.APIURL)
	assert.Equal(t, "platform-team", cfg.Registry.Owner)
	assert.Equal(t, "starter-kit", cfg.Registry.Topic)
	assert.True(t, cfg.History.Disabled)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("registry:\n  owner: someone-else\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "someone-else", cfg.Registry.Owner)
	assert.Equal(t, "https://api.github.com", cfg.Registry.APIURL)
	assert.Equal(t, "project-template", cfg.Registry.Topic)
}

func TestLoadConfig_TokenFromEnv(t *testing.T) {
	t.Setenv("WEBSTART_GITHUB_TOKEN", "tok-123")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "tok-123", cfg.Registry.Token)
}
