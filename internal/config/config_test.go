package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"port": 9090,
		"data_dir": "/var/lib/applytics",
		"database_url": "postgres://localhost/applytics",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/var/lib/applytics", cfg.DataDir)
	assert.Equal(t, "postgres://localhost/applytics", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "3001")
	t.Setenv("DATA_DIR", "/tmp/history")
	t.Setenv("DATABASE_URL", "postgres://localhost/test")

	cfg := FromEnv()

	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, "/tmp/history", cfg.DataDir)
	assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := FromEnv()

	assert.Equal(t, 0, cfg.Port)
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Port:    8080,
		DataDir: "data",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:        9000,
		DataDir:     "/srv/data",
		DatabaseURL: "postgres://localhost/applytics",
	}

	partial := Config{
		Port: 3000,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, 3000, merged.Port)

	// Default values should fill in empty fields
	assert.Equal(t, "/srv/data", merged.DataDir)
	assert.Equal(t, "postgres://localhost/applytics", merged.DatabaseURL)
}

func TestMergeWithDefaults_BuiltIns(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(BuiltInDefaults())

	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, DefaultDataDir, merged.DataDir)
	assert.Empty(t, merged.DatabaseURL)
}
