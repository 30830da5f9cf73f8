package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"research_api_key": "rk-123",
		"provider": "gemini",
		"model": "gemini-2.5-flash",
		"database_url": "postgres://localhost/plans",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "rk-123", cfg.ResearchAPIKey)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, "postgres://localhost/plans", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"provider": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_Provider(t *testing.T) {
	tests := []struct {
		provider string
		wantErr  bool
	}{
		{"", false},
		{"http", false},
		{"gemini", false},
		{"openai", true},
	}

	for _, tt := range tests {
		cfg := Config{Provider: tt.provider}
		err := cfg.Validate()
		if tt.wantErr {
			assert.Error(t, err, "provider %q", tt.provider)
		} else {
			assert.NoError(t, err, "provider %q", tt.provider)
		}
	}
}

func TestMergeWithEnv(t *testing.T) {
	t.Setenv("RESEARCH_API_KEY", "env-research-key")
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfg := Config{ResearchAPIKey: "explicit-key"}
	cfg.MergeWithEnv()

	assert.Equal(t, "explicit-key", cfg.ResearchAPIKey, "explicit value wins over env")
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL, "empty field filled from env")
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Provider: "http",
		Model:    "plan-writer-large",
		LogPath:  "logs/planpilot.log",
	}

	cfg := Config{Model: "custom-model"}
	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "custom-model", merged.Model, "explicit value kept")
	assert.Equal(t, "http", merged.Provider, "default applied")
	assert.Equal(t, "logs/planpilot.log", merged.LogPath)
}
