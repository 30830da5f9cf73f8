// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Credentials and endpoints
	ResearchAPIKey   string `json:"research_api_key,omitempty"`   // Research service bearer credential
	ResearchBaseURL  string `json:"research_base_url,omitempty"`  // Research service base URL
	GenerationAPIKey string `json:"generation_api_key,omitempty"` // Generation service credential
	GenerationURL    string `json:"generation_url,omitempty"`     // Generation service base URL
	Provider         string `json:"provider,omitempty"`           // Generation provider: "http" or "gemini"
	Model            string `json:"model,omitempty"`              // Generation model name

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	UserID      string `json:"user_id,omitempty"`      // User UUID owning saved plans

	// Behavior
	LogPath string `json:"log_path,omitempty"` // Structured log file path
	Verbose bool   `json:"verbose,omitempty"`  // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Provider != "" && c.Provider != "http" && c.Provider != "gemini" {
		return fmt.Errorf("config error: 'provider' must be \"http\" or \"gemini\", got %q", c.Provider)
	}
	return nil
}

// MergeWithEnv fills empty credential and endpoint fields from environment
// variables. Explicit config values win over the environment.
func (c *Config) MergeWithEnv() {
	if c.ResearchAPIKey == "" {
		c.ResearchAPIKey = os.Getenv("RESEARCH_API_KEY")
	}
	if c.ResearchBaseURL == "" {
		c.ResearchBaseURL = os.Getenv("RESEARCH_BASE_URL")
	}
	if c.GenerationAPIKey == "" {
		c.GenerationAPIKey = os.Getenv("GENERATION_API_KEY")
	}
	if c.GenerationURL == "" {
		c.GenerationURL = os.Getenv("GENERATION_API_URL")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.UserID == "" {
		c.UserID = os.Getenv("PLANPILOT_USER_ID")
	}
}

// MergeWithDefaults returns a new Config with empty string fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ResearchBaseURL == "" {
		result.ResearchBaseURL = defaults.ResearchBaseURL
	}
	if result.GenerationURL == "" {
		result.GenerationURL = defaults.GenerationURL
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.LogPath == "" {
		result.LogPath = defaults.LogPath
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
