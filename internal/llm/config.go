// Package llm provides centralized text-generation configuration and client
// abstractions. This package enables switching providers without touching the
// pipeline code that consumes them.
package llm

import "time"

// Provider represents a text-generation provider
type Provider string

// Provider constants define supported generation providers
const (
	// ProviderHTTP is the default completion-endpoint provider
	ProviderHTTP Provider = "http"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the generation client configuration
type Config struct {
	Provider    Provider
	Model       string
	BaseURL     string
	Temperature float32
	MaxTokens   int
	// Timeout bounds each generation call; the pipeline relies on this
	// rather than an overall deadline.
	Timeout time.Duration
}

// DefaultConfig returns the default configuration (HTTP completion endpoint)
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderHTTP,
		Model:       "plan-writer-large",
		Temperature: 0.7,
		MaxTokens:   2048,
		Timeout:     90 * time.Second,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: 0.7,
		MaxTokens:   2048,
		Timeout:     90 * time.Second,
	}
}
