package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is an abstraction over text-generation providers
type Client interface {
	// Generate produces text for a single prompt
	Generate(ctx context.Context, prompt string) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// APIError represents a non-2xx response from a generation endpoint.
// It carries the upstream status and body so callers can log the root cause.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("generation api error (status %d): %s", e.StatusCode, e.Body)
}

// NewClient creates a new generation client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewHTTPClient(config, apiKey)
	}
}

// HTTPClient implements Client against a completion-style endpoint:
// POST {prompt, model, temperature, max_tokens} -> {content}.
type HTTPClient struct {
	config *Config
	apiKey string
	http   *http.Client
}

type completionRequest struct {
	Prompt      string  `json:"prompt"`
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

type completionResponse struct {
	Content string `json:"content"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewHTTPClient creates a client for the completion endpoint
func NewHTTPClient(config *Config, apiKey string) (*HTTPClient, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		return nil, fmt.Errorf("generation base URL is required")
	}

	return &HTTPClient{
		config: config,
		apiKey: apiKey,
		http:   &http.Client{Timeout: config.Timeout},
	}, nil
}

// Generate produces text for a single prompt
func (c *HTTPClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := completionRequest{
		Prompt:      prompt,
		Model:       c.config.Model,
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var generated completionResponse
	if err := json.Unmarshal(bodyBytes, &generated); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if generated.Error != nil {
		return "", fmt.Errorf("generation api returned error: %s", generated.Error.Message)
	}

	return generated.Content, nil
}

// Close releases resources held by the client
func (c *HTTPClient) Close() error {
	return nil
}
