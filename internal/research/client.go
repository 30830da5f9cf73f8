package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"planpilot/internal/prompts"
	"planpilot/internal/types"
)

// Config holds the research client configuration
type Config struct {
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// DefaultConfig returns the default research service configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     "https://api.perplexity.ai",
		Model:       "sonar-pro",
		Temperature: 0.2,
		MaxTokens:   2000,
		Timeout:     120 * time.Second,
	}
}

// Client calls the research service over its chat-completion endpoint:
// POST {model, messages, temperature, max_tokens} ->
// {choices: [{message: {content}}]}.
type Client struct {
	config *Config
	apiKey string
	http   *http.Client
}

// NewClient creates a research client. The credential is checked at call
// time, not here, so a client with no key can still be constructed and wired.
func NewClient(config *Config, apiKey string) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	return &Client{
		config: config,
		apiKey: apiKey,
		http:   &http.Client{Timeout: config.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Research issues exactly one call to the research service and returns the
// briefing text. A missing credential short-circuits to a ConfigError before
// any network I/O. Failures are not retried.
func (c *Client) Research(ctx context.Context, businessType, location string, cat types.Category) (string, error) {
	if c.apiKey == "" {
		return "", &ConfigError{Message: "research API key is not set"}
	}

	prompt, err := buildPrompt(businessType, location, cat)
	if err != nil {
		return "", &Error{Message: "failed to build research prompt", Cause: err}
	}

	reqBody := chatRequest{
		Model:       c.config.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &Error{Message: "failed to marshal request", Cause: err}
	}

	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &Error{Message: "failed to create request", Cause: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{
			Message:    "research service returned an error",
			StatusCode: resp.StatusCode,
			Body:       string(bodyBytes),
		}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return "", &Error{Message: "failed to decode response", Cause: err}
	}

	if len(chatResp.Choices) == 0 {
		return "", &Error{Message: "empty choices in research response"}
	}

	return chatResp.Choices[0].Message.Content, nil
}

// promptKeys maps each category to its research prompt template.
var promptKeys = map[types.Category]string{
	types.CategoryNewCompany:  "research-new-company",
	types.CategoryScaleUp:     "research-scale-up",
	types.CategoryEstablished: "research-established",
}

func buildPrompt(businessType, location string, cat types.Category) (string, error) {
	key, ok := promptKeys[cat]
	if !ok {
		key = promptKeys[types.CategoryNewCompany]
	}

	template, err := prompts.Get("research.json", key)
	if err != nil {
		return "", err
	}

	return prompts.Format(template, map[string]string{
		"BusinessType": businessType,
		"Location":     location,
		"Industry":     IndustryFor(businessType),
	}), nil
}
