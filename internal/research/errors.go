// Package research calls the external market research service once per
// pipeline run and returns its briefing text.
package research

import "fmt"

// ConfigError indicates the research credential is missing. It is returned
// before any network I/O is attempted.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("research configuration error: %s", e.Message)
}

// Error represents a failed research call. The call is not retried; research
// failure is fatal to the whole run at the assembler's discretion.
type Error struct {
	Message    string
	StatusCode int
	Body       string
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("research error: %s (status %d): %s", e.Message, e.StatusCode, e.Body)
	}
	if e.Cause != nil {
		return fmt.Sprintf("research error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("research error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
