// Package generation produces one plan section at a time through the
// text-generation service, with bounded retry per section.
package generation

import "fmt"

// Error represents a section generation failure after all retries. The
// assembler converts it into sentinel section content; it never aborts a run.
type Error struct {
	SectionTitle string
	Message      string
	Cause        error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("section %q: %s: %v", e.SectionTitle, e.Message, e.Cause)
	}
	return fmt.Sprintf("section %q: %s", e.SectionTitle, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
