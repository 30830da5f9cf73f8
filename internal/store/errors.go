package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClass distinguishes primary-store failure modes callers may want to
// branch on.
type ErrorClass string

// Primary store error classes.
const (
	ClassMissingField   ErrorClass = "missing_field"
	ClassForeignKey     ErrorClass = "foreign_key"
	ClassSchemaMismatch ErrorClass = "schema_mismatch"
	ClassOther          ErrorClass = "other"
)

// Error represents a primary store failure.
type Error struct {
	Class   ErrorClass
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error (%s): %s: %v", e.Class, e.Message, e.Cause)
	}
	return fmt.Sprintf("store error (%s): %s", e.Class, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ValidationError indicates the document is missing a required field. It is
// returned before any write attempt and is never retried.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid document: missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// classifyPgError maps PostgreSQL error codes onto store error classes so
// callers can distinguish missing-field, foreign-key, and schema problems.
func classifyPgError(err error) ErrorClass {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ClassOther
	}
	switch pgErr.Code {
	case "23502": // not_null_violation
		return ClassMissingField
	case "23503": // foreign_key_violation
		return ClassForeignKey
	case "42703", "42P01": // undefined_column, undefined_table
		return ClassSchemaMismatch
	default:
		return ClassOther
	}
}
