// Package errors defines the error vocabulary of the reconciliation
// engine: sentinels for errors.Is checks, typed errors that carry the
// context a caller needs to report a failure, and wrap helpers for
// the recurring wrapping patterns.
package errors

import "errors"

// New is the standard library errors.New, re-exported so most callers
// get by with a single errors import.
var New = errors.New

// Sentinels the typed errors below map onto, so callers can match a
// category without naming a concrete type.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")

	// ErrStructural marks a sheet that cannot be read at all, such as
	// one missing its header rows or mandatory columns.
	ErrStructural = errors.New("structural error")

	// ErrReadOnly marks a write against a protected field.
	ErrReadOnly = errors.New("read only")

	ErrTimeout        = errors.New("operation timed out")
	ErrCanceled       = errors.New("operation canceled")
	ErrNotImplemented = errors.New("not implemented")
)

// IsNotFound reports whether err means a missing resource.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAlreadyExists reports whether err means a duplicate resource.
func IsAlreadyExists(err error) bool { return errors.Is(err, ErrAlreadyExists) }

// IsValidationError reports whether err means rejected input.
func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsStructural reports whether err means an unreadable sheet. A
// structural problem aborts an import; it is never demoted to a
// per-row diagnostic.
func IsStructural(err error) bool { return errors.Is(err, ErrStructural) }

// IsReadOnly reports whether err means a protected field was written.
func IsReadOnly(err error) bool { return errors.Is(err, ErrReadOnly) }

// IsCanceled reports whether err means a canceled operation.
func IsCanceled(err error) bool { return errors.Is(err, ErrCanceled) }
