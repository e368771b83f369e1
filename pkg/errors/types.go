package errors

import "fmt"

// NotFoundError reports a lookup that found nothing.
type NotFoundError struct {
	Resource string
	ID       string
}

// NewNotFoundError builds a NotFoundError for the given resource kind
// and identifier.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports input a command or operation refused.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// NewValidationError builds a ValidationError for one field.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// Is matches ErrInvalidInput.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// StructuralError reports a sheet that cannot be read at all, such as
// one missing its header rows or mandatory columns. Structural
// problems abort an import instead of becoming per-row diagnostics.
type StructuralError struct {
	Missing []string
	Message string
	Err     error
}

// NewStructuralError builds a StructuralError, with missing naming the
// absent columns when that is what broke the sheet.
func NewStructuralError(message string, missing []string) *StructuralError {
	return &StructuralError{Message: message, Missing: missing}
}

func (e *StructuralError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("structural error: %s", e.Message)
	}
	return fmt.Sprintf("structural error: %s (missing columns: %v)", e.Message, e.Missing)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// Is matches ErrStructural.
func (e *StructuralError) Is(target error) bool { return target == ErrStructural }

// ReadOnlyError reports a write against a protected field.
type ReadOnlyError struct {
	Handle string
	Path   string
}

// NewReadOnlyError builds a ReadOnlyError for a field path on the
// record named by handle.
func NewReadOnlyError(handle, path string) *ReadOnlyError {
	return &ReadOnlyError{Handle: handle, Path: path}
}

func (e *ReadOnlyError) Error() string {
	if e.Handle == "" {
		return fmt.Sprintf("field %s is read only", e.Path)
	}
	return fmt.Sprintf("field %s of record %s is read only", e.Path, e.Handle)
}

// Is matches ErrReadOnly.
func (e *ReadOnlyError) Is(target error) bool { return target == ErrReadOnly }

// ParseError reports a value or document that would not parse, down
// to the row and column when they are known.
type ParseError struct {
	Format  string
	File    string
	Row     int
	Column  string
	Message string
	Err     error
}

// NewParseError builds a ParseError for a whole file.
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("parse error in %s at row %d, column %s: %s", e.Format, e.Row, e.Column, e.Message)
	case e.Row > 0:
		return fmt.Sprintf("parse error in %s at row %d: %s", e.Format, e.Row, e.Message)
	case e.File != "":
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a failed read, write, or other filesystem
// operation.
type IOError struct {
	Operation string
	Path      string
	Message   string
	Err       error
}

// NewIOError builds an IOError around err.
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Message: errText(err), Err: err}
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
}

func (e *IOError) Unwrap() error { return e.Err }

// ResourceError reports a failed operation on a named resource, such
// as a table, record, layout, or snapshot.
type ResourceError struct {
	Operation string
	Resource  string
	ID        string
	Message   string
	Err       error
}

// NewResourceError builds a ResourceError around err.
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	return &ResourceError{Operation: operation, Resource: resource, ID: id, Message: errText(err), Err: err}
}

func (e *ResourceError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
	}
	return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// ConfigError reports a configuration problem in a named component.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// NewConfigError builds a ConfigError for one component.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

func (e *ConfigError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
