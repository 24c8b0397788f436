// Package errors provides custom error types for the gatecheck system.
// These errors enable programmatic error checking and carry enough context
// (table identity, role, available headers) for callers to recover —
// by prompting for a manual column override or aborting with a useful
// diagnostic.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the gatecheck system
var (
	// ErrColumnUnresolved indicates a required column role could not be
	// matched against a table's headers. Recoverable: callers may supply
	// an explicit column override and retry.
	ErrColumnUnresolved = errors.New("column unresolved")

	// ErrColumnMissing indicates an explicitly named column is absent
	// from a table. Fatal for the invocation.
	ErrColumnMissing = errors.New("column missing")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateHeader indicates a table declares the same column name twice
	ErrDuplicateHeader = errors.New("duplicate header")

	// ErrUnsupportedFormat indicates a file format the ingest layer cannot read
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// UnresolvableColumnError reports that a semantic role could not be matched
// in a table's header set. It carries the full header list so the caller can
// present the available choices.
type UnresolvableColumnError struct {
	Table   string   // which table ("TOPS", "Cyman", or a file name)
	Role    string   // the role that failed to resolve
	Headers []string // every header available in the table
}

// Error implements the error interface
func (e *UnresolvableColumnError) Error() string {
	if len(e.Headers) > 0 {
		return fmt.Sprintf("could not resolve %s column in %s table (available headers: %s)",
			e.Role, e.Table, strings.Join(e.Headers, ", "))
	}
	return fmt.Sprintf("could not resolve %s column in %s table (no headers)", e.Role, e.Table)
}

// Is implements errors.Is support
func (e *UnresolvableColumnError) Is(target error) bool {
	return target == ErrColumnUnresolved
}

// NewUnresolvableColumnError creates a new UnresolvableColumnError
func NewUnresolvableColumnError(table, role string, headers []string) *UnresolvableColumnError {
	return &UnresolvableColumnError{Table: table, Role: role, Headers: headers}
}

// MissingColumnsError reports that explicitly required column names are
// absent from a table entirely.
type MissingColumnsError struct {
	Table   string
	Missing []string
}

// Error implements the error interface
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s table is missing required columns: %s", e.Table, strings.Join(e.Missing, ", "))
}

// Is implements errors.Is support
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrColumnMissing
}

// NewMissingColumnsError creates a new MissingColumnsError
func NewMissingColumnsError(table string, missing []string) *MissingColumnsError {
	return &MissingColumnsError{Table: table, Missing: missing}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing tabular input
type ParseError struct {
	Format  string // "csv", "xlsx", "yaml"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s file %s at line %d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// Helper functions for error checking

// IsColumnUnresolved checks if an error is a column resolution failure
func IsColumnUnresolved(err error) bool {
	return errors.Is(err, ErrColumnUnresolved)
}

// IsColumnMissing checks if an error reports explicitly missing columns
func IsColumnMissing(err error) bool {
	return errors.Is(err, ErrColumnMissing)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
