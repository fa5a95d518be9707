// Package errors provides custom error types for the skycatalog system.
// These errors enable programmatic error checking for the few failures the
// catalog engine surfaces: an unavailable medium, an invalid catalog root,
// and I/O problems while opening directories.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the skycatalog system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMediumUnavailable indicates the storage medium could not be mounted
	ErrMediumUnavailable = errors.New("medium unavailable")

	// ErrInvalidRoot indicates the mounted directory is not a catalog root
	ErrInvalidRoot = errors.New("invalid catalog root")

	// ErrNotInitialized indicates an operation that needs an initialized database
	ErrNotInitialized = errors.New("database not initialized")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// MediumError reports a storage medium that could not be mounted.
type MediumError struct {
	Selector string
	Message  string
	Err      error
}

// Error implements the error interface
func (e *MediumError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("medium %q unavailable: %s: %v", e.Selector, e.Message, e.Err)
	}
	return fmt.Sprintf("medium %q unavailable: %s", e.Selector, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *MediumError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *MediumError) Is(target error) bool {
	return target == ErrMediumUnavailable
}

// NewMediumError creates a new MediumError
func NewMediumError(selector, message string, err error) *MediumError {
	return &MediumError{Selector: selector, Message: message, Err: err}
}

// RootError reports a mounted directory that is not a valid catalog root.
// This is distinct from a mount failure: the medium works, the data does not.
type RootError struct {
	Root    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *RootError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s is not a catalog root: %s: %v", e.Root, e.Message, e.Err)
	}
	return fmt.Sprintf("%s is not a catalog root: %s", e.Root, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *RootError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RootError) Is(target error) bool {
	return target == ErrInvalidRoot
}

// NewRootError creates a new RootError
func NewRootError(root, message string, err error) *RootError {
	return &RootError{Root: root, Message: message, Err: err}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
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
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing a catalog file
type ParseError struct {
	Format  string // "count", "record", "translation"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
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
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "open", "readdir", "rewind", "close"
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
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMediumUnavailable checks if an error is a mount failure
func IsMediumUnavailable(err error) bool {
	return errors.Is(err, ErrMediumUnavailable)
}

// IsInvalidRoot checks if an error reports an invalid catalog root
func IsInvalidRoot(err error) bool {
	return errors.Is(err, ErrInvalidRoot)
}

// IsNotInitialized checks if an error reports a missing InitDatabase call
func IsNotInitialized(err error) bool {
	return errors.Is(err, ErrNotInitialized)
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
