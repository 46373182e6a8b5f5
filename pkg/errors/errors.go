// Package errors provides custom error types for the dessertshop system.
// Every failure a store operation can report is one of these types, so
// callers decide what to show the user with errors.Is / errors.As instead
// of matching strings.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are re-exported so callers importing this package under the
// name "errors" keep the standard helpers.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the dessertshop system
var (
	// ErrNotFound indicates that a requested dessert was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a dessert with the same ID already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrPersistenceRead indicates the snapshot file could not be read or decoded
	ErrPersistenceRead = errors.New("snapshot read failed")

	// ErrPersistenceWrite indicates the snapshot file could not be written
	ErrPersistenceWrite = errors.New("snapshot write failed")
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

// AlreadyExistsError is returned when adding a resource whose ID is taken.
type AlreadyExistsError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with ID %s already exists", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(resource, id string) *AlreadyExistsError {
	return &AlreadyExistsError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
	Err     error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// PersistenceError reports a failed snapshot read or write.
// Operation is "read" or "write"; it decides which sentinel the error matches.
type PersistenceError struct {
	Operation string
	Path      string
	Err       error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("snapshot %s of %s failed: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("snapshot %s failed: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *PersistenceError) Is(target error) bool {
	switch e.Operation {
	case "read":
		return target == ErrPersistenceRead
	case "write":
		return target == ErrPersistenceWrite
	}
	return false
}

// NewReadError creates a PersistenceError for a failed load.
func NewReadError(path string, err error) *PersistenceError {
	return &PersistenceError{Operation: "read", Path: path, Err: err}
}

// NewWriteError creates a PersistenceError for a failed save.
func NewWriteError(path string, err error) *PersistenceError {
	return &PersistenceError{Operation: "write", Path: path, Err: err}
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

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
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
	Operation string // "read", "write", "create", "rename", "sync", "close"
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

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsPersistence reports whether err is a snapshot read or write failure.
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistenceRead) || errors.Is(err, ErrPersistenceWrite)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps a conversion error as a ValidationError for field.
// The message is what users see; err stays reachable through errors.As.
func WrapValidation(field string, value interface{}, message string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Value: value, Message: message, Err: err}
}

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
