package errors

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrorType represents different types of errors that can occur
type ErrorType int

const (
	ErrorTypePath ErrorType = iota
	ErrorTypeFileSystem
	ErrorTypeConfig
	ErrorTypeWatcher
	ErrorTypeSecret
)

// String returns a string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypePath:
		return "path"
	case ErrorTypeFileSystem:
		return "filesystem"
	case ErrorTypeConfig:
		return "config"
	case ErrorTypeWatcher:
		return "watcher"
	case ErrorTypeSecret:
		return "secret"
	default:
		return "unknown"
	}
}

// AppError represents a structured application error.
// For filesystem errors, Errno carries the originating OS error code when
// one could be extracted from the wrapped error (0 otherwise).
type AppError struct {
	Type      ErrorType
	Operation string
	Path      string
	Message   string
	Errno     syscall.Errno
	Err       error
}

func (e *AppError) Error() string {
	if e.Errno != 0 {
		return fmt.Sprintf("%s error in %s [%s]: %s (errno %d)", e.Type, e.Operation, e.Path, e.Message, int(e.Errno))
	}
	if e.Path != "" {
		return fmt.Sprintf("%s error in %s [%s]: %s", e.Type, e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewPathError creates a new path operation error
func NewPathError(operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypePath,
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// NewFileSystemError creates a new filesystem error, extracting the OS
// error code from err when present.
func NewFileSystemError(operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeFileSystem,
		Operation: operation,
		Path:      path,
		Message:   message,
		Errno:     Errno(err),
		Err:       err,
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeConfig,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewWatcherError creates a new watcher error
func NewWatcherError(operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeWatcher,
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// NewSecretError creates a new credentials store error
func NewSecretError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeSecret,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// Errno extracts an OS error code from an error chain, or 0 when none is present.
func Errno(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}
