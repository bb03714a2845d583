package common

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrUsage    ErrorType = "USAGE"
	ErrFileOpen ErrorType = "FILE_OPEN"
	ErrIO       ErrorType = "IO"
)

// Error is a failure tagged with its type and, where known, the path involved.
type Error struct {
	Type    ErrorType
	Message string
	Path    string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode maps the error type to the process exit status.
func (e *Error) ExitCode() int {
	if e.Type == ErrUsage {
		return ExitUsage
	}
	return ExitFailure
}

// NewUsageError creates a new usage error
func NewUsageError(message string) *Error {
	return &Error{Type: ErrUsage, Message: message}
}

// NewFileOpenError wraps a failure to open path.
func NewFileOpenError(path string, err error) *Error {
	return &Error{Type: ErrFileOpen, Message: "cannot open", Path: path, Err: err}
}

// NewIOError wraps a read or write failure on path.
func NewIOError(path string, err error) *Error {
	return &Error{Type: ErrIO, Message: "error processing", Path: path, Err: err}
}

// IsType checks if err, or anything it wraps, is an *Error of errType.
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == errType
	}
	return false
}

// ExitCode returns the exit status for err. Errors that are not *Error
// map to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return ExitFailure
}
