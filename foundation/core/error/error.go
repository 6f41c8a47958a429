// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with classification codes,
//              severity, source positions, and metadata. Maintains
//              compatibility with Go's standard error interface while
//              adding the context the front end needs for diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with positioned errors

package error

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Error represents a structured error with code, severity, and position
type Error struct {
	// Core error information
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	// Context and metadata
	details   map[string]interface{}
	operation string

	// Source position (1-based line/column; zero means unknown)
	file   string
	line   int
	column int
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve classification when wrapping one of our own errors
	if viraErr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:   message,
			cause:     viraErr,
			code:      viraErr.code,
			severity:  viraErr.severity,
			timestamp: time.Now(),
			details:   make(map[string]interface{}),
			file:      viraErr.file,
			line:      viraErr.line,
			column:    viraErr.column,
		}
		for k, v := range viraErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Wrapf wraps an existing error with a formatted context message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium { // Only auto-set if not explicitly set
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithPosition sets the source position the error refers to.
// Line and column are 1-based; a zero column means "line only".
func (e *Error) WithPosition(file string, line, column int) *Error {
	e.file = file
	e.line = line
	e.column = column
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error occurred
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{})
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// File returns the source file the error refers to, if any
func (e *Error) File() string {
	return e.file
}

// Line returns the 1-based source line, or 0 if unknown
func (e *Error) Line() int {
	return e.line
}

// Column returns the 1-based source column, or 0 if unknown
func (e *Error) Column() int {
	return e.column
}

// Diagnostic returns the user-facing single-line diagnostic for the error,
// including the source position where one is known. This is the text the
// command-line tools print to standard error.
func (e *Error) Diagnostic() string {
	var b strings.Builder

	if e.file != "" {
		b.WriteString(e.file)
		b.WriteString(": ")
	}
	b.WriteString(e.Error())

	if e.line > 0 {
		if e.column > 0 {
			fmt.Fprintf(&b, " at line %d, column %d", e.line, e.column)
		} else {
			fmt.Fprintf(&b, " at line %d", e.line)
		}
	}

	return b.String()
}

// RootCause returns the root cause of the error chain
func (e *Error) RootCause() error {
	cause := e.cause
	for cause != nil {
		if viraErr, ok := cause.(*Error); ok {
			if viraErr.cause == nil {
				return viraErr
			}
			cause = viraErr.cause
		} else {
			return cause
		}
	}
	return e
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
	}

	if len(e.details) > 0 {
		data["details"] = e.details
	}

	if e.operation != "" {
		data["operation"] = e.operation
	}

	if e.file != "" {
		data["file"] = e.file
	}

	if e.line > 0 {
		data["line"] = e.line
		if e.column > 0 {
			data["column"] = e.column
		}
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	return json.Marshal(data)
}

// HasCode checks if an error has a specific code
func HasCode(err error, code Code) bool {
	if viraErr, ok := err.(*Error); ok {
		return viraErr.code == code
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown if not a Vira error
func GetCode(err error) Code {
	if viraErr, ok := err.(*Error); ok {
		return viraErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the error severity, or SeverityMedium if not a Vira error
func GetSeverity(err error) Severity {
	if viraErr, ok := err.(*Error); ok {
		return viraErr.severity
	}
	return SeverityMedium
}
