// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors and the mapping from
//              error codes to their default severity. Severity drives the
//              log level chosen when an error is reported.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial severity implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: a recoverable syntax error in one declaration
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that fails the current run
	// Examples: lexical errors, semantic errors, invalid configuration
	SeverityMedium

	// SeverityHigh indicates a serious error outside the input itself
	// Examples: missing include files, unreadable sources
	SeverityHigh

	// SeverityCritical indicates exhaustion of a hard resource bound
	// Examples: macro table overflow, include stack overflow
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Resource exhaustion against a hard bound
	case CodeMacroTableFull, CodeIncludeDepth:
		return SeverityCritical

	// Environment failures
	case CodeIO, CodeFileNotFound, CodeIncludeNotFound, CodeInternal:
		return SeverityHigh

	// Input failures that abort the run
	case CodeLexical, CodeSemantic, CodeUndefinedIdentifier,
		CodeUnsupportedConstruct, CodeDirectiveSyntax, CodeSourceTooLarge,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeInvalidInput:
		return SeverityMedium

	// Recoverable per-declaration failures
	case CodeSyntax:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
