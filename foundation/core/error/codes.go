// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the Vira front end. These codes enable
//              structured error handling, exit-status mapping, and
//              diagnostic formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with front-end error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the Vira front end
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// I/O
	CodeIO           Code = "IO_ERROR"
	CodeFileNotFound Code = "FILE_NOT_FOUND"

	// Preprocessor
	CodeMacroTableFull  Code = "MACRO_TABLE_FULL"
	CodeIncludeDepth    Code = "INCLUDE_DEPTH_EXCEEDED"
	CodeIncludeNotFound Code = "INCLUDE_NOT_FOUND"
	CodeDirectiveSyntax Code = "DIRECTIVE_SYNTAX"

	// Lexer, parser, checker
	CodeLexical              Code = "LEXICAL_ERROR"
	CodeSyntax               Code = "SYNTAX_ERROR"
	CodeSemantic             Code = "SEMANTIC_ERROR"
	CodeUndefinedIdentifier  Code = "UNDEFINED_IDENTIFIER"
	CodeUnsupportedConstruct Code = "UNSUPPORTED_CONSTRUCT"
	CodeSourceTooLarge       Code = "SOURCE_TOO_LARGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeIO, CodeFileNotFound,
		CodeMacroTableFull, CodeIncludeDepth, CodeIncludeNotFound, CodeDirectiveSyntax,
		CodeLexical, CodeSyntax, CodeSemantic, CodeUndefinedIdentifier,
		CodeUnsupportedConstruct, CodeSourceTooLarge,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeIO, CodeFileNotFound:
		return "io"
	case CodeMacroTableFull, CodeIncludeDepth, CodeIncludeNotFound, CodeDirectiveSyntax:
		return "preprocessor"
	case CodeLexical, CodeSyntax, CodeSemantic, CodeUndefinedIdentifier,
		CodeUnsupportedConstruct, CodeSourceTooLarge:
		return "frontend"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsFatal reports whether errors with this code terminate the current run.
// Syntax errors are the only recoverable class: the parser collects them
// per declaration and continues (see frontend/parser).
func (c Code) IsFatal() bool {
	return c != CodeSyntax
}
