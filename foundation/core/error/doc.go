// File: doc.go
// Title: Core Error Package Documentation
// Description: Package documentation for the Vira structured error system.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

/*
Package error implements the structured error system used across the Vira
front end.

Every failure in the toolchain is represented as an *Error carrying a
classification Code, a Severity, an optional source position (file, line,
column), and free-form details. Errors remain compatible with the standard
library error interface and support wrapping via Unwrap.

The Code taxonomy mirrors the front end's failure classes: resource
exhaustion in the preprocessor, I/O failures, lexical errors, syntax errors,
semantic errors, and configuration problems. Command-line tools map any
*Error to a diagnostic line on standard error and a nonzero exit status.
*/
package error
