// File: doc.go
// Title: Core Logging Package Documentation
// Description: Package documentation for the Vira structured logging system.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

/*
Package log implements structured logging for the Vira front end.

Loggers are immutable: the With* methods return clones, so a logger can be
specialized per component ("preprocessor", "parser") or per run without
affecting the default instance. Entries carry a level, message, free-form
fields, an optional run ID, and an optional error, and are rendered by a
pluggable Formatter (JSON, plain text, or colored console output).

The package also provides a small Timer for logging operation durations,
used by the command-line tools to report how long a preprocessing or
parsing run took.
*/
package log
