// File: doc.go
// Title: Configuration Package Documentation
// Description: Package documentation for front-end configuration loading.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

/*
Package config loads the Vira front-end configuration from TOML (default)
or YAML files, selected by file extension.

Configuration controls the preprocessor's include search paths and its
resource bounds (macro-table capacity, include depth), the front end's
source size limit, and logging level/format. All settings have defaults;
a missing configuration file is not an error for the command-line tools,
which fall back to Default().
*/
package config
