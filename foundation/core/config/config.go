// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type and functionality for loading,
//              parsing, and validating configuration data from TOML and
//              YAML files.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	viraerror "github.com/msto63/vira/foundation/core/error"
	"github.com/msto63/vira/foundation/utils/stringx"
)

// Historical resource bounds of the Vira preprocessor. They remain the
// defaults; configuration may raise or lower them but never disable them.
const (
	DefaultMaxMacros       = 1024
	DefaultMaxIncludeDepth = 16
	DefaultMaxSourceSize   = 1 << 20
)

// Config holds all front-end settings
type Config struct {
	Preprocessor PreprocessorConfig `toml:"preprocessor" yaml:"preprocessor"`
	Frontend     FrontendConfig     `toml:"frontend" yaml:"frontend"`
	Log          LogConfig          `toml:"log" yaml:"log"`
}

// PreprocessorConfig configures the macro/include expander
type PreprocessorConfig struct {
	// IncludePaths are searched in order for system includes (#include <...>)
	IncludePaths []string `toml:"include_paths" yaml:"include_paths"`

	// MaxMacros bounds the macro table; exceeding it is a fatal error
	MaxMacros int `toml:"max_macros" yaml:"max_macros"`

	// MaxIncludeDepth bounds the include stack, counting the root frame
	MaxIncludeDepth int `toml:"max_include_depth" yaml:"max_include_depth"`
}

// FrontendConfig configures the lexer/parser/checker pipeline
type FrontendConfig struct {
	// MaxSourceSize bounds the size of a source file in bytes
	MaxSourceSize int `toml:"max_source_size" yaml:"max_source_size"`
}

// LogConfig configures logging output
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the configuration used when no file is provided
func Default() *Config {
	return &Config{
		Preprocessor: PreprocessorConfig{
			IncludePaths:    []string{"/usr/lib/vira-lang/include", "."},
			MaxMacros:       DefaultMaxMacros,
			MaxIncludeDepth: DefaultMaxIncludeDepth,
		},
		Frontend: FrontendConfig{
			MaxSourceSize: DefaultMaxSourceSize,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a configuration file and merges it over the defaults.
// The format is chosen by extension: .toml (default), .yaml, or .yml.
func Load(path string) (*Config, error) {
	if stringx.IsBlank(path) {
		return nil, viraerror.New("configuration path is empty").
			WithCode(viraerror.CodeMissingConfig)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, viraerror.Wrap(err, "configuration file not found").
				WithCode(viraerror.CodeMissingConfig).
				WithDetail("path", path)
		}
		return nil, viraerror.Wrap(err, "cannot read configuration file").
			WithCode(viraerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		if err := toml.Unmarshal(raw, cfg); err != nil {
			return nil, viraerror.Wrap(err, "invalid TOML configuration").
				WithCode(viraerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, viraerror.Wrap(err, "invalid YAML configuration").
				WithCode(viraerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	default:
		return nil, viraerror.Newf("unsupported configuration format: %s", filepath.Ext(path)).
			WithCode(viraerror.CodeInvalidConfig).
			WithDetail("path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all resource bounds are positive and that at
// least one include search path is configured. Logging settings are
// validated by the log package when the logger is built.
func (c *Config) Validate() error {
	if c.Preprocessor.MaxMacros <= 0 {
		return viraerror.Newf("max_macros must be positive, got %d", c.Preprocessor.MaxMacros).
			WithCode(viraerror.CodeInvalidConfig)
	}
	if c.Preprocessor.MaxIncludeDepth <= 0 {
		return viraerror.Newf("max_include_depth must be positive, got %d", c.Preprocessor.MaxIncludeDepth).
			WithCode(viraerror.CodeInvalidConfig)
	}
	if c.Frontend.MaxSourceSize <= 0 {
		return viraerror.Newf("max_source_size must be positive, got %d", c.Frontend.MaxSourceSize).
			WithCode(viraerror.CodeInvalidConfig)
	}
	if len(c.Preprocessor.IncludePaths) == 0 {
		return viraerror.New("include_paths must not be empty").
			WithCode(viraerror.CodeInvalidConfig)
	}

	return nil
}
