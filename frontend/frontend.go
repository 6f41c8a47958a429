// File: frontend.go
// Title: Vira Front-End Engine
// Description: Provides the high-level API for running preprocessed Vira
//              source through the lexer, parser, and semantic checker.
//              Integrates the frontend components behind one facade used
//              by the plsa command.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial engine implementation

package frontend

import (
	viraerror "github.com/msto63/vira/foundation/core/error"
	viralog "github.com/msto63/vira/foundation/core/log"
	viraast "github.com/msto63/vira/frontend/ast"
	viracheck "github.com/msto63/vira/frontend/check"
	viraparser "github.com/msto63/vira/frontend/parser"
)

// DefaultMaxSourceSize bounds source input when Options leaves the
// limit unset
const DefaultMaxSourceSize = 1 << 20

// Engine coordinates the lexing, parsing, and checking stages
type Engine struct {
	checker *viracheck.Checker
	logger  *viralog.Logger
	options Options
}

// Options configures the front-end engine behavior
type Options struct {
	// Logger for front-end operations (optional, defaults to default logger)
	Logger *viralog.Logger

	// CheckSemantics runs the semantic checker after a clean parse
	CheckSemantics bool

	// MaxSourceSize limits source input length in bytes (default: 1 MiB)
	MaxSourceSize int
}

// Result represents the outcome of one front-end run
type Result struct {
	// Program is the parsed AST, partial when syntax errors occurred
	Program *viraast.Program

	// SyntaxErrors holds one entry per failed statement
	SyntaxErrors []*viraparser.SyntaxError

	// Err is a fatal error: lexical failure, oversized input, or the
	// first semantic violation
	Err error
}

// Ok reports whether the run produced a clean, fully checked program
func (r *Result) Ok() bool {
	return r.Err == nil && len(r.SyntaxErrors) == 0
}

// NewEngine creates a front-end engine with the given options
func NewEngine(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = viralog.GetDefault()
	}
	if opts.MaxSourceSize == 0 {
		opts.MaxSourceSize = DefaultMaxSourceSize
	}

	return &Engine{
		checker: viracheck.New(viracheck.Options{Logger: opts.Logger}),
		logger:  opts.Logger.WithField("component", "frontend"),
		options: opts,
	}
}

// Run processes preprocessed source text through the pipeline. The name
// identifies the source in diagnostics, typically the input file name.
//
// Lexical errors and oversized input abort the run with Result.Err set
// and no Program. Syntax errors do not abort: the parser recovers at
// statement boundaries and Result carries the partial Program plus all
// collected errors. The semantic checker only runs over a clean parse
// and stops at the first violation.
func (e *Engine) Run(source, name string) *Result {
	timer := e.logger.StartTimer("frontend run")
	defer timer.Stop()

	result := &Result{}

	if len(source) > e.options.MaxSourceSize {
		result.Err = viraerror.Newf("source exceeds maximum size: %d > %d bytes",
			len(source), e.options.MaxSourceSize).
			WithCode(viraerror.CodeSourceTooLarge).
			WithDetail("source", name)
		return result
	}

	tokens, err := viraparser.NewLexer(source).Tokenize()
	if err != nil {
		result.Err = err
		return result
	}

	// Comment tokens carry no syntactic weight past this point
	tokens = filterComments(tokens)

	program, syntaxErrors := viraparser.New(tokens, viraparser.Options{
		Logger: e.logger,
	}).Parse()
	result.Program = program
	result.SyntaxErrors = syntaxErrors

	if len(syntaxErrors) > 0 {
		e.logger.Warn("Parse produced syntax errors", viralog.Fields{
			"source": name,
			"errors": len(syntaxErrors),
		})
		return result
	}

	if e.options.CheckSemantics {
		if err := e.checker.Check(program); err != nil {
			result.Err = err
			return result
		}
	}

	return result
}

// filterComments drops comment tokens from a token sequence
func filterComments(tokens []viraparser.Token) []viraparser.Token {
	filtered := tokens[:0]
	for _, tok := range tokens {
		if tok.Type != viraparser.TokenComment {
			filtered = append(filtered, tok)
		}
	}
	return filtered
}
