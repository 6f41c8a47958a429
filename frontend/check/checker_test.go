// File: checker_test.go
// Title: Semantic Checker Unit Tests
// Description: Tests for symbol resolution, declare-before-use ordering,
//              fail-fast behavior, and structural arity checks.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test suite

package check

import (
	"testing"

	viraerror "github.com/msto63/vira/foundation/core/error"
	viraast "github.com/msto63/vira/frontend/ast"
	viraparser "github.com/msto63/vira/frontend/parser"
)

// checkSource lexes, parses, and checks a source string. The parse must
// be clean; only the checker result is returned.
func checkSource(t *testing.T, source string) error {
	t.Helper()

	tokens, err := viraparser.NewLexer(source).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	program, errs := viraparser.New(tokens, viraparser.Options{}).Parse()
	if len(errs) > 0 {
		t.Fatalf("Unexpected syntax errors: %v", errs)
	}
	return New(Options{}).Check(program)
}

func TestChecker_ValidPrograms(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			name:   "sequential declarations",
			source: "let x = 5; let y = x + 1; write y;",
		},
		{
			name:   "function with parameters",
			source: "def add(a, b) { return a + b; } write add(1, 2);",
		},
		{
			name:   "direct recursion",
			source: "def loop(n) { return loop(n - 1); }",
		},
		{
			name:   "import registers library name",
			source: ":mathlib:; write mathlib;",
		},
		{
			name:   "string and number literals need no symbols",
			source: `write "hello"; write 42;`,
		},
		{
			name:   "local shadows global",
			source: "let x = 1; def f(x) { return x; }",
		},
		{
			name:   "body sees enclosing globals",
			source: "let base = 10; def f(n) { return base + n; }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkSource(t, tt.source); err != nil {
				t.Errorf("Expected clean check, got %v", err)
			}
		})
	}
}

func TestChecker_UndefinedIdentifiers(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			name:   "never declared",
			source: "write missing;",
		},
		{
			name:   "used before declaration",
			source: "write x; let x = 1;",
		},
		{
			name:   "self-referential initializer",
			source: "let x = x;",
		},
		{
			name:   "undefined callee",
			source: "write f(1);",
		},
		{
			name:   "parameter not visible outside its function",
			source: "def f(a) { return a; } write a;",
		},
		{
			name:   "function local not visible outside",
			source: "def f() { let inner = 1; return inner; } write inner;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSource(t, tt.source)
			if err == nil {
				t.Fatal("Expected semantic error")
			}
			if !viraerror.HasCode(err, viraerror.CodeUndefinedIdentifier) {
				t.Errorf("Expected CodeUndefinedIdentifier, got %v", err)
			}
		})
	}
}

func TestChecker_FailFast(t *testing.T) {
	// Two violations: only the first one is reported
	err := checkSource(t, "write first; write second;")
	if err == nil {
		t.Fatal("Expected semantic error")
	}

	var verr *viraerror.Error
	if !viraerror.HasCode(err, viraerror.CodeUndefinedIdentifier) {
		t.Fatalf("Expected CodeUndefinedIdentifier, got %v", err)
	}
	if verr, _ = err.(*viraerror.Error); verr == nil {
		t.Fatal("Expected *viraerror.Error")
	}
	if verr.Details()["identifier"] != "first" {
		t.Errorf("Expected the first violation to be reported, got %v", verr.Details()["identifier"])
	}
}

func TestChecker_ArityViolations(t *testing.T) {
	tests := []struct {
		name    string
		program *viraast.Program
	}{
		{
			name: "binary with one child",
			program: &viraast.Program{Statements: []viraast.Stmt{
				&viraast.ExprStmt{Expr: &viraast.BinaryExpr{
					Left: &viraast.NumberLiteral{Value: "1"},
					Op:   "+",
				}},
			}},
		},
		{
			name: "write without child",
			program: &viraast.Program{Statements: []viraast.Stmt{
				&viraast.Write{},
			}},
		},
		{
			name: "return without child",
			program: &viraast.Program{Statements: []viraast.Stmt{
				&viraast.Return{},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(Options{}).Check(tt.program)
			if err == nil {
				t.Fatal("Expected semantic error")
			}
			if !viraerror.HasCode(err, viraerror.CodeSemantic) {
				t.Errorf("Expected CodeSemantic, got %v", err)
			}
		})
	}
}

func TestChecker_ErrorPosition(t *testing.T) {
	err := checkSource(t, "let x = 1;\nwrite missing;")
	if err == nil {
		t.Fatal("Expected semantic error")
	}

	verr, ok := err.(*viraerror.Error)
	if !ok {
		t.Fatalf("Expected *viraerror.Error, got %T", err)
	}
	if verr.Line() != 2 {
		t.Errorf("Expected error on line 2, got %d", verr.Line())
	}
}

func TestChecker_NilProgram(t *testing.T) {
	err := New(Options{}).Check(nil)
	if err == nil {
		t.Fatal("Expected error for nil program")
	}
	if !viraerror.HasCode(err, viraerror.CodeSemantic) {
		t.Errorf("Expected CodeSemantic, got %v", err)
	}
}
