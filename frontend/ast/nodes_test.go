// File: nodes_test.go
// Title: AST Node Unit Tests
// Description: Tests for node string representations, positions, and
//              structural validation of arity invariants.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test suite

package ast

import (
	"strings"
	"testing"
)

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "number literal",
			node: &NumberLiteral{Value: "42"},
			want: "42",
		},
		{
			name: "string literal",
			node: &StringLiteral{Value: "hello"},
			want: `"hello"`,
		},
		{
			name: "binary expression",
			node: &BinaryExpr{
				Left:  &NumberLiteral{Value: "5"},
				Op:    "+",
				Right: &Identifier{Name: "x"},
			},
			want: "(5 + x)",
		},
		{
			name: "call with arguments",
			node: &CallExpr{
				Callee: "max",
				Args:   []Expr{&Identifier{Name: "a"}, &NumberLiteral{Value: "3"}},
			},
			want: "max(a, 3)",
		},
		{
			name: "variable declaration",
			node: &VarDecl{Name: "x", Value: &NumberLiteral{Value: "1"}},
			want: "let x = 1;",
		},
		{
			name: "import",
			node: &Import{Lib: "mathlib"},
			want: ":mathlib:;",
		},
		{
			name: "write",
			node: &Write{Value: &Identifier{Name: "x"}},
			want: "write x;",
		},
		{
			name: "return",
			node: &Return{Value: &NumberLiteral{Value: "0"}},
			want: "return 0;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeValidate(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{
			name: "valid binary",
			node: &BinaryExpr{
				Left:  &NumberLiteral{Value: "1"},
				Op:    "*",
				Right: &NumberLiteral{Value: "2"},
			},
		},
		{
			name:    "binary missing right operand",
			node:    &BinaryExpr{Left: &NumberLiteral{Value: "1"}, Op: "+"},
			wantErr: true,
		},
		{
			name:    "binary missing operator",
			node:    &BinaryExpr{Left: &NumberLiteral{Value: "1"}, Right: &NumberLiteral{Value: "2"}},
			wantErr: true,
		},
		{
			name:    "write without expression",
			node:    &Write{},
			wantErr: true,
		},
		{
			name:    "return without expression",
			node:    &Return{},
			wantErr: true,
		},
		{
			name: "valid function definition",
			node: &FuncDef{
				Name:   "add",
				Params: []string{"a", "b"},
				Body: []Stmt{
					&Return{Value: &BinaryExpr{
						Left:  &Identifier{Name: "a"},
						Op:    "+",
						Right: &Identifier{Name: "b"},
					}},
				},
			},
		},
		{
			name:    "function with invalid parameter",
			node:    &FuncDef{Name: "f", Params: []string{"1bad"}},
			wantErr: true,
		},
		{
			name: "declaration without initializer",
			node: &VarDecl{Name: "x"},
		},
		{
			name:    "declaration with invalid name",
			node:    &VarDecl{Name: "9x"},
			wantErr: true,
		},
		{
			name:    "invalid identifier",
			node:    &Identifier{Name: "not valid"},
			wantErr: true,
		},
		{
			name:    "invalid import library",
			node:    &Import{Lib: ""},
			wantErr: true,
		},
		{
			name: "nested invalid operand is reported",
			node: &BinaryExpr{
				Left:  &Identifier{Name: "ok"},
				Op:    "+",
				Right: &BinaryExpr{Op: "-"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProgramValidate(t *testing.T) {
	valid := &Program{Statements: []Stmt{
		&VarDecl{Name: "x", Value: &NumberLiteral{Value: "5"}},
		&Write{Value: &Identifier{Name: "x"}},
	}}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid program, got %v", err)
	}

	invalid := &Program{Statements: []Stmt{&Write{}}}
	err := invalid.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "statement 0") {
		t.Errorf("Expected statement index in error, got %v", err)
	}
}

// Counting visitor that drives its own recursion through the composite
// nodes it expects; embedding BaseVisitor supplies the remaining methods.
type identifierCounter struct {
	BaseVisitor
	count int
}

func (ic *identifierCounter) VisitProgram(p *Program) interface{} {
	for _, stmt := range p.Statements {
		stmt.Accept(ic)
	}
	return nil
}

func (ic *identifierCounter) VisitWrite(w *Write) interface{} {
	return w.Value.Accept(ic)
}

func (ic *identifierCounter) VisitBinaryExpr(b *BinaryExpr) interface{} {
	b.Left.Accept(ic)
	b.Right.Accept(ic)
	return nil
}

func (ic *identifierCounter) VisitIdentifier(i *Identifier) interface{} {
	ic.count++
	return nil
}

func TestVisitorDispatch(t *testing.T) {
	program := &Program{Statements: []Stmt{
		&Write{Value: &BinaryExpr{
			Left:  &Identifier{Name: "a"},
			Op:    "+",
			Right: &Identifier{Name: "b"},
		}},
	}}

	counter := &identifierCounter{}
	program.Accept(counter)

	if counter.count != 2 {
		t.Errorf("Expected 2 identifiers visited, got %d", counter.count)
	}
}

func TestBaseVisitorCoversAllNodes(t *testing.T) {
	program := &Program{Statements: []Stmt{
		&Import{Lib: "mathlib"},
		&VarDecl{Name: "x", Value: &NumberLiteral{Value: "5"}},
		&FuncDef{
			Name:   "f",
			Params: []string{"a"},
			Body: []Stmt{
				&Return{Value: &BinaryExpr{
					Left:  &Identifier{Name: "a"},
					Op:    "*",
					Right: &CallExpr{Callee: "g", Args: []Expr{&StringLiteral{Value: "s"}}},
				}},
			},
		},
		&ExprStmt{Expr: &CallExpr{Callee: "f", Args: []Expr{&NumberLiteral{Value: "1"}}}},
		&Write{Value: &Identifier{Name: "x"}},
	}}

	bv := &BaseVisitor{}
	if result := program.Accept(bv); result != nil {
		t.Errorf("Expected nil result from base traversal, got %v", result)
	}
}
