// File: nodes.go
// Title: Vira AST Node Definitions
// Description: Defines all AST node types for representing Vira programs
//              including declarations, statements, and expressions.
//              Provides string representations and validation methods.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"

	virastringx "github.com/msto63/vira/foundation/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a compact single-line representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs structural validation of the node
	Validate() error
}

// Position represents a position in the preprocessed source
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// Expr represents the base interface for all expressions
type Expr interface {
	Node
	exprNode() // marker method
}

// Stmt represents the base interface for all statements
type Stmt interface {
	Node
	stmtNode() // marker method
}

// Program is the root node of a parsed source file
type Program struct {
	Statements []Stmt // Top-level statements in source order
}

// Expression types

// NumberLiteral represents a numeric literal. The raw text is kept
// verbatim; the front end never evaluates numbers.
type NumberLiteral struct {
	Value string   // Raw digits, optionally with one fraction part
	Pos   Position // Source position
}

// StringLiteral represents a double-quoted string literal with escapes
// already passed through (backslash removed, escaped character kept).
type StringLiteral struct {
	Value string   // String content without surrounding quotes
	Pos   Position // Source position
}

// Identifier represents a reference to a named entity
type Identifier struct {
	Name string   // Identifier name
	Pos  Position // Source position
}

// BinaryExpr represents a binary operation (a + b, a * b, etc.)
type BinaryExpr struct {
	Left  Expr     // Left operand
	Op    string   // Operator (+, -, *, /)
	Right Expr     // Right operand
	Pos   Position // Source position
}

// CallExpr represents a function call
type CallExpr struct {
	Callee string   // Called function name
	Args   []Expr   // Call arguments
	Pos    Position // Source position
}

// Statement types

// VarDecl represents a variable declaration (let x = expr;)
type VarDecl struct {
	Name  string   // Declared variable name
	Value Expr     // Initializer expression, nil when omitted
	Pos   Position // Source position
}

// FuncDef represents a function definition (def name(params) { body })
type FuncDef struct {
	Name   string   // Function name
	Params []string // Parameter names in declaration order
	Body   []Stmt   // Function body statements
	Pos    Position // Source position
}

// Import represents a library import (:lib:;)
type Import struct {
	Lib string   // Imported library name
	Pos Position // Source position
}

// Write represents an output statement (write expr;)
type Write struct {
	Value Expr     // Expression to write
	Pos   Position // Source position
}

// Return represents a return statement (return expr;)
type Return struct {
	Value Expr     // Returned expression
	Pos   Position // Source position
}

// ExprStmt represents an expression used as a statement
type ExprStmt struct {
	Expr Expr     // Wrapped expression
	Pos  Position // Source position
}

// Marker method implementations

func (n *NumberLiteral) exprNode() {}
func (s *StringLiteral) exprNode() {}
func (i *Identifier) exprNode()    {}
func (b *BinaryExpr) exprNode()    {}
func (c *CallExpr) exprNode()      {}

func (v *VarDecl) stmtNode()  {}
func (f *FuncDef) stmtNode()  {}
func (i *Import) stmtNode()   {}
func (w *Write) stmtNode()    {}
func (r *Return) stmtNode()   {}
func (e *ExprStmt) stmtNode() {}

// Implementation of Node interface for Program

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Statements))
	for _, stmt := range p.Statements {
		parts = append(parts, stmt.String())
	}
	return strings.Join(parts, " ")
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Position() Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Position()
	}
	return Position{Line: 1, Column: 1}
}

func (p *Program) Validate() error {
	for i, stmt := range p.Statements {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

// Implementation of Node interface for expressions

func (n *NumberLiteral) String() string {
	return n.Value
}

func (n *NumberLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumberLiteral(n)
}

func (n *NumberLiteral) Position() Position {
	return n.Pos
}

func (n *NumberLiteral) Validate() error {
	if virastringx.IsBlank(n.Value) {
		return fmt.Errorf("number literal has no value")
	}
	return nil
}

func (s *StringLiteral) String() string {
	return fmt.Sprintf("%q", s.Value)
}

func (s *StringLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitStringLiteral(s)
}

func (s *StringLiteral) Position() Position {
	return s.Pos
}

func (s *StringLiteral) Validate() error {
	return nil // Empty strings are valid
}

func (i *Identifier) String() string {
	return i.Name
}

func (i *Identifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifier(i)
}

func (i *Identifier) Position() Position {
	return i.Pos
}

func (i *Identifier) Validate() error {
	if !virastringx.IsIdentifier(i.Name) {
		return fmt.Errorf("invalid identifier name: %q", i.Name)
	}
	return nil
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

func (b *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpr(b)
}

func (b *BinaryExpr) Position() Position {
	return b.Pos
}

// Validate enforces the binary arity invariant: exactly two non-nil
// operands. A violation is a construction defect in the parser, not a
// recoverable state.
func (b *BinaryExpr) Validate() error {
	if b.Left == nil || b.Right == nil {
		return fmt.Errorf("binary operation %q requires two operands", b.Op)
	}
	if virastringx.IsBlank(b.Op) {
		return fmt.Errorf("binary operation has no operator")
	}
	if err := b.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := b.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	return nil
}

func (c *CallExpr) String() string {
	args := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(args, ", "))
}

func (c *CallExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitCallExpr(c)
}

func (c *CallExpr) Position() Position {
	return c.Pos
}

func (c *CallExpr) Validate() error {
	if !virastringx.IsIdentifier(c.Callee) {
		return fmt.Errorf("invalid callee name: %q", c.Callee)
	}
	for i, arg := range c.Args {
		if arg == nil {
			return fmt.Errorf("call argument %d is nil", i)
		}
		if err := arg.Validate(); err != nil {
			return fmt.Errorf("call argument %d: %w", i, err)
		}
	}
	return nil
}

// Implementation of Node interface for statements

func (v *VarDecl) String() string {
	if v.Value == nil {
		return fmt.Sprintf("let %s;", v.Name)
	}
	return fmt.Sprintf("let %s = %s;", v.Name, v.Value)
}

func (v *VarDecl) Accept(visitor Visitor) interface{} {
	return visitor.VisitVarDecl(v)
}

func (v *VarDecl) Position() Position {
	return v.Pos
}

func (v *VarDecl) Validate() error {
	if !virastringx.IsIdentifier(v.Name) {
		return fmt.Errorf("invalid variable name: %q", v.Name)
	}
	if v.Value == nil {
		return nil // Initializer is optional
	}
	return v.Value.Validate()
}

func (f *FuncDef) String() string {
	return fmt.Sprintf("def %s(%s) { ... }", f.Name, strings.Join(f.Params, ", "))
}

func (f *FuncDef) Accept(visitor Visitor) interface{} {
	return visitor.VisitFuncDef(f)
}

func (f *FuncDef) Position() Position {
	return f.Pos
}

func (f *FuncDef) Validate() error {
	if !virastringx.IsIdentifier(f.Name) {
		return fmt.Errorf("invalid function name: %q", f.Name)
	}
	for _, param := range f.Params {
		if !virastringx.IsIdentifier(param) {
			return fmt.Errorf("invalid parameter name: %q", param)
		}
	}
	for i, stmt := range f.Body {
		if stmt == nil {
			return fmt.Errorf("body statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("body statement %d: %w", i, err)
		}
	}
	return nil
}

func (i *Import) String() string {
	return fmt.Sprintf(":%s:;", i.Lib)
}

func (i *Import) Accept(visitor Visitor) interface{} {
	return visitor.VisitImport(i)
}

func (i *Import) Position() Position {
	return i.Pos
}

func (i *Import) Validate() error {
	if !virastringx.IsIdentifier(i.Lib) {
		return fmt.Errorf("invalid library name: %q", i.Lib)
	}
	return nil
}

func (w *Write) String() string {
	return fmt.Sprintf("write %s;", w.Value)
}

func (w *Write) Accept(visitor Visitor) interface{} {
	return visitor.VisitWrite(w)
}

func (w *Write) Position() Position {
	return w.Pos
}

// Validate enforces the single-child invariant for write statements.
func (w *Write) Validate() error {
	if w.Value == nil {
		return fmt.Errorf("write statement has no expression")
	}
	return w.Value.Validate()
}

func (r *Return) String() string {
	return fmt.Sprintf("return %s;", r.Value)
}

func (r *Return) Accept(visitor Visitor) interface{} {
	return visitor.VisitReturn(r)
}

func (r *Return) Position() Position {
	return r.Pos
}

// Validate enforces the single-child invariant for return statements.
func (r *Return) Validate() error {
	if r.Value == nil {
		return fmt.Errorf("return statement has no expression")
	}
	return r.Value.Validate()
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (e *ExprStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitExprStmt(e)
}

func (e *ExprStmt) Position() Position {
	return e.Pos
}

func (e *ExprStmt) Validate() error {
	if e.Expr == nil {
		return fmt.Errorf("expression statement has no expression")
	}
	return e.Expr.Validate()
}
