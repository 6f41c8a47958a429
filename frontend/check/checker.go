// File: checker.go
// Title: Vira Semantic Checker
// Description: Implements the semantic checking phase of the Vira front
//              end. Walks a complete Program AST and fails fast on the
//              first violation: undefined identifier references,
//              structural arity defects, or unsupported node shapes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial checker implementation

package check

import (
	viraerror "github.com/msto63/vira/foundation/core/error"
	viralog "github.com/msto63/vira/foundation/core/log"
	viraast "github.com/msto63/vira/frontend/ast"
)

// Options configures checker behavior
type Options struct {
	Logger *viralog.Logger
}

// Checker validates a parsed program. Unlike the parser it does not
// recover: the first violation aborts the whole check, so callers see
// at most one semantic error per run.
type Checker struct {
	logger  *viralog.Logger
	options Options
}

// scope is a symbol table with lexical nesting. Lookups walk outward
// through enclosing scopes.
type scope struct {
	symbols map[string]bool
	parent  *scope
}

func newScope(parent *scope) *scope {
	return &scope{symbols: make(map[string]bool), parent: parent}
}

func (s *scope) declare(name string) {
	s.symbols[name] = true
}

func (s *scope) resolve(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.symbols[name] {
			return true
		}
	}
	return false
}

// New creates a semantic checker
func New(opts Options) *Checker {
	if opts.Logger == nil {
		opts.Logger = viralog.GetDefault()
	}

	return &Checker{
		logger:  opts.Logger.WithField("component", "checker"),
		options: opts,
	}
}

// Check validates the program. The symbol table is built fresh per
// call: declarations must precede the statements that reference them.
func (c *Checker) Check(program *viraast.Program) error {
	if program == nil {
		return viraerror.New("cannot check a nil program").
			WithCode(viraerror.CodeSemantic)
	}

	globals := newScope(nil)
	for _, stmt := range program.Statements {
		if err := c.checkStmt(stmt, globals); err != nil {
			c.logger.WarnWithErr("Semantic check failed", err)
			return err
		}
	}

	c.logger.Debug("Semantic check passed", viralog.Fields{
		"statements": len(program.Statements),
	})
	return nil
}

func (c *Checker) checkStmt(stmt viraast.Stmt, sc *scope) error {
	switch s := stmt.(type) {
	case *viraast.VarDecl:
		// Initializer is checked before the name is declared, so a
		// declaration cannot reference itself
		if s.Value != nil {
			if err := c.checkExpr(s.Value, sc); err != nil {
				return err
			}
		}
		sc.declare(s.Name)
		return nil

	case *viraast.FuncDef:
		// Function name is visible inside its own body, so direct
		// recursion resolves
		sc.declare(s.Name)

		body := newScope(sc)
		for _, param := range s.Params {
			body.declare(param)
		}
		for _, inner := range s.Body {
			if err := c.checkStmt(inner, body); err != nil {
				return err
			}
		}
		return nil

	case *viraast.Import:
		sc.declare(s.Lib)
		return nil

	case *viraast.Write:
		if s.Value == nil {
			return c.arityError("write statement must carry exactly one expression", s.Position())
		}
		return c.checkExpr(s.Value, sc)

	case *viraast.Return:
		if s.Value == nil {
			return c.arityError("return statement must carry exactly one expression", s.Position())
		}
		return c.checkExpr(s.Value, sc)

	case *viraast.ExprStmt:
		if s.Expr == nil {
			return c.arityError("expression statement has no expression", s.Position())
		}
		return c.checkExpr(s.Expr, sc)

	default:
		return c.unsupported(stmt)
	}
}

func (c *Checker) checkExpr(expr viraast.Expr, sc *scope) error {
	switch e := expr.(type) {
	case *viraast.NumberLiteral, *viraast.StringLiteral:
		return nil

	case *viraast.Identifier:
		if !sc.resolve(e.Name) {
			return viraerror.Newf("undefined identifier %q", e.Name).
				WithCode(viraerror.CodeUndefinedIdentifier).
				WithPosition("", e.Pos.Line, e.Pos.Column).
				WithDetail("identifier", e.Name)
		}
		return nil

	case *viraast.BinaryExpr:
		if e.Left == nil || e.Right == nil {
			return c.arityError("binary operation must have exactly two children", e.Position())
		}
		if err := c.checkExpr(e.Left, sc); err != nil {
			return err
		}
		return c.checkExpr(e.Right, sc)

	case *viraast.CallExpr:
		if !sc.resolve(e.Callee) {
			return viraerror.Newf("undefined identifier %q", e.Callee).
				WithCode(viraerror.CodeUndefinedIdentifier).
				WithPosition("", e.Pos.Line, e.Pos.Column).
				WithDetail("identifier", e.Callee)
		}
		for _, arg := range e.Args {
			if err := c.checkExpr(arg, sc); err != nil {
				return err
			}
		}
		return nil

	default:
		return c.unsupported(expr)
	}
}

func (c *Checker) arityError(message string, pos viraast.Position) error {
	return viraerror.New(message).
		WithCode(viraerror.CodeSemantic).
		WithPosition("", pos.Line, pos.Column)
}

func (c *Checker) unsupported(node viraast.Node) error {
	pos := viraast.Position{}
	if node != nil {
		pos = node.Position()
	}
	return viraerror.Newf("unsupported construct %T", node).
		WithCode(viraerror.CodeUnsupportedConstruct).
		WithPosition("", pos.Line, pos.Column)
}
