// File: printer.go
// Title: Vira AST Tree Printer
// Description: Implements an indented tree dump of the AST as produced
//              by the plsa command's --ast flag. Built as a visitor so
//              the output format stays in one place.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial printer implementation

package ast

import (
	"fmt"
	"strings"
)

// Printer renders an AST as an indented tree, two spaces per level
type Printer struct {
	builder strings.Builder
	indent  int
}

// NewPrinter creates a printer ready for one Print call
func NewPrinter() *Printer {
	return &Printer{}
}

// Print renders the node and returns the accumulated dump
func (p *Printer) Print(node Node) string {
	p.builder.Reset()
	p.indent = 0
	node.Accept(p)
	return p.builder.String()
}

func (p *Printer) line(format string, args ...interface{}) {
	p.builder.WriteString(strings.Repeat(" ", p.indent))
	fmt.Fprintf(&p.builder, format, args...)
	p.builder.WriteByte('\n')
}

func (p *Printer) indented(fn func()) {
	p.indent += 2
	fn()
	p.indent -= 2
}

func (p *Printer) VisitProgram(prog *Program) interface{} {
	p.line("Program:")
	p.indented(func() {
		for _, stmt := range prog.Statements {
			stmt.Accept(p)
		}
	})
	return nil
}

func (p *Printer) VisitVarDecl(v *VarDecl) interface{} {
	p.line("VarDecl: %s", v.Name)
	if v.Value != nil {
		p.indented(func() { v.Value.Accept(p) })
	}
	return nil
}

func (p *Printer) VisitFuncDef(f *FuncDef) interface{} {
	p.line("FuncDef: %s", f.Name)
	p.indented(func() {
		p.line("Params:")
		p.indented(func() {
			for _, param := range f.Params {
				p.line("%s", param)
			}
		})
		p.line("Body:")
		p.indented(func() {
			for _, stmt := range f.Body {
				stmt.Accept(p)
			}
		})
	})
	return nil
}

func (p *Printer) VisitImport(i *Import) interface{} {
	p.line("Import: %s", i.Lib)
	return nil
}

func (p *Printer) VisitWrite(w *Write) interface{} {
	p.line("Write:")
	p.indented(func() { w.Value.Accept(p) })
	return nil
}

func (p *Printer) VisitReturn(r *Return) interface{} {
	p.line("Return:")
	p.indented(func() { r.Value.Accept(p) })
	return nil
}

func (p *Printer) VisitExprStmt(e *ExprStmt) interface{} {
	p.line("ExprStmt:")
	p.indented(func() { e.Expr.Accept(p) })
	return nil
}

func (p *Printer) VisitNumberLiteral(n *NumberLiteral) interface{} {
	p.line("Number: %s", n.Value)
	return nil
}

func (p *Printer) VisitStringLiteral(s *StringLiteral) interface{} {
	p.line("String: %q", s.Value)
	return nil
}

func (p *Printer) VisitIdentifier(i *Identifier) interface{} {
	p.line("Identifier: %s", i.Name)
	return nil
}

func (p *Printer) VisitBinaryExpr(b *BinaryExpr) interface{} {
	p.line("Binary: %s", b.Op)
	p.indented(func() {
		b.Left.Accept(p)
		b.Right.Accept(p)
	})
	return nil
}

func (p *Printer) VisitCallExpr(c *CallExpr) interface{} {
	p.line("Call: %s", c.Callee)
	p.indented(func() {
		for _, arg := range c.Args {
			arg.Accept(p)
		}
	})
	return nil
}
