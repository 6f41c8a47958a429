// File: visitor.go
// Title: Vira AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and
//              processing Vira AST nodes. Provides the visitor
//              interface and a base visitor with full-tree traversal.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial visitor pattern implementation

package ast

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit the root node
	VisitProgram(p *Program) interface{}

	// Visit statement nodes
	VisitVarDecl(v *VarDecl) interface{}
	VisitFuncDef(f *FuncDef) interface{}
	VisitImport(i *Import) interface{}
	VisitWrite(w *Write) interface{}
	VisitReturn(r *Return) interface{}
	VisitExprStmt(e *ExprStmt) interface{}

	// Visit expression nodes
	VisitNumberLiteral(n *NumberLiteral) interface{}
	VisitStringLiteral(s *StringLiteral) interface{}
	VisitIdentifier(i *Identifier) interface{}
	VisitBinaryExpr(b *BinaryExpr) interface{}
	VisitCallExpr(c *CallExpr) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitProgram(p *Program) interface{} {
	for _, stmt := range p.Statements {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitVarDecl(v *VarDecl) interface{} {
	if v.Value != nil {
		return v.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitFuncDef(f *FuncDef) interface{} {
	for _, stmt := range f.Body {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitImport(i *Import) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitWrite(w *Write) interface{} {
	if w.Value != nil {
		return w.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitReturn(r *Return) interface{} {
	if r.Value != nil {
		return r.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitExprStmt(e *ExprStmt) interface{} {
	if e.Expr != nil {
		return e.Expr.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitNumberLiteral(n *NumberLiteral) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitStringLiteral(s *StringLiteral) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitIdentifier(i *Identifier) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitBinaryExpr(b *BinaryExpr) interface{} {
	if b.Left != nil {
		b.Left.Accept(bv)
	}
	if b.Right != nil {
		b.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitCallExpr(c *CallExpr) interface{} {
	for _, arg := range c.Args {
		arg.Accept(bv)
	}
	return nil
}
