// File: doc.go
// Title: AST Package Documentation
// Description: Package documentation for the Vira abstract syntax tree.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

/*
Package ast defines the abstract syntax tree for the Vira language.

The node set is closed: every expression implements Expr and every
statement implements Stmt through unexported marker methods, so a
switch over node types in the checker can treat an unknown shape as a
hard error rather than silently skipping it.

Nodes carry their source position (line and column in the preprocessed
text) and validate their own structural arity. Traversal uses the
visitor pattern; embed BaseVisitor to override only the methods a
concrete visitor cares about. Printer renders the indented tree dump
used by the plsa command's --ast flag.
*/
package ast
