// File: parser.go
// Title: Vira Recursive Descent Parser
// Description: Implements the parsing phase of the Vira front end.
//              Converts token streams into abstract syntax trees using
//              recursive descent parsing with panic-mode error recovery
//              so one pass can surface multiple syntax errors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	viralog "github.com/msto63/vira/foundation/core/log"
	viraast "github.com/msto63/vira/frontend/ast"
)

// SyntaxError represents a parsing error with position information
type SyntaxError struct {
	Message string
	Line    int
	Column  int
	Token   Token
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s (near '%s')",
		se.Line, se.Column, se.Message, se.Token.Value)
}

// Options configures parser behavior
type Options struct {
	Logger *viralog.Logger
}

// Parser implements recursive descent parsing for Vira
type Parser struct {
	tokens  []Token
	pos     int
	errors  []*SyntaxError
	logger  *viralog.Logger
	options Options
}

// New creates a parser over a token sequence. Comment tokens are
// tolerated and skipped; the sequence is expected to end with EOF.
func New(tokens []Token, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = viralog.GetDefault()
	}

	return &Parser{
		tokens:  tokens,
		logger:  opts.Logger.WithField("component", "parser"),
		options: opts,
	}
}

// Parse consumes the full token sequence and returns a Program. On
// syntax errors the parser recovers at statement boundaries and keeps
// going, so the returned Program is partial and the error slice holds
// one entry per failed statement. A nil error slice means the parse
// was clean.
func (p *Parser) Parse() (*viraast.Program, []*SyntaxError) {
	program := &viraast.Program{}

	p.logger.Debug("Starting parse", viralog.Fields{
		"tokens": len(p.tokens),
	})

	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}

	if len(p.errors) > 0 {
		p.logger.Warn("Parse completed with errors", viralog.Fields{
			"statements": len(program.Statements),
			"errors":     len(p.errors),
		})
	} else {
		p.logger.Debug("Parse completed", viralog.Fields{
			"statements": len(program.Statements),
		})
	}

	return program, p.errors
}

// Errors returns the syntax errors collected so far
func (p *Parser) Errors() []*SyntaxError {
	return p.errors
}

// declaration parses one top-level declaration or statement. On a
// syntax error it records the error, synchronizes to the next statement
// boundary, and returns nil so the caller drops the failed statement.
func (p *Parser) declaration() viraast.Stmt {
	stmt, err := p.parseDeclaration()
	if err != nil {
		p.errors = append(p.errors, err)
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) parseDeclaration() (viraast.Stmt, *SyntaxError) {
	switch {
	case p.match(TokenLet):
		return p.varDecl()
	case p.match(TokenDef):
		return p.funcDef()
	case p.match(TokenImport):
		return p.importStmt()
	default:
		return p.statement()
	}
}

// varDecl parses: let IDENT ('=' expression)? ';'
func (p *Parser) varDecl() (viraast.Stmt, *SyntaxError) {
	pos := p.previousPosition()

	name, err := p.consume(TokenIdentifier, "expected variable name")
	if err != nil {
		return nil, err
	}

	var value viraast.Expr
	if p.match(TokenAssign) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenSemicolon, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}

	return &viraast.VarDecl{Name: name.Value, Value: value, Pos: pos}, nil
}

// funcDef parses: def IDENT '(' params? ')' '{' declaration* '}'
func (p *Parser) funcDef() (viraast.Stmt, *SyntaxError) {
	pos := p.previousPosition()

	name, err := p.consume(TokenIdentifier, "expected function name")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenLeftParen, "expected '(' after function name"); err != nil {
		return nil, err
	}

	var params []string
	if !p.match(TokenRightParen) {
		for {
			param, err := p.consume(TokenIdentifier, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param.Value)
			if !p.match(TokenComma) {
				break
			}
		}
		if _, err := p.consume(TokenRightParen, "expected ')' after parameters"); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenLeftBrace, "expected '{' before function body"); err != nil {
		return nil, err
	}

	// Body statements recover independently, matching top level
	var body []viraast.Stmt
	for !p.match(TokenRightBrace) {
		if p.isAtEnd() {
			return nil, p.errorAtCurrent("expected '}' to close function body")
		}
		stmt := p.declaration()
		if stmt != nil {
			body = append(body, stmt)
		}
	}

	return &viraast.FuncDef{Name: name.Value, Params: params, Body: body, Pos: pos}, nil
}

// importStmt parses the tail of: ':lib:' ';'
func (p *Parser) importStmt() (viraast.Stmt, *SyntaxError) {
	marker := p.previous()

	if _, err := p.consume(TokenSemicolon, "expected ';' after import"); err != nil {
		return nil, err
	}

	return &viraast.Import{Lib: marker.Value, Pos: tokenPosition(marker)}, nil
}

func (p *Parser) statement() (viraast.Stmt, *SyntaxError) {
	switch {
	case p.match(TokenWrite):
		return p.writeStmt()
	case p.match(TokenReturn):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

// writeStmt parses: write expression ';'
func (p *Parser) writeStmt() (viraast.Stmt, *SyntaxError) {
	pos := p.previousPosition()

	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "expected ';' after write"); err != nil {
		return nil, err
	}

	return &viraast.Write{Value: value, Pos: pos}, nil
}

// returnStmt parses: return expression ';'
func (p *Parser) returnStmt() (viraast.Stmt, *SyntaxError) {
	pos := p.previousPosition()

	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "expected ';' after return"); err != nil {
		return nil, err
	}

	return &viraast.Return{Value: value, Pos: pos}, nil
}

// exprStmt parses: expression ';'
func (p *Parser) exprStmt() (viraast.Stmt, *SyntaxError) {
	pos := p.currentPosition()

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "expected ';' after expression"); err != nil {
		return nil, err
	}

	return &viraast.ExprStmt{Expr: expr, Pos: pos}, nil
}

// Expression grammar, highest binding last:
//
//	expression     := equality
//	equality       := additive            (equality operators reserved)
//	additive       := multiplicative (('+' | '-') multiplicative)*
//	multiplicative := unary (('*' | '/') unary)*
//	unary          := '-' unary | primary
//	primary        := NUMBER | STRING | IDENTIFIER ('(' args ')')? | '(' expression ')'

func (p *Parser) expression() (viraast.Expr, *SyntaxError) {
	return p.equality()
}

// equality is a pass-through level: equality operators are reserved in
// the grammar but not yet part of the language.
func (p *Parser) equality() (viraast.Expr, *SyntaxError) {
	return p.additive()
}

func (p *Parser) additive() (viraast.Expr, *SyntaxError) {
	expr, err := p.multiplicative()
	if err != nil {
		return nil, err
	}

	for p.match(TokenPlus) || p.match(TokenMinus) {
		op := p.previous()
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		expr = &viraast.BinaryExpr{Left: expr, Op: op.Value, Right: right, Pos: tokenPosition(op)}
	}

	return expr, nil
}

func (p *Parser) multiplicative() (viraast.Expr, *SyntaxError) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.match(TokenStar) || p.match(TokenSlash) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &viraast.BinaryExpr{Left: expr, Op: op.Value, Right: right, Pos: tokenPosition(op)}
	}

	return expr, nil
}

// unary lowers negation to a subtraction from zero, so the AST carries
// only binary arithmetic.
func (p *Parser) unary() (viraast.Expr, *SyntaxError) {
	if p.match(TokenMinus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &viraast.BinaryExpr{
			Left:  &viraast.NumberLiteral{Value: "0", Pos: tokenPosition(op)},
			Op:    "-",
			Right: right,
			Pos:   tokenPosition(op),
		}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (viraast.Expr, *SyntaxError) {
	switch {
	case p.match(TokenNumber):
		tok := p.previous()
		return &viraast.NumberLiteral{Value: tok.Value, Pos: tokenPosition(tok)}, nil

	case p.match(TokenString):
		tok := p.previous()
		return &viraast.StringLiteral{Value: tok.Value, Pos: tokenPosition(tok)}, nil

	case p.match(TokenIdentifier):
		tok := p.previous()
		// Immediate '(' makes this a call, otherwise a plain reference
		if p.match(TokenLeftParen) {
			return p.finishCall(tok)
		}
		return &viraast.Identifier{Name: tok.Value, Pos: tokenPosition(tok)}, nil

	case p.match(TokenLeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenRightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.errorAtCurrent(fmt.Sprintf("unexpected token '%s'", p.peek().Value))
	}
}

// finishCall parses call arguments after the opening paren was consumed
func (p *Parser) finishCall(callee Token) (viraast.Expr, *SyntaxError) {
	var args []viraast.Expr

	if !p.match(TokenRightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(TokenComma) {
				break
			}
		}
		if _, err := p.consume(TokenRightParen, "expected ')' after arguments"); err != nil {
			return nil, err
		}
	}

	return &viraast.CallExpr{Callee: callee.Value, Args: args, Pos: tokenPosition(callee)}, nil
}

// synchronize discards tokens until a statement terminator has been
// consumed or a token that begins a new declaration is next, so parsing
// can resume at a clean boundary after an error.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.peek().Type == TokenSemicolon {
			p.advance()
			return
		}
		switch p.peek().Type {
		case TokenLet, TokenDef, TokenWrite, TokenReturn:
			return
		}
		p.advance()
	}
}

// Token cursor helpers

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == TokenEOF
}

func (p *Parser) peek() Token {
	for p.pos < len(p.tokens) {
		if p.tokens[p.pos].Type == TokenComment {
			p.pos++
			continue
		}
		return p.tokens[p.pos]
	}
	return Token{Type: TokenEOF}
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) previous() Token {
	for i := p.pos - 1; i >= 0; i-- {
		if p.tokens[i].Type != TokenComment {
			return p.tokens[i]
		}
	}
	return Token{Type: TokenEOF}
}

func (p *Parser) match(tokenType TokenType) bool {
	if p.peek().Type == tokenType {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(tokenType TokenType, message string) (Token, *SyntaxError) {
	if p.peek().Type == tokenType {
		return p.advance(), nil
	}
	return Token{}, p.errorAtCurrent(message)
}

func (p *Parser) errorAtCurrent(message string) *SyntaxError {
	tok := p.peek()
	return &SyntaxError{
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
		Token:   tok,
	}
}

func (p *Parser) currentPosition() viraast.Position {
	return tokenPosition(p.peek())
}

func (p *Parser) previousPosition() viraast.Position {
	return tokenPosition(p.previous())
}

func tokenPosition(tok Token) viraast.Position {
	return viraast.Position{Line: tok.Line, Column: tok.Column}
}
