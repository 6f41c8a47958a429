// File: lexer.go
// Title: Vira Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of Vira parsing.
//              Converts preprocessed source text into streams of tokens
//              for the parser. Handles all Vira syntax elements and
//              provides position information for error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"

	viraerror "github.com/msto63/vira/foundation/core/error"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers and literals
	TokenIdentifier // x, mylib, count_2
	TokenNumber     // 123, 123.45
	TokenString     // "string literal"

	// Keywords
	TokenLet    // let
	TokenDef    // def
	TokenWrite  // write
	TokenReturn // return

	// Operators
	TokenAssign // =
	TokenPlus   // +
	TokenMinus  // -
	TokenStar   // *
	TokenSlash  // /
	TokenColon  // :

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
	TokenLeftBrace  // {
	TokenRightBrace // }
	TokenSemicolon  // ;
	TokenComma      // ,

	// Structured tokens
	TokenImport  // :lib: import marker, Value carries the library name
	TokenComment // < comment to end of line, Value carries the text
)

// Token represents a lexical token with position information
type Token struct {
	Type   TokenType // Token type
	Value  string    // Token text
	Line   int       // Line number (1-based)
	Column int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenNumber:
		return "NUMBER"
	case TokenString:
		return "STRING"
	case TokenLet:
		return "LET"
	case TokenDef:
		return "DEF"
	case TokenWrite:
		return "WRITE"
	case TokenReturn:
		return "RETURN"
	case TokenAssign:
		return "ASSIGN"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenColon:
		return "COLON"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenLeftBrace:
		return "LEFT_BRACE"
	case TokenRightBrace:
		return "RIGHT_BRACE"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenComma:
		return "COMMA"
	case TokenImport:
		return "IMPORT"
	case TokenComment:
		return "COMMENT"
	default:
		return "UNKNOWN"
	}
}

// Keywords map for identifier lookup
var keywords = map[string]TokenType{
	"let":    TokenLet,
	"def":    TokenDef,
	"write":  TokenWrite,
	"return": TokenReturn,
}

// lookupIdent reclassifies an identifier to a keyword token type when
// the text matches a reserved word
func lookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return TokenIdentifier
}

// Lexer performs lexical analysis of preprocessed Vira source
type Lexer struct {
	input    string           // Input string
	position int              // Current position in input (points to current char)
	readPos  int              // Current reading position (after current char)
	ch       byte             // Current char under examination
	line     int              // Current line number (1-based)
	column   int              // Current column number (1-based)
	err      *viraerror.Error // Sticky lexical error, set on the first Illegal token
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input. After the end of
// input has been reached it keeps returning EOF tokens.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	line := l.line
	column := l.column

	switch l.ch {
	case '=':
		tok := newToken(TokenAssign, l.ch, line, column)
		l.readChar()
		return tok
	case '+':
		tok := newToken(TokenPlus, l.ch, line, column)
		l.readChar()
		return tok
	case '-':
		tok := newToken(TokenMinus, l.ch, line, column)
		l.readChar()
		return tok
	case '*':
		tok := newToken(TokenStar, l.ch, line, column)
		l.readChar()
		return tok
	case '/':
		tok := newToken(TokenSlash, l.ch, line, column)
		l.readChar()
		return tok
	case '(':
		tok := newToken(TokenLeftParen, l.ch, line, column)
		l.readChar()
		return tok
	case ')':
		tok := newToken(TokenRightParen, l.ch, line, column)
		l.readChar()
		return tok
	case '{':
		tok := newToken(TokenLeftBrace, l.ch, line, column)
		l.readChar()
		return tok
	case '}':
		tok := newToken(TokenRightBrace, l.ch, line, column)
		l.readChar()
		return tok
	case ';':
		tok := newToken(TokenSemicolon, l.ch, line, column)
		l.readChar()
		return tok
	case ',':
		tok := newToken(TokenComma, l.ch, line, column)
		l.readChar()
		return tok
	case ':':
		return l.readColonOrImport(line, column)
	case '<':
		return l.readComment(line, column)
	case '"':
		return l.readString(line, column)
	case 0:
		return Token{Type: TokenEOF, Line: line, Column: column}
	default:
		if isLetter(l.ch) {
			value := l.readIdentifier()
			return Token{Type: lookupIdent(value), Value: value, Line: line, Column: column}
		}
		if isDigit(l.ch) {
			return Token{Type: TokenNumber, Value: l.readNumber(), Line: line, Column: column}
		}
		tok := newToken(TokenIllegal, l.ch, line, column)
		if l.err == nil {
			l.err = viraerror.Newf("illegal character %q", string(l.ch)).
				WithCode(viraerror.CodeLexical).
				WithPosition("", line, column)
		}
		l.readChar()
		return tok
	}
}

// Tokenize returns all tokens from the input as a slice. It stops at
// the first Illegal token and returns the tokens read so far together
// with a lexical error.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenIllegal {
			if l.err != nil {
				return tokens, l.err
			}
			return tokens, viraerror.Newf("illegal token %q", tok.Value).
				WithCode(viraerror.CodeLexical).
				WithPosition("", tok.Line, tok.Column)
		}
	}

	return tokens, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readColonOrImport distinguishes the :lib: import marker from a bare
// colon. When the marker does not close with a second colon, the cursor
// is rewound so the following identifier is tokenized normally.
func (l *Lexer) readColonOrImport(line, column int) Token {
	// Save cursor state for the rewind case
	savedPosition := l.position
	savedReadPos := l.readPos
	savedLine := l.line
	savedColumn := l.column

	l.readChar() // consume ':'

	if !isLetter(l.ch) {
		return Token{Type: TokenColon, Value: ":", Line: line, Column: column}
	}

	lib := l.readIdentifier()
	if l.ch == ':' {
		l.readChar() // consume closing ':'
		return Token{Type: TokenImport, Value: lib, Line: line, Column: column}
	}

	// No closing colon: rewind past the identifier and emit a bare colon
	l.position = savedPosition
	l.readPos = savedReadPos
	l.line = savedLine
	l.column = savedColumn
	l.ch = l.input[l.position]
	l.readChar()
	return Token{Type: TokenColon, Value: ":", Line: line, Column: column}
}

// readComment reads a < comment up to the end of the line
func (l *Lexer) readComment(line, column int) Token {
	l.readChar() // consume '<'

	start := l.position
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return Token{Type: TokenComment, Value: l.input[start:l.position], Line: line, Column: column}
}

// readString reads a double-quoted string literal. Backslash escapes
// pass through a single level: the backslash is dropped and the escaped
// character copied as-is. An unterminated string yields an Illegal
// token and a lexical error reporting the opening line.
func (l *Lexer) readString(line, column int) Token {
	var value []byte

	l.readChar() // consume opening '"'
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				break
			}
		}
		value = append(value, l.ch)
		l.readChar()
	}

	if l.ch == 0 {
		if l.err == nil {
			l.err = viraerror.Newf("unterminated string literal starting at line %d", line).
				WithCode(viraerror.CodeLexical).
				WithPosition("", line, column)
		}
		return Token{Type: TokenIllegal, Value: string(value), Line: line, Column: column}
	}

	l.readChar() // consume closing '"'
	return Token{Type: TokenString, Value: string(value), Line: line, Column: column}
}

// readIdentifier reads an identifier (letters, digits, underscores)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a numeric literal (integer with optional fraction)
func (l *Lexer) readNumber() string {
	start := l.position

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.position]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// newToken creates a single-character token
func newToken(tokenType TokenType, ch byte, line, column int) Token {
	return Token{
		Type:   tokenType,
		Value:  string(ch),
		Line:   line,
		Column: column,
	}
}

// isLetter checks if the character can start or continue an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
