// File: lexer_test.go
// Title: Lexer Unit Tests
// Description: Tests for Vira tokenization including keywords, literals,
//              import markers, comments, and error cases.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test suite

package parser

import (
	"errors"
	"testing"

	viraerror "github.com/msto63/vira/foundation/core/error"
)

func TestLexer_BasicTokens(t *testing.T) {
	input := `let x = 5 + 3 * 2;`

	expected := []struct {
		tokenType TokenType
		value     string
	}{
		{TokenLet, "let"},
		{TokenIdentifier, "x"},
		{TokenAssign, "="},
		{TokenNumber, "5"},
		{TokenPlus, "+"},
		{TokenNumber, "3"},
		{TokenStar, "*"},
		{TokenNumber, "2"},
		{TokenSemicolon, ";"},
		{TokenEOF, ""},
	}

	lexer := NewLexer(input)
	for i, exp := range expected {
		tok := lexer.NextToken()
		if tok.Type != exp.tokenType {
			t.Fatalf("Token %d: expected type %s, got %s", i, exp.tokenType, tok.Type)
		}
		if tok.Value != exp.value {
			t.Errorf("Token %d: expected value %q, got %q", i, exp.value, tok.Value)
		}
	}
}

func TestLexer_Keywords(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"let", TokenLet},
		{"def", TokenDef},
		{"write", TokenWrite},
		{"return", TokenReturn},
		{"letx", TokenIdentifier},
		{"Write", TokenIdentifier},
		{"_def", TokenIdentifier},
	}

	for _, tt := range tests {
		tok := NewLexer(tt.input).NextToken()
		if tok.Type != tt.want {
			t.Errorf("Lexing %q: expected %s, got %s", tt.input, tt.want, tok.Type)
		}
	}
}

func TestLexer_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: `"hello"`, want: "hello"},
		{name: "empty", input: `""`, want: ""},
		{name: "escaped quote", input: `"say \"hi\""`, want: `say "hi"`},
		{name: "escaped backslash", input: `"a\\b"`, want: `a\b`},
		{name: "escape passes through", input: `"a\nb"`, want: "anb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewLexer(tt.input).NextToken()
			if tok.Type != TokenString {
				t.Fatalf("Expected STRING, got %s", tok.Type)
			}
			if tok.Value != tt.want {
				t.Errorf("Expected value %q, got %q", tt.want, tok.Value)
			}
		})
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	lexer := NewLexer("\n\n\"never closed")

	_, err := lexer.Tokenize()
	if err == nil {
		t.Fatal("Expected lexical error")
	}
	if !viraerror.HasCode(err, viraerror.CodeLexical) {
		t.Errorf("Expected CodeLexical, got %v", err)
	}

	var verr *viraerror.Error
	if !errors.As(err, &verr) {
		t.Fatal("Expected *viraerror.Error")
	}
	if verr.Line() != 3 {
		t.Errorf("Expected error on line 3 where the string began, got %d", verr.Line())
	}
}

func TestLexer_ImportMarker(t *testing.T) {
	lexer := NewLexer(":mathlib:;")

	tok := lexer.NextToken()
	if tok.Type != TokenImport {
		t.Fatalf("Expected IMPORT, got %s", tok.Type)
	}
	if tok.Value != "mathlib" {
		t.Errorf("Expected library name 'mathlib', got %q", tok.Value)
	}

	if tok = lexer.NextToken(); tok.Type != TokenSemicolon {
		t.Errorf("Expected SEMICOLON after import, got %s", tok.Type)
	}
}

func TestLexer_ColonRewind(t *testing.T) {
	// Without a closing colon the marker falls back to a bare colon
	// followed by a normal identifier
	lexer := NewLexer(":abc def")

	tok := lexer.NextToken()
	if tok.Type != TokenColon {
		t.Fatalf("Expected COLON, got %s", tok.Type)
	}

	tok = lexer.NextToken()
	if tok.Type != TokenIdentifier || tok.Value != "abc" {
		t.Fatalf("Expected IDENTIFIER(abc) after rewind, got %s", tok)
	}

	tok = lexer.NextToken()
	if tok.Type != TokenDef {
		t.Errorf("Expected DEF, got %s", tok.Type)
	}
}

func TestLexer_BareColon(t *testing.T) {
	lexer := NewLexer(": 1")

	tok := lexer.NextToken()
	if tok.Type != TokenColon {
		t.Fatalf("Expected COLON, got %s", tok.Type)
	}
	if tok = lexer.NextToken(); tok.Type != TokenNumber {
		t.Errorf("Expected NUMBER, got %s", tok.Type)
	}
}

func TestLexer_Comments(t *testing.T) {
	lexer := NewLexer("let x; < rest of the line\nwrite x;")

	var types []TokenType
	for {
		tok := lexer.NextToken()
		types = append(types, tok.Type)
		if tok.Type == TokenEOF {
			break
		}
		if tok.Type == TokenComment && tok.Value != " rest of the line" {
			t.Errorf("Unexpected comment text %q", tok.Value)
		}
	}

	want := []TokenType{
		TokenLet, TokenIdentifier, TokenSemicolon,
		TokenComment,
		TokenWrite, TokenIdentifier, TokenSemicolon,
		TokenEOF,
	}
	if len(types) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(types), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("Token %d: expected %s, got %s", i, want[i], types[i])
		}
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"42", "42"},
		{"123.45", "123.45"},
		{"7.", "7"}, // Trailing dot is not part of the number
	}

	for _, tt := range tests {
		tok := NewLexer(tt.input).NextToken()
		if tok.Type != TokenNumber {
			t.Errorf("Lexing %q: expected NUMBER, got %s", tt.input, tok.Type)
		}
		if tok.Value != tt.want {
			t.Errorf("Lexing %q: expected value %q, got %q", tt.input, tt.want, tok.Value)
		}
	}
}

func TestLexer_Positions(t *testing.T) {
	lexer := NewLexer("let x;\nwrite x;")

	expected := []struct {
		line   int
		column int
	}{
		{1, 1}, // let
		{1, 5}, // x
		{1, 6}, // ;
		{2, 1}, // write
		{2, 7}, // x
		{2, 8}, // ;
	}

	for i, exp := range expected {
		tok := lexer.NextToken()
		if tok.Line != exp.line || tok.Column != exp.column {
			t.Errorf("Token %d (%s): expected position %d:%d, got %d:%d",
				i, tok, exp.line, exp.column, tok.Line, tok.Column)
		}
	}
}

func TestLexer_IllegalCharacter(t *testing.T) {
	tokens, err := NewLexer("let x = 5 @ 3;").Tokenize()
	if err == nil {
		t.Fatal("Expected lexical error")
	}
	if !viraerror.HasCode(err, viraerror.CodeLexical) {
		t.Errorf("Expected CodeLexical, got %v", err)
	}

	last := tokens[len(tokens)-1]
	if last.Type != TokenIllegal || last.Value != "@" {
		t.Errorf("Expected trailing ILLEGAL(@), got %s", last)
	}
}

func TestLexer_EOFIsSticky(t *testing.T) {
	lexer := NewLexer("x")
	lexer.NextToken() // consume identifier

	for i := 0; i < 3; i++ {
		if tok := lexer.NextToken(); tok.Type != TokenEOF {
			t.Fatalf("Call %d after end: expected EOF, got %s", i, tok.Type)
		}
	}
}

func TestLexer_Tokenize(t *testing.T) {
	tokens, err := NewLexer("write 1 + 2;").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if len(tokens) != 6 {
		t.Fatalf("Expected 6 tokens including EOF, got %d", len(tokens))
	}
	if tokens[len(tokens)-1].Type != TokenEOF {
		t.Error("Expected trailing EOF token")
	}
}
