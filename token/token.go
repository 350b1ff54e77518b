package token

import "fmt"

// TokenType represents the kind of a token in the GraphQL lexer.
type TokenType string

const (
	// Special tokens
	SOF TokenType = "<SOF>" // Start of file
	EOF TokenType = "<EOF>" // End of file

	// Punctuators
	BANG     TokenType = "!"   // Non-null marker
	DOLLAR   TokenType = "$"   // Variable prefix
	AMP      TokenType = "&"   // Interface separator
	LPAREN   TokenType = "("   // Left parenthesis
	RPAREN   TokenType = ")"   // Right parenthesis
	SPREAD   TokenType = "..." // Fragment spread
	COLON    TokenType = ":"   // Colon separator
	ASSIGN   TokenType = "="   // Default value
	AT       TokenType = "@"   // Directive prefix
	LBRACKET TokenType = "["   // Left bracket
	RBRACKET TokenType = "]"   // Right bracket
	LBRACE   TokenType = "{"   // Left brace
	PIPE     TokenType = "|"   // Union and location separator
	RBRACE   TokenType = "}"   // Right brace

	// Identifiers and literals
	NAME        TokenType = "Name"        // Names and keywords
	INT         TokenType = "Int"         // Integer literals
	FLOAT       TokenType = "Float"       // Float literals
	STRING      TokenType = "String"      // Quoted string literals
	BLOCKSTRING TokenType = "BlockString" // Triple-quoted string literals
	COMMENT     TokenType = "Comment"     // # comments, never seen by the parser
)

// None marks an absent Prev or Next link.
const None = -1

// Token represents a single token in the GraphQL source.
type Token struct {
	Type   TokenType // The kind of the token
	Start  int       // Byte offset of the first character
	End    int       // Byte offset just past the last character
	Line   int       // 1-indexed line of Start
	Column int       // 1-indexed column of Start
	Value  string    // Decoded value for names, numbers, strings and comments
	Prev   int       // Index of the previous token in the lexer buffer
	Next   int       // Index of the next token, written once
}

// HasValue reports whether the token kind carries a value.
func (t Token) HasValue() bool {
	switch t.Type {
	case NAME, INT, FLOAT, STRING, BLOCKSTRING, COMMENT:
		return true
	}
	return false
}

// Desc describes a token for error messages, e.g. `Name "foo"`.
func Desc(t Token) string {
	if t.HasValue() {
		return fmt.Sprintf("%s %q", t.Type, t.Value)
	}
	return string(t.Type)
}

// IsPunctuator reports whether the kind is one of the punctuation tokens.
func IsPunctuator(t TokenType) bool {
	switch t {
	case BANG, DOLLAR, AMP, LPAREN, RPAREN, SPREAD, COLON, ASSIGN, AT,
		LBRACKET, RBRACKET, LBRACE, PIPE, RBRACE:
		return true
	}
	return false
}

// String renders the token for dumps.
func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s", t.Line, t.Column, Desc(t))
}
