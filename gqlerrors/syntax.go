// Package gqlerrors defines the error raised for malformed GraphQL source.
package gqlerrors

import (
	"fmt"
	"strings"

	"github.com/Protocol-Lattice/gqlparser/source"
)

// SyntaxError is returned by the lexer and the parser. It is always fatal
// to the parse that produced it.
type SyntaxError struct {
	Source      *source.Source
	Position    int               // Byte offset of the offending character or token
	Description string            // Human readable reason
	Locations   []source.Location // Display position of Position
}

// NewSyntaxError builds a SyntaxError at a byte offset of src.
func NewSyntaxError(src *source.Source, position int, description string) *SyntaxError {
	return &SyntaxError{
		Source:      src,
		Position:    position,
		Description: description,
		Locations:   []source.Location{src.DisplayPosition(position)},
	}
}

// Message is the text shown to end users, without the location suffix.
func (e *SyntaxError) Message() string {
	return "Syntax Error: " + e.Description
}

// Location returns the first reported location.
func (e *SyntaxError) Location() source.Location {
	if len(e.Locations) == 0 {
		return source.Location{Line: 1, Column: 1}
	}
	return e.Locations[0]
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	loc := e.Location()
	return fmt.Sprintf("%s (%s:%d:%d)", e.Message(), e.Source.Name, loc.Line, loc.Column)
}

// Snippet renders the error with the offending line, one line of context on
// each side, and a caret under the column.
//
//	Syntax Error: Expected Name, found <EOF>. (GraphQL request:2:3)
//
//	   1 | {
//	   2 |   a(
//	     |    ^
func (e *SyntaxError) Snippet() string {
	local := e.Source.Position(e.Position)
	shift := e.Location().Line - local.Line
	lines := e.Source.Lines()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", e.Error())
	if local.Line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", local.Line-1+shift, lines[local.Line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", local.Line+shift, lines[local.Line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", local.Column-1))
	if local.Line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", local.Line+1+shift, lines[local.Line])
	}
	return b.String()
}
