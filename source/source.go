// Package source holds the text being parsed along with its display name.
package source

import (
	"fmt"
	"strings"
)

// DefaultName is used when a Source is created without a name.
const DefaultName = "GraphQL request"

// LocationOffset shifts reported positions for a document embedded in a
// larger file. Both fields are 1-indexed.
type LocationOffset struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Source is the immutable body of a GraphQL document.
type Source struct {
	Body           string
	Name           string
	LocationOffset LocationOffset
}

// Location is a 1-indexed line and column.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// New creates a Source with no location offset.
func New(name, body string) *Source {
	if name == "" {
		name = DefaultName
	}
	return &Source{
		Body:           body,
		Name:           name,
		LocationOffset: LocationOffset{Line: 1, Column: 1},
	}
}

// NewWithOffset creates a Source whose positions are shifted by offset.
func NewWithOffset(name, body string, offset LocationOffset) (*Source, error) {
	if offset.Line < 1 {
		return nil, fmt.Errorf("line in location offset is 1-indexed and must be positive, got %d", offset.Line)
	}
	if offset.Column < 1 {
		return nil, fmt.Errorf("column in location offset is 1-indexed and must be positive, got %d", offset.Column)
	}
	s := New(name, body)
	s.LocationOffset = offset
	return s, nil
}

// Position converts a byte offset into a line and column within the body.
// \n, \r\n and \r each terminate a line.
func (s *Source) Position(offset int) Location {
	if offset > len(s.Body) {
		offset = len(s.Body)
	}
	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		switch s.Body[i] {
		case '\n':
			line++
			lineStart = i + 1
		case '\r':
			if i+1 < len(s.Body) && s.Body[i+1] == '\n' {
				i++
			}
			line++
			lineStart = i + 1
		}
	}
	return Location{Line: line, Column: offset - lineStart + 1}
}

// DisplayPosition is Position with the location offset applied.
func (s *Source) DisplayPosition(offset int) Location {
	loc := s.Position(offset)
	off := s.offset()
	if loc.Line == 1 {
		loc.Column += off.Column - 1
	}
	loc.Line += off.Line - 1
	return loc
}

// Lines splits the body on every line terminator.
func (s *Source) Lines() []string {
	return SplitLines(s.Body)
}

// LineText returns the text of a 1-indexed line, or "" when out of range.
func (s *Source) LineText(line int) string {
	lines := s.Lines()
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func (s *Source) offset() LocationOffset {
	off := s.LocationOffset
	if off.Line < 1 {
		off.Line = 1
	}
	if off.Column < 1 {
		off.Column = 1
	}
	return off
}

// SplitLines splits text on \n, \r\n and \r.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
