package parser

import (
	"fmt"

	"github.com/Protocol-Lattice/gqlparser/ast"
	"github.com/Protocol-Lattice/gqlparser/gqlerrors"
	"github.com/Protocol-Lattice/gqlparser/lexer"
	"github.com/Protocol-Lattice/gqlparser/source"
	"github.com/Protocol-Lattice/gqlparser/token"
)

// DefaultMaxDepth bounds nesting of selection sets, list and object values
// and list types when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

// Options configures a Parser.
type Options struct {
	// NoLocation leaves every node's Loc nil.
	NoLocation bool

	// MaxDepth limits nesting. Zero means DefaultMaxDepth, negative disables
	// the limit.
	MaxDepth int

	// AllowLegacySDLEmptyFields accepts `type T {}`.
	AllowLegacySDLEmptyFields bool

	// AllowLegacySDLImplementsInterfaces accepts `implements A B` without &.
	AllowLegacySDLImplementsInterfaces bool

	// ExperimentalFragmentVariables accepts variable definitions on
	// fragment definitions.
	ExperimentalFragmentVariables bool
}

// Parser parses GraphQL source code into an AST.
// A Parser is used for a single parse and is not safe for concurrent use.
type Parser struct {
	l     *lexer.Lexer // The lexer to read tokens from
	opts  Options      // Parse options
	depth int          // Current nesting depth
}

// New creates a new Parser for the given lexer.
func New(l *lexer.Lexer, opts Options) *Parser {
	return &Parser{l: l, opts: opts}
}

// Parse parses a complete document.
func Parse(src *source.Source, opts Options) (*ast.Document, error) {
	return New(lexer.New(src), opts).ParseDocument()
}

// ParseValue parses a single value literal, e.g. `[1, "x", {a: $b}]`.
func ParseValue(src *source.Source, opts Options) (ast.Value, error) {
	return New(lexer.New(src), opts).ParseValue()
}

// ParseType parses a single type reference, e.g. `[String!]!`.
func ParseType(src *source.Source, opts Options) (ast.Type, error) {
	return New(lexer.New(src), opts).ParseType()
}

// ParseDocument parses one or more definitions followed by the end of input.
func (p *Parser) ParseDocument() (*ast.Document, error) {
	start := p.l.Token()
	defs, err := many(p, token.SOF, p.parseDefinition, token.EOF)
	if err != nil {
		return nil, err
	}
	return &ast.Document{Definitions: defs, Loc: p.loc(start)}, nil
}

// ParseValue parses a value that must make up the whole input.
func (p *Parser) ParseValue() (ast.Value, error) {
	if _, err := p.expect(token.SOF); err != nil {
		return nil, err
	}
	value, err := p.parseValueLiteral(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}
	return value, nil
}

// ParseType parses a type reference that must make up the whole input.
func (p *Parser) ParseType() (ast.Type, error) {
	if _, err := p.expect(token.SOF); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}
	return typ, nil
}

// loc returns the location from start to the last consumed token.
func (p *Parser) loc(start token.Token) *ast.Location {
	if p.opts.NoLocation {
		return nil
	}
	return &ast.Location{
		Start:  start.Start,
		End:    p.l.LastToken().End,
		Source: p.l.Source(),
	}
}

// peek reports whether the current token has the given kind.
func (p *Parser) peek(t token.TokenType) bool {
	return p.l.Token().Type == t
}

// peekKeyword reports whether the current token is the given name.
func (p *Parser) peekKeyword(value string) bool {
	tok := p.l.Token()
	return tok.Type == token.NAME && tok.Value == value
}

// peekDescription reports whether a description string starts here.
func (p *Parser) peekDescription() bool {
	return p.peek(token.STRING) || p.peek(token.BLOCKSTRING)
}

// advance moves to the next token.
func (p *Parser) advance() error {
	_, err := p.l.Advance()
	return err
}

// skip advances past the current token if it has the given kind.
func (p *Parser) skip(t token.TokenType) (bool, error) {
	if !p.peek(t) {
		return false, nil
	}
	return true, p.advance()
}

// expect consumes a token of the given kind or fails.
func (p *Parser) expect(t token.TokenType) (token.Token, error) {
	tok := p.l.Token()
	if tok.Type != t {
		return tok, p.errorf(tok.Start, "Expected %s, found %s", t, token.Desc(tok))
	}
	return tok, p.advance()
}

// expectKeyword consumes a name with the given value or fails.
func (p *Parser) expectKeyword(value string) (token.Token, error) {
	tok := p.l.Token()
	if tok.Type != token.NAME || tok.Value != value {
		return tok, p.errorf(tok.Start, "Expected %q, found %s", value, token.Desc(tok))
	}
	return tok, p.advance()
}

// unexpected reports the current token as not allowed here.
func (p *Parser) unexpected() error {
	return p.unexpectedToken(p.l.Token())
}

// unexpectedToken reports tok as not allowed here.
func (p *Parser) unexpectedToken(tok token.Token) error {
	return p.errorf(tok.Start, "Unexpected %s", token.Desc(tok))
}

// errorf builds a syntax error at a byte offset.
func (p *Parser) errorf(pos int, format string, args ...any) error {
	return gqlerrors.NewSyntaxError(p.l.Source(), pos, fmt.Sprintf(format, args...))
}

// enter increases the nesting depth, failing when the limit is exceeded.
func (p *Parser) enter() error {
	p.depth++
	limit := p.opts.MaxDepth
	if limit == 0 {
		limit = DefaultMaxDepth
	}
	if limit > 0 && p.depth > limit {
		return p.errorf(p.l.Token().Start, "Exceeded maximum nesting depth of %d", limit)
	}
	return nil
}

// leave undoes enter.
func (p *Parser) leave() {
	p.depth--
}

// list parses zero or more nodes between open and close.
func list[T any](p *Parser, open token.TokenType, parseFn func() (T, error), close token.TokenType) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}
	nodes := []T{}
	for {
		done, err := p.skip(close)
		if err != nil {
			return nil, err
		}
		if done {
			return nodes, nil
		}
		node, err := parseFn()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

// many parses one or more nodes between open and close.
func many[T any](p *Parser, open token.TokenType, parseFn func() (T, error), close token.TokenType) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}
	var nodes []T
	for {
		node, err := parseFn()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		done, err := p.skip(close)
		if err != nil {
			return nil, err
		}
		if done {
			return nodes, nil
		}
	}
}
