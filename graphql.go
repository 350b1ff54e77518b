// Package gqlparser is a GraphQL language front end for Go.
// It includes the source model, lexing, parsing into an AST, and an HTTP
// parse service. The subpackages hold the implementation; this package
// re-exports the common entry points.
package gqlparser

import (
	"go.uber.org/zap"

	"github.com/Protocol-Lattice/gqlparser/ast"
	"github.com/Protocol-Lattice/gqlparser/gqlerrors"
	"github.com/Protocol-Lattice/gqlparser/handler"
	"github.com/Protocol-Lattice/gqlparser/lexer"
	"github.com/Protocol-Lattice/gqlparser/parser"
	"github.com/Protocol-Lattice/gqlparser/source"
	"github.com/Protocol-Lattice/gqlparser/token"
)

// ===========================
// Re-exported Types
// ===========================

// Source types
type (
	Source         = source.Source
	Location       = source.Location
	LocationOffset = source.LocationOffset
)

// Token types
type (
	TokenType = token.TokenType
	Token     = token.Token
)

// Token constants
const (
	SOF         = token.SOF
	EOF         = token.EOF
	BANG        = token.BANG
	DOLLAR      = token.DOLLAR
	AMP         = token.AMP
	LPAREN      = token.LPAREN
	RPAREN      = token.RPAREN
	SPREAD      = token.SPREAD
	COLON       = token.COLON
	ASSIGN      = token.ASSIGN
	AT          = token.AT
	LBRACKET    = token.LBRACKET
	RBRACKET    = token.RBRACKET
	LBRACE      = token.LBRACE
	PIPE        = token.PIPE
	RBRACE      = token.RBRACE
	NAME        = token.NAME
	INT         = token.INT
	FLOAT       = token.FLOAT
	STRING      = token.STRING
	BLOCKSTRING = token.BLOCKSTRING
	COMMENT     = token.COMMENT
)

// AST types
type (
	NodeLocation              = ast.Location
	Node                      = ast.Node
	Definition                = ast.Definition
	ExecutableDefinition      = ast.ExecutableDefinition
	TypeSystemDefinition      = ast.TypeSystemDefinition
	TypeDefinition            = ast.TypeDefinition
	TypeExtension             = ast.TypeExtension
	Selection                 = ast.Selection
	Value                     = ast.Value
	Type                      = ast.Type
	OperationType             = ast.OperationType
	Name                      = ast.Name
	Document                  = ast.Document
	OperationDefinition       = ast.OperationDefinition
	VariableDefinition        = ast.VariableDefinition
	Variable                  = ast.Variable
	SelectionSet              = ast.SelectionSet
	Field                     = ast.Field
	Argument                  = ast.Argument
	FragmentSpread            = ast.FragmentSpread
	InlineFragment            = ast.InlineFragment
	FragmentDefinition        = ast.FragmentDefinition
	IntValue                  = ast.IntValue
	FloatValue                = ast.FloatValue
	StringValue               = ast.StringValue
	BooleanValue              = ast.BooleanValue
	NullValue                 = ast.NullValue
	EnumValue                 = ast.EnumValue
	ListValue                 = ast.ListValue
	ObjectValue               = ast.ObjectValue
	ObjectField               = ast.ObjectField
	Directive                 = ast.Directive
	NamedType                 = ast.NamedType
	ListType                  = ast.ListType
	NonNullType               = ast.NonNullType
	SchemaDefinition          = ast.SchemaDefinition
	OperationTypeDefinition   = ast.OperationTypeDefinition
	ScalarTypeDefinition      = ast.ScalarTypeDefinition
	ObjectTypeDefinition      = ast.ObjectTypeDefinition
	FieldDefinition           = ast.FieldDefinition
	InputValueDefinition      = ast.InputValueDefinition
	InterfaceTypeDefinition   = ast.InterfaceTypeDefinition
	UnionTypeDefinition       = ast.UnionTypeDefinition
	EnumTypeDefinition        = ast.EnumTypeDefinition
	EnumValueDefinition       = ast.EnumValueDefinition
	InputObjectTypeDefinition = ast.InputObjectTypeDefinition
	DirectiveDefinition       = ast.DirectiveDefinition
	SchemaExtension           = ast.SchemaExtension
	ScalarTypeExtension       = ast.ScalarTypeExtension
	ObjectTypeExtension       = ast.ObjectTypeExtension
	InterfaceTypeExtension    = ast.InterfaceTypeExtension
	UnionTypeExtension        = ast.UnionTypeExtension
	EnumTypeExtension         = ast.EnumTypeExtension
	InputObjectTypeExtension  = ast.InputObjectTypeExtension
)

// Operation types
const (
	Query        = ast.Query
	Mutation     = ast.Mutation
	Subscription = ast.Subscription
)

// Error type
type SyntaxError = gqlerrors.SyntaxError

// Lexer type
type Lexer = lexer.Lexer

// Parser types
type (
	Parser  = parser.Parser
	Options = parser.Options
)

// Handler types
type (
	Handler        = handler.Handler
	HandlerOptions = handler.Options
)

// ===========================
// Convenience Functions
// ===========================

// NewSource creates a source with the given name and body. An empty name
// becomes "GraphQL request".
func NewSource(name, body string) *Source {
	return source.New(name, body)
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src *Source) *Lexer {
	return lexer.New(src)
}

// NewParser creates a new parser for the given lexer.
func NewParser(l *Lexer, opts Options) *Parser {
	return parser.New(l, opts)
}

// Parse parses a complete document.
func Parse(src *Source, opts Options) (*Document, error) {
	return parser.Parse(src, opts)
}

// ParseString parses a document held in a string with default options.
func ParseString(body string) (*Document, error) {
	return parser.Parse(source.New("", body), Options{})
}

// ParseValue parses a single value literal.
func ParseValue(src *Source, opts Options) (Value, error) {
	return parser.ParseValue(src, opts)
}

// ParseType parses a single type reference.
func ParseType(src *Source, opts Options) (Type, error) {
	return parser.ParseType(src, opts)
}

// Walk visits node and its descendants in depth-first order.
func Walk(node Node, f func(Node) bool) {
	ast.Walk(node, f)
}

// ===========================
// HTTP Handlers
// ===========================

// NewHandler creates the HTTP parse service.
func NewHandler(logger *zap.Logger, opts HandlerOptions) *Handler {
	return handler.New(logger, opts)
}
