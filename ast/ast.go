package ast

import (
	"github.com/Protocol-Lattice/gqlparser/ast/kinds"
	"github.com/Protocol-Lattice/gqlparser/source"
)

// Location is the byte range a node spans in its source.
type Location struct {
	Start  int            `json:"start"`
	End    int            `json:"end"`
	Source *source.Source `json:"-"`
}

// Node is the base interface for all AST nodes.
type Node interface {
	Kind() kinds.Kind
	GetLoc() *Location
}

// Definition is an interface for all top-level definitions in a GraphQL document.
type Definition interface {
	Node
	definitionNode()
}

// ExecutableDefinition is an operation or a fragment definition.
type ExecutableDefinition interface {
	Definition
	executableNode()
}

// TypeSystemDefinition is a schema, type, directive or extension definition.
type TypeSystemDefinition interface {
	Definition
	typeSystemNode()
}

// TypeDefinition declares a named type.
type TypeDefinition interface {
	TypeSystemDefinition
	typeDefinitionNode()
}

// TypeExtension extends a named type.
type TypeExtension interface {
	TypeSystemDefinition
	typeExtensionNode()
}

// Selection is a field, a fragment spread or an inline fragment.
type Selection interface {
	Node
	selectionNode()
}

// Value is a literal or variable value.
type Value interface {
	Node
	valueNode()
}

// Type is a named, list or non-null type reference.
type Type interface {
	Node
	typeNode()
}

// OperationType is "query", "mutation" or "subscription".
type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

// Name is an identifier.
type Name struct {
	Loc   *Location `json:"loc,omitempty"`
	Value string    `json:"value"`
}

// Document represents a complete GraphQL document.
type Document struct {
	Loc         *Location    `json:"loc,omitempty"`
	Definitions []Definition `json:"definitions"`
}

// OperationDefinition represents a query, mutation or subscription.
type OperationDefinition struct {
	Loc                 *Location             `json:"loc,omitempty"`
	Operation           OperationType         `json:"operation"`
	Name                *Name                 `json:"name,omitempty"`
	VariableDefinitions []*VariableDefinition `json:"variableDefinitions"`
	Directives          []*Directive          `json:"directives"`
	SelectionSet        *SelectionSet         `json:"selectionSet"`
}

// VariableDefinition represents a variable definition in an operation.
type VariableDefinition struct {
	Loc          *Location    `json:"loc,omitempty"`
	Variable     *Variable    `json:"variable"`
	Type         Type         `json:"type"`
	DefaultValue Value        `json:"defaultValue,omitempty"`
	Directives   []*Directive `json:"directives"`
}

// Variable is a $name reference.
type Variable struct {
	Loc  *Location `json:"loc,omitempty"`
	Name *Name     `json:"name"`
}

// SelectionSet is a brace-delimited list of selections.
type SelectionSet struct {
	Loc        *Location   `json:"loc,omitempty"`
	Selections []Selection `json:"selections"`
}

// Field represents a selected field, with an optional alias.
type Field struct {
	Loc          *Location     `json:"loc,omitempty"`
	Alias        *Name         `json:"alias,omitempty"`
	Name         *Name         `json:"name"`
	Arguments    []*Argument   `json:"arguments"`
	Directives   []*Directive  `json:"directives"`
	SelectionSet *SelectionSet `json:"selectionSet,omitempty"`
}

// Argument is a name: value pair passed to a field or directive.
type Argument struct {
	Loc   *Location `json:"loc,omitempty"`
	Name  *Name     `json:"name"`
	Value Value     `json:"value"`
}

// FragmentSpread is ...FragmentName.
type FragmentSpread struct {
	Loc        *Location    `json:"loc,omitempty"`
	Name       *Name        `json:"name"`
	Directives []*Directive `json:"directives"`
}

// InlineFragment is ... [on Type] { ... }.
type InlineFragment struct {
	Loc           *Location     `json:"loc,omitempty"`
	TypeCondition *NamedType    `json:"typeCondition,omitempty"`
	Directives    []*Directive  `json:"directives"`
	SelectionSet  *SelectionSet `json:"selectionSet"`
}

// FragmentDefinition is fragment Name on Type { ... }.
// VariableDefinitions is only set with experimental fragment variables.
type FragmentDefinition struct {
	Loc                 *Location             `json:"loc,omitempty"`
	Name                *Name                 `json:"name"`
	VariableDefinitions []*VariableDefinition `json:"variableDefinitions,omitempty"`
	TypeCondition       *NamedType            `json:"typeCondition"`
	Directives          []*Directive          `json:"directives"`
	SelectionSet        *SelectionSet         `json:"selectionSet"`
}

// IntValue keeps the literal as written.
type IntValue struct {
	Loc   *Location `json:"loc,omitempty"`
	Value string    `json:"value"`
}

// FloatValue keeps the literal as written.
type FloatValue struct {
	Loc   *Location `json:"loc,omitempty"`
	Value string    `json:"value"`
}

// StringValue holds the decoded string. Block is set for """ strings.
type StringValue struct {
	Loc   *Location `json:"loc,omitempty"`
	Value string    `json:"value"`
	Block bool      `json:"block"`
}

type BooleanValue struct {
	Loc   *Location `json:"loc,omitempty"`
	Value bool      `json:"value"`
}

type NullValue struct {
	Loc *Location `json:"loc,omitempty"`
}

type EnumValue struct {
	Loc   *Location `json:"loc,omitempty"`
	Value string    `json:"value"`
}

type ListValue struct {
	Loc    *Location `json:"loc,omitempty"`
	Values []Value   `json:"values"`
}

type ObjectValue struct {
	Loc    *Location      `json:"loc,omitempty"`
	Fields []*ObjectField `json:"fields"`
}

type ObjectField struct {
	Loc   *Location `json:"loc,omitempty"`
	Name  *Name     `json:"name"`
	Value Value     `json:"value"`
}

// Directive is @name(args).
type Directive struct {
	Loc       *Location   `json:"loc,omitempty"`
	Name      *Name       `json:"name"`
	Arguments []*Argument `json:"arguments"`
}

// NamedType references a type by name.
type NamedType struct {
	Loc  *Location `json:"loc,omitempty"`
	Name *Name     `json:"name"`
}

// ListType wraps a type in [].
type ListType struct {
	Loc  *Location `json:"loc,omitempty"`
	Type Type      `json:"type"`
}

// NonNullType wraps a named or list type with !.
type NonNullType struct {
	Loc  *Location `json:"loc,omitempty"`
	Type Type      `json:"type"`
}

// SchemaDefinition is schema { query: Query ... }.
type SchemaDefinition struct {
	Loc            *Location                  `json:"loc,omitempty"`
	Description    *StringValue               `json:"description,omitempty"`
	Directives     []*Directive               `json:"directives"`
	OperationTypes []*OperationTypeDefinition `json:"operationTypes"`
}

// OperationTypeDefinition binds an operation to its root type.
type OperationTypeDefinition struct {
	Loc       *Location     `json:"loc,omitempty"`
	Operation OperationType `json:"operation"`
	Type      *NamedType    `json:"type"`
}

type ScalarTypeDefinition struct {
	Loc         *Location    `json:"loc,omitempty"`
	Description *StringValue `json:"description,omitempty"`
	Name        *Name        `json:"name"`
	Directives  []*Directive `json:"directives"`
}

type ObjectTypeDefinition struct {
	Loc         *Location          `json:"loc,omitempty"`
	Description *StringValue       `json:"description,omitempty"`
	Name        *Name              `json:"name"`
	Interfaces  []*NamedType       `json:"interfaces"`
	Directives  []*Directive       `json:"directives"`
	Fields      []*FieldDefinition `json:"fields"`
}

type FieldDefinition struct {
	Loc         *Location               `json:"loc,omitempty"`
	Description *StringValue            `json:"description,omitempty"`
	Name        *Name                   `json:"name"`
	Arguments   []*InputValueDefinition `json:"arguments"`
	Type        Type                    `json:"type"`
	Directives  []*Directive            `json:"directives"`
}

// InputValueDefinition is an argument or input field definition.
type InputValueDefinition struct {
	Loc          *Location    `json:"loc,omitempty"`
	Description  *StringValue `json:"description,omitempty"`
	Name         *Name        `json:"name"`
	Type         Type         `json:"type"`
	DefaultValue Value        `json:"defaultValue,omitempty"`
	Directives   []*Directive `json:"directives"`
}

type InterfaceTypeDefinition struct {
	Loc         *Location          `json:"loc,omitempty"`
	Description *StringValue       `json:"description,omitempty"`
	Name        *Name              `json:"name"`
	Directives  []*Directive       `json:"directives"`
	Fields      []*FieldDefinition `json:"fields"`
}

type UnionTypeDefinition struct {
	Loc         *Location    `json:"loc,omitempty"`
	Description *StringValue `json:"description,omitempty"`
	Name        *Name        `json:"name"`
	Directives  []*Directive `json:"directives"`
	Types       []*NamedType `json:"types"`
}

type EnumTypeDefinition struct {
	Loc         *Location              `json:"loc,omitempty"`
	Description *StringValue           `json:"description,omitempty"`
	Name        *Name                  `json:"name"`
	Directives  []*Directive           `json:"directives"`
	Values      []*EnumValueDefinition `json:"values"`
}

type EnumValueDefinition struct {
	Loc         *Location    `json:"loc,omitempty"`
	Description *StringValue `json:"description,omitempty"`
	Name        *Name        `json:"name"`
	Directives  []*Directive `json:"directives"`
}

type InputObjectTypeDefinition struct {
	Loc         *Location               `json:"loc,omitempty"`
	Description *StringValue            `json:"description,omitempty"`
	Name        *Name                   `json:"name"`
	Directives  []*Directive            `json:"directives"`
	Fields      []*InputValueDefinition `json:"fields"`
}

// DirectiveDefinition is directive @name(args) on LOCATION | ...
type DirectiveDefinition struct {
	Loc         *Location               `json:"loc,omitempty"`
	Description *StringValue            `json:"description,omitempty"`
	Name        *Name                   `json:"name"`
	Arguments   []*InputValueDefinition `json:"arguments"`
	Locations   []*Name                 `json:"locations"`
}

type SchemaExtension struct {
	Loc            *Location                  `json:"loc,omitempty"`
	Directives     []*Directive               `json:"directives"`
	OperationTypes []*OperationTypeDefinition `json:"operationTypes"`
}

type ScalarTypeExtension struct {
	Loc        *Location    `json:"loc,omitempty"`
	Name       *Name        `json:"name"`
	Directives []*Directive `json:"directives"`
}

type ObjectTypeExtension struct {
	Loc        *Location          `json:"loc,omitempty"`
	Name       *Name              `json:"name"`
	Interfaces []*NamedType       `json:"interfaces"`
	Directives []*Directive       `json:"directives"`
	Fields     []*FieldDefinition `json:"fields"`
}

type InterfaceTypeExtension struct {
	Loc        *Location          `json:"loc,omitempty"`
	Name       *Name              `json:"name"`
	Directives []*Directive       `json:"directives"`
	Fields     []*FieldDefinition `json:"fields"`
}

type UnionTypeExtension struct {
	Loc        *Location    `json:"loc,omitempty"`
	Name       *Name        `json:"name"`
	Directives []*Directive `json:"directives"`
	Types      []*NamedType `json:"types"`
}

type EnumTypeExtension struct {
	Loc        *Location              `json:"loc,omitempty"`
	Name       *Name                  `json:"name"`
	Directives []*Directive           `json:"directives"`
	Values     []*EnumValueDefinition `json:"values"`
}

type InputObjectTypeExtension struct {
	Loc        *Location               `json:"loc,omitempty"`
	Name       *Name                   `json:"name"`
	Directives []*Directive            `json:"directives"`
	Fields     []*InputValueDefinition `json:"fields"`
}
