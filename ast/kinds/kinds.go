// Package kinds enumerates every AST node kind.
package kinds

// Kind identifies the variant of an AST node.
type Kind string

const (
	// Name
	Name Kind = "Name"

	// Document
	Document            Kind = "Document"
	OperationDefinition Kind = "OperationDefinition"
	VariableDefinition  Kind = "VariableDefinition"
	SelectionSet        Kind = "SelectionSet"
	Field               Kind = "Field"
	Argument            Kind = "Argument"

	// Fragments
	FragmentSpread     Kind = "FragmentSpread"
	InlineFragment     Kind = "InlineFragment"
	FragmentDefinition Kind = "FragmentDefinition"

	// Values
	Variable     Kind = "Variable"
	IntValue     Kind = "IntValue"
	FloatValue   Kind = "FloatValue"
	StringValue  Kind = "StringValue"
	BooleanValue Kind = "BooleanValue"
	NullValue    Kind = "NullValue"
	EnumValue    Kind = "EnumValue"
	ListValue    Kind = "ListValue"
	ObjectValue  Kind = "ObjectValue"
	ObjectField  Kind = "ObjectField"

	// Directives
	Directive Kind = "Directive"

	// Types
	NamedType   Kind = "NamedType"
	ListType    Kind = "ListType"
	NonNullType Kind = "NonNullType"

	// Type system definitions
	SchemaDefinition        Kind = "SchemaDefinition"
	OperationTypeDefinition Kind = "OperationTypeDefinition"

	// Type definitions
	ScalarTypeDefinition      Kind = "ScalarTypeDefinition"
	ObjectTypeDefinition      Kind = "ObjectTypeDefinition"
	FieldDefinition           Kind = "FieldDefinition"
	InputValueDefinition      Kind = "InputValueDefinition"
	InterfaceTypeDefinition   Kind = "InterfaceTypeDefinition"
	UnionTypeDefinition       Kind = "UnionTypeDefinition"
	EnumTypeDefinition        Kind = "EnumTypeDefinition"
	EnumValueDefinition       Kind = "EnumValueDefinition"
	InputObjectTypeDefinition Kind = "InputObjectTypeDefinition"

	// Directive definitions
	DirectiveDefinition Kind = "DirectiveDefinition"

	// Type system extensions
	SchemaExtension Kind = "SchemaExtension"

	// Type extensions
	ScalarTypeExtension      Kind = "ScalarTypeExtension"
	ObjectTypeExtension      Kind = "ObjectTypeExtension"
	InterfaceTypeExtension   Kind = "InterfaceTypeExtension"
	UnionTypeExtension       Kind = "UnionTypeExtension"
	EnumTypeExtension        Kind = "EnumTypeExtension"
	InputObjectTypeExtension Kind = "InputObjectTypeExtension"
)

// All lists every kind in declaration order.
var All = []Kind{
	Name,
	Document, OperationDefinition, VariableDefinition, SelectionSet, Field, Argument,
	FragmentSpread, InlineFragment, FragmentDefinition,
	Variable, IntValue, FloatValue, StringValue, BooleanValue, NullValue, EnumValue,
	ListValue, ObjectValue, ObjectField,
	Directive,
	NamedType, ListType, NonNullType,
	SchemaDefinition, OperationTypeDefinition,
	ScalarTypeDefinition, ObjectTypeDefinition, FieldDefinition, InputValueDefinition,
	InterfaceTypeDefinition, UnionTypeDefinition, EnumTypeDefinition, EnumValueDefinition,
	InputObjectTypeDefinition,
	DirectiveDefinition,
	SchemaExtension,
	ScalarTypeExtension, ObjectTypeExtension, InterfaceTypeExtension, UnionTypeExtension,
	EnumTypeExtension, InputObjectTypeExtension,
}
