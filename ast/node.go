package ast

import "github.com/Protocol-Lattice/gqlparser/ast/kinds"

// Kind reports the node variant.

func (*Name) Kind() kinds.Kind { return kinds.Name }
func (*Document) Kind() kinds.Kind { return kinds.Document }
func (*OperationDefinition) Kind() kinds.Kind { return kinds.OperationDefinition }
func (*VariableDefinition) Kind() kinds.Kind { return kinds.VariableDefinition }
func (*Variable) Kind() kinds.Kind { return kinds.Variable }
func (*SelectionSet) Kind() kinds.Kind { return kinds.SelectionSet }
func (*Field) Kind() kinds.Kind { return kinds.Field }
func (*Argument) Kind() kinds.Kind { return kinds.Argument }
func (*FragmentSpread) Kind() kinds.Kind { return kinds.FragmentSpread }
func (*InlineFragment) Kind() kinds.Kind { return kinds.InlineFragment }
func (*FragmentDefinition) Kind() kinds.Kind { return kinds.FragmentDefinition }
func (*IntValue) Kind() kinds.Kind { return kinds.IntValue }
func (*FloatValue) Kind() kinds.Kind { return kinds.FloatValue }
func (*StringValue) Kind() kinds.Kind { return kinds.StringValue }
func (*BooleanValue) Kind() kinds.Kind { return kinds.BooleanValue }
func (*NullValue) Kind() kinds.Kind { return kinds.NullValue }
func (*EnumValue) Kind() kinds.Kind { return kinds.EnumValue }
func (*ListValue) Kind() kinds.Kind { return kinds.ListValue }
func (*ObjectValue) Kind() kinds.Kind { return kinds.ObjectValue }
func (*ObjectField) Kind() kinds.Kind { return kinds.ObjectField }
func (*Directive) Kind() kinds.Kind { return kinds.Directive }
func (*NamedType) Kind() kinds.Kind { return kinds.NamedType }
func (*ListType) Kind() kinds.Kind { return kinds.ListType }
func (*NonNullType) Kind() kinds.Kind { return kinds.NonNullType }
func (*SchemaDefinition) Kind() kinds.Kind { return kinds.SchemaDefinition }
func (*OperationTypeDefinition) Kind() kinds.Kind { return kinds.OperationTypeDefinition }
func (*ScalarTypeDefinition) Kind() kinds.Kind { return kinds.ScalarTypeDefinition }
func (*ObjectTypeDefinition) Kind() kinds.Kind { return kinds.ObjectTypeDefinition }
func (*InterfaceTypeDefinition) Kind() kinds.Kind { return kinds.InterfaceTypeDefinition }
func (*UnionTypeDefinition) Kind() kinds.Kind { return kinds.UnionTypeDefinition }
func (*EnumTypeDefinition) Kind() kinds.Kind { return kinds.EnumTypeDefinition }
func (*InputObjectTypeDefinition) Kind() kinds.Kind { return kinds.InputObjectTypeDefinition }
func (*FieldDefinition) Kind() kinds.Kind { return kinds.FieldDefinition }
func (*InputValueDefinition) Kind() kinds.Kind { return kinds.InputValueDefinition }
func (*EnumValueDefinition) Kind() kinds.Kind { return kinds.EnumValueDefinition }
func (*DirectiveDefinition) Kind() kinds.Kind { return kinds.DirectiveDefinition }
func (*SchemaExtension) Kind() kinds.Kind { return kinds.SchemaExtension }
func (*ScalarTypeExtension) Kind() kinds.Kind { return kinds.ScalarTypeExtension }
func (*ObjectTypeExtension) Kind() kinds.Kind { return kinds.ObjectTypeExtension }
func (*InterfaceTypeExtension) Kind() kinds.Kind { return kinds.InterfaceTypeExtension }
func (*UnionTypeExtension) Kind() kinds.Kind { return kinds.UnionTypeExtension }
func (*EnumTypeExtension) Kind() kinds.Kind { return kinds.EnumTypeExtension }
func (*InputObjectTypeExtension) Kind() kinds.Kind { return kinds.InputObjectTypeExtension }

// GetLoc returns nil when locations were not recorded.

func (n *Name) GetLoc() *Location { return n.Loc }
func (n *Document) GetLoc() *Location { return n.Loc }
func (n *OperationDefinition) GetLoc() *Location { return n.Loc }
func (n *VariableDefinition) GetLoc() *Location { return n.Loc }
func (n *Variable) GetLoc() *Location { return n.Loc }
func (n *SelectionSet) GetLoc() *Location { return n.Loc }
func (n *Field) GetLoc() *Location { return n.Loc }
func (n *Argument) GetLoc() *Location { return n.Loc }
func (n *FragmentSpread) GetLoc() *Location { return n.Loc }
func (n *InlineFragment) GetLoc() *Location { return n.Loc }
func (n *FragmentDefinition) GetLoc() *Location { return n.Loc }
func (n *IntValue) GetLoc() *Location { return n.Loc }
func (n *FloatValue) GetLoc() *Location { return n.Loc }
func (n *StringValue) GetLoc() *Location { return n.Loc }
func (n *BooleanValue) GetLoc() *Location { return n.Loc }
func (n *NullValue) GetLoc() *Location { return n.Loc }
func (n *EnumValue) GetLoc() *Location { return n.Loc }
func (n *ListValue) GetLoc() *Location { return n.Loc }
func (n *ObjectValue) GetLoc() *Location { return n.Loc }
func (n *ObjectField) GetLoc() *Location { return n.Loc }
func (n *Directive) GetLoc() *Location { return n.Loc }
func (n *NamedType) GetLoc() *Location { return n.Loc }
func (n *ListType) GetLoc() *Location { return n.Loc }
func (n *NonNullType) GetLoc() *Location { return n.Loc }
func (n *SchemaDefinition) GetLoc() *Location { return n.Loc }
func (n *OperationTypeDefinition) GetLoc() *Location { return n.Loc }
func (n *ScalarTypeDefinition) GetLoc() *Location { return n.Loc }
func (n *ObjectTypeDefinition) GetLoc() *Location { return n.Loc }
func (n *InterfaceTypeDefinition) GetLoc() *Location { return n.Loc }
func (n *UnionTypeDefinition) GetLoc() *Location { return n.Loc }
func (n *EnumTypeDefinition) GetLoc() *Location { return n.Loc }
func (n *InputObjectTypeDefinition) GetLoc() *Location { return n.Loc }
func (n *FieldDefinition) GetLoc() *Location { return n.Loc }
func (n *InputValueDefinition) GetLoc() *Location { return n.Loc }
func (n *EnumValueDefinition) GetLoc() *Location { return n.Loc }
func (n *DirectiveDefinition) GetLoc() *Location { return n.Loc }
func (n *SchemaExtension) GetLoc() *Location { return n.Loc }
func (n *ScalarTypeExtension) GetLoc() *Location { return n.Loc }
func (n *ObjectTypeExtension) GetLoc() *Location { return n.Loc }
func (n *InterfaceTypeExtension) GetLoc() *Location { return n.Loc }
func (n *UnionTypeExtension) GetLoc() *Location { return n.Loc }
func (n *EnumTypeExtension) GetLoc() *Location { return n.Loc }
func (n *InputObjectTypeExtension) GetLoc() *Location { return n.Loc }

// Marker methods close the node interfaces over this package.

func (*OperationDefinition) definitionNode() {}
func (*FragmentDefinition) definitionNode() {}
func (*SchemaDefinition) definitionNode() {}
func (*ScalarTypeDefinition) definitionNode() {}
func (*ObjectTypeDefinition) definitionNode() {}
func (*InterfaceTypeDefinition) definitionNode() {}
func (*UnionTypeDefinition) definitionNode() {}
func (*EnumTypeDefinition) definitionNode() {}
func (*InputObjectTypeDefinition) definitionNode() {}
func (*DirectiveDefinition) definitionNode() {}
func (*SchemaExtension) definitionNode() {}
func (*ScalarTypeExtension) definitionNode() {}
func (*ObjectTypeExtension) definitionNode() {}
func (*InterfaceTypeExtension) definitionNode() {}
func (*UnionTypeExtension) definitionNode() {}
func (*EnumTypeExtension) definitionNode() {}
func (*InputObjectTypeExtension) definitionNode() {}

func (*OperationDefinition) executableNode() {}
func (*FragmentDefinition) executableNode() {}

func (*SchemaDefinition) typeSystemNode() {}
func (*ScalarTypeDefinition) typeSystemNode() {}
func (*ObjectTypeDefinition) typeSystemNode() {}
func (*InterfaceTypeDefinition) typeSystemNode() {}
func (*UnionTypeDefinition) typeSystemNode() {}
func (*EnumTypeDefinition) typeSystemNode() {}
func (*InputObjectTypeDefinition) typeSystemNode() {}
func (*DirectiveDefinition) typeSystemNode() {}
func (*SchemaExtension) typeSystemNode() {}
func (*ScalarTypeExtension) typeSystemNode() {}
func (*ObjectTypeExtension) typeSystemNode() {}
func (*InterfaceTypeExtension) typeSystemNode() {}
func (*UnionTypeExtension) typeSystemNode() {}
func (*EnumTypeExtension) typeSystemNode() {}
func (*InputObjectTypeExtension) typeSystemNode() {}

func (*ScalarTypeDefinition) typeDefinitionNode() {}
func (*ObjectTypeDefinition) typeDefinitionNode() {}
func (*InterfaceTypeDefinition) typeDefinitionNode() {}
func (*UnionTypeDefinition) typeDefinitionNode() {}
func (*EnumTypeDefinition) typeDefinitionNode() {}
func (*InputObjectTypeDefinition) typeDefinitionNode() {}

func (*ScalarTypeExtension) typeExtensionNode() {}
func (*ObjectTypeExtension) typeExtensionNode() {}
func (*InterfaceTypeExtension) typeExtensionNode() {}
func (*UnionTypeExtension) typeExtensionNode() {}
func (*EnumTypeExtension) typeExtensionNode() {}
func (*InputObjectTypeExtension) typeExtensionNode() {}

func (*Field) selectionNode() {}
func (*FragmentSpread) selectionNode() {}
func (*InlineFragment) selectionNode() {}

func (*Variable) valueNode() {}
func (*IntValue) valueNode() {}
func (*FloatValue) valueNode() {}
func (*StringValue) valueNode() {}
func (*BooleanValue) valueNode() {}
func (*NullValue) valueNode() {}
func (*EnumValue) valueNode() {}
func (*ListValue) valueNode() {}
func (*ObjectValue) valueNode() {}

func (*NamedType) typeNode() {}
func (*ListType) typeNode() {}
func (*NonNullType) typeNode() {}
