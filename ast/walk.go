package ast

// Walk visits node and its children in source order. Children of a node
// are skipped when f returns false for it.
func Walk(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Name, *IntValue, *FloatValue, *StringValue, *BooleanValue, *NullValue, *EnumValue:
		// leaves
	case *Document:
		walkList(n.Definitions, f)
	case *OperationDefinition:
		walkOptional(n.Name, f)
		walkList(n.VariableDefinitions, f)
		walkList(n.Directives, f)
		walkOptional(n.SelectionSet, f)
	case *VariableDefinition:
		walkOptional(n.Variable, f)
		Walk(n.Type, f)
		Walk(n.DefaultValue, f)
		walkList(n.Directives, f)
	case *Variable:
		walkOptional(n.Name, f)
	case *SelectionSet:
		walkList(n.Selections, f)
	case *Field:
		walkOptional(n.Alias, f)
		walkOptional(n.Name, f)
		walkList(n.Arguments, f)
		walkList(n.Directives, f)
		walkOptional(n.SelectionSet, f)
	case *Argument:
		walkOptional(n.Name, f)
		Walk(n.Value, f)
	case *FragmentSpread:
		walkOptional(n.Name, f)
		walkList(n.Directives, f)
	case *InlineFragment:
		walkOptional(n.TypeCondition, f)
		walkList(n.Directives, f)
		walkOptional(n.SelectionSet, f)
	case *FragmentDefinition:
		walkOptional(n.Name, f)
		walkList(n.VariableDefinitions, f)
		walkOptional(n.TypeCondition, f)
		walkList(n.Directives, f)
		walkOptional(n.SelectionSet, f)
	case *ListValue:
		walkList(n.Values, f)
	case *ObjectValue:
		walkList(n.Fields, f)
	case *ObjectField:
		walkOptional(n.Name, f)
		Walk(n.Value, f)
	case *Directive:
		walkOptional(n.Name, f)
		walkList(n.Arguments, f)
	case *NamedType:
		walkOptional(n.Name, f)
	case *ListType:
		Walk(n.Type, f)
	case *NonNullType:
		Walk(n.Type, f)
	case *SchemaDefinition:
		walkOptional(n.Description, f)
		walkList(n.Directives, f)
		walkList(n.OperationTypes, f)
	case *OperationTypeDefinition:
		walkOptional(n.Type, f)
	case *ScalarTypeDefinition:
		walkOptional(n.Description, f)
		walkOptional(n.Name, f)
		walkList(n.Directives, f)
	case *ObjectTypeDefinition:
		walkOptional(n.Description, f)
		walkOptional(n.Name, f)
		walkList(n.Interfaces, f)
		walkList(n.Directives, f)
		walkList(n.Fields, f)
	case *FieldDefinition:
		walkOptional(n.Description, f)
		walkOptional(n.Name, f)
		walkList(n.Arguments, f)
		Walk(n.Type, f)
		walkList(n.Directives, f)
	case *InputValueDefinition:
		walkOptional(n.Description, f)
		walkOptional(n.Name, f)
		Walk(n.Type, f)
		Walk(n.DefaultValue, f)
		walkList(n.Directives, f)
	case *InterfaceTypeDefinition:
		walkOptional(n.Description, f)
		walkOptional(n.Name, f)
		walkList(n.Directives, f)
		walkList(n.Fields, f)
	case *UnionTypeDefinition:
		walkOptional(n.Description, f)
		walkOptional(n.Name, f)
		walkList(n.Directives, f)
		walkList(n.Types, f)
	case *EnumTypeDefinition:
		walkOptional(n.Description, f)
		walkOptional(n.Name, f)
		walkList(n.Directives, f)
		walkList(n.Values, f)
	case *EnumValueDefinition:
		walkOptional(n.Description, f)
		walkOptional(n.Name, f)
		walkList(n.Directives, f)
	case *InputObjectTypeDefinition:
		walkOptional(n.Description, f)
		walkOptional(n.Name, f)
		walkList(n.Directives, f)
		walkList(n.Fields, f)
	case *DirectiveDefinition:
		walkOptional(n.Description, f)
		walkOptional(n.Name, f)
		walkList(n.Arguments, f)
		walkList(n.Locations, f)
	case *SchemaExtension:
		walkList(n.Directives, f)
		walkList(n.OperationTypes, f)
	case *ScalarTypeExtension:
		walkOptional(n.Name, f)
		walkList(n.Directives, f)
	case *ObjectTypeExtension:
		walkOptional(n.Name, f)
		walkList(n.Interfaces, f)
		walkList(n.Directives, f)
		walkList(n.Fields, f)
	case *InterfaceTypeExtension:
		walkOptional(n.Name, f)
		walkList(n.Directives, f)
		walkList(n.Fields, f)
	case *UnionTypeExtension:
		walkOptional(n.Name, f)
		walkList(n.Directives, f)
		walkList(n.Types, f)
	case *EnumTypeExtension:
		walkOptional(n.Name, f)
		walkList(n.Directives, f)
		walkList(n.Values, f)
	case *InputObjectTypeExtension:
		walkOptional(n.Name, f)
		walkList(n.Directives, f)
		walkList(n.Fields, f)
	}
}

// walkOptional skips nil pointers, which would otherwise reach f as
// non-nil interfaces.
func walkOptional[E any, T interface {
	*E
	Node
}](node *E, f func(Node) bool) {
	if node != nil {
		Walk(T(node), f)
	}
}

func walkList[T Node](nodes []T, f func(Node) bool) {
	for _, n := range nodes {
		Walk(n, f)
	}
}
