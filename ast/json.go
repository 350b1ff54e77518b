package ast

import "encoding/json"

// Each node encodes with a "kind" member so consumers can dispatch on it.

func (n *Name) MarshalJSON() ([]byte, error) {
	type node Name
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *Document) MarshalJSON() ([]byte, error) {
	type node Document
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *OperationDefinition) MarshalJSON() ([]byte, error) {
	type node OperationDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *VariableDefinition) MarshalJSON() ([]byte, error) {
	type node VariableDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *Variable) MarshalJSON() ([]byte, error) {
	type node Variable
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *SelectionSet) MarshalJSON() ([]byte, error) {
	type node SelectionSet
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *Field) MarshalJSON() ([]byte, error) {
	type node Field
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *Argument) MarshalJSON() ([]byte, error) {
	type node Argument
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *FragmentSpread) MarshalJSON() ([]byte, error) {
	type node FragmentSpread
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *InlineFragment) MarshalJSON() ([]byte, error) {
	type node InlineFragment
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *FragmentDefinition) MarshalJSON() ([]byte, error) {
	type node FragmentDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *IntValue) MarshalJSON() ([]byte, error) {
	type node IntValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *FloatValue) MarshalJSON() ([]byte, error) {
	type node FloatValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *StringValue) MarshalJSON() ([]byte, error) {
	type node StringValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *BooleanValue) MarshalJSON() ([]byte, error) {
	type node BooleanValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *NullValue) MarshalJSON() ([]byte, error) {
	type node NullValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *EnumValue) MarshalJSON() ([]byte, error) {
	type node EnumValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *ListValue) MarshalJSON() ([]byte, error) {
	type node ListValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *ObjectValue) MarshalJSON() ([]byte, error) {
	type node ObjectValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *ObjectField) MarshalJSON() ([]byte, error) {
	type node ObjectField
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *Directive) MarshalJSON() ([]byte, error) {
	type node Directive
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *NamedType) MarshalJSON() ([]byte, error) {
	type node NamedType
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *ListType) MarshalJSON() ([]byte, error) {
	type node ListType
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *NonNullType) MarshalJSON() ([]byte, error) {
	type node NonNullType
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *SchemaDefinition) MarshalJSON() ([]byte, error) {
	type node SchemaDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *OperationTypeDefinition) MarshalJSON() ([]byte, error) {
	type node OperationTypeDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *ScalarTypeDefinition) MarshalJSON() ([]byte, error) {
	type node ScalarTypeDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *ObjectTypeDefinition) MarshalJSON() ([]byte, error) {
	type node ObjectTypeDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *InterfaceTypeDefinition) MarshalJSON() ([]byte, error) {
	type node InterfaceTypeDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *UnionTypeDefinition) MarshalJSON() ([]byte, error) {
	type node UnionTypeDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *EnumTypeDefinition) MarshalJSON() ([]byte, error) {
	type node EnumTypeDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *InputObjectTypeDefinition) MarshalJSON() ([]byte, error) {
	type node InputObjectTypeDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *FieldDefinition) MarshalJSON() ([]byte, error) {
	type node FieldDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *InputValueDefinition) MarshalJSON() ([]byte, error) {
	type node InputValueDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *EnumValueDefinition) MarshalJSON() ([]byte, error) {
	type node EnumValueDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *DirectiveDefinition) MarshalJSON() ([]byte, error) {
	type node DirectiveDefinition
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *SchemaExtension) MarshalJSON() ([]byte, error) {
	type node SchemaExtension
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *ScalarTypeExtension) MarshalJSON() ([]byte, error) {
	type node ScalarTypeExtension
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *ObjectTypeExtension) MarshalJSON() ([]byte, error) {
	type node ObjectTypeExtension
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *InterfaceTypeExtension) MarshalJSON() ([]byte, error) {
	type node InterfaceTypeExtension
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *UnionTypeExtension) MarshalJSON() ([]byte, error) {
	type node UnionTypeExtension
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *EnumTypeExtension) MarshalJSON() ([]byte, error) {
	type node EnumTypeExtension
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}

func (n *InputObjectTypeExtension) MarshalJSON() ([]byte, error) {
	type node InputObjectTypeExtension
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*node
	}{string(n.Kind()), (*node)(n)})
}
