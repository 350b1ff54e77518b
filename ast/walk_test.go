package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Protocol-Lattice/gqlparser/ast/kinds"
)

func sampleField() *Field {
	return &Field{
		Alias: &Name{Value: "a"},
		Name:  &Name{Value: "b"},
		Arguments: []*Argument{{
			Name:  &Name{Value: "x"},
			Value: &ListValue{Values: []Value{&IntValue{Value: "1"}, &Variable{Name: &Name{Value: "v"}}}},
		}},
		SelectionSet: &SelectionSet{Selections: []Selection{
			&FragmentSpread{Name: &Name{Value: "F"}},
		}},
	}
}

func TestWalkVisitsInSourceOrder(t *testing.T) {
	t.Parallel()
	var got []kinds.Kind
	Walk(sampleField(), func(n Node) bool {
		got = append(got, n.Kind())
		return true
	})
	require.Equal(t, []kinds.Kind{
		kinds.Field, kinds.Name, kinds.Name,
		kinds.Argument, kinds.Name, kinds.ListValue, kinds.IntValue, kinds.Variable, kinds.Name,
		kinds.SelectionSet, kinds.FragmentSpread, kinds.Name,
	}, got)
}

func TestWalkSkipsChildren(t *testing.T) {
	t.Parallel()
	var got []kinds.Kind
	Walk(sampleField(), func(n Node) bool {
		got = append(got, n.Kind())
		return n.Kind() != kinds.Argument
	})
	require.NotContains(t, got, kinds.ListValue)
	require.Contains(t, got, kinds.FragmentSpread)
}

func TestWalkNilNode(t *testing.T) {
	t.Parallel()
	called := false
	Walk(nil, func(Node) bool {
		called = true
		return true
	})
	require.False(t, called)
}

func TestMarshalJSONIncludesKind(t *testing.T) {
	t.Parallel()
	doc := &Document{Definitions: []Definition{&OperationDefinition{
		Operation:    Query,
		SelectionSet: &SelectionSet{Selections: []Selection{sampleField()}},
	}}}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "Document", decoded["kind"])
	require.NotContains(t, decoded, "loc")

	op := decoded["definitions"].([]any)[0].(map[string]any)
	require.Equal(t, "OperationDefinition", op["kind"])
	require.Equal(t, "query", op["operation"])
	require.NotContains(t, op, "name")

	field := op["selectionSet"].(map[string]any)["selections"].([]any)[0].(map[string]any)
	require.Equal(t, "Field", field["kind"])
	require.Equal(t, map[string]any{"kind": "Name", "value": "a"}, field["alias"])
}

func TestMarshalJSONLocation(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(&Name{Value: "x", Loc: &Location{Start: 2, End: 3}})
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"Name","loc":{"start":2,"end":3},"value":"x"}`, string(data))
}

func TestIsDirectiveLocation(t *testing.T) {
	t.Parallel()
	require.True(t, IsDirectiveLocation("FIELD"))
	require.True(t, IsDirectiveLocation("INPUT_FIELD_DEFINITION"))
	require.False(t, IsDirectiveLocation("field"))
	require.False(t, IsDirectiveLocation("UNKNOWN"))
	require.True(t, LocationVariableDefinition.IsExecutable())
	require.False(t, LocationSchema.IsExecutable())
}

func TestEveryKindHasANode(t *testing.T) {
	t.Parallel()
	nodes := []Node{
		&Name{}, &Document{}, &OperationDefinition{}, &VariableDefinition{}, &SelectionSet{},
		&Field{}, &Argument{}, &FragmentSpread{}, &InlineFragment{}, &FragmentDefinition{},
		&Variable{}, &IntValue{}, &FloatValue{}, &StringValue{}, &BooleanValue{}, &NullValue{},
		&EnumValue{}, &ListValue{}, &ObjectValue{}, &ObjectField{}, &Directive{},
		&NamedType{}, &ListType{}, &NonNullType{}, &SchemaDefinition{}, &OperationTypeDefinition{},
		&ScalarTypeDefinition{}, &ObjectTypeDefinition{}, &FieldDefinition{}, &InputValueDefinition{},
		&InterfaceTypeDefinition{}, &UnionTypeDefinition{}, &EnumTypeDefinition{}, &EnumValueDefinition{},
		&InputObjectTypeDefinition{}, &DirectiveDefinition{}, &SchemaExtension{},
		&ScalarTypeExtension{}, &ObjectTypeExtension{}, &InterfaceTypeExtension{},
		&UnionTypeExtension{}, &EnumTypeExtension{}, &InputObjectTypeExtension{},
	}
	seen := map[kinds.Kind]bool{}
	for _, n := range nodes {
		seen[n.Kind()] = true
	}
	require.Len(t, seen, len(kinds.All))
	for _, k := range kinds.All {
		require.True(t, seen[k], "no node for %s", k)
	}
}
