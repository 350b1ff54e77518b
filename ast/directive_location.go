package ast

// DirectiveLocation is a place a directive may be applied.
type DirectiveLocation string

const (
	// Request definitions
	LocationQuery              DirectiveLocation = "QUERY"
	LocationMutation           DirectiveLocation = "MUTATION"
	LocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	LocationField              DirectiveLocation = "FIELD"
	LocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	LocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	LocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	LocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"

	// Type system definitions
	LocationSchema               DirectiveLocation = "SCHEMA"
	LocationScalar               DirectiveLocation = "SCALAR"
	LocationObject               DirectiveLocation = "OBJECT"
	LocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	LocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	LocationInterface            DirectiveLocation = "INTERFACE"
	LocationUnion                DirectiveLocation = "UNION"
	LocationEnum                 DirectiveLocation = "ENUM"
	LocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	LocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	LocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// IsDirectiveLocation reports whether name is a known directive location.
func IsDirectiveLocation(name string) bool {
	switch DirectiveLocation(name) {
	case LocationQuery, LocationMutation, LocationSubscription, LocationField,
		LocationFragmentDefinition, LocationFragmentSpread, LocationInlineFragment,
		LocationVariableDefinition,
		LocationSchema, LocationScalar, LocationObject, LocationFieldDefinition,
		LocationArgumentDefinition, LocationInterface, LocationUnion, LocationEnum,
		LocationEnumValue, LocationInputObject, LocationInputFieldDefinition:
		return true
	}
	return false
}

// IsExecutable reports whether the location belongs to request documents.
func (l DirectiveLocation) IsExecutable() bool {
	switch l {
	case LocationQuery, LocationMutation, LocationSubscription, LocationField,
		LocationFragmentDefinition, LocationFragmentSpread, LocationInlineFragment,
		LocationVariableDefinition:
		return true
	}
	return false
}
