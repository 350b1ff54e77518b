package parser

import (
	"github.com/Protocol-Lattice/gqlparser/ast"
	"github.com/Protocol-Lattice/gqlparser/token"
)

// parseTypeSystemDefinition dispatches on the keyword after an optional
// description.
func (p *Parser) parseTypeSystemDefinition() (ast.Definition, error) {
	keyword := p.l.Token()
	if p.peekDescription() {
		var err error
		if keyword, err = p.l.Lookahead(); err != nil {
			return nil, err
		}
	}
	if keyword.Type == token.NAME {
		switch keyword.Value {
		case "schema":
			return p.parseSchemaDefinition()
		case "scalar":
			return p.parseScalarTypeDefinition()
		case "type":
			return p.parseObjectTypeDefinition()
		case "interface":
			return p.parseInterfaceTypeDefinition()
		case "union":
			return p.parseUnionTypeDefinition()
		case "enum":
			return p.parseEnumTypeDefinition()
		case "input":
			return p.parseInputObjectTypeDefinition()
		case "directive":
			return p.parseDirectiveDefinition()
		}
	}
	return nil, p.unexpectedToken(keyword)
}

// parseDescription parses an optional leading description string.
func (p *Parser) parseDescription() (*ast.StringValue, error) {
	if !p.peekDescription() {
		return nil, nil
	}
	return p.parseStringLiteral()
}

// parseSchemaDefinition parses Description? schema Directives? { OperationTypeDefinition+ }.
func (p *Parser) parseSchemaDefinition() (*ast.SchemaDefinition, error) {
	start := p.l.Token()
	def := &ast.SchemaDefinition{}
	var err error
	if def.Description, err = p.parseDescription(); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("schema"); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if def.OperationTypes, err = many(p, token.LBRACE, p.parseOperationTypeDefinition, token.RBRACE); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseOperationTypeDefinition parses OperationType : NamedType.
func (p *Parser) parseOperationTypeDefinition() (*ast.OperationTypeDefinition, error) {
	start := p.l.Token()
	op, err := p.parseOperationType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	return &ast.OperationTypeDefinition{Operation: op, Type: typ, Loc: p.loc(start)}, nil
}

// parseScalarTypeDefinition parses Description? scalar Name Directives?
func (p *Parser) parseScalarTypeDefinition() (*ast.ScalarTypeDefinition, error) {
	start := p.l.Token()
	def := &ast.ScalarTypeDefinition{}
	var err error
	if def.Description, err = p.parseDescription(); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("scalar"); err != nil {
		return nil, err
	}
	if def.Name, err = p.parseName(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseObjectTypeDefinition parses
// Description? type Name ImplementsInterfaces? Directives? FieldsDefinition?
func (p *Parser) parseObjectTypeDefinition() (*ast.ObjectTypeDefinition, error) {
	start := p.l.Token()
	def := &ast.ObjectTypeDefinition{}
	var err error
	if def.Description, err = p.parseDescription(); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("type"); err != nil {
		return nil, err
	}
	if def.Name, err = p.parseName(); err != nil {
		return nil, err
	}
	if def.Interfaces, err = p.parseImplementsInterfaces(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if def.Fields, err = p.parseFieldsDefinition(); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseImplementsInterfaces parses implements &? NamedType (& NamedType)*.
func (p *Parser) parseImplementsInterfaces() ([]*ast.NamedType, error) {
	if !p.peekKeyword("implements") {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.skip(token.AMP); err != nil {
		return nil, err
	}
	var types []*ast.NamedType
	for {
		typ, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, typ)
		more, err := p.skip(token.AMP)
		if err != nil {
			return nil, err
		}
		if !more && !(p.opts.AllowLegacySDLImplementsInterfaces && p.peek(token.NAME)) {
			return types, nil
		}
	}
}

// parseFieldsDefinition parses { FieldDefinition+ } if present.
func (p *Parser) parseFieldsDefinition() ([]*ast.FieldDefinition, error) {
	if p.opts.AllowLegacySDLEmptyFields && p.peek(token.LBRACE) {
		next, err := p.l.Lookahead()
		if err != nil {
			return nil, err
		}
		if next.Type == token.RBRACE {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return nil, p.advance()
		}
	}
	if !p.peek(token.LBRACE) {
		return nil, nil
	}
	return many(p, token.LBRACE, p.parseFieldDefinition, token.RBRACE)
}

// parseFieldDefinition parses Description? Name ArgumentsDefinition? : Type Directives?
func (p *Parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	start := p.l.Token()
	def := &ast.FieldDefinition{}
	var err error
	if def.Description, err = p.parseDescription(); err != nil {
		return nil, err
	}
	if def.Name, err = p.parseName(); err != nil {
		return nil, err
	}
	if def.Arguments, err = p.parseArgumentDefs(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if def.Type, err = p.parseTypeReference(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseArgumentDefs parses ( InputValueDefinition+ ) if present.
func (p *Parser) parseArgumentDefs() ([]*ast.InputValueDefinition, error) {
	if !p.peek(token.LPAREN) {
		return nil, nil
	}
	return many(p, token.LPAREN, p.parseInputValueDef, token.RPAREN)
}

// parseInputValueDef parses Description? Name : Type DefaultValue? Directives?
func (p *Parser) parseInputValueDef() (*ast.InputValueDefinition, error) {
	start := p.l.Token()
	def := &ast.InputValueDefinition{}
	var err error
	if def.Description, err = p.parseDescription(); err != nil {
		return nil, err
	}
	if def.Name, err = p.parseName(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if def.Type, err = p.parseTypeReference(); err != nil {
		return nil, err
	}
	if ok, err := p.skip(token.ASSIGN); err != nil {
		return nil, err
	} else if ok {
		if def.DefaultValue, err = p.parseValueLiteral(true); err != nil {
			return nil, err
		}
	}
	if def.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseInterfaceTypeDefinition parses Description? interface Name Directives? FieldsDefinition?
func (p *Parser) parseInterfaceTypeDefinition() (*ast.InterfaceTypeDefinition, error) {
	start := p.l.Token()
	def := &ast.InterfaceTypeDefinition{}
	var err error
	if def.Description, err = p.parseDescription(); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}
	if def.Name, err = p.parseName(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if def.Fields, err = p.parseFieldsDefinition(); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseUnionTypeDefinition parses Description? union Name Directives? UnionMemberTypes?
func (p *Parser) parseUnionTypeDefinition() (*ast.UnionTypeDefinition, error) {
	start := p.l.Token()
	def := &ast.UnionTypeDefinition{}
	var err error
	if def.Description, err = p.parseDescription(); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("union"); err != nil {
		return nil, err
	}
	if def.Name, err = p.parseName(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if def.Types, err = p.parseUnionMemberTypes(); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseUnionMemberTypes parses = |? NamedType (| NamedType)*.
func (p *Parser) parseUnionMemberTypes() ([]*ast.NamedType, error) {
	if ok, err := p.skip(token.ASSIGN); err != nil || !ok {
		return nil, err
	}
	if _, err := p.skip(token.PIPE); err != nil {
		return nil, err
	}
	var types []*ast.NamedType
	for {
		typ, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, typ)
		if more, err := p.skip(token.PIPE); err != nil || !more {
			return types, err
		}
	}
}

// parseEnumTypeDefinition parses Description? enum Name Directives? EnumValuesDefinition?
func (p *Parser) parseEnumTypeDefinition() (*ast.EnumTypeDefinition, error) {
	start := p.l.Token()
	def := &ast.EnumTypeDefinition{}
	var err error
	if def.Description, err = p.parseDescription(); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}
	if def.Name, err = p.parseName(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if def.Values, err = p.parseEnumValuesDefinition(); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseEnumValuesDefinition parses { EnumValueDefinition+ } if present.
func (p *Parser) parseEnumValuesDefinition() ([]*ast.EnumValueDefinition, error) {
	if !p.peek(token.LBRACE) {
		return nil, nil
	}
	return many(p, token.LBRACE, p.parseEnumValueDefinition, token.RBRACE)
}

// parseEnumValueDefinition parses Description? EnumValue Directives?
func (p *Parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	start := p.l.Token()
	def := &ast.EnumValueDefinition{}
	var err error
	if def.Description, err = p.parseDescription(); err != nil {
		return nil, err
	}
	if def.Name, err = p.parseName(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseInputObjectTypeDefinition parses Description? input Name Directives? InputFieldsDefinition?
func (p *Parser) parseInputObjectTypeDefinition() (*ast.InputObjectTypeDefinition, error) {
	start := p.l.Token()
	def := &ast.InputObjectTypeDefinition{}
	var err error
	if def.Description, err = p.parseDescription(); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("input"); err != nil {
		return nil, err
	}
	if def.Name, err = p.parseName(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if def.Fields, err = p.parseInputFieldsDefinition(); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseInputFieldsDefinition parses { InputValueDefinition+ } if present.
func (p *Parser) parseInputFieldsDefinition() ([]*ast.InputValueDefinition, error) {
	if !p.peek(token.LBRACE) {
		return nil, nil
	}
	return many(p, token.LBRACE, p.parseInputValueDef, token.RBRACE)
}

// parseDirectiveDefinition parses
// Description? directive @ Name ArgumentsDefinition? on DirectiveLocations.
func (p *Parser) parseDirectiveDefinition() (*ast.DirectiveDefinition, error) {
	start := p.l.Token()
	def := &ast.DirectiveDefinition{}
	var err error
	if def.Description, err = p.parseDescription(); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("directive"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.AT); err != nil {
		return nil, err
	}
	if def.Name, err = p.parseName(); err != nil {
		return nil, err
	}
	if def.Arguments, err = p.parseArgumentDefs(); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	if def.Locations, err = p.parseDirectiveLocations(); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseDirectiveLocations parses |? DirectiveLocation (| DirectiveLocation)*.
func (p *Parser) parseDirectiveLocations() ([]*ast.Name, error) {
	if _, err := p.skip(token.PIPE); err != nil {
		return nil, err
	}
	var locations []*ast.Name
	for {
		loc, err := p.parseDirectiveLocation()
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
		if more, err := p.skip(token.PIPE); err != nil || !more {
			return locations, err
		}
	}
}

// parseDirectiveLocation parses a Name that must be a known location.
func (p *Parser) parseDirectiveLocation() (*ast.Name, error) {
	start := p.l.Token()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if !ast.IsDirectiveLocation(name.Value) {
		return nil, p.unexpectedToken(start)
	}
	return name, nil
}
