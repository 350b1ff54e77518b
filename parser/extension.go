package parser

import (
	"github.com/Protocol-Lattice/gqlparser/ast"
	"github.com/Protocol-Lattice/gqlparser/token"
)

// parseTypeSystemExtension dispatches on the keyword after `extend`.
func (p *Parser) parseTypeSystemExtension() (ast.Definition, error) {
	keyword, err := p.l.Lookahead()
	if err != nil {
		return nil, err
	}
	if keyword.Type == token.NAME {
		switch keyword.Value {
		case "schema":
			return p.parseSchemaExtension()
		case "scalar":
			return p.parseScalarTypeExtension()
		case "type":
			return p.parseObjectTypeExtension()
		case "interface":
			return p.parseInterfaceTypeExtension()
		case "union":
			return p.parseUnionTypeExtension()
		case "enum":
			return p.parseEnumTypeExtension()
		case "input":
			return p.parseInputObjectTypeExtension()
		}
	}
	return nil, p.unexpectedToken(keyword)
}

// parseExtensionHeader consumes `extend <keyword>` and, unless keyword is
// schema, the extended type's name.
func (p *Parser) parseExtensionHeader(keyword string) (*ast.Name, error) {
	if _, err := p.expectKeyword("extend"); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword(keyword); err != nil {
		return nil, err
	}
	if keyword == "schema" {
		return nil, nil
	}
	return p.parseName()
}

// parseSchemaExtension parses extend schema Directives? { OperationTypeDefinition+ }?
func (p *Parser) parseSchemaExtension() (*ast.SchemaExtension, error) {
	start := p.l.Token()
	if _, err := p.parseExtensionHeader("schema"); err != nil {
		return nil, err
	}
	ext := &ast.SchemaExtension{}
	var err error
	if ext.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if p.peek(token.LBRACE) {
		if ext.OperationTypes, err = many(p, token.LBRACE, p.parseOperationTypeDefinition, token.RBRACE); err != nil {
			return nil, err
		}
	}
	if len(ext.Directives) == 0 && len(ext.OperationTypes) == 0 {
		return nil, p.unexpected()
	}
	ext.Loc = p.loc(start)
	return ext, nil
}

// parseScalarTypeExtension parses extend scalar Name Directives.
func (p *Parser) parseScalarTypeExtension() (*ast.ScalarTypeExtension, error) {
	start := p.l.Token()
	ext := &ast.ScalarTypeExtension{}
	var err error
	if ext.Name, err = p.parseExtensionHeader("scalar"); err != nil {
		return nil, err
	}
	if ext.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if len(ext.Directives) == 0 {
		return nil, p.unexpected()
	}
	ext.Loc = p.loc(start)
	return ext, nil
}

// parseObjectTypeExtension parses
// extend type Name ImplementsInterfaces? Directives? FieldsDefinition?
// with at least one of the optional parts present.
func (p *Parser) parseObjectTypeExtension() (*ast.ObjectTypeExtension, error) {
	start := p.l.Token()
	ext := &ast.ObjectTypeExtension{}
	var err error
	if ext.Name, err = p.parseExtensionHeader("type"); err != nil {
		return nil, err
	}
	if ext.Interfaces, err = p.parseImplementsInterfaces(); err != nil {
		return nil, err
	}
	if ext.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if ext.Fields, err = p.parseFieldsDefinition(); err != nil {
		return nil, err
	}
	if len(ext.Interfaces) == 0 && len(ext.Directives) == 0 && len(ext.Fields) == 0 {
		return nil, p.unexpected()
	}
	ext.Loc = p.loc(start)
	return ext, nil
}

// parseInterfaceTypeExtension parses extend interface Name Directives? FieldsDefinition?
func (p *Parser) parseInterfaceTypeExtension() (*ast.InterfaceTypeExtension, error) {
	start := p.l.Token()
	ext := &ast.InterfaceTypeExtension{}
	var err error
	if ext.Name, err = p.parseExtensionHeader("interface"); err != nil {
		return nil, err
	}
	if ext.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if ext.Fields, err = p.parseFieldsDefinition(); err != nil {
		return nil, err
	}
	if len(ext.Directives) == 0 && len(ext.Fields) == 0 {
		return nil, p.unexpected()
	}
	ext.Loc = p.loc(start)
	return ext, nil
}

// parseUnionTypeExtension parses extend union Name Directives? UnionMemberTypes?
func (p *Parser) parseUnionTypeExtension() (*ast.UnionTypeExtension, error) {
	start := p.l.Token()
	ext := &ast.UnionTypeExtension{}
	var err error
	if ext.Name, err = p.parseExtensionHeader("union"); err != nil {
		return nil, err
	}
	if ext.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if ext.Types, err = p.parseUnionMemberTypes(); err != nil {
		return nil, err
	}
	if len(ext.Directives) == 0 && len(ext.Types) == 0 {
		return nil, p.unexpected()
	}
	ext.Loc = p.loc(start)
	return ext, nil
}

// parseEnumTypeExtension parses extend enum Name Directives? EnumValuesDefinition?
func (p *Parser) parseEnumTypeExtension() (*ast.EnumTypeExtension, error) {
	start := p.l.Token()
	ext := &ast.EnumTypeExtension{}
	var err error
	if ext.Name, err = p.parseExtensionHeader("enum"); err != nil {
		return nil, err
	}
	if ext.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if ext.Values, err = p.parseEnumValuesDefinition(); err != nil {
		return nil, err
	}
	if len(ext.Directives) == 0 && len(ext.Values) == 0 {
		return nil, p.unexpected()
	}
	ext.Loc = p.loc(start)
	return ext, nil
}

// parseInputObjectTypeExtension parses extend input Name Directives? InputFieldsDefinition?
func (p *Parser) parseInputObjectTypeExtension() (*ast.InputObjectTypeExtension, error) {
	start := p.l.Token()
	ext := &ast.InputObjectTypeExtension{}
	var err error
	if ext.Name, err = p.parseExtensionHeader("input"); err != nil {
		return nil, err
	}
	if ext.Directives, err = p.parseDirectives(true); err != nil {
		return nil, err
	}
	if ext.Fields, err = p.parseInputFieldsDefinition(); err != nil {
		return nil, err
	}
	if len(ext.Directives) == 0 && len(ext.Fields) == 0 {
		return nil, p.unexpected()
	}
	ext.Loc = p.loc(start)
	return ext, nil
}
