package parser

import (
	"github.com/Protocol-Lattice/gqlparser/ast"
	"github.com/Protocol-Lattice/gqlparser/token"
)

// parseDefinition dispatches on the leading keyword of a definition.
func (p *Parser) parseDefinition() (ast.Definition, error) {
	tok := p.l.Token()
	switch {
	case tok.Type == token.NAME:
		switch tok.Value {
		case "query", "mutation", "subscription", "fragment":
			return p.parseExecutableDefinition()
		case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive":
			return p.parseTypeSystemDefinition()
		case "extend":
			return p.parseTypeSystemExtension()
		}
	case tok.Type == token.LBRACE:
		return p.parseExecutableDefinition()
	case p.peekDescription():
		return p.parseTypeSystemDefinition()
	}
	return nil, p.unexpected()
}

// parseExecutableDefinition parses an operation or a fragment.
func (p *Parser) parseExecutableDefinition() (ast.Definition, error) {
	if p.peek(token.NAME) {
		switch p.l.Token().Value {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		}
	} else if p.peek(token.LBRACE) {
		return p.parseOperationDefinition()
	}
	return nil, p.unexpected()
}

// parseOperationDefinition parses a shorthand `{ ... }` query or
// OperationType Name? VariableDefinitions? Directives? SelectionSet.
func (p *Parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	start := p.l.Token()
	if p.peek(token.LBRACE) {
		set, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{
			Operation:    ast.Query,
			SelectionSet: set,
			Loc:          p.loc(start),
		}, nil
	}

	op, err := p.parseOperationType()
	if err != nil {
		return nil, err
	}
	def := &ast.OperationDefinition{Operation: op}
	if p.peek(token.NAME) {
		if def.Name, err = p.parseName(); err != nil {
			return nil, err
		}
	}
	if def.VariableDefinitions, err = p.parseVariableDefinitions(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseDirectives(false); err != nil {
		return nil, err
	}
	if def.SelectionSet, err = p.parseSelectionSet(); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseOperationType parses one of query, mutation, subscription.
func (p *Parser) parseOperationType() (ast.OperationType, error) {
	tok, err := p.expect(token.NAME)
	if err != nil {
		return "", err
	}
	switch op := ast.OperationType(tok.Value); op {
	case ast.Query, ast.Mutation, ast.Subscription:
		return op, nil
	}
	return "", p.unexpectedToken(tok)
}

// parseVariableDefinitions parses ( VariableDefinition+ ) if present.
func (p *Parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if !p.peek(token.LPAREN) {
		return nil, nil
	}
	return many(p, token.LPAREN, p.parseVariableDefinition, token.RPAREN)
}

// parseVariableDefinition parses Variable : Type DefaultValue? Directives[Const]?
func (p *Parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	start := p.l.Token()
	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	def := &ast.VariableDefinition{Variable: variable}
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

// parseVariable parses $Name.
func (p *Parser) parseVariable() (*ast.Variable, error) {
	start := p.l.Token()
	if _, err := p.expect(token.DOLLAR); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.Variable{Name: name, Loc: p.loc(start)}, nil
}

// parseSelectionSet parses { Selection+ }.
func (p *Parser) parseSelectionSet() (*ast.SelectionSet, error) {
	start := p.l.Token()
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	selections, err := many(p, token.LBRACE, p.parseSelection, token.RBRACE)
	if err != nil {
		return nil, err
	}
	return &ast.SelectionSet{Selections: selections, Loc: p.loc(start)}, nil
}

// parseSelection parses a Field, FragmentSpread or InlineFragment.
func (p *Parser) parseSelection() (ast.Selection, error) {
	if p.peek(token.SPREAD) {
		return p.parseFragment()
	}
	return p.parseField()
}

// parseField parses Alias? Name Arguments? Directives? SelectionSet?
func (p *Parser) parseField() (*ast.Field, error) {
	start := p.l.Token()
	nameOrAlias, err := p.parseName()
	if err != nil {
		return nil, err
	}
	field := &ast.Field{Name: nameOrAlias}
	if ok, err := p.skip(token.COLON); err != nil {
		return nil, err
	} else if ok {
		field.Alias = nameOrAlias
		if field.Name, err = p.parseName(); err != nil {
			return nil, err
		}
	}
	if field.Arguments, err = p.parseArguments(false); err != nil {
		return nil, err
	}
	if field.Directives, err = p.parseDirectives(false); err != nil {
		return nil, err
	}
	if p.peek(token.LBRACE) {
		if field.SelectionSet, err = p.parseSelectionSet(); err != nil {
			return nil, err
		}
	}
	field.Loc = p.loc(start)
	return field, nil
}

// parseArguments parses ( Argument+ ) if present.
func (p *Parser) parseArguments(isConst bool) ([]*ast.Argument, error) {
	if !p.peek(token.LPAREN) {
		return nil, nil
	}
	return many(p, token.LPAREN, func() (*ast.Argument, error) {
		return p.parseArgument(isConst)
	}, token.RPAREN)
}

// parseArgument parses Name : Value.
func (p *Parser) parseArgument(isConst bool) (*ast.Argument, error) {
	start := p.l.Token()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	value, err := p.parseValueLiteral(isConst)
	if err != nil {
		return nil, err
	}
	return &ast.Argument{Name: name, Value: value, Loc: p.loc(start)}, nil
}

// parseFragment parses a FragmentSpread or an InlineFragment. Both start
// with ...; a name other than `on` makes it a spread.
func (p *Parser) parseFragment() (ast.Selection, error) {
	start := p.l.Token()
	if _, err := p.expect(token.SPREAD); err != nil {
		return nil, err
	}

	if p.peek(token.NAME) && !p.peekKeyword("on") {
		name, err := p.parseFragmentName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(false)
		if err != nil {
			return nil, err
		}
		return &ast.FragmentSpread{Name: name, Directives: directives, Loc: p.loc(start)}, nil
	}

	frag := &ast.InlineFragment{}
	var err error
	if p.peekKeyword("on") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if frag.TypeCondition, err = p.parseNamedType(); err != nil {
			return nil, err
		}
	}
	if frag.Directives, err = p.parseDirectives(false); err != nil {
		return nil, err
	}
	if frag.SelectionSet, err = p.parseSelectionSet(); err != nil {
		return nil, err
	}
	frag.Loc = p.loc(start)
	return frag, nil
}

// parseFragmentDefinition parses
// fragment FragmentName VariableDefinitions? on NamedType Directives? SelectionSet.
func (p *Parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	start := p.l.Token()
	if _, err := p.expectKeyword("fragment"); err != nil {
		return nil, err
	}
	def := &ast.FragmentDefinition{}
	var err error
	if def.Name, err = p.parseFragmentName(); err != nil {
		return nil, err
	}
	if p.opts.ExperimentalFragmentVariables {
		if def.VariableDefinitions, err = p.parseVariableDefinitions(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	if def.TypeCondition, err = p.parseNamedType(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseDirectives(false); err != nil {
		return nil, err
	}
	if def.SelectionSet, err = p.parseSelectionSet(); err != nil {
		return nil, err
	}
	def.Loc = p.loc(start)
	return def, nil
}

// parseFragmentName parses any Name except `on`.
func (p *Parser) parseFragmentName() (*ast.Name, error) {
	if p.peekKeyword("on") {
		return nil, p.unexpected()
	}
	return p.parseName()
}

// parseName parses a single Name token.
func (p *Parser) parseName() (*ast.Name, error) {
	tok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	return &ast.Name{Value: tok.Value, Loc: p.loc(tok)}, nil
}

// parseValueLiteral parses a value. Variables are rejected when isConst is
// set, at any depth.
func (p *Parser) parseValueLiteral(isConst bool) (ast.Value, error) {
	tok := p.l.Token()
	switch tok.Type {
	case token.LBRACKET:
		return p.parseList(isConst)
	case token.LBRACE:
		return p.parseObject(isConst)
	case token.INT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IntValue{Value: tok.Value, Loc: p.loc(tok)}, nil
	case token.FLOAT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.FloatValue{Value: tok.Value, Loc: p.loc(tok)}, nil
	case token.STRING, token.BLOCKSTRING:
		return p.parseStringLiteral()
	case token.NAME:
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch tok.Value {
		case "true", "false":
			return &ast.BooleanValue{Value: tok.Value == "true", Loc: p.loc(tok)}, nil
		case "null":
			return &ast.NullValue{Loc: p.loc(tok)}, nil
		}
		return &ast.EnumValue{Value: tok.Value, Loc: p.loc(tok)}, nil
	case token.DOLLAR:
		if !isConst {
			return p.parseVariable()
		}
	}
	return nil, p.unexpected()
}

// parseStringLiteral parses a String or BlockString token.
func (p *Parser) parseStringLiteral() (*ast.StringValue, error) {
	tok := p.l.Token()
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.StringValue{
		Value: tok.Value,
		Block: tok.Type == token.BLOCKSTRING,
		Loc:   p.loc(tok),
	}, nil
}

// parseList parses [ Value* ].
func (p *Parser) parseList(isConst bool) (*ast.ListValue, error) {
	start := p.l.Token()
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	values, err := list(p, token.LBRACKET, func() (ast.Value, error) {
		return p.parseValueLiteral(isConst)
	}, token.RBRACKET)
	if err != nil {
		return nil, err
	}
	return &ast.ListValue{Values: values, Loc: p.loc(start)}, nil
}

// parseObject parses { ObjectField* }.
func (p *Parser) parseObject(isConst bool) (*ast.ObjectValue, error) {
	start := p.l.Token()
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	fields, err := list(p, token.LBRACE, func() (*ast.ObjectField, error) {
		return p.parseObjectField(isConst)
	}, token.RBRACE)
	if err != nil {
		return nil, err
	}
	return &ast.ObjectValue{Fields: fields, Loc: p.loc(start)}, nil
}

// parseObjectField parses Name : Value.
func (p *Parser) parseObjectField(isConst bool) (*ast.ObjectField, error) {
	start := p.l.Token()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	value, err := p.parseValueLiteral(isConst)
	if err != nil {
		return nil, err
	}
	return &ast.ObjectField{Name: name, Value: value, Loc: p.loc(start)}, nil
}

// parseDirectives parses Directive*.
func (p *Parser) parseDirectives(isConst bool) ([]*ast.Directive, error) {
	var directives []*ast.Directive
	for p.peek(token.AT) {
		directive, err := p.parseDirective(isConst)
		if err != nil {
			return nil, err
		}
		directives = append(directives, directive)
	}
	return directives, nil
}

// parseDirective parses @ Name Arguments?
func (p *Parser) parseDirective(isConst bool) (*ast.Directive, error) {
	start := p.l.Token()
	if _, err := p.expect(token.AT); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArguments(isConst)
	if err != nil {
		return nil, err
	}
	return &ast.Directive{Name: name, Arguments: args, Loc: p.loc(start)}, nil
}

// parseTypeReference parses NamedType, [Type] or Type!.
func (p *Parser) parseTypeReference() (ast.Type, error) {
	start := p.l.Token()
	var typ ast.Type
	if p.peek(token.LBRACKET) {
		if err := p.enter(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseTypeReference()
		p.leave()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
		typ = &ast.ListType{Type: inner, Loc: p.loc(start)}
	} else {
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		typ = named
	}

	if ok, err := p.skip(token.BANG); err != nil {
		return nil, err
	} else if ok {
		return &ast.NonNullType{Type: typ, Loc: p.loc(start)}, nil
	}
	return typ, nil
}

// parseNamedType parses a Name as a type reference.
func (p *Parser) parseNamedType() (*ast.NamedType, error) {
	start := p.l.Token()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.NamedType{Name: name, Loc: p.loc(start)}, nil
}
