package astparser

import (
	"github.com/TykTechnologies/graphql-syntax/pkg/ast"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/token"
)

func (p *Parser) parseOperationDefinition() *ast.OperationDefinition {

	keyword := p.read()
	operation, _ := ast.OperationTypeByKeyword(keyword.Literal)

	definition := &ast.OperationDefinition{
		Operation: operation,
		Loc:       keyword.Location,
	}

	if p.peek().Kind == token.Name {
		definition.Name = p.read().Literal
	}

	definition.VariableDefinitions = p.parseVariableDefinitions()
	definition.Directives = p.parseDirectives()
	definition.SelectionSet = p.parseSelectionSet()

	return definition
}

// parseAnonymousOperationDefinition parses the query shorthand, a bare selection set
func (p *Parser) parseAnonymousOperationDefinition() *ast.OperationDefinition {
	loc := p.peek().Location
	return &ast.OperationDefinition{
		Operation:    ast.OperationTypeQuery,
		SelectionSet: p.parseSelectionSet(),
		Loc:          loc,
	}
}

func (p *Parser) parseVariableDefinitions() []ast.VariableDefinition {

	if p.peek().Kind != token.OpenParen {
		return nil
	}
	open := p.read()

	if p.peek().Kind == token.CloseParen {
		p.argumentEmpty(open)
		return nil
	}

	var variables []ast.VariableDefinition

	for p.more(token.CloseParen) {
		variable := p.parseVariableDefinition()
		if p.err != nil {
			return nil
		}
		variables = append(variables, variable)
	}

	p.mustRead(token.CloseParen)

	if p.err != nil {
		return nil
	}

	return variables
}

// parseVariableDefinition parses $name: Type = default @directives
func (p *Parser) parseVariableDefinition() ast.VariableDefinition {

	dollar := p.mustRead(token.Dollar)
	name := p.mustRead(token.Name)
	p.mustRead(token.Colon)

	variable := ast.VariableDefinition{
		Name: name.Literal,
		Loc:  dollar.Location,
	}

	variable.Type = p.parseType()
	variable.DefaultValue = p.parseDefaultValue()
	variable.Directives = p.parseDirectives()

	return variable
}

// parseFragmentDefinition parses fragment name on Type @directives { ... }
func (p *Parser) parseFragmentDefinition() *ast.FragmentDefinition {

	keyword := p.read()
	name := p.mustRead(token.Name)
	if name.Is("on") {
		p.badValue(name, "fragment name")
		return nil
	}

	p.mustReadKeyword("on")
	typeCondition := p.mustRead(token.Name)

	definition := &ast.FragmentDefinition{
		Name:          name.Literal,
		TypeCondition: ast.NamedType{Name: typeCondition.Literal},
		Loc:           keyword.Location,
	}

	definition.Directives = p.parseDirectives()
	definition.SelectionSet = p.parseSelectionSet()

	return definition
}

// parseSelectionSet parses { ... } with at least one selection
func (p *Parser) parseSelectionSet() ast.SelectionSet {

	p.mustRead(token.OpenBrace)

	var set ast.SelectionSet

	for {
		selection := p.parseSelection()
		if p.err != nil {
			return nil
		}
		set = append(set, selection)
		if !p.more(token.CloseBrace) {
			break
		}
	}

	p.mustRead(token.CloseBrace)

	if p.err != nil {
		return nil
	}

	return set
}

func (p *Parser) parseSelection() ast.Selection {
	next := p.peek()
	switch next.Kind {
	case token.Name:
		return p.parseField()
	case token.Ellipsis:
		return p.parseFragmentSelection()
	default:
		p.unexpected(next, "Name or '...'")
		return nil
	}
}

// parseField parses alias: name(arguments) @directives { ... }
func (p *Parser) parseField() *ast.Field {

	first := p.read()

	field := &ast.Field{
		Name: first.Literal,
		Loc:  first.Location,
	}

	if p.peek().Kind == token.Colon {
		p.read()
		name := p.mustRead(token.Name)
		field.Alias = first.Literal
		field.Name = name.Literal
	}

	p.countField(first)

	field.Arguments = p.parseArguments()
	field.Directives = p.parseDirectives()

	if p.peek().Kind == token.OpenBrace {
		field.SelectionSet = p.parseSelectionSet()
	}

	return field
}

func (p *Parser) countField(field token.Token) {
	p.fields++
	if p.limits.MaxFields > 0 && p.fields > p.limits.MaxFields {
		p.fail(ErrFieldsLimitExceeded{
			Limit:    p.limits.MaxFields,
			Location: field.Location,
		})
	}
}

// parseFragmentSelection parses a named spread (...Name) or an inline fragment (... on Type { })
func (p *Parser) parseFragmentSelection() ast.FragmentSelection {

	spread := p.read()
	next := p.peek()

	switch {
	case next.Is("on"):
		p.read()
		typeCondition := p.mustRead(token.Name)
		inlineFragment := &ast.InlineFragment{
			TypeCondition: &ast.NamedType{Name: typeCondition.Literal},
			Loc:           spread.Location,
		}
		inlineFragment.Directives = p.parseDirectives()
		inlineFragment.SelectionSet = p.parseSelectionSet()
		return inlineFragment
	case next.Kind == token.Name:
		p.read()
		return &ast.FragmentSpread{
			Name:       next.Literal,
			Directives: p.parseDirectives(),
			Loc:        spread.Location,
		}
	case next.Kind == token.At, next.Kind == token.OpenBrace:
		inlineFragment := &ast.InlineFragment{
			Loc: spread.Location,
		}
		inlineFragment.Directives = p.parseDirectives()
		inlineFragment.SelectionSet = p.parseSelectionSet()
		return inlineFragment
	default:
		p.unexpected(next, "Name, '@' or '{'")
		return nil
	}
}
