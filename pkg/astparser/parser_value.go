package astparser

import (
	"github.com/TykTechnologies/graphql-syntax/pkg/ast"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/token"
)

// parseType parses Name, [Type] and a trailing bang.
// The bang wraps the expression right before it, so [Int!]! is NonNull(List(NonNull(Int))).
func (p *Parser) parseType() ast.Type {

	var typ ast.Type

	next := p.read()
	switch next.Kind {
	case token.Name:
		typ = ast.NamedType{Name: next.Literal}
	case token.OpenSquare:
		ofType := p.parseType()
		p.mustRead(token.CloseSquare)
		if p.err != nil {
			return nil
		}
		typ = ast.ListType{OfType: ofType}
	default:
		p.unexpected(next, "Name or '['")
		return nil
	}

	if p.peek().Kind == token.Bang {
		p.read()
		typ = ast.NonNullType{OfType: typ}
	}

	return typ
}

// parseDefaultValue parses an optional = value.
// Variables, lists and objects cannot be used as default values.
func (p *Parser) parseDefaultValue() ast.Value {
	if p.peek().Kind != token.Equals {
		return nil
	}
	p.read()
	return p.parseValue(false)
}

func (p *Parser) parseValue(allowVariables bool) ast.Value {

	next := p.read()

	switch next.Kind {
	case token.Name:
		switch next.Literal {
		case "true":
			return ast.BooleanValue{Value: true}
		case "false":
			return ast.BooleanValue{Value: false}
		case "null":
			return ast.NullValue{}
		default:
			return ast.EnumValue{Name: next.Literal}
		}
	case token.Int:
		return ast.IntValue{Value: next.Int}
	case token.Float:
		return ast.FloatValue{Value: next.Float}
	case token.String:
		return ast.StringValue{Value: next.Literal}
	case token.BlockString:
		return ast.StringValue{Value: next.Literal, Block: true}
	case token.Dollar:
		if !allowVariables {
			p.badValue(next, "constant value")
			return nil
		}
		name := p.mustRead(token.Name)
		return ast.VariableValue{Name: name.Literal}
	case token.OpenSquare, token.OpenBrace:
		p.badValue(next, "scalar or enum value")
		return nil
	default:
		p.unexpected(next, "value")
		return nil
	}
}

// parseDirectives parses zero or more @name(arguments)
func (p *Parser) parseDirectives() ast.Directives {

	var directives ast.Directives

	for p.peek().Kind == token.At {
		at := p.read()
		name := p.mustRead(token.Name)
		directive := ast.Directive{
			Name:      name.Literal,
			Arguments: p.parseArguments(),
			Loc:       at.Location,
		}
		if p.err != nil {
			return nil
		}
		directives = append(directives, directive)
	}

	return directives
}

// parseArguments parses an optional (name: value, ...) list of a field or directive.
// Empty parentheses are an error, the collected arguments are returned to the caller.
func (p *Parser) parseArguments() []ast.Argument {

	if p.peek().Kind != token.OpenParen {
		return nil
	}
	open := p.read()

	if p.peek().Kind == token.CloseParen {
		p.argumentEmpty(open)
		return nil
	}

	var arguments []ast.Argument

	for p.more(token.CloseParen) {
		name := p.mustRead(token.Name)
		p.mustRead(token.Colon)
		value := p.parseValue(true)
		if p.err != nil {
			return nil
		}
		arguments = append(arguments, ast.Argument{
			Name:  name.Literal,
			Value: value,
			Loc:   name.Location,
		})
	}

	p.mustRead(token.CloseParen)

	if p.err != nil {
		return nil
	}

	return arguments
}
