package astparser

import (
	"github.com/TykTechnologies/graphql-syntax/pkg/ast"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/token"
)

func (p *Parser) parseSchemaDefinition(description *ast.StringValue, loc position.Location) *ast.SchemaDefinition {

	p.read() // schema

	definition := &ast.SchemaDefinition{
		Description: description,
		Loc:         loc,
	}

	definition.Directives = p.parseDirectives()
	definition.OperationTypes = p.parseOperationTypeDefinitions()

	return definition
}

// parseOperationTypeDefinitions parses { query: Query mutation: Mutation }, at least one entry is required
func (p *Parser) parseOperationTypeDefinitions() []ast.OperationTypeDefinition {

	p.mustRead(token.OpenBrace)

	var list []ast.OperationTypeDefinition

	for {
		operationType := p.parseOperationTypeDefinition()
		if p.err != nil {
			return nil
		}
		list = append(list, operationType)
		if !p.more(token.CloseBrace) {
			break
		}
	}

	p.mustRead(token.CloseBrace)

	if p.err != nil {
		return nil
	}

	return list
}

func (p *Parser) parseOperationTypeDefinition() ast.OperationTypeDefinition {

	name := p.mustRead(token.Name)
	if p.err != nil {
		return ast.OperationTypeDefinition{}
	}

	operation, ok := ast.OperationTypeByKeyword(name.Literal)
	if !ok {
		p.badValue(name, "query, mutation or subscription")
		return ast.OperationTypeDefinition{}
	}

	p.mustRead(token.Colon)
	namedType := p.mustRead(token.Name)

	return ast.OperationTypeDefinition{
		Operation: operation,
		Type:      ast.NamedType{Name: namedType.Literal},
		Loc:       name.Location,
	}
}

func (p *Parser) parseScalarTypeDefinition(description *ast.StringValue, loc position.Location) *ast.ScalarTypeDefinition {

	p.read() // scalar
	name := p.mustRead(token.Name)

	return &ast.ScalarTypeDefinition{
		Description: description,
		Name:        name.Literal,
		Directives:  p.parseDirectives(),
		Loc:         loc,
	}
}

func (p *Parser) parseObjectTypeDefinition(description *ast.StringValue, loc position.Location) *ast.ObjectTypeDefinition {

	p.read() // type
	name := p.mustRead(token.Name)

	definition := &ast.ObjectTypeDefinition{
		Description: description,
		Name:        name.Literal,
		Loc:         loc,
	}

	definition.Interfaces = p.parseImplementsInterfaces()
	definition.Directives = p.parseDirectives()
	definition.Fields = p.parseFieldsDefinition()

	return definition
}

func (p *Parser) parseInterfaceTypeDefinition(description *ast.StringValue, loc position.Location) *ast.InterfaceTypeDefinition {

	p.read() // interface
	name := p.mustRead(token.Name)

	definition := &ast.InterfaceTypeDefinition{
		Description: description,
		Name:        name.Literal,
		Loc:         loc,
	}

	definition.Interfaces = p.parseImplementsInterfaces()
	definition.Directives = p.parseDirectives()
	definition.Fields = p.parseFieldsDefinition()

	return definition
}

func (p *Parser) parseUnionTypeDefinition(description *ast.StringValue, loc position.Location) *ast.UnionTypeDefinition {

	p.read() // union
	name := p.mustRead(token.Name)

	definition := &ast.UnionTypeDefinition{
		Description: description,
		Name:        name.Literal,
		Loc:         loc,
	}

	definition.Directives = p.parseDirectives()
	definition.Types = p.parseUnionMemberTypes()

	return definition
}

func (p *Parser) parseEnumTypeDefinition(description *ast.StringValue, loc position.Location) *ast.EnumTypeDefinition {

	p.read() // enum
	name := p.mustRead(token.Name)

	definition := &ast.EnumTypeDefinition{
		Description: description,
		Name:        name.Literal,
		Loc:         loc,
	}

	definition.Directives = p.parseDirectives()
	definition.Values = p.parseEnumValuesDefinition()

	return definition
}

func (p *Parser) parseInputObjectTypeDefinition(description *ast.StringValue, loc position.Location) *ast.InputObjectTypeDefinition {

	p.read() // input
	name := p.mustRead(token.Name)

	definition := &ast.InputObjectTypeDefinition{
		Description: description,
		Name:        name.Literal,
		Loc:         loc,
	}

	definition.Directives = p.parseDirectives()
	definition.Fields = p.parseInputFieldsDefinition()

	return definition
}

// parseDirectiveDefinition parses directive @name(args) repeatable on LOCATION | LOCATION
func (p *Parser) parseDirectiveDefinition(description *ast.StringValue, loc position.Location) *ast.DirectiveDefinition {

	p.read() // directive
	p.mustRead(token.At)
	name := p.mustRead(token.Name)

	definition := &ast.DirectiveDefinition{
		Description: description,
		Name:        name.Literal,
		Loc:         loc,
	}

	definition.Arguments = p.parseArgumentsDefinition()

	if p.peek().Is("repeatable") {
		p.read()
		definition.Repeatable = true
	}

	p.mustReadKeyword("on")

	if p.peek().Kind == token.Pipe {
		p.read()
	}

	for {
		next := p.mustRead(token.Name)
		if p.err != nil {
			return nil
		}
		location, ok := ast.DirectiveLocationByName(next.Literal)
		if !ok {
			p.badValue(next, "directive location")
			return nil
		}
		definition.Locations = append(definition.Locations, location)
		if p.peek().Kind != token.Pipe {
			return definition
		}
		p.read()
	}
}

// parseImplementsInterfaces parses implements & A & B, the leading ampersand is optional
func (p *Parser) parseImplementsInterfaces() []ast.NamedType {

	if !p.peek().Is("implements") {
		return nil
	}
	p.read()

	if p.peek().Kind == token.Amp {
		p.read()
	}

	var interfaces []ast.NamedType

	for {
		name := p.mustRead(token.Name)
		if p.err != nil {
			return nil
		}
		interfaces = append(interfaces, ast.NamedType{Name: name.Literal})
		if p.peek().Kind != token.Amp {
			return interfaces
		}
		p.read()
	}
}

// parseUnionMemberTypes parses = | A | B, the leading pipe is optional
func (p *Parser) parseUnionMemberTypes() []ast.NamedType {

	if p.peek().Kind != token.Equals {
		return nil
	}
	p.read()

	if p.peek().Kind == token.Pipe {
		p.read()
	}

	var types []ast.NamedType

	for {
		name := p.mustRead(token.Name)
		if p.err != nil {
			return nil
		}
		types = append(types, ast.NamedType{Name: name.Literal})
		if p.peek().Kind != token.Pipe {
			return types
		}
		p.read()
	}
}

// parseFieldsDefinition parses an optional { ... } of field definitions, the braces may be empty
func (p *Parser) parseFieldsDefinition() []ast.FieldDefinition {

	if p.peek().Kind != token.OpenBrace {
		return nil
	}
	p.read()

	var fields []ast.FieldDefinition

	for p.more(token.CloseBrace) {
		field := p.parseFieldDefinition()
		if p.err != nil {
			return nil
		}
		fields = append(fields, field)
	}

	p.mustRead(token.CloseBrace)

	if p.err != nil {
		return nil
	}

	return fields
}

func (p *Parser) parseFieldDefinition() ast.FieldDefinition {

	start := p.peek()
	description := p.parseDescription()
	name := p.mustRead(token.Name)

	field := ast.FieldDefinition{
		Description: description,
		Name:        name.Literal,
		Loc:         start.Location,
	}

	field.Arguments = p.parseArgumentsDefinition()
	p.mustRead(token.Colon)
	field.Type = p.parseType()
	field.Directives = p.parseDirectives()

	return field
}

// parseArgumentsDefinition parses an optional (a: Int = 1, b: String) list.
// Empty parentheses are an error, the collected definitions are returned to the caller.
func (p *Parser) parseArgumentsDefinition() []ast.InputValueDefinition {

	if p.peek().Kind != token.OpenParen {
		return nil
	}
	open := p.read()

	if p.peek().Kind == token.CloseParen {
		p.argumentEmpty(open)
		return nil
	}

	var arguments []ast.InputValueDefinition

	for p.more(token.CloseParen) {
		argument := p.parseInputValueDefinition()
		if p.err != nil {
			return nil
		}
		arguments = append(arguments, argument)
	}

	p.mustRead(token.CloseParen)

	if p.err != nil {
		return nil
	}

	return arguments
}

func (p *Parser) parseInputFieldsDefinition() []ast.InputValueDefinition {

	if p.peek().Kind != token.OpenBrace {
		return nil
	}
	p.read()

	var fields []ast.InputValueDefinition

	for p.more(token.CloseBrace) {
		field := p.parseInputValueDefinition()
		if p.err != nil {
			return nil
		}
		fields = append(fields, field)
	}

	p.mustRead(token.CloseBrace)

	if p.err != nil {
		return nil
	}

	return fields
}

func (p *Parser) parseInputValueDefinition() ast.InputValueDefinition {

	start := p.peek()
	description := p.parseDescription()
	name := p.mustRead(token.Name)
	p.mustRead(token.Colon)

	definition := ast.InputValueDefinition{
		Description: description,
		Name:        name.Literal,
		Loc:         start.Location,
	}

	definition.Type = p.parseType()
	definition.DefaultValue = p.parseDefaultValue()
	definition.Directives = p.parseDirectives()

	return definition
}

func (p *Parser) parseEnumValuesDefinition() []ast.EnumValueDefinition {

	if p.peek().Kind != token.OpenBrace {
		return nil
	}
	p.read()

	var values []ast.EnumValueDefinition

	for p.more(token.CloseBrace) {
		value := p.parseEnumValueDefinition()
		if p.err != nil {
			return nil
		}
		values = append(values, value)
	}

	p.mustRead(token.CloseBrace)

	if p.err != nil {
		return nil
	}

	return values
}

func (p *Parser) parseEnumValueDefinition() ast.EnumValueDefinition {

	start := p.peek()
	description := p.parseDescription()
	name := p.mustRead(token.Name)

	switch name.Literal {
	case "true", "false", "null":
		p.badValue(name, "enum value")
	}

	return ast.EnumValueDefinition{
		Description: description,
		Name:        name.Literal,
		Directives:  p.parseDirectives(),
		Loc:         start.Location,
	}
}
