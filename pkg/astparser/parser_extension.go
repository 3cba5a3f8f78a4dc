package astparser

import (
	"github.com/TykTechnologies/graphql-syntax/pkg/ast"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/token"
)

// parseTypeSystemExtension parses extend followed by the extended kind.
// Every part of an extension body is optional.
func (p *Parser) parseTypeSystemExtension() ast.TypeSystemExtension {

	extend := p.read()
	next := p.mustRead(token.Name)
	if p.err != nil {
		return nil
	}

	switch next.Literal {
	case "schema":
		extension := &ast.SchemaExtension{Loc: extend.Location}
		extension.Directives = p.parseDirectives()
		if p.peek().Kind == token.OpenBrace {
			extension.OperationTypes = p.parseOperationTypeDefinitions()
		}
		return extension
	case "scalar":
		name := p.mustRead(token.Name)
		return &ast.ScalarTypeExtension{
			Name:       name.Literal,
			Directives: p.parseDirectives(),
			Loc:        extend.Location,
		}
	case "type":
		name := p.mustRead(token.Name)
		extension := &ast.ObjectTypeExtension{Name: name.Literal, Loc: extend.Location}
		extension.Interfaces = p.parseImplementsInterfaces()
		extension.Directives = p.parseDirectives()
		extension.Fields = p.parseFieldsDefinition()
		return extension
	case "interface":
		name := p.mustRead(token.Name)
		extension := &ast.InterfaceTypeExtension{Name: name.Literal, Loc: extend.Location}
		extension.Interfaces = p.parseImplementsInterfaces()
		extension.Directives = p.parseDirectives()
		extension.Fields = p.parseFieldsDefinition()
		return extension
	case "union":
		name := p.mustRead(token.Name)
		extension := &ast.UnionTypeExtension{Name: name.Literal, Loc: extend.Location}
		extension.Directives = p.parseDirectives()
		extension.Types = p.parseUnionMemberTypes()
		return extension
	case "enum":
		name := p.mustRead(token.Name)
		extension := &ast.EnumTypeExtension{Name: name.Literal, Loc: extend.Location}
		extension.Directives = p.parseDirectives()
		extension.Values = p.parseEnumValuesDefinition()
		return extension
	case "input":
		name := p.mustRead(token.Name)
		extension := &ast.InputObjectTypeExtension{Name: name.Literal, Loc: extend.Location}
		extension.Directives = p.parseDirectives()
		extension.Fields = p.parseInputFieldsDefinition()
		return extension
	default:
		p.badValue(next, "schema, scalar, type, interface, union, enum or input")
		return nil
	}
}
