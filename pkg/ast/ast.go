// Package ast defines the GraphQL syntax tree produced by the astparser.
//
// The tree is plain data: every node owns its children, there are no back references
// and nothing is shared between two parents. Variants that GraphQL treats as a closed set
// (definitions, types, values, selections) are sealed interfaces, a type switch over
// the concrete types listed in the interface comment is exhaustive.
package ast

import (
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
)

// Document is the root of a parsed GraphQL document, an ordered list of definitions.
type Document struct {
	Definitions []Definition
}

// Definition is a top-level unit of a document.
// It is one of TypeSystemDefinition, TypeSystemExtension or ExecutableDefinition.
type Definition interface {
	Kind() NodeKind
	Location() position.Location
	isDefinition()
}

// TypeSystemDefinition is one of *SchemaDefinition, *DirectiveDefinition or a TypeDefinition.
type TypeSystemDefinition interface {
	Definition
	isTypeSystemDefinition()
}

// TypeDefinition is one of *ObjectTypeDefinition, *InterfaceTypeDefinition, *UnionTypeDefinition,
// *EnumTypeDefinition, *ScalarTypeDefinition or *InputObjectTypeDefinition.
type TypeDefinition interface {
	TypeSystemDefinition
	TypeName() string
	isTypeDefinition()
}

// TypeSystemExtension is one of *SchemaExtension, *ScalarTypeExtension, *ObjectTypeExtension,
// *InterfaceTypeExtension, *UnionTypeExtension, *EnumTypeExtension or *InputObjectTypeExtension.
type TypeSystemExtension interface {
	Definition
	isTypeSystemExtension()
}

// ExecutableDefinition is one of *OperationDefinition or *FragmentDefinition.
type ExecutableDefinition interface {
	Definition
	isExecutableDefinition()
}

// Directives is an ordered list of directive applications, nil when absent.
type Directives []Directive

// Directive is the application of a directive, e.g. @include(if: $withFriends)
type Directive struct {
	Name      string
	Arguments []Argument
	Loc       position.Location
}

// Argument is a named value passed to a field or a directive
type Argument struct {
	Name  string
	Value Value
	Loc   position.Location
}

// ByName returns the first directive named name.
func (d Directives) ByName(name string) (Directive, bool) {
	for i := range d {
		if d[i].Name == name {
			return d[i], true
		}
	}
	return Directive{}, false
}

// HasDirective reports whether a directive named name is applied.
func (d Directives) HasDirective(name string) bool {
	_, ok := d.ByName(name)
	return ok
}

// ArgumentByName returns the argument named name.
func (d Directive) ArgumentByName(name string) (Argument, bool) {
	return argumentByName(d.Arguments, name)
}

func argumentByName(arguments []Argument, name string) (Argument, bool) {
	for i := range arguments {
		if arguments[i].Name == name {
			return arguments[i], true
		}
	}
	return Argument{}, false
}
