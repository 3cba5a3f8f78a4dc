package ast

import (
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
)

// Type extensions add directives and children to a type defined elsewhere.
// They never carry a description.

type ScalarTypeExtension struct {
	Name       string
	Directives Directives
	Loc        position.Location
}

type ObjectTypeExtension struct {
	Name       string
	Interfaces []NamedType
	Directives Directives
	Fields     []FieldDefinition
	Loc        position.Location
}

type InterfaceTypeExtension struct {
	Name       string
	Interfaces []NamedType
	Directives Directives
	Fields     []FieldDefinition
	Loc        position.Location
}

type UnionTypeExtension struct {
	Name       string
	Directives Directives
	Types      []NamedType
	Loc        position.Location
}

type EnumTypeExtension struct {
	Name       string
	Directives Directives
	Values     []EnumValueDefinition
	Loc        position.Location
}

type InputObjectTypeExtension struct {
	Name       string
	Directives Directives
	Fields     []InputValueDefinition
	Loc        position.Location
}

func (s *ScalarTypeExtension) Kind() NodeKind      { return NodeKindScalarTypeExtension }
func (o *ObjectTypeExtension) Kind() NodeKind      { return NodeKindObjectTypeExtension }
func (i *InterfaceTypeExtension) Kind() NodeKind   { return NodeKindInterfaceTypeExtension }
func (u *UnionTypeExtension) Kind() NodeKind       { return NodeKindUnionTypeExtension }
func (e *EnumTypeExtension) Kind() NodeKind        { return NodeKindEnumTypeExtension }
func (i *InputObjectTypeExtension) Kind() NodeKind { return NodeKindInputObjectTypeExtension }

func (s *ScalarTypeExtension) Location() position.Location      { return s.Loc }
func (o *ObjectTypeExtension) Location() position.Location      { return o.Loc }
func (i *InterfaceTypeExtension) Location() position.Location   { return i.Loc }
func (u *UnionTypeExtension) Location() position.Location       { return u.Loc }
func (e *EnumTypeExtension) Location() position.Location        { return e.Loc }
func (i *InputObjectTypeExtension) Location() position.Location { return i.Loc }

func (*ScalarTypeExtension) isDefinition()      {}
func (*ObjectTypeExtension) isDefinition()      {}
func (*InterfaceTypeExtension) isDefinition()   {}
func (*UnionTypeExtension) isDefinition()       {}
func (*EnumTypeExtension) isDefinition()        {}
func (*InputObjectTypeExtension) isDefinition() {}

func (*ScalarTypeExtension) isTypeSystemExtension()      {}
func (*ObjectTypeExtension) isTypeSystemExtension()      {}
func (*InterfaceTypeExtension) isTypeSystemExtension()   {}
func (*UnionTypeExtension) isTypeSystemExtension()       {}
func (*EnumTypeExtension) isTypeSystemExtension()        {}
func (*InputObjectTypeExtension) isTypeSystemExtension() {}
