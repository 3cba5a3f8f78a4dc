package ast

import (
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
)

// ObjectTypeDefinition e.g.
//
//	type Person implements Node {
//		name: String
//	}
type ObjectTypeDefinition struct {
	Description *StringValue
	Name        string
	Interfaces  []NamedType
	Directives  Directives
	Fields      []FieldDefinition
	Loc         position.Location
}

type InterfaceTypeDefinition struct {
	Description *StringValue
	Name        string
	Interfaces  []NamedType
	Directives  Directives
	Fields      []FieldDefinition
	Loc         position.Location
}

// UnionTypeDefinition e.g. union SearchResult = Photo | Person
type UnionTypeDefinition struct {
	Description *StringValue
	Name        string
	Directives  Directives
	Types       []NamedType
	Loc         position.Location
}

type EnumTypeDefinition struct {
	Description *StringValue
	Name        string
	Directives  Directives
	Values      []EnumValueDefinition
	Loc         position.Location
}

type ScalarTypeDefinition struct {
	Description *StringValue
	Name        string
	Directives  Directives
	Loc         position.Location
}

type InputObjectTypeDefinition struct {
	Description *StringValue
	Name        string
	Directives  Directives
	Fields      []InputValueDefinition
	Loc         position.Location
}

// FieldDefinition e.g. friends(first: Int = 10): [Person!]! @deprecated
type FieldDefinition struct {
	Description *StringValue
	Name        string
	Arguments   []InputValueDefinition
	Type        Type
	Directives  Directives
	Loc         position.Location
}

// InputValueDefinition is an argument definition or an input object field.
// DefaultValue is nil when no default is given.
type InputValueDefinition struct {
	Description  *StringValue
	Name         string
	Type         Type
	DefaultValue Value
	Directives   Directives
	Loc          position.Location
}

type EnumValueDefinition struct {
	Description *StringValue
	Name        string
	Directives  Directives
	Loc         position.Location
}

// FieldByName returns the field definition named name.
func (o *ObjectTypeDefinition) FieldByName(name string) (FieldDefinition, bool) {
	return fieldDefinitionByName(o.Fields, name)
}

// FieldByName returns the field definition named name.
func (i *InterfaceTypeDefinition) FieldByName(name string) (FieldDefinition, bool) {
	return fieldDefinitionByName(i.Fields, name)
}

// ArgumentByName returns the argument definition named name.
func (f FieldDefinition) ArgumentByName(name string) (InputValueDefinition, bool) {
	for i := range f.Arguments {
		if f.Arguments[i].Name == name {
			return f.Arguments[i], true
		}
	}
	return InputValueDefinition{}, false
}

func fieldDefinitionByName(fields []FieldDefinition, name string) (FieldDefinition, bool) {
	for i := range fields {
		if fields[i].Name == name {
			return fields[i], true
		}
	}
	return FieldDefinition{}, false
}

func (o *ObjectTypeDefinition) Kind() NodeKind      { return NodeKindObjectTypeDefinition }
func (i *InterfaceTypeDefinition) Kind() NodeKind   { return NodeKindInterfaceTypeDefinition }
func (u *UnionTypeDefinition) Kind() NodeKind       { return NodeKindUnionTypeDefinition }
func (e *EnumTypeDefinition) Kind() NodeKind        { return NodeKindEnumTypeDefinition }
func (s *ScalarTypeDefinition) Kind() NodeKind      { return NodeKindScalarTypeDefinition }
func (i *InputObjectTypeDefinition) Kind() NodeKind { return NodeKindInputObjectTypeDefinition }

func (o *ObjectTypeDefinition) Location() position.Location      { return o.Loc }
func (i *InterfaceTypeDefinition) Location() position.Location   { return i.Loc }
func (u *UnionTypeDefinition) Location() position.Location       { return u.Loc }
func (e *EnumTypeDefinition) Location() position.Location        { return e.Loc }
func (s *ScalarTypeDefinition) Location() position.Location      { return s.Loc }
func (i *InputObjectTypeDefinition) Location() position.Location { return i.Loc }

func (o *ObjectTypeDefinition) TypeName() string      { return o.Name }
func (i *InterfaceTypeDefinition) TypeName() string   { return i.Name }
func (u *UnionTypeDefinition) TypeName() string       { return u.Name }
func (e *EnumTypeDefinition) TypeName() string        { return e.Name }
func (s *ScalarTypeDefinition) TypeName() string      { return s.Name }
func (i *InputObjectTypeDefinition) TypeName() string { return i.Name }

func (*ObjectTypeDefinition) isDefinition()      {}
func (*InterfaceTypeDefinition) isDefinition()   {}
func (*UnionTypeDefinition) isDefinition()       {}
func (*EnumTypeDefinition) isDefinition()        {}
func (*ScalarTypeDefinition) isDefinition()      {}
func (*InputObjectTypeDefinition) isDefinition() {}

func (*ObjectTypeDefinition) isTypeSystemDefinition()      {}
func (*InterfaceTypeDefinition) isTypeSystemDefinition()   {}
func (*UnionTypeDefinition) isTypeSystemDefinition()       {}
func (*EnumTypeDefinition) isTypeSystemDefinition()        {}
func (*ScalarTypeDefinition) isTypeSystemDefinition()      {}
func (*InputObjectTypeDefinition) isTypeSystemDefinition() {}

func (*ObjectTypeDefinition) isTypeDefinition()      {}
func (*InterfaceTypeDefinition) isTypeDefinition()   {}
func (*UnionTypeDefinition) isTypeDefinition()       {}
func (*EnumTypeDefinition) isTypeDefinition()        {}
func (*ScalarTypeDefinition) isTypeDefinition()      {}
func (*InputObjectTypeDefinition) isTypeDefinition() {}
