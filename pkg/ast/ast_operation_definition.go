package ast

import (
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
)

// OperationDefinition is a query, mutation or subscription.
// A document consisting of a bare selection set yields an anonymous query.
type OperationDefinition struct {
	Operation           OperationType
	Name                string
	VariableDefinitions []VariableDefinition
	Directives          Directives
	SelectionSet        SelectionSet
	Loc                 position.Location
}

// VariableDefinition e.g. $episode: Episode = JEDI
type VariableDefinition struct {
	Name         string
	Type         Type
	DefaultValue Value
	Directives   Directives
	Loc          position.Location
}

// FragmentDefinition e.g.
//
//	fragment friendFields on User @foo {
//		id
//	}
type FragmentDefinition struct {
	Name          string
	TypeCondition NamedType
	Directives    Directives
	SelectionSet  SelectionSet
	Loc           position.Location
}

// IsAnonymous reports whether the operation has no name.
func (o *OperationDefinition) IsAnonymous() bool {
	return o.Name == ""
}

// VariableDefinitionByName returns the variable definition named name, without the leading $.
func (o *OperationDefinition) VariableDefinitionByName(name string) (VariableDefinition, bool) {
	for i := range o.VariableDefinitions {
		if o.VariableDefinitions[i].Name == name {
			return o.VariableDefinitions[i], true
		}
	}
	return VariableDefinition{}, false
}

func (o *OperationDefinition) Kind() NodeKind { return NodeKindOperationDefinition }
func (f *FragmentDefinition) Kind() NodeKind  { return NodeKindFragmentDefinition }

func (o *OperationDefinition) Location() position.Location { return o.Loc }
func (f *FragmentDefinition) Location() position.Location  { return f.Loc }

func (*OperationDefinition) isDefinition() {}
func (*FragmentDefinition) isDefinition()  {}

func (*OperationDefinition) isExecutableDefinition() {}
func (*FragmentDefinition) isExecutableDefinition()  {}
