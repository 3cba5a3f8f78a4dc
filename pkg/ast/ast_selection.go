package ast

import (
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
)

// SelectionSet is the ordered content of a pair of braces, nil when absent.
type SelectionSet []Selection

// Selection is one of *Field or a FragmentSelection.
type Selection interface {
	Kind() NodeKind
	Location() position.Location
	isSelection()
}

// FragmentSelection is one of *FragmentSpread or *InlineFragment.
type FragmentSelection interface {
	Selection
	isFragmentSelection()
}

// Field e.g. smallPic: profilePic(size: 64) @include(if: $withPic)
type Field struct {
	Alias        string
	Name         string
	Arguments    []Argument
	Directives   Directives
	SelectionSet SelectionSet
	Loc          position.Location
}

// FragmentSpread e.g. ...friendFields @skip(if: $short)
type FragmentSpread struct {
	Name       string
	Directives Directives
	Loc        position.Location
}

// InlineFragment e.g.
//
//	... on User {
//		friends { count }
//	}
//
// TypeCondition is nil when the fragment has no on clause.
type InlineFragment struct {
	TypeCondition *NamedType
	Directives    Directives
	SelectionSet  SelectionSet
	Loc           position.Location
}

// ResponseKey is the alias if present, the name otherwise.
func (f *Field) ResponseKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// ArgumentByName returns the argument named name.
func (f *Field) ArgumentByName(name string) (Argument, bool) {
	return argumentByName(f.Arguments, name)
}

func (f *Field) Kind() NodeKind          { return NodeKindField }
func (f *FragmentSpread) Kind() NodeKind { return NodeKindFragmentSpread }
func (i *InlineFragment) Kind() NodeKind { return NodeKindInlineFragment }

func (f *Field) Location() position.Location          { return f.Loc }
func (f *FragmentSpread) Location() position.Location { return f.Loc }
func (i *InlineFragment) Location() position.Location { return i.Loc }

func (*Field) isSelection()          {}
func (*FragmentSpread) isSelection() {}
func (*InlineFragment) isSelection() {}

func (*FragmentSpread) isFragmentSelection() {}
func (*InlineFragment) isFragmentSelection() {}

// Fields returns the field selections of the set, skipping fragment spreads.
func (s SelectionSet) Fields() []*Field {
	var out []*Field
	for _, selection := range s {
		if field, ok := selection.(*Field); ok {
			out = append(out, field)
		}
	}
	return out
}
