package ast

import (
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
)

type OperationType int

const (
	OperationTypeUnknown OperationType = iota
	OperationTypeQuery
	OperationTypeMutation
	OperationTypeSubscription
)

func (o OperationType) String() string {
	switch o {
	case OperationTypeQuery:
		return "query"
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	default:
		return "unknown"
	}
}

func (o OperationType) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// OperationTypeByKeyword maps query, mutation and subscription to their OperationType
func OperationTypeByKeyword(keyword string) (OperationType, bool) {
	switch keyword {
	case "query":
		return OperationTypeQuery, true
	case "mutation":
		return OperationTypeMutation, true
	case "subscription":
		return OperationTypeSubscription, true
	default:
		return OperationTypeUnknown, false
	}
}

// SchemaDefinition e.g.
//
//	schema @foo {
//		query: Query
//		mutation: Mutation
//	}
type SchemaDefinition struct {
	Description    *StringValue
	Directives     Directives
	OperationTypes []OperationTypeDefinition
	Loc            position.Location
}

type SchemaExtension struct {
	Directives     Directives
	OperationTypes []OperationTypeDefinition
	Loc            position.Location
}

// OperationTypeDefinition binds an operation type to its root type, e.g. query: Query
type OperationTypeDefinition struct {
	Operation OperationType
	Type      NamedType
	Loc       position.Location
}

// RootOperationType returns the root type name configured for operation.
func (s *SchemaDefinition) RootOperationType(operation OperationType) (string, bool) {
	for i := range s.OperationTypes {
		if s.OperationTypes[i].Operation == operation {
			return s.OperationTypes[i].Type.Name, true
		}
	}
	return "", false
}

func (s *SchemaDefinition) Kind() NodeKind { return NodeKindSchemaDefinition }
func (s *SchemaExtension) Kind() NodeKind  { return NodeKindSchemaExtension }

func (s *SchemaDefinition) Location() position.Location { return s.Loc }
func (s *SchemaExtension) Location() position.Location  { return s.Loc }

func (*SchemaDefinition) isDefinition() {}
func (*SchemaExtension) isDefinition()  {}

func (*SchemaDefinition) isTypeSystemDefinition() {}
func (*SchemaExtension) isTypeSystemExtension()   {}
