package ast

type NodeKind int

const (
	NodeKindUnknown NodeKind = iota
	NodeKindSchemaDefinition
	NodeKindSchemaExtension
	NodeKindDirectiveDefinition
	NodeKindObjectTypeDefinition
	NodeKindObjectTypeExtension
	NodeKindInterfaceTypeDefinition
	NodeKindInterfaceTypeExtension
	NodeKindUnionTypeDefinition
	NodeKindUnionTypeExtension
	NodeKindEnumTypeDefinition
	NodeKindEnumTypeExtension
	NodeKindScalarTypeDefinition
	NodeKindScalarTypeExtension
	NodeKindInputObjectTypeDefinition
	NodeKindInputObjectTypeExtension
	NodeKindOperationDefinition
	NodeKindFragmentDefinition
	NodeKindField
	NodeKindFragmentSpread
	NodeKindInlineFragment
)

func (n NodeKind) String() string {
	switch n {
	case NodeKindSchemaDefinition:
		return "SchemaDefinition"
	case NodeKindSchemaExtension:
		return "SchemaExtension"
	case NodeKindDirectiveDefinition:
		return "DirectiveDefinition"
	case NodeKindObjectTypeDefinition:
		return "ObjectTypeDefinition"
	case NodeKindObjectTypeExtension:
		return "ObjectTypeExtension"
	case NodeKindInterfaceTypeDefinition:
		return "InterfaceTypeDefinition"
	case NodeKindInterfaceTypeExtension:
		return "InterfaceTypeExtension"
	case NodeKindUnionTypeDefinition:
		return "UnionTypeDefinition"
	case NodeKindUnionTypeExtension:
		return "UnionTypeExtension"
	case NodeKindEnumTypeDefinition:
		return "EnumTypeDefinition"
	case NodeKindEnumTypeExtension:
		return "EnumTypeExtension"
	case NodeKindScalarTypeDefinition:
		return "ScalarTypeDefinition"
	case NodeKindScalarTypeExtension:
		return "ScalarTypeExtension"
	case NodeKindInputObjectTypeDefinition:
		return "InputObjectTypeDefinition"
	case NodeKindInputObjectTypeExtension:
		return "InputObjectTypeExtension"
	case NodeKindOperationDefinition:
		return "OperationDefinition"
	case NodeKindFragmentDefinition:
		return "FragmentDefinition"
	case NodeKindField:
		return "Field"
	case NodeKindFragmentSpread:
		return "FragmentSpread"
	case NodeKindInlineFragment:
		return "InlineFragment"
	default:
		return "Unknown"
	}
}

func (n NodeKind) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// IsAbstractType reports whether values of the kind resolve to one of several object types
func (n NodeKind) IsAbstractType() bool {
	return n == NodeKindInterfaceTypeDefinition || n == NodeKindUnionTypeDefinition
}

// IsExtension reports whether the kind extends a previously defined schema or type
func (n NodeKind) IsExtension() bool {
	switch n {
	case NodeKindSchemaExtension,
		NodeKindObjectTypeExtension,
		NodeKindInterfaceTypeExtension,
		NodeKindUnionTypeExtension,
		NodeKindEnumTypeExtension,
		NodeKindScalarTypeExtension,
		NodeKindInputObjectTypeExtension:
		return true
	default:
		return false
	}
}
