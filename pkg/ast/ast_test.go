package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeKindIsAbstractType(t *testing.T) {
	t.Run("Interface type returns true", func(t *testing.T) {
		assert.Equal(t, NodeKindInterfaceTypeDefinition.IsAbstractType(), true)
	})

	t.Run("Union type returns true", func(t *testing.T) {
		assert.Equal(t, NodeKindUnionTypeDefinition.IsAbstractType(), true)
	})

	t.Run("Enum type returns false", func(t *testing.T) {
		assert.Equal(t, NodeKindEnumTypeDefinition.IsAbstractType(), false)
	})

	t.Run("Object type returns false", func(t *testing.T) {
		assert.Equal(t, NodeKindObjectTypeDefinition.IsAbstractType(), false)
	})
}

func TestNodeKind_IsExtension(t *testing.T) {
	assert.True(t, NodeKindObjectTypeExtension.IsExtension())
	assert.True(t, NodeKindSchemaExtension.IsExtension())
	assert.False(t, NodeKindObjectTypeDefinition.IsExtension())
	assert.False(t, NodeKindField.IsExtension())
}

func TestType_String(t *testing.T) {
	run := func(typ Type, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, typ.String())
			assert.Equal(t, NamedType{Name: "Int"}, typ.NamedType())
		}
	}

	t.Run("named", run(NamedType{Name: "Int"}, "Int"))
	t.Run("non null", run(NonNullType{OfType: NamedType{Name: "Int"}}, "Int!"))
	t.Run("list", run(ListType{OfType: NamedType{Name: "Int"}}, "[Int]"))
	t.Run("non null list", run(NonNullType{OfType: ListType{OfType: NamedType{Name: "Int"}}}, "[Int]!"))
	t.Run("non null list of non null", run(NonNullType{OfType: ListType{OfType: NonNullType{OfType: NamedType{Name: "Int"}}}}, "[Int!]!"))
	t.Run("nested lists", run(ListType{OfType: ListType{OfType: NamedType{Name: "Int"}}}, "[[Int]]"))
}

func TestIsNonNull_IsList(t *testing.T) {
	nonNullList := NonNullType{OfType: ListType{OfType: NamedType{Name: "Int"}}}
	assert.True(t, IsNonNull(nonNullList))
	assert.True(t, IsList(nonNullList))
	assert.False(t, IsNonNull(NamedType{Name: "Int"}))
	assert.False(t, IsList(NonNullType{OfType: NamedType{Name: "Int"}}))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "42", IntValue{Value: 42}.String())
	assert.Equal(t, "-1.5", FloatValue{Value: -1.5}.String())
	assert.Equal(t, `"a\"b"`, StringValue{Value: `a"b`}.String())
	assert.Equal(t, `"""doc"""`, StringValue{Value: "doc", Block: true}.String())
	assert.Equal(t, "true", BooleanValue{Value: true}.String())
	assert.Equal(t, "null", NullValue{}.String())
	assert.Equal(t, "JEDI", EnumValue{Name: "JEDI"}.String())
	assert.Equal(t, "$episode", VariableValue{Name: "episode"}.String())
	assert.Equal(t, ValueKindVariable, VariableValue{Name: "episode"}.ValueKind())
}

func TestDirectiveLocation(t *testing.T) {
	location, ok := DirectiveLocationByName("FIELD_DEFINITION")
	assert.True(t, ok)
	assert.Equal(t, TypeSystemDirectiveLocationFieldDefinition, location)
	assert.False(t, location.IsExecutable())

	location, ok = DirectiveLocationByName("INLINE_FRAGMENT")
	assert.True(t, ok)
	assert.True(t, location.IsExecutable())

	_, ok = DirectiveLocationByName("field")
	assert.False(t, ok)

	locations := DirectiveLocations{ExecutableDirectiveLocationQuery, TypeSystemDirectiveLocationObject}
	assert.Equal(t, "[QUERY,OBJECT]", locations.String())
	assert.True(t, locations.Contains(TypeSystemDirectiveLocationObject))
	assert.False(t, locations.Contains(TypeSystemDirectiveLocationEnum))
}

func TestSelectionSet(t *testing.T) {
	set := SelectionSet{
		&Field{Alias: "smallPic", Name: "profilePic", Arguments: []Argument{{Name: "size", Value: IntValue{Value: 64}}}},
		&FragmentSpread{Name: "friendFields"},
		&Field{Name: "id"},
	}

	fields := set.Fields()
	assert.Len(t, fields, 2)
	assert.Equal(t, "smallPic", fields[0].ResponseKey())
	assert.Equal(t, "id", fields[1].ResponseKey())

	argument, ok := fields[0].ArgumentByName("size")
	assert.True(t, ok)
	assert.Equal(t, IntValue{Value: 64}, argument.Value)

	directives := Directives{{Name: "include", Arguments: []Argument{{Name: "if", Value: VariableValue{Name: "withPic"}}}}}
	assert.True(t, directives.HasDirective("include"))
	assert.False(t, directives.HasDirective("skip"))
	include, _ := directives.ByName("include")
	condition, ok := include.ArgumentByName("if")
	assert.True(t, ok)
	assert.Equal(t, VariableValue{Name: "withPic"}, condition.Value)
}
