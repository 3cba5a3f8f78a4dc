package ast

// Type is a type reference: NamedType, ListType or NonNullType.
// List and non-null wrappers own the type they wrap.
type Type interface {
	// NamedType returns the innermost named type.
	NamedType() NamedType
	String() string
	isType()
}

type NamedType struct {
	Name string
}

type ListType struct {
	OfType Type
}

// NonNullType wraps the type expression that immediately precedes the bang.
type NonNullType struct {
	OfType Type
}

func (n NamedType) NamedType() NamedType {
	return n
}

func (l ListType) NamedType() NamedType {
	return l.OfType.NamedType()
}

func (n NonNullType) NamedType() NamedType {
	return n.OfType.NamedType()
}

func (n NamedType) String() string {
	return n.Name
}

func (l ListType) String() string {
	return "[" + l.OfType.String() + "]"
}

func (n NonNullType) String() string {
	return n.OfType.String() + "!"
}

func (NamedType) isType()   {}
func (ListType) isType()    {}
func (NonNullType) isType() {}

// IsNonNull reports whether t is a non-null type reference.
func IsNonNull(t Type) bool {
	_, ok := t.(NonNullType)
	return ok
}

// IsList reports whether t is a list, ignoring an outer non-null wrapper.
func IsList(t Type) bool {
	if nonNull, ok := t.(NonNullType); ok {
		t = nonNull.OfType
	}
	_, ok := t.(ListType)
	return ok
}
