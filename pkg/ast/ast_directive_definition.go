package ast

import (
	"strings"

	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
)

// DirectiveDefinition e.g.
//
//	directive @cached(ttl: Int = 60) repeatable on FIELD_DEFINITION | OBJECT
type DirectiveDefinition struct {
	Description *StringValue
	Name        string
	Arguments   []InputValueDefinition
	Repeatable  bool
	Locations   DirectiveLocations
	Loc         position.Location
}

func (d *DirectiveDefinition) Kind() NodeKind              { return NodeKindDirectiveDefinition }
func (d *DirectiveDefinition) Location() position.Location { return d.Loc }
func (*DirectiveDefinition) isDefinition()                 {}
func (*DirectiveDefinition) isTypeSystemDefinition()       {}

// DirectiveLocation is a place in a document where a directive may be applied.
type DirectiveLocation int

const (
	DirectiveLocationUnknown DirectiveLocation = iota
	ExecutableDirectiveLocationQuery
	ExecutableDirectiveLocationMutation
	ExecutableDirectiveLocationSubscription
	ExecutableDirectiveLocationField
	ExecutableDirectiveLocationFragmentDefinition
	ExecutableDirectiveLocationFragmentSpread
	ExecutableDirectiveLocationInlineFragment
	ExecutableDirectiveLocationVariableDefinition
	TypeSystemDirectiveLocationSchema
	TypeSystemDirectiveLocationScalar
	TypeSystemDirectiveLocationObject
	TypeSystemDirectiveLocationFieldDefinition
	TypeSystemDirectiveLocationArgumentDefinition
	TypeSystemDirectiveLocationInterface
	TypeSystemDirectiveLocationUnion
	TypeSystemDirectiveLocationEnum
	TypeSystemDirectiveLocationEnumValue
	TypeSystemDirectiveLocationInputObject
	TypeSystemDirectiveLocationInputFieldDefinition
)

var directiveLocationNames = map[DirectiveLocation]string{
	ExecutableDirectiveLocationQuery:                "QUERY",
	ExecutableDirectiveLocationMutation:             "MUTATION",
	ExecutableDirectiveLocationSubscription:         "SUBSCRIPTION",
	ExecutableDirectiveLocationField:                "FIELD",
	ExecutableDirectiveLocationFragmentDefinition:   "FRAGMENT_DEFINITION",
	ExecutableDirectiveLocationFragmentSpread:       "FRAGMENT_SPREAD",
	ExecutableDirectiveLocationInlineFragment:       "INLINE_FRAGMENT",
	ExecutableDirectiveLocationVariableDefinition:   "VARIABLE_DEFINITION",
	TypeSystemDirectiveLocationSchema:               "SCHEMA",
	TypeSystemDirectiveLocationScalar:               "SCALAR",
	TypeSystemDirectiveLocationObject:               "OBJECT",
	TypeSystemDirectiveLocationFieldDefinition:      "FIELD_DEFINITION",
	TypeSystemDirectiveLocationArgumentDefinition:   "ARGUMENT_DEFINITION",
	TypeSystemDirectiveLocationInterface:            "INTERFACE",
	TypeSystemDirectiveLocationUnion:                "UNION",
	TypeSystemDirectiveLocationEnum:                 "ENUM",
	TypeSystemDirectiveLocationEnumValue:            "ENUM_VALUE",
	TypeSystemDirectiveLocationInputObject:          "INPUT_OBJECT",
	TypeSystemDirectiveLocationInputFieldDefinition: "INPUT_FIELD_DEFINITION",
}

var directiveLocationsByName = func() map[string]DirectiveLocation {
	out := make(map[string]DirectiveLocation, len(directiveLocationNames))
	for location, name := range directiveLocationNames {
		out[name] = location
	}
	return out
}()

// DirectiveLocationByName parses a location like FIELD_DEFINITION.
func DirectiveLocationByName(name string) (DirectiveLocation, bool) {
	location, ok := directiveLocationsByName[name]
	return location, ok
}

func (d DirectiveLocation) String() string {
	if name, ok := directiveLocationNames[d]; ok {
		return name
	}
	return "UNKNOWN"
}

func (d DirectiveLocation) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// IsExecutable reports whether the location belongs to an executable document
func (d DirectiveLocation) IsExecutable() bool {
	return d >= ExecutableDirectiveLocationQuery && d <= ExecutableDirectiveLocationVariableDefinition
}

// DirectiveLocations is the plural of DirectiveLocation
type DirectiveLocations []DirectiveLocation

func (d DirectiveLocations) String() string {
	builder := strings.Builder{}
	builder.WriteString("[")
	for i, location := range d {
		builder.WriteString(location.String())
		if i < len(d)-1 {
			builder.WriteString(",")
		}
	}
	builder.WriteString("]")
	return builder.String()
}

func (d DirectiveLocations) Contains(location DirectiveLocation) bool {
	for i := range d {
		if d[i] == location {
			return true
		}
	}
	return false
}
