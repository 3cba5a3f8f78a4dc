// Package token contains the lexical categories emitted by the lexer.
package token

import (
	"fmt"

	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
)

// Kind is the lexical category of a token.
// Keywords like type or query are not kinds of their own, they are Name tokens.
type Kind int

const (
	Undefined Kind = iota
	Start
	End
	Name
	Int
	Float
	String
	BlockString
	OpenBrace
	CloseBrace
	OpenParen
	CloseParen
	OpenSquare
	CloseSquare
	Colon
	Equals
	Bang
	Dollar
	At
	Pipe
	Ellipsis
	Amp
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "Start"
	case End:
		return "End"
	case Name:
		return "Name"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case BlockString:
		return "BlockString"
	case OpenBrace:
		return "'{'"
	case CloseBrace:
		return "'}'"
	case OpenParen:
		return "'('"
	case CloseParen:
		return "')'"
	case OpenSquare:
		return "'['"
	case CloseSquare:
		return "']'"
	case Colon:
		return "':'"
	case Equals:
		return "'='"
	case Bang:
		return "'!'"
	case Dollar:
		return "'$'"
	case At:
		return "'@'"
	case Pipe:
		return "'|'"
	case Ellipsis:
		return "'...'"
	case Amp:
		return "'&'"
	default:
		return "Undefined"
	}
}

// IsPunctuator reports whether tokens of this kind carry nothing but a location.
func (k Kind) IsPunctuator() bool {
	return k >= OpenBrace && k <= Amp
}

// Token is a single lexical unit.
// Literal holds the identifier of a Name, the decoded value of a String or BlockString
// and the raw source text of an Int or Float. Int and Float hold the decoded numbers.
type Token struct {
	Kind     Kind
	Location position.Location
	Literal  string
	Int      int64
	Float    float64
}

// SameKind compares the category of two tokens, ignoring payload and location.
func (t Token) SameKind(another Token) bool {
	return t.Kind == another.Kind
}

// Is reports whether the token is a Name with the given text.
func (t Token) Is(name string) bool {
	return t.Kind == Name && t.Literal == name
}

// Describe renders the token without its location.
func (t Token) Describe() string {
	switch t.Kind {
	case Name, Int, Float, String, BlockString:
		return fmt.Sprintf("%s %q", t.Kind, t.Literal)
	default:
		return t.Kind.String()
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s @ %s", t.Describe(), t.Location)
}
