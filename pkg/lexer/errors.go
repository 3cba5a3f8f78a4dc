package lexer

import (
	"fmt"

	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
)

// ErrorKind is the closed set of lexical failures.
// Each kind is an error itself so callers can match it with errors.Is.
type ErrorKind int

const (
	ErrUnexpectedCharacter ErrorKind = iota + 1
	ErrUnterminatedString
	ErrUnterminatedBlockString
	ErrInvalidEscape
	ErrInvalidNumber
)

func (k ErrorKind) Error() string {
	switch k {
	case ErrUnexpectedCharacter:
		return "unexpected character"
	case ErrUnterminatedString:
		return "unterminated string"
	case ErrUnterminatedBlockString:
		return "unterminated block string"
	case ErrInvalidEscape:
		return "invalid escape sequence"
	case ErrInvalidNumber:
		return "invalid number"
	default:
		return "unknown lexer error"
	}
}

// Error is returned by Read when the input at Location cannot be turned into a token.
type Error struct {
	Kind     ErrorKind
	Location position.Location
	// Char is the offending character, zero when the input ended unexpectedly.
	Char rune
}

// Message describes the failure without its location
func (e *Error) Message() string {
	if e.Char == 0 {
		return fmt.Sprintf("lexer: %s", e.Kind)
	}
	return fmt.Sprintf("lexer: %s %q", e.Kind, e.Char)
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message(), e.Location)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
