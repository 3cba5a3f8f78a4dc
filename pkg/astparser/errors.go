package astparser

import (
	"fmt"

	"github.com/TykTechnologies/graphql-syntax/pkg/lexer"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
)

// ParseErrorKind is the closed set of syntactic failures.
// Each kind is an error itself so callers can match it with errors.Is.
type ParseErrorKind int

const (
	// ErrEOF is returned when a token is required but the document has ended
	ErrEOF ParseErrorKind = iota + 1
	// ErrDocumentEmpty is returned for documents without any definition
	ErrDocumentEmpty
	// ErrArgumentEmpty is returned for a pair of parentheses without arguments
	ErrArgumentEmpty
	// ErrBadValue is returned for an unknown keyword or a value that cannot be used at its position
	ErrBadValue
	// ErrUnexpectedToken is returned when the token category does not fit the grammar
	ErrUnexpectedToken
	// ErrLexError is returned when the next token could not be lexed
	ErrLexError
)

func (k ParseErrorKind) Error() string {
	switch k {
	case ErrEOF:
		return "unexpected end of document"
	case ErrDocumentEmpty:
		return "document is empty"
	case ErrArgumentEmpty:
		return "argument list must not be empty"
	case ErrBadValue:
		return "bad value"
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrLexError:
		return "lexer error"
	default:
		return "unknown parse error"
	}
}

// ParseError describes the first point of failure of a parse.
// Expected and Received are human readable descriptions of tokens, either may be empty.
type ParseError struct {
	Kind     ParseErrorKind
	Expected string
	Received string
	Location position.Location
	// Lex is set for ErrLexError
	Lex *lexer.Error
}

// Message describes the failure without its location
func (e *ParseError) Message() string {
	switch {
	case e.Kind == ErrLexError && e.Lex != nil:
		return e.Lex.Message()
	case e.Expected != "" && e.Received != "":
		return fmt.Sprintf("%s - expected: %s, received: %s", e.Kind, e.Expected, e.Received)
	case e.Expected != "":
		return fmt.Sprintf("%s - expected: %s", e.Kind, e.Expected)
	case e.Received != "":
		return fmt.Sprintf("%s - received: %s", e.Kind, e.Received)
	default:
		return e.Kind.Error()
	}
}

func (e *ParseError) Error() string {
	if e.Kind == ErrDocumentEmpty {
		return e.Message()
	}
	return fmt.Sprintf("%s @ %s", e.Message(), e.Location)
}

// Unwrap exposes the kind and, for lexer errors, the wrapped *lexer.Error.
func (e *ParseError) Unwrap() []error {
	if e.Lex != nil {
		return []error{e.Kind, e.Lex}
	}
	return []error{e.Kind}
}

// ErrDepthLimitExceeded is returned when the parser encounters nesting depth
// that exceeds the configured limit.
type ErrDepthLimitExceeded struct {
	Limit    int
	Location position.Location
}

func (e ErrDepthLimitExceeded) Message() string {
	return fmt.Sprintf("allowed parsing depth per GraphQL document of '%d' exceeded", e.Limit)
}

func (e ErrDepthLimitExceeded) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message(), e.Location)
}

// ErrFieldsLimitExceeded is returned when the parser encounters a number of fields
// that exceeds the configured limit.
type ErrFieldsLimitExceeded struct {
	Limit    int
	Location position.Location
}

func (e ErrFieldsLimitExceeded) Message() string {
	return fmt.Sprintf("allowed number of fields per GraphQL document of '%d' exceeded", e.Limit)
}

func (e ErrFieldsLimitExceeded) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message(), e.Location)
}
