package astparser

import (
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/token"
)

// Limits bounds the documents a Parser accepts, zero disables a limit.
type Limits struct {
	// MaxDepth is the maximum nesting of braces, brackets and parentheses
	MaxDepth int
	// MaxFields is the maximum number of field selections in a document
	MaxFields int
}

// tokenizer is a one token lookahead cursor over the lexer.
// A lexer error is buffered like a token, so peeking at it does not consume it.
type tokenizer struct {
	lexer    *lexer.Lexer
	peeked   bool
	next     token.Token
	nextErr  error
	maxDepth int
	depth    int
}

func newTokenizer() *tokenizer {
	return &tokenizer{
		lexer: lexer.New(""),
	}
}

func (t *tokenizer) reset(input string, limits Limits) {
	t.lexer.SetInput(input)
	t.peeked = false
	t.next = token.Token{}
	t.nextErr = nil
	t.maxDepth = limits.MaxDepth
	t.depth = 0
}

// Peek returns the next token or lexer error without consuming it
func (t *tokenizer) Peek() (token.Token, error) {
	if !t.peeked {
		t.next, t.nextErr = t.lexer.Read()
		t.peeked = true
	}
	return t.next, t.nextErr
}

// Read consumes the next token.
// Opening a brace, bracket or parenthesis beyond the depth limit returns ErrDepthLimitExceeded.
func (t *tokenizer) Read() (token.Token, error) {
	tok, err := t.Peek()
	t.peeked = false
	if err != nil {
		return tok, err
	}

	switch tok.Kind {
	case token.OpenBrace, token.OpenSquare, token.OpenParen:
		t.depth++
		if t.maxDepth > 0 && t.depth > t.maxDepth {
			return tok, ErrDepthLimitExceeded{
				Limit:    t.maxDepth,
				Location: tok.Location,
			}
		}
	case token.CloseBrace, token.CloseSquare, token.CloseParen:
		t.depth--
	}

	return tok, nil
}
