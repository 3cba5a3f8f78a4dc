// Package astparser builds an ast.Document from GraphQL source text.
//
// The parser is a recursive descent parser with a single token of lookahead.
// Keywords are plain Name tokens, each production dispatches on their text.
// The first error aborts the parse, no partial document is returned.
package astparser

import (
	"errors"
	"fmt"

	"github.com/TykTechnologies/graphql-syntax/pkg/ast"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/token"
	"github.com/TykTechnologies/graphql-syntax/pkg/operationreport"
)

// Parse parses a GraphQL document with a fresh Parser.
func Parse(source string) (*ast.Document, error) {
	return NewParser().Parse(source)
}

// ParseGraphqlDocumentString parses a document and reports failures as GraphQL errors.
func ParseGraphqlDocumentString(input string) (*ast.Document, operationreport.Report) {
	report := operationreport.Report{}
	document, err := Parse(input)
	if err != nil {
		AddReportError(&report, err)
	}
	return document, report
}

// ParseGraphqlDocumentBytes parses a document and reports failures as GraphQL errors.
func ParseGraphqlDocumentBytes(input []byte) (*ast.Document, operationreport.Report) {
	return ParseGraphqlDocumentString(string(input))
}

// AddReportError adds err to report, errors of this package become external errors
// carrying the location of the failure.
func AddReportError(report *operationreport.Report, err error) {
	var (
		parseErr  *ParseError
		depthErr  ErrDepthLimitExceeded
		fieldsErr ErrFieldsLimitExceeded
	)
	switch {
	case errors.As(err, &parseErr):
		report.AddExternalError(operationreport.NewExternalError(parseErr.Message(), parseErr.Location.Line, parseErr.Location.Column))
	case errors.As(err, &depthErr):
		report.AddExternalError(operationreport.NewExternalError(depthErr.Message(), depthErr.Location.Line, depthErr.Location.Column))
	case errors.As(err, &fieldsErr):
		report.AddExternalError(operationreport.NewExternalError(fieldsErr.Message(), fieldsErr.Location.Line, fieldsErr.Location.Column))
	default:
		report.AddInternalError(err)
	}
}

type Option func(p *Parser)

// WithLimits bounds nesting depth and the number of field selections of parsed documents.
func WithLimits(limits Limits) Option {
	return func(p *Parser) {
		p.limits = limits
	}
}

// Parser turns GraphQL source text into an ast.Document.
// A Parser may be reused for many documents but must not be used concurrently.
type Parser struct {
	tokenizer *tokenizer
	limits    Limits
	fields    int
	err       error
}

// NewParser returns a new parser
func NewParser(options ...Option) *Parser {
	p := &Parser{
		tokenizer: newTokenizer(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Parse parses source into a document, on failure the document is nil
// and err describes the first point of failure.
func (p *Parser) Parse(source string) (*ast.Document, error) {
	p.tokenizer.reset(source, p.limits)
	p.fields = 0
	p.err = nil

	document := p.parseDocument()
	if p.err != nil {
		return nil, p.err
	}
	return document, nil
}

func (p *Parser) parseDocument() *ast.Document {

	p.mustRead(token.Start)

	if next := p.peek(); next.Kind == token.End {
		p.fail(&ParseError{
			Kind:     ErrDocumentEmpty,
			Location: next.Location,
		})
		return nil
	}

	document := &ast.Document{}

	for p.peek().Kind != token.End {
		definition := p.parseDefinition()
		if p.err != nil {
			return nil
		}
		document.Definitions = append(document.Definitions, definition)
	}

	if p.err != nil {
		return nil
	}

	return document
}

func (p *Parser) parseDefinition() ast.Definition {

	start := p.peek()
	description := p.parseDescription()
	next := p.peek()
	if p.err != nil {
		return nil
	}

	if description != nil && !isTypeSystemDefinitionKeyword(next) {
		p.unexpected(next, "type system definition")
		return nil
	}

	switch next.Kind {
	case token.OpenBrace:
		return p.parseAnonymousOperationDefinition()
	case token.Name:
	default:
		p.unexpected(next, "definition")
		return nil
	}

	switch next.Literal {
	case "schema":
		return p.parseSchemaDefinition(description, start.Location)
	case "scalar":
		return p.parseScalarTypeDefinition(description, start.Location)
	case "type":
		return p.parseObjectTypeDefinition(description, start.Location)
	case "interface":
		return p.parseInterfaceTypeDefinition(description, start.Location)
	case "union":
		return p.parseUnionTypeDefinition(description, start.Location)
	case "enum":
		return p.parseEnumTypeDefinition(description, start.Location)
	case "input":
		return p.parseInputObjectTypeDefinition(description, start.Location)
	case "directive":
		return p.parseDirectiveDefinition(description, start.Location)
	case "extend":
		return p.parseTypeSystemExtension()
	case "query", "mutation", "subscription":
		return p.parseOperationDefinition()
	case "fragment":
		return p.parseFragmentDefinition()
	default:
		p.badValue(next, "definition")
		return nil
	}
}

func isTypeSystemDefinitionKeyword(tok token.Token) bool {
	if tok.Kind != token.Name {
		return false
	}
	switch tok.Literal {
	case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive":
		return true
	default:
		return false
	}
}

// parseDescription consumes an optional string or block string
func (p *Parser) parseDescription() *ast.StringValue {
	switch next := p.peek(); next.Kind {
	case token.String, token.BlockString:
		p.read()
		return &ast.StringValue{
			Value: next.Literal,
			Block: next.Kind == token.BlockString,
		}
	default:
		return nil
	}
}

// fail keeps the first error, everything after it is a consequence
func (p *Parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *Parser) failTokenizer(err error) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		p.fail(&ParseError{
			Kind:     ErrLexError,
			Location: lexErr.Location,
			Lex:      lexErr,
		})
		return
	}
	p.fail(err)
}

// peek returns the next token without consuming it.
// Once the parser failed it returns End so that every production unwinds.
func (p *Parser) peek() token.Token {
	if p.err != nil {
		return token.Token{Kind: token.End}
	}
	tok, err := p.tokenizer.Peek()
	if err != nil {
		p.failTokenizer(err)
		return token.Token{Kind: token.End, Location: tok.Location}
	}
	return tok
}

func (p *Parser) read() token.Token {
	if p.err != nil {
		return token.Token{Kind: token.End}
	}
	tok, err := p.tokenizer.Read()
	if err != nil {
		p.failTokenizer(err)
		return token.Token{Kind: token.End, Location: tok.Location}
	}
	return tok
}

func (p *Parser) mustRead(kind token.Kind) token.Token {
	next := p.read()
	if next.Kind != kind {
		p.unexpected(next, kind.String())
	}
	return next
}

// mustReadKeyword reads a Name token with the given text
func (p *Parser) mustReadKeyword(keyword string) token.Token {
	next := p.read()
	if next.Is(keyword) {
		return next
	}
	expected := fmt.Sprintf("%s %q", token.Name, keyword)
	if next.Kind == token.Name {
		p.badValue(next, expected)
		return next
	}
	p.unexpected(next, expected)
	return next
}

// more reports whether a list continues, i.e. the next token is neither closing nor End.
// Reaching End fails the parse.
func (p *Parser) more(closing token.Kind) bool {
	next := p.peek()
	switch {
	case p.err != nil:
		return false
	case next.Kind == closing:
		return false
	case next.Kind == token.End:
		p.unexpected(next, closing.String())
		return false
	default:
		return true
	}
}

func (p *Parser) unexpected(received token.Token, expected string) {
	kind := ErrUnexpectedToken
	if received.Kind == token.End {
		kind = ErrEOF
	}
	p.fail(&ParseError{
		Kind:     kind,
		Expected: expected,
		Received: received.Describe(),
		Location: received.Location,
	})
}

func (p *Parser) badValue(received token.Token, expected string) {
	p.fail(&ParseError{
		Kind:     ErrBadValue,
		Expected: expected,
		Received: received.Describe(),
		Location: received.Location,
	})
}

func (p *Parser) argumentEmpty(open token.Token) {
	p.fail(&ParseError{
		Kind:     ErrArgumentEmpty,
		Location: open.Location,
	})
}
