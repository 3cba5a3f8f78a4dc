// Package lexer turns GraphQL source text into a stream of located tokens.
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/runes"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/token"
)

// Lexer emits tokens from an input string.
// The first Read returns a Start token, once the input is exhausted every Read returns an End token.
// A Lexer consumes its input exactly once and must not be shared between goroutines.
type Lexer struct {
	input         string
	inputPosition int
	textPosition  position.Location
	started       bool
}

// New returns a lexer reading from input
func New(input string) *Lexer {
	l := &Lexer{}
	l.SetInput(input)
	return l
}

// SetInput sets the new input and resets all position stats
func (l *Lexer) SetInput(input string) {
	l.input = input
	l.inputPosition = 0
	l.textPosition = position.Location{
		Line:   1,
		Column: 1,
	}
	l.started = false
}

// Read emits the next token, this cannot be undone.
// A lexical error is returned as *Error, the lexer has already advanced past the offending input.
func (l *Lexer) Read() (tok token.Token, err error) {

	if !l.started {
		l.started = true
		tok.Kind = token.Start
		tok.Location = l.textPosition
		return tok, nil
	}

	l.skipIgnored()

	tok.Location = l.textPosition

	if l.inputPosition >= len(l.input) {
		tok.Kind = token.End
		return tok, nil
	}

	next := l.peekRune()

	if kind, ok := punctuators[next]; ok {
		l.readRune()
		tok.Kind = kind
		return tok, nil
	}

	switch {
	case next == runes.DOT:
		return l.readEllipsis(tok)
	case next == runes.QUOTE:
		if l.peekEquals(`"""`) {
			return l.readBlockString(tok)
		}
		return l.readString(tok)
	case next == runes.SUB || runeIsDigit(next):
		return l.readNumber(tok)
	case runeIsNameStart(next):
		return l.readName(tok), nil
	}

	l.readRune()
	return tok, l.error(ErrUnexpectedCharacter, tok.Location, next)
}

var punctuators = map[rune]token.Kind{
	runes.LBRACE: token.OpenBrace,
	runes.RBRACE: token.CloseBrace,
	runes.LPAREN: token.OpenParen,
	runes.RPAREN: token.CloseParen,
	runes.LBRACK: token.OpenSquare,
	runes.RBRACK: token.CloseSquare,
	runes.COLON:  token.Colon,
	runes.EQUALS: token.Equals,
	runes.BANG:   token.Bang,
	runes.DOLLAR: token.Dollar,
	runes.AT:     token.At,
	runes.PIPE:   token.Pipe,
	runes.AND:    token.Amp,
}

func (l *Lexer) error(kind ErrorKind, location position.Location, char rune) *Error {
	return &Error{
		Kind:     kind,
		Location: location,
		Char:     char,
	}
}

// skipIgnored swallows whitespace, line terminators, commas, the byte order mark and comments
func (l *Lexer) skipIgnored() {
	for l.inputPosition < len(l.input) {
		switch l.peekRune() {
		case runes.SPACE, runes.TAB, runes.COMMA, runes.LINETERMINATOR, runes.CARRIAGERETURN, runes.BOM:
			l.readRune()
		case runes.HASHTAG:
			l.skipComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipComment() {
	for l.inputPosition < len(l.input) {
		switch l.peekRune() {
		case runes.LINETERMINATOR, runes.CARRIAGERETURN:
			return
		default:
			l.readRune()
		}
	}
}

func (l *Lexer) readEllipsis(tok token.Token) (token.Token, error) {
	if !l.peekEquals("...") {
		l.readRune()
		return tok, l.error(ErrUnexpectedCharacter, tok.Location, runes.DOT)
	}
	l.swallowAmount(3)
	tok.Kind = token.Ellipsis
	return tok, nil
}

func (l *Lexer) readName(tok token.Token) token.Token {
	start := l.inputPosition
	for l.inputPosition < len(l.input) && runeIsNameContinue(l.peekRune()) {
		l.readRune()
	}
	tok.Kind = token.Name
	tok.Literal = l.input[start:l.inputPosition]
	return tok
}

// readNumber reads -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func (l *Lexer) readNumber(tok token.Token) (token.Token, error) {

	start := l.inputPosition
	isFloat := false

	if l.peekRune() == runes.SUB {
		l.readRune()
	}

	switch next := l.peekRune(); {
	case next == '0':
		l.readRune()
		if runeIsDigit(l.peekRune()) {
			return tok, l.invalidNumber()
		}
	case runeIsDigit(next):
		l.readDigits()
	default:
		return tok, l.invalidNumber()
	}

	if l.peekRune() == runes.DOT {
		isFloat = true
		l.readRune()
		if !runeIsDigit(l.peekRune()) {
			return tok, l.invalidNumber()
		}
		l.readDigits()
	}

	if next := l.peekRune(); next == 'e' || next == 'E' {
		isFloat = true
		l.readRune()
		if next = l.peekRune(); next == runes.SUB || next == runes.PLUS {
			l.readRune()
		}
		if !runeIsDigit(l.peekRune()) {
			return tok, l.invalidNumber()
		}
		l.readDigits()
	}

	if next := l.peekRune(); next == runes.DOT || runeIsNameStart(next) {
		return tok, l.invalidNumber()
	}

	tok.Literal = l.input[start:l.inputPosition]

	if isFloat {
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return tok, l.error(ErrInvalidNumber, tok.Location, 0)
		}
		tok.Kind = token.Float
		tok.Float = value
		return tok, nil
	}

	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return tok, l.error(ErrInvalidNumber, tok.Location, 0)
	}
	tok.Kind = token.Int
	tok.Int = value
	return tok, nil
}

// invalidNumber reports the character that breaks the number grammar and swallows it
func (l *Lexer) invalidNumber() *Error {
	location := l.textPosition
	if l.inputPosition >= len(l.input) {
		return l.error(ErrInvalidNumber, location, 0)
	}
	r := l.readRune()
	return l.error(ErrInvalidNumber, location, r)
}

func (l *Lexer) readDigits() {
	for runeIsDigit(l.peekRune()) {
		l.readRune()
	}
}

func (l *Lexer) readString(tok token.Token) (token.Token, error) {

	l.readRune()

	var value strings.Builder

	for {
		if l.inputPosition >= len(l.input) {
			return tok, l.error(ErrUnterminatedString, l.textPosition, 0)
		}

		location := l.textPosition
		next := l.peekRune()

		switch {
		case next == runes.QUOTE:
			l.readRune()
			tok.Kind = token.String
			tok.Literal = value.String()
			return tok, nil
		case next == runes.LINETERMINATOR || next == runes.CARRIAGERETURN:
			return tok, l.error(ErrUnterminatedString, location, 0)
		case next == runes.BACKSLASH:
			l.readRune()
			if err := l.readEscape(&value, location); err != nil {
				return tok, err
			}
		case runeIsControl(next):
			l.readRune()
			return tok, l.error(ErrUnexpectedCharacter, location, next)
		default:
			value.WriteRune(l.readRune())
		}
	}
}

func (l *Lexer) readEscape(value *strings.Builder, location position.Location) error {

	if l.inputPosition >= len(l.input) {
		return l.error(ErrUnterminatedString, l.textPosition, 0)
	}

	escaped := l.peekRune()

	switch escaped {
	case runes.QUOTE, runes.BACKSLASH, runes.SLASH:
		value.WriteRune(l.readRune())
	case 'b':
		l.readRune()
		value.WriteByte('\b')
	case 'f':
		l.readRune()
		value.WriteByte('\f')
	case 'n':
		l.readRune()
		value.WriteByte('\n')
	case 'r':
		l.readRune()
		value.WriteByte('\r')
	case 't':
		l.readRune()
		value.WriteByte('\t')
	case 'u':
		l.readRune()
		r, ok := l.readHex4()
		if !ok {
			return l.error(ErrInvalidEscape, location, escaped)
		}
		if utf16.IsSurrogate(r) && l.peekEquals(`\u`) {
			if low, ok := l.peekHex4(2); ok {
				if combined := utf16.DecodeRune(r, low); combined != utf8.RuneError {
					l.swallowAmount(6)
					r = combined
				}
			}
		}
		value.WriteRune(r)
	case runes.LINETERMINATOR, runes.CARRIAGERETURN:
		return l.error(ErrUnterminatedString, l.textPosition, 0)
	default:
		l.readRune()
		return l.error(ErrInvalidEscape, location, escaped)
	}

	return nil
}

func (l *Lexer) readHex4() (rune, bool) {
	r, ok := l.peekHex4(0)
	if !ok {
		return 0, false
	}
	l.swallowAmount(4)
	return r, true
}

// peekHex4 decodes four hex digits starting skip bytes after the current position
func (l *Lexer) peekHex4(skip int) (rune, bool) {
	start := l.inputPosition + skip
	if start+4 > len(l.input) {
		return 0, false
	}
	var r rune
	for i := start; i < start+4; i++ {
		digit, ok := hexValue(l.input[i])
		if !ok {
			return 0, false
		}
		r = r<<4 | digit
	}
	return r, true
}

func hexValue(b byte) (rune, bool) {
	switch {
	case b >= '0' && b <= '9':
		return rune(b - '0'), true
	case b >= 'a' && b <= 'f':
		return rune(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return rune(b-'A') + 10, true
	default:
		return 0, false
	}
}

func (l *Lexer) readBlockString(tok token.Token) (token.Token, error) {

	l.swallowAmount(3)

	var raw strings.Builder

	for {
		if l.inputPosition >= len(l.input) {
			return tok, l.error(ErrUnterminatedBlockString, l.textPosition, 0)
		}

		if l.peekEquals(`"""`) {
			l.swallowAmount(3)
			tok.Kind = token.BlockString
			tok.Literal = BlockStringValue(raw.String())
			return tok, nil
		}

		if l.peekEquals(`\"""`) {
			l.swallowAmount(4)
			raw.WriteString(`"""`)
			continue
		}

		location := l.textPosition
		next := l.readRune()
		if runeIsControl(next) {
			return tok, l.error(ErrUnexpectedCharacter, location, next)
		}
		raw.WriteRune(next)
	}
}

func (l *Lexer) swallowAmount(amount int) {
	for i := 0; i < amount; i++ {
		l.readRune()
	}
}

func (l *Lexer) peekEquals(equals string) bool {
	return strings.HasPrefix(l.input[l.inputPosition:], equals)
}

// readRune consumes the next character and keeps line, column and offset up to date.
// \r\n counts as a single line terminator.
func (l *Lexer) readRune() rune {

	if l.inputPosition >= len(l.input) {
		return runes.EOF
	}

	r, width := utf8.DecodeRuneInString(l.input[l.inputPosition:])
	l.inputPosition += width
	l.textPosition.Offset += uint32(width)

	switch {
	case r == runes.LINETERMINATOR:
		l.textPosition.Line++
		l.textPosition.Column = 1
	case r == runes.CARRIAGERETURN && l.peekRune() != runes.LINETERMINATOR:
		l.textPosition.Line++
		l.textPosition.Column = 1
	default:
		l.textPosition.Column++
	}

	return r
}

func (l *Lexer) peekRune() rune {
	if l.inputPosition >= len(l.input) {
		return runes.EOF
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.inputPosition:])
	return r
}

func runeIsNameStart(r rune) bool {
	return r == runes.UNDERSCORE || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func runeIsNameContinue(r rune) bool {
	return runeIsNameStart(r) || runeIsDigit(r)
}

func runeIsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// runeIsControl reports characters outside the GraphQL SourceCharacter set
func runeIsControl(r rune) bool {
	return r < runes.SPACE && r != runes.TAB && r != runes.LINETERMINATOR && r != runes.CARRIAGERETURN
}
