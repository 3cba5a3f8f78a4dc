package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/position"
	"github.com/TykTechnologies/graphql-syntax/pkg/lexer/token"
)

func TestLexer_Read(t *testing.T) {

	type checkFunc func(t *testing.T, lex *Lexer, i int)

	run := func(t *testing.T, inStr string, checks ...checkFunc) {
		lex := New(inStr)
		for i := range checks {
			checks[i](t, lex, i+1)
		}
	}

	mustRead := func(k token.Kind, wantLiteral string) checkFunc {
		return func(t *testing.T, lex *Lexer, i int) {
			tok, err := lex.Read()
			require.NoError(t, err, "check: %d", i)
			assert.Equal(t, k, tok.Kind, "check: %d, got: %s", i, tok)
			assert.Equal(t, wantLiteral, tok.Literal, "check: %d", i)
		}
	}

	mustReadStart := func() checkFunc {
		return mustRead(token.Start, "")
	}

	mustReadEnd := func() checkFunc {
		return mustRead(token.End, "")
	}

	mustReadInt := func(want int64) checkFunc {
		return func(t *testing.T, lex *Lexer, i int) {
			tok, err := lex.Read()
			require.NoError(t, err, "check: %d", i)
			assert.Equal(t, token.Int, tok.Kind, "check: %d, got: %s", i, tok)
			assert.Equal(t, want, tok.Int, "check: %d", i)
		}
	}

	mustReadFloat := func(want float64) checkFunc {
		return func(t *testing.T, lex *Lexer, i int) {
			tok, err := lex.Read()
			require.NoError(t, err, "check: %d", i)
			assert.Equal(t, token.Float, tok.Kind, "check: %d, got: %s", i, tok)
			assert.InDelta(t, want, tok.Float, 1e-12, "check: %d", i)
		}
	}

	mustReadPosition := func(line, column, offset uint32) checkFunc {
		return func(t *testing.T, lex *Lexer, i int) {
			tok, err := lex.Read()
			require.NoError(t, err, "check: %d", i)
			assert.Equal(t, position.Location{Line: line, Column: column, Offset: offset}, tok.Location, "check: %d, got: %s", i, tok)
		}
	}

	mustFail := func(kind ErrorKind, line, column uint32, char rune) checkFunc {
		return func(t *testing.T, lex *Lexer, i int) {
			_, err := lex.Read()
			require.Error(t, err, "check: %d", i)
			assert.True(t, errors.Is(err, kind), "check: %d, got: %s", i, err)
			var lexErr *Error
			require.True(t, errors.As(err, &lexErr), "check: %d", i)
			assert.Equal(t, line, lexErr.Location.Line, "check: %d", i)
			assert.Equal(t, column, lexErr.Location.Column, "check: %d", i)
			assert.Equal(t, char, lexErr.Char, "check: %d", i)
		}
	}

	t.Run("empty input", func(t *testing.T) {
		run(t, "", mustReadStart(), mustReadEnd())
	})
	t.Run("read end multiple times", func(t *testing.T) {
		run(t, "x", mustReadStart(), mustRead(token.Name, "x"), mustReadEnd(), mustReadEnd(), mustReadEnd())
	})
	t.Run("start is located at the beginning", func(t *testing.T) {
		run(t, "  foo", mustReadPosition(1, 1, 0), mustReadPosition(1, 3, 2))
	})
	t.Run("whitespace and comments only", func(t *testing.T) {
		run(t, " \t\n# comment\r\n ,,, # another", mustReadStart(), mustReadEnd())
	})
	t.Run("read names", func(t *testing.T) {
		run(t, "foo bar_1 _baz Q",
			mustReadStart(),
			mustRead(token.Name, "foo"),
			mustRead(token.Name, "bar_1"),
			mustRead(token.Name, "_baz"),
			mustRead(token.Name, "Q"),
			mustReadEnd(),
		)
	})
	t.Run("keywords are names", func(t *testing.T) {
		run(t, "type query true null on",
			mustReadStart(),
			mustRead(token.Name, "type"),
			mustRead(token.Name, "query"),
			mustRead(token.Name, "true"),
			mustRead(token.Name, "null"),
			mustRead(token.Name, "on"),
		)
	})
	t.Run("commas are insignificant", func(t *testing.T) {
		run(t, "a,b,,c,",
			mustReadStart(),
			mustRead(token.Name, "a"),
			mustRead(token.Name, "b"),
			mustRead(token.Name, "c"),
			mustReadEnd(),
		)
	})
	t.Run("skip comment", func(t *testing.T) {
		run(t, "# foo bar\nbaz",
			mustReadStart(),
			mustRead(token.Name, "baz"),
			mustReadEnd(),
		)
	})
	t.Run("skip byte order mark", func(t *testing.T) {
		run(t, "\uFEFFfoo",
			mustReadStart(),
			mustRead(token.Name, "foo"),
		)
	})
	t.Run("read punctuators", func(t *testing.T) {
		run(t, "{}()[]:=!$@|&...",
			mustReadStart(),
			mustRead(token.OpenBrace, ""),
			mustRead(token.CloseBrace, ""),
			mustRead(token.OpenParen, ""),
			mustRead(token.CloseParen, ""),
			mustRead(token.OpenSquare, ""),
			mustRead(token.CloseSquare, ""),
			mustRead(token.Colon, ""),
			mustRead(token.Equals, ""),
			mustRead(token.Bang, ""),
			mustRead(token.Dollar, ""),
			mustRead(token.At, ""),
			mustRead(token.Pipe, ""),
			mustRead(token.Amp, ""),
			mustRead(token.Ellipsis, ""),
			mustReadEnd(),
		)
	})
	t.Run("spread followed by name", func(t *testing.T) {
		run(t, "...Frag",
			mustReadStart(),
			mustRead(token.Ellipsis, ""),
			mustRead(token.Name, "Frag"),
		)
	})
	t.Run("read integer", func(t *testing.T) {
		run(t, "1337", mustReadStart(), mustRead(token.Int, "1337"))
	})
	t.Run("read integer value", func(t *testing.T) {
		run(t, "1337 0 -42", mustReadStart(), mustReadInt(1337), mustReadInt(0), mustReadInt(-42))
	})
	t.Run("read negative integer literal", func(t *testing.T) {
		run(t, "-1337", mustReadStart(), mustRead(token.Int, "-1337"))
	})
	t.Run("read integer followed by punctuator", func(t *testing.T) {
		run(t, "1337)", mustReadStart(), mustReadInt(1337), mustRead(token.CloseParen, ""))
	})
	t.Run("read float", func(t *testing.T) {
		run(t, "13.37", mustReadStart(), mustRead(token.Float, "13.37"))
	})
	t.Run("read float values", func(t *testing.T) {
		run(t, "13.37 0.5 1e10 -1.5E-3 2e+2",
			mustReadStart(),
			mustReadFloat(13.37),
			mustReadFloat(0.5),
			mustReadFloat(1e10),
			mustReadFloat(-1.5e-3),
			mustReadFloat(200),
		)
	})
	t.Run("leading zero", func(t *testing.T) {
		run(t, "01", mustReadStart(), mustFail(ErrInvalidNumber, 1, 2, '1'))
	})
	t.Run("missing fraction digits", func(t *testing.T) {
		run(t, "1.", mustReadStart(), mustFail(ErrInvalidNumber, 1, 3, 0))
	})
	t.Run("missing exponent digits", func(t *testing.T) {
		run(t, "1e", mustReadStart(), mustFail(ErrInvalidNumber, 1, 3, 0))
	})
	t.Run("missing exponent digits after sign", func(t *testing.T) {
		run(t, "1e+x", mustReadStart(), mustFail(ErrInvalidNumber, 1, 4, 'x'))
	})
	t.Run("number followed by name start", func(t *testing.T) {
		run(t, "1a", mustReadStart(), mustFail(ErrInvalidNumber, 1, 2, 'a'))
	})
	t.Run("number followed by dot", func(t *testing.T) {
		run(t, "13.37.1337", mustReadStart(), mustFail(ErrInvalidNumber, 1, 6, '.'))
	})
	t.Run("lone minus", func(t *testing.T) {
		run(t, "-", mustReadStart(), mustFail(ErrInvalidNumber, 1, 2, 0))
	})
	t.Run("integer out of range", func(t *testing.T) {
		run(t, "9223372036854775808", mustReadStart(), mustFail(ErrInvalidNumber, 1, 1, 0))
	})
	t.Run("read string", func(t *testing.T) {
		run(t, `"foo bar"`, mustReadStart(), mustRead(token.String, "foo bar"), mustReadEnd())
	})
	t.Run("read empty string", func(t *testing.T) {
		run(t, `""`, mustReadStart(), mustRead(token.String, ""), mustReadEnd())
	})
	t.Run("read string escapes", func(t *testing.T) {
		run(t, `"\"\\\/\b\f\n\r\t"`, mustReadStart(), mustRead(token.String, "\"\\/\b\f\n\r\t"))
	})
	t.Run("read unicode escape", func(t *testing.T) {
		run(t, `"caf\u00e9 \u00E9"`, mustReadStart(), mustRead(token.String, "café é"))
	})
	t.Run("read surrogate pair escape", func(t *testing.T) {
		run(t, `"\uD83D\uDE00"`, mustReadStart(), mustRead(token.String, "😀"))
	})
	t.Run("read multibyte string", func(t *testing.T) {
		run(t, `"héllo wörld"`, mustReadStart(), mustRead(token.String, "héllo wörld"))
	})
	t.Run("unterminated string", func(t *testing.T) {
		run(t, `"foo`, mustReadStart(), mustFail(ErrUnterminatedString, 1, 5, 0))
	})
	t.Run("line terminator in string", func(t *testing.T) {
		run(t, "\"foo\nbar\"", mustReadStart(), mustFail(ErrUnterminatedString, 1, 5, 0))
	})
	t.Run("invalid escape", func(t *testing.T) {
		run(t, `"\x"`, mustReadStart(), mustFail(ErrInvalidEscape, 1, 2, 'x'))
	})
	t.Run("short unicode escape", func(t *testing.T) {
		run(t, `"\u12"`, mustReadStart(), mustFail(ErrInvalidEscape, 1, 2, 'u'))
	})
	t.Run("non hex unicode escape", func(t *testing.T) {
		run(t, `"\u12G4"`, mustReadStart(), mustFail(ErrInvalidEscape, 1, 2, 'u'))
	})
	t.Run("control character in string", func(t *testing.T) {
		run(t, "\"a\x01\"", mustReadStart(), mustFail(ErrUnexpectedCharacter, 1, 3, '\x01'))
	})
	t.Run("read block string", func(t *testing.T) {
		run(t, `"""foo"""`, mustReadStart(), mustRead(token.BlockString, "foo"), mustReadEnd())
	})
	t.Run("read block string keeps quotes", func(t *testing.T) {
		run(t, `"""foo "bar" ""baz"""`, mustReadStart(), mustRead(token.BlockString, `foo "bar" ""baz`))
	})
	t.Run("read escaped triple quote in block string", func(t *testing.T) {
		run(t, `"""a \""" b"""`, mustReadStart(), mustRead(token.BlockString, `a """ b`))
	})
	t.Run("block string escapes are raw", func(t *testing.T) {
		run(t, `"""a\nb \u00e9"""`, mustReadStart(), mustRead(token.BlockString, `a\nb \u00e9`))
	})
	t.Run("read multiline block string", func(t *testing.T) {
		run(t, "\"\"\"\n    hello\n      world\n  \"\"\" foo",
			mustReadStart(),
			mustRead(token.BlockString, "hello\n  world"),
			mustRead(token.Name, "foo"),
		)
	})
	t.Run("unterminated block string", func(t *testing.T) {
		run(t, `"""abc`, mustReadStart(), mustFail(ErrUnterminatedBlockString, 1, 7, 0))
	})
	t.Run("unterminated block string with escaped quotes", func(t *testing.T) {
		run(t, `"""abc\"""`, mustReadStart(), mustFail(ErrUnterminatedBlockString, 1, 11, 0))
	})
	t.Run("single dot", func(t *testing.T) {
		run(t, ".foo", mustReadStart(), mustFail(ErrUnexpectedCharacter, 1, 1, '.'))
	})
	t.Run("double dot", func(t *testing.T) {
		run(t, "..", mustReadStart(), mustFail(ErrUnexpectedCharacter, 1, 1, '.'))
	})
	t.Run("unexpected character", func(t *testing.T) {
		run(t, "foo ?", mustReadStart(), mustRead(token.Name, "foo"), mustFail(ErrUnexpectedCharacter, 1, 5, '?'))
	})
	t.Run("continue after error", func(t *testing.T) {
		run(t, "? foo",
			mustReadStart(),
			mustFail(ErrUnexpectedCharacter, 1, 1, '?'),
			mustRead(token.Name, "foo"),
		)
	})
	t.Run("read positions across line terminators", func(t *testing.T) {
		run(t, "foo\n  bar\r\nbaz\rqux",
			mustReadPosition(1, 1, 0),
			mustReadPosition(1, 1, 0),
			mustReadPosition(2, 3, 6),
			mustReadPosition(3, 1, 11),
			mustReadPosition(4, 1, 15),
			mustReadPosition(4, 4, 18),
		)
	})
	t.Run("columns count characters", func(t *testing.T) {
		run(t, `"é" foo`,
			mustReadStart(),
			mustReadPosition(1, 1, 0),
			mustReadPosition(1, 5, 5),
		)
	})
	t.Run("reset input", func(t *testing.T) {
		lex := New("x")
		_, _ = lex.Read()
		tok, err := lex.Read()
		require.NoError(t, err)
		assert.Equal(t, "x", tok.Literal)

		lex.SetInput("y")
		tok, err = lex.Read()
		require.NoError(t, err)
		assert.Equal(t, token.Start, tok.Kind)
		tok, err = lex.Read()
		require.NoError(t, err)
		assert.Equal(t, "y", tok.Literal)
	})
}

func TestLexer_OffsetsIncrease(t *testing.T) {
	lex := New(introspectionQuery)

	tok, err := lex.Read()
	require.NoError(t, err)
	require.Equal(t, token.Start, tok.Kind)

	var last *token.Token
	for {
		tok, err := lex.Read()
		require.NoError(t, err)
		if tok.Kind == token.End {
			break
		}
		if last != nil {
			assert.Greater(t, tok.Location.Offset, last.Location.Offset, "%s after %s", tok, last)
			assert.GreaterOrEqual(t, tok.Location.Line, last.Location.Line, "%s after %s", tok, last)
		}
		current := tok
		last = &current
	}
}

func TestError(t *testing.T) {
	t.Run("with character", func(t *testing.T) {
		err := &Error{Kind: ErrUnexpectedCharacter, Location: position.Location{Line: 2, Column: 4}, Char: '?'}
		assert.Equal(t, `lexer: unexpected character '?' @ 2:4`, err.Error())
	})
	t.Run("without character", func(t *testing.T) {
		err := &Error{Kind: ErrUnterminatedString, Location: position.Location{Line: 1, Column: 5}}
		assert.Equal(t, `lexer: unterminated string @ 1:5`, err.Error())
	})
	t.Run("kinds are distinct", func(t *testing.T) {
		err := &Error{Kind: ErrInvalidEscape}
		assert.True(t, errors.Is(err, ErrInvalidEscape))
		assert.False(t, errors.Is(err, ErrInvalidNumber))
	})
}

const schemaSnippet = `"""
Root query
"""
type Query {
  hero(episode: Episode = JEDI, first: Int = 10, ratio: Float = -1.5): [Character!]! @deprecated(reason: "old")
}`

func TestLexerRegressions(t *testing.T) {

	lex := New(schemaSnippet)

	var out strings.Builder
	for {
		tok, err := lex.Read()
		require.NoError(t, err)
		out.WriteString(tok.String())
		out.WriteString("\n")
		if tok.Kind == token.End {
			break
		}
	}

	goldie.Assert(t, "schema_lexed", []byte(out.String()))
}

const introspectionQuery = `query IntrospectionQuery {
  __schema {
    queryType {
      name
    }
    mutationType {
      name
    }
    types {
      ...FullType
    }
    directives {
      name
      description
      locations
      args {
        ...InputValue
      }
    }
  }
}

fragment FullType on __Type {
  kind
  name
  description
  fields(includeDeprecated: true) {
    name
    description
    args {
      ...InputValue
    }
    type {
      ...TypeRef
    }
    isDeprecated
    deprecationReason
  }
  enumValues(includeDeprecated: true) {
    name
    description
    isDeprecated
    deprecationReason
  }
}

fragment InputValue on __InputValue {
  name
  description
  type {
    ...TypeRef
  }
  defaultValue
}

fragment TypeRef on __Type {
  kind
  name
  ofType {
    kind
    name
    ofType {
      kind
      name
    }
  }
}`

func BenchmarkLexer(b *testing.B) {

	b.ReportAllocs()
	b.ResetTimer()
	b.SetBytes(int64(len(introspectionQuery)))

	for i := 0; i < b.N; i++ {
		lex := New(introspectionQuery)
		for {
			tok, err := lex.Read()
			if err != nil {
				b.Fatal(err)
			}
			if tok.Kind == token.End {
				break
			}
		}
	}
}
