package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockStringValue(t *testing.T) {

	run := func(raw, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, BlockStringValue(raw))
		}
	}

	t.Run("single line", run("foo", "foo"))
	t.Run("empty", run("", ""))
	t.Run("blank lines only", run("\n   \n\t\n", ""))
	t.Run("first line keeps its indentation", run("  foo\n    bar", "  foo\nbar"))
	t.Run("common indentation", run("\n    foo\n      bar\n    baz\n", "foo\n  bar\nbaz"))
	t.Run("blank lines do not count for indentation", run("\n    foo\n\n    bar", "foo\n\nbar"))
	t.Run("short whitespace lines inside", run("\n    foo\n  \n    bar", "foo\n\nbar"))
	t.Run("tabs are indentation", run("\n\t\tfoo\n\tbar", "\tfoo\nbar"))
	t.Run("leading and trailing blank lines", run("\n\n  foo\n\n  \n", "foo"))
	t.Run("carriage returns", run("\r\n  foo\r  bar\r\n", "foo\nbar"))
	t.Run("description", run(`
		Multiline description
		  with indentation
	`, "Multiline description\n  with indentation"))
}
