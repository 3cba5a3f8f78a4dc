// Package position describes where in the input a token or node starts.
package position

import "fmt"

// Location points at a single character of the input.
// Line and Column are 1-based, Column counts characters (runes) and Offset counts bytes.
type Location struct {
	Line   uint32
	Column uint32
	Offset uint32
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// IsSet reports whether the location was assigned by the lexer.
func (l Location) IsSet() bool {
	return l.Line != 0
}

// IsBefore reports whether l points at input that precedes another.
func (l Location) IsBefore(another Location) bool {
	return l.Offset < another.Offset
}
