package lexer

import (
	"strings"
)

// BlockStringValue computes the value of a block string from the raw text between the triple quotes.
// The common indentation of all lines but the first is removed,
// as are leading and trailing lines consisting of whitespace only.
// Line terminators in the result are always \n.
func BlockStringValue(raw string) string {

	lines := splitLines(raw)

	commonIndent := -1
	for i := 1; i < len(lines); i++ {
		indent := leadingWhitespace(lines[i])
		if indent == len(lines[i]) {
			continue
		}
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}

	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) < commonIndent {
				lines[i] = ""
				continue
			}
			lines[i] = lines[i][commonIndent:]
		}
	}

	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}

	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	return strings.Split(raw, "\n")
}

func leadingWhitespace(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return len(line)
}

func isBlank(line string) bool {
	return leadingWhitespace(line) == len(line)
}
