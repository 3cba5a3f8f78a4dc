package runes

const (
	EOF            = 0
	COLON          = ':'
	BANG           = '!'
	CARRIAGERETURN = '\r'
	LINETERMINATOR = '\n'
	TAB            = '\t'
	SPACE          = ' '
	COMMA          = ','
	HASHTAG        = '#'
	QUOTE          = '"'
	BACKSLASH      = '\\'
	SLASH          = '/'
	DOT            = '.'
	AT             = '@'
	DOLLAR         = '$'
	PIPE           = '|'
	EQUALS         = '='
	SUB            = '-'
	PLUS           = '+'
	AND            = '&'
	UNDERSCORE     = '_'
	BOM            = '\uFEFF'

	LPAREN = '('
	RPAREN = ')'
	LBRACK = '['
	RBRACK = ']'
	LBRACE = '{'
	RBRACE = '}'
)
