package parser

import (
	"strings"
	"unicode"
)

// keywordHeads are the words that combine with a following axis letter
// into a single two-word keyword such as "vel x".
var keywordHeads = map[string]bool{
	"vel":        true,
	"pos":        true,
	"p2bodydist": true,
	"p2dist":     true,
	"screenpos":  true,
	"parentdist": true,
	"rootdist":   true,
}

// Lexer tokenizes trigger expression source
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace skips over whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.position}
}

// twoChar emits a two-character operator if the next char matches,
// otherwise the single-character fallback.
func (l *Lexer) twoChar(next byte, double, single TokenType) Token {
	tok := Token{Position: l.pos()}
	if l.peekChar() == next {
		tok.Type = double
		tok.Value = string([]byte{l.ch, next})
		l.readChar()
		l.readChar()
		return tok
	}
	tok.Type = single
	tok.Value = string(l.ch)
	l.readChar()
	return tok
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Position: l.pos()}

	switch l.ch {
	case 0:
		tok.Type = TOKEN_EOF
		return tok
	case '"':
		return l.readString()
	case '+':
		tok.Type = TOKEN_PLUS
	case '-':
		tok.Type = TOKEN_MINUS
	case '*':
		return l.twoChar('*', TOKEN_POWER, TOKEN_STAR)
	case '/':
		tok.Type = TOKEN_SLASH
	case '%':
		tok.Type = TOKEN_PERCENT
	case '=':
		tok.Type = TOKEN_EQ
	case '!':
		return l.twoChar('=', TOKEN_NE, TOKEN_NOT)
	case '<':
		return l.twoChar('=', TOKEN_LE, TOKEN_LT)
	case '>':
		return l.twoChar('=', TOKEN_GE, TOKEN_GT)
	case '&':
		return l.twoChar('&', TOKEN_AND, TOKEN_BITAND)
	case '|':
		return l.twoChar('|', TOKEN_OR, TOKEN_BITOR)
	case '^':
		return l.twoChar('^', TOKEN_XOR, TOKEN_BITXOR)
	case '~':
		tok.Type = TOKEN_BITNOT
	case ':':
		if l.peekChar() == '=' {
			return l.twoChar('=', TOKEN_ASSIGN, TOKEN_ILLEGAL)
		}
		tok.Type = TOKEN_ILLEGAL
	case '(':
		tok.Type = TOKEN_LPAREN
	case ')':
		tok.Type = TOKEN_RPAREN
	case '[':
		tok.Type = TOKEN_LBRACKET
	case ']':
		tok.Type = TOKEN_RBRACKET
	case ',':
		tok.Type = TOKEN_COMMA
	default:
		if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
			return l.readNumber()
		}
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		tok.Type = TOKEN_ILLEGAL
	}

	tok.Value = string(l.ch)
	l.readChar()
	return tok
}

// readNumber reads an integer or decimal literal, keeping its source text
func (l *Lexer) readNumber() Token {
	tok := Token{Type: TOKEN_NUMBER, Position: l.pos()}
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	tok.Value = l.input[start:l.position]
	return tok
}

// readIdentifier reads a dotted identifier. A keyword head followed by a
// lone axis letter becomes a single TOKEN_KEYWORD.
func (l *Lexer) readIdentifier() Token {
	tok := Token{Type: TOKEN_IDENTIFIER, Position: l.pos()}
	start := l.position
	for isIdentChar(l.ch) {
		l.readChar()
	}
	tok.Value = l.input[start:l.position]

	head := strings.ToLower(tok.Value)
	if !keywordHeads[head] {
		return tok
	}

	saved := *l
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
	axis := unicode.ToLower(rune(l.ch))
	if (axis == 'x' || axis == 'y' || axis == 'z') && !isIdentChar(l.peekChar()) {
		l.readChar()
		tok.Type = TOKEN_KEYWORD
		tok.Value = head + " " + string(axis)
		return tok
	}
	*l = saved
	return tok
}

// isLetter returns true if the character is a letter or underscore
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

// isDigit returns true if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '.'
}
