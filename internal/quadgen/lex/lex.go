// Package lex is a hand-written character-level lexer for the C-like
// source language the translator accepts: identifiers and keywords, integer
// and float literals, the operator and delimiter sets of the language
// (including the pre/post `++`/`--` increment operators), and `//` and
// `/* */` comments.
package lex

import (
	"strings"
	"unicode"

	"github.com/cishoon/quadtranslator/internal/quadgen/types"
)

var keywords = map[string]bool{
	"if": true, "else": true, "while": true, "for": true,
	"return": true, "int": true, "float": true, "char": true,
	"void": true,
}

// multiCharOperators lists the two-character operators; the scanner tries
// the two-character form first and falls back to the single character.
var multiCharOperators = map[string]bool{
	"==": true, "!=": true, "<=": true, ">=": true,
	"&&": true, "||": true, "++": true, "--": true,
	"<<": true, ">>": true,
}

var singleCharOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "=": true,
	"<": true, ">": true, "!": true, "%": true,
	"&": true, "|": true, "^": true, "~": true,
}

var delimiters = map[string]bool{
	";": true, "{": true, "}": true, "(": true, ")": true,
	"[": true, "]": true, ",": true, ".": true, ":": true, "?": true,
}

// Lexer scans a fixed input string into Tokens on demand.
type Lexer struct {
	input []rune
	pos   int
	line  int
}

// New returns a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{input: []rune(src), pos: 0, line: 1}
}

func (l *Lexer) peek() rune {
	if l.pos < len(l.input) {
		return l.input[l.pos]
	}
	return 0
}

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset < len(l.input) {
		return l.input[l.pos+offset]
	}
	return 0
}

func (l *Lexer) advance() rune {
	r := l.input[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.pos < len(l.input) && unicode.IsSpace(l.peek()) {
			l.advance()
		}
		if l.peek() == '/' && l.peekAt(1) == '/' {
			for l.pos < len(l.input) && l.peek() != '\n' {
				l.advance()
			}
			continue
		}
		if l.peek() == '/' && l.peekAt(1) == '*' {
			l.advance()
			l.advance()
			for l.pos < len(l.input) && !(l.peek() == '*' && l.peekAt(1) == '/') {
				l.advance()
			}
			if l.pos < len(l.input) {
				l.advance()
				l.advance()
			}
			continue
		}
		break
	}
}

// Next scans and returns the next token. At end of input it returns a
// Token of class "$" forever after.
func (l *Lexer) Next() types.Token {
	l.skipWhitespaceAndComments()
	line := l.line

	if l.pos >= len(l.input) {
		return types.Token{Class: "$", Line: line}
	}

	c := l.peek()

	switch {
	case unicode.IsLetter(c) || c == '_':
		return l.identifierOrKeyword(line)
	case c == '"':
		return l.stringLiteral(line)
	case c == '\'':
		return l.charLiteral(line)
	case unicode.IsDigit(c) || (c == '.' && unicode.IsDigit(l.peekAt(1))):
		return l.number(line)
	case l.startsOperator(c):
		return l.operator(line)
	case delimiters[string(c)]:
		return l.delimiter(line)
	default:
		lit := string(l.advance())
		return types.Token{Class: "T_UNKNOWN", Lexeme: lit, Line: line}
	}
}

func (l *Lexer) startsOperator(c rune) bool {
	return singleCharOperators[string(c)]
}

func (l *Lexer) identifierOrKeyword(line int) types.Token {
	var sb strings.Builder
	for l.pos < len(l.input) && (unicode.IsLetter(l.peek()) || unicode.IsDigit(l.peek()) || l.peek() == '_') {
		sb.WriteRune(l.advance())
	}
	word := sb.String()
	if keywords[word] {
		return types.Token{Class: word, Lexeme: word, Line: line}
	}
	return types.Token{Class: "id", Lexeme: word, Line: line}
}

func (l *Lexer) stringLiteral(line int) types.Token {
	var sb strings.Builder
	sb.WriteRune(l.advance()) // opening quote
	for l.pos < len(l.input) && l.peek() != '"' {
		sb.WriteRune(l.advance())
	}
	if l.pos < len(l.input) {
		sb.WriteRune(l.advance()) // closing quote
	}
	return types.Token{Class: "string_literal", Lexeme: sb.String(), Line: line}
}

func (l *Lexer) charLiteral(line int) types.Token {
	var sb strings.Builder
	sb.WriteRune(l.advance()) // opening quote
	if l.pos < len(l.input) {
		sb.WriteRune(l.advance()) // the character
	}
	if l.pos < len(l.input) {
		sb.WriteRune(l.advance()) // closing quote
	}
	return types.Token{Class: "char_literal", Lexeme: sb.String(), Line: line}
}

func (l *Lexer) number(line int) types.Token {
	var sb strings.Builder
	isFloat := false
	for l.pos < len(l.input) && (unicode.IsDigit(l.peek()) || (!isFloat && l.peek() == '.')) {
		if l.peek() == '.' {
			isFloat = true
		}
		sb.WriteRune(l.advance())
	}
	if l.pos < len(l.input) && (unicode.IsLetter(l.peek()) || l.peek() == '_') {
		for l.pos < len(l.input) && (unicode.IsLetter(l.peek()) || unicode.IsDigit(l.peek()) || l.peek() == '_') {
			sb.WriteRune(l.advance())
		}
		return types.Token{Class: "T_UNKNOWN", Lexeme: sb.String(), Line: line}
	}
	if isFloat {
		return types.Token{Class: "float_literal", Lexeme: sb.String(), Line: line}
	}
	return types.Token{Class: "int_literal", Lexeme: sb.String(), Line: line}
}

func (l *Lexer) operator(line int) types.Token {
	first := string(l.advance())
	two := first + string(l.peek())
	if multiCharOperators[two] {
		l.advance()
		return types.Token{Class: two, Lexeme: two, Line: line}
	}
	return types.Token{Class: first, Lexeme: first, Line: line}
}

func (l *Lexer) delimiter(line int) types.Token {
	first := string(l.advance())
	return types.Token{Class: first, Lexeme: first, Line: line}
}

// Tokens scans the entire input and returns it as a slice, satisfying
// types.TokenStream. The terminating "$" token is included once.
func (l *Lexer) Tokens() []types.Token {
	var out []types.Token
	for {
		tok := l.Next()
		out = append(out, tok)
		if tok.Class == "$" {
			return out
		}
	}
}
