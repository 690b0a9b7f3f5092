package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cishoon/quadtranslator/internal/quadgen/lex"
)

func Test_Lexer_IdentifiersAndKeywords(t *testing.T) {
	l := lex.New("int x_1 = if else while")
	toks := l.Tokens()

	assert.Equal(t, "int", toks[0].Class)
	assert.Equal(t, "id", toks[1].Class)
	assert.Equal(t, "x_1", toks[1].Lexeme)
	assert.Equal(t, "=", toks[2].Class)
	assert.Equal(t, "if", toks[3].Class)
	assert.Equal(t, "else", toks[4].Class)
	assert.Equal(t, "while", toks[5].Class)
	assert.Equal(t, "$", toks[len(toks)-1].Class)
}

func Test_Lexer_IncrementAndDecrementOperators(t *testing.T) {
	l := lex.New("x++ --y")
	toks := l.Tokens()
	assert.Equal(t, "id", toks[0].Class)
	assert.Equal(t, "++", toks[1].Class)
	assert.Equal(t, "--", toks[2].Class)
	assert.Equal(t, "id", toks[3].Class)
}

func Test_Lexer_NumberLiterals(t *testing.T) {
	l := lex.New("42 3.14 7")
	toks := l.Tokens()
	assert.Equal(t, "int_literal", toks[0].Class)
	assert.Equal(t, "float_literal", toks[1].Class)
	assert.Equal(t, "int_literal", toks[2].Class)
}

func Test_Lexer_SkipsLineAndBlockComments(t *testing.T) {
	l := lex.New("int x; // trailing\n/* block\ncomment */ int y;")
	toks := l.Tokens()
	classes := make([]string, 0, len(toks))
	for _, tok := range toks {
		classes = append(classes, tok.Class)
	}
	assert.Equal(t, []string{"int", "id", ";", "int", "id", ";", "$"}, classes)
}

func Test_Lexer_TracksLineNumbers(t *testing.T) {
	l := lex.New("int x;\nint y;")
	toks := l.Tokens()
	assert.Equal(t, 1, toks[0].Line)
	// "int" on the second line should be at line 2.
	var secondIntLine int
	for _, tok := range toks[3:] {
		if tok.Class == "int" {
			secondIntLine = tok.Line
			break
		}
	}
	assert.Equal(t, 2, secondIntLine)
}
