package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cishoon/quadtranslator/internal/quadgen/grammar"
	"github.com/cishoon/quadtranslator/internal/quadgen/parse"
	"github.com/cishoon/quadtranslator/internal/quadgen/types"
)

func arithmeticGrammar() grammar.Grammar {
	nt := grammar.NewNonTerminal
	t := grammar.NewTerminal
	return grammar.New([]grammar.Production{
		{NonTerminal: "E", Right: []grammar.Symbol{nt("E"), t("+"), nt("T")}},
		{NonTerminal: "E", Right: []grammar.Symbol{nt("T")}},
		{NonTerminal: "T", Right: []grammar.Symbol{nt("T"), t("*"), nt("F")}},
		{NonTerminal: "T", Right: []grammar.Symbol{nt("F")}},
		{NonTerminal: "F", Right: []grammar.Symbol{t("("), nt("E"), t(")")}},
		{NonTerminal: "F", Right: []grammar.Symbol{t("id")}},
	}, "E", "$")
}

func Test_BuildTables_NoConflictsOnUnambiguousGrammar(t *testing.T) {
	_, err := parse.BuildTables(arithmeticGrammar())
	assert.NoError(t, err)
}

func Test_Driver_Parse_AcceptsIdPlusIdTimesId(t *testing.T) {
	tables, err := parse.BuildTables(arithmeticGrammar())
	assert.NoError(t, err)

	d := parse.NewDriver(tables, "$")
	toks := types.Tokens{
		{Class: "id", Lexeme: "a", Line: 1},
		{Class: "+", Lexeme: "+", Line: 1},
		{Class: "id", Lexeme: "b", Line: 1},
		{Class: "*", Lexeme: "*", Line: 1},
		{Class: "id", Lexeme: "c", Line: 1},
		{Class: "$", Lexeme: "", Line: 1},
	}
	root, err := d.Parse(toks)
	assert.NoError(t, err)
	assert.NotNil(t, root)
	assert.Equal(t, "E", root.Symbol)
	assert.False(t, root.Terminal)
}

func Test_Driver_Parse_RejectsMalformedInput(t *testing.T) {
	tables, err := parse.BuildTables(arithmeticGrammar())
	assert.NoError(t, err)

	d := parse.NewDriver(tables, "$")
	toks := types.Tokens{
		{Class: "+", Lexeme: "+", Line: 1},
		{Class: "$", Lexeme: "", Line: 1},
	}
	_, err = d.Parse(toks)
	assert.Error(t, err)
}

func Test_Table_String_RendersWithoutPanicking(t *testing.T) {
	tables, err := parse.BuildTables(arithmeticGrammar())
	assert.NoError(t, err)
	rendered := tables.String()
	assert.NotEmpty(t, rendered)
}

func Test_BuildTables_DetectsGenuineConflict(t *testing.T) {
	// A deliberately ambiguous dangling-else-style grammar with no
	// disambiguation produces a shift/reduce conflict.
	nt := grammar.NewNonTerminal
	t1 := grammar.NewTerminal
	g := grammar.New([]grammar.Production{
		{NonTerminal: "S", Right: []grammar.Symbol{t1("if"), nt("S")}},
		{NonTerminal: "S", Right: []grammar.Symbol{t1("if"), nt("S"), t1("else"), nt("S")}},
		{NonTerminal: "S", Right: []grammar.Symbol{t1("x")}},
	}, "S", "$")

	_, err := parse.BuildTables(g)
	assert.Error(t, err)
}
