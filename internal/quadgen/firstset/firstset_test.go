package firstset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cishoon/quadtranslator/internal/quadgen/firstset"
	"github.com/cishoon/quadtranslator/internal/quadgen/grammar"
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

func Test_Compute_TerminalFirstSetIsItself(t *testing.T) {
	table := firstset.Compute(arithmeticGrammar())
	first := table.Of(grammar.NewTerminal("+"))
	assert.True(t, first.Has("+"))
	assert.Equal(t, 1, first.Len())
}

func Test_Compute_NonTerminalFirstSets(t *testing.T) {
	table := firstset.Compute(arithmeticGrammar())

	firstF := table.Of(grammar.NewNonTerminal("F"))
	assert.True(t, firstF.Has("("))
	assert.True(t, firstF.Has("id"))
	assert.Equal(t, 2, firstF.Len())

	firstT := table.Of(grammar.NewNonTerminal("T"))
	assert.True(t, firstT.Has("("))
	assert.True(t, firstT.Has("id"))

	firstE := table.Of(grammar.NewNonTerminal("E"))
	assert.True(t, firstE.Has("("))
	assert.True(t, firstE.Has("id"))
}

func Test_Compute_EpsilonPropagates(t *testing.T) {
	nt := grammar.NewNonTerminal
	t1 := grammar.NewTerminal
	g := grammar.New([]grammar.Production{
		{NonTerminal: "S", Right: []grammar.Symbol{nt("A"), t1("b")}},
		{NonTerminal: "A", Right: nil},
		{NonTerminal: "A", Right: []grammar.Symbol{t1("a")}},
	}, "S", "$")

	table := firstset.Compute(g)

	firstA := table.Of(grammar.NewNonTerminal("A"))
	assert.True(t, firstA.Has(grammar.EpsilonLiteral))
	assert.True(t, firstA.Has("a"))

	firstS := table.Of(grammar.NewNonTerminal("S"))
	assert.True(t, firstS.Has("a"))
	assert.True(t, firstS.Has("b"))
	assert.False(t, firstS.Has(grammar.EpsilonLiteral))
}

func Test_OfString_StopsAtFirstNonNullableSymbol(t *testing.T) {
	table := firstset.Compute(arithmeticGrammar())
	alpha := []grammar.Symbol{grammar.NewNonTerminal("T"), grammar.NewTerminal("+")}
	result := table.OfString(alpha)
	assert.True(t, result.Has("("))
	assert.True(t, result.Has("id"))
	assert.False(t, result.Has("+"))
}

func Test_OfStringWithLookahead_EmptyBetaReturnsLookahead(t *testing.T) {
	table := firstset.Compute(arithmeticGrammar())
	result := table.OfStringWithLookahead(nil, grammar.NewTerminal("$"))
	assert.True(t, result.Has("$"))
	assert.Equal(t, 1, result.Len())
}
