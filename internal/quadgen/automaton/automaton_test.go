package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cishoon/quadtranslator/internal/quadgen/automaton"
	"github.com/cishoon/quadtranslator/internal/quadgen/firstset"
	"github.com/cishoon/quadtranslator/internal/quadgen/grammar"
)

// classic textbook grammar:
//
//	S' -> S
//	S  -> C C
//	C  -> c C | d
func canonicalTestGrammar() grammar.Grammar {
	nt := grammar.NewNonTerminal
	t := grammar.NewTerminal
	g := grammar.New([]grammar.Production{
		{NonTerminal: "S", Right: []grammar.Symbol{nt("C"), nt("C")}},
		{NonTerminal: "C", Right: []grammar.Symbol{t("c"), nt("C")}},
		{NonTerminal: "C", Right: []grammar.Symbol{t("d")}},
	}, "S", "$")
	return g.Augmented()
}

func Test_Build_StateZeroIsClosureOfStartItem(t *testing.T) {
	g := canonicalTestGrammar()
	first := firstset.Compute(g)
	coll := automaton.Build(g, first)

	assert.NotEmpty(t, coll.States)
	s0 := coll.States[0]

	expectStart := grammar.LR1Item{
		LR0Item: grammar.LR0Item{NonTerminal: "S'", Right: []grammar.Symbol{nt("S")}},
		Lookahead: grammar.NewTerminal("$"),
	}
	assert.True(t, s0.Has(expectStart))
}

func nt(lit string) grammar.Symbol { return grammar.NewNonTerminal(lit) }

func Test_Build_KnownStateCount(t *testing.T) {
	g := canonicalTestGrammar()
	first := firstset.Compute(g)
	coll := automaton.Build(g, first)

	// This grammar is the textbook example with exactly 10 canonical LR(1)
	// states (9 plus the augmented start state), regardless of discovery
	// order.
	assert.Equal(t, 10, len(coll.States))
	assert.Equal(t, len(coll.States), len(coll.Transitions))
}

func Test_Goto_OnTerminalAdvancesDot(t *testing.T) {
	g := canonicalTestGrammar()
	first := firstset.Compute(g)
	coll := automaton.Build(g, first)

	s0 := coll.States[0]
	next := automaton.Goto(g, first, s0, grammar.NewTerminal("c"))
	assert.NotZero(t, next.Len())

	for _, item := range next.Items() {
		if item.NonTerminal == "C" && len(item.Left) > 0 && item.Left[0] == grammar.NewTerminal("c") {
			return
		}
	}
	t.Fatal("expected goto(s0, c) to contain an item with 'c' shifted past the dot")
}

func Test_Collection_StateNumberIsListIndex(t *testing.T) {
	g := canonicalTestGrammar()
	first := firstset.Compute(g)
	coll := automaton.Build(g, first)

	for _, trans := range coll.Transitions {
		for _, target := range trans {
			assert.True(t, target >= 0 && target < len(coll.States))
		}
	}
}
