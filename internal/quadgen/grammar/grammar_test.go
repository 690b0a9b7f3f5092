package grammar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cishoon/quadtranslator/internal/quadgen/grammar"
)

func Test_Load_SimpleArithmeticGrammar(t *testing.T) {
	src := `
E $
+ * ( ) id $
E ::= E + T | T
T ::= T * F | F
F ::= ( E ) | id
`
	g, err := grammar.Load(strings.NewReader(src))
	assert.NoError(t, err)

	assert.Equal(t, "E", g.StartSymbol())
	assert.Equal(t, grammar.NewTerminal("$"), g.EndSymbol())
	assert.True(t, g.IsTerminal("id"))
	assert.True(t, g.IsTerminal("+"))
	assert.True(t, g.IsNonTerminal("E"))
	assert.True(t, g.IsNonTerminal("T"))
	assert.True(t, g.IsNonTerminal("F"))

	assert.Equal(t, 6, g.RuleCount())
	assert.Equal(t, "E", g.Rule(0).NonTerminal)
	assert.Equal(t, []grammar.Symbol{
		grammar.NewNonTerminal("E"),
		grammar.NewTerminal("+"),
		grammar.NewNonTerminal("T"),
	}, g.Rule(0).Right)
}

func Test_Load_EpsilonProduction(t *testing.T) {
	src := `
S $
a $
S ::= a S | Epsilon
`
	g, err := grammar.Load(strings.NewReader(src))
	assert.NoError(t, err)

	rules := g.RulesFor("S")
	assert.Len(t, rules, 2)
	assert.Empty(t, rules[1].Right)
}

func Test_Load_RejectsMissingArrow(t *testing.T) {
	src := `
S $
a $
S a
`
	_, err := grammar.Load(strings.NewReader(src))
	assert.Error(t, err)
}

func Test_Grammar_Augmented_PrependsStartProduction(t *testing.T) {
	g := grammar.New([]grammar.Production{
		{NonTerminal: "E", Right: []grammar.Symbol{grammar.NewTerminal("id")}},
	}, "E", "$")

	aug := g.Augmented()
	assert.Equal(t, "E'", aug.StartSymbol())
	assert.Equal(t, 2, aug.RuleCount())
	assert.Equal(t, "E'", aug.Rule(0).NonTerminal)
	assert.Equal(t, []grammar.Symbol{grammar.NewNonTerminal("E")}, aug.Rule(0).Right)
	// Augmenting must not mutate the receiver.
	assert.Equal(t, 1, g.RuleCount())
}

func Test_LR0Item_Advanced(t *testing.T) {
	item := grammar.LR0Item{
		NonTerminal: "E",
		Left:        nil,
		Right: []grammar.Symbol{
			grammar.NewNonTerminal("E"),
			grammar.NewTerminal("+"),
			grammar.NewNonTerminal("T"),
		},
	}
	next, ok := item.NextSymbol()
	assert.True(t, ok)
	assert.Equal(t, grammar.NewNonTerminal("E"), next)

	advanced := item.Advanced()
	assert.Equal(t, []grammar.Symbol{grammar.NewNonTerminal("E")}, advanced.Left)
	assert.Equal(t, []grammar.Symbol{
		grammar.NewTerminal("+"),
		grammar.NewNonTerminal("T"),
	}, advanced.Right)
	assert.False(t, advanced.Complete())

	twice := advanced.Advanced().Advanced()
	assert.True(t, twice.Complete())
}

func Test_LR1Item_StringIncludesLookahead(t *testing.T) {
	item := grammar.LR1Item{
		LR0Item: grammar.LR0Item{
			NonTerminal: "E",
			Right:       []grammar.Symbol{grammar.NewTerminal("id")},
		},
		Lookahead: grammar.NewTerminal("$"),
	}
	assert.Contains(t, item.String(), "$")

	other := item
	other.Lookahead = grammar.NewTerminal("+")
	assert.False(t, item.Equal(other))
}
