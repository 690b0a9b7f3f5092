package grammar

import (
	"fmt"

	"github.com/cishoon/quadtranslator/internal/util"
)

// augmentedSuffix is appended to the start symbol's literal to name the
// synthetic start symbol added by Augmented, e.g. "program'" for a start
// symbol of "program".
const augmentedSuffix = "'"

// Grammar is an immutable context-free grammar: a start symbol, an end-of-
// input marker, and an ordered list of productions. Productions keep their
// insertion order because rule numbers (used in reduce actions and in the
// parser-generator's printed tables) are positional.
type Grammar struct {
	start       string
	end         Symbol
	productions []Production
	nonTerms    util.StringSet
	terms       util.StringSet
}

// New builds a Grammar directly from a production list. start names the
// grammar's start symbol (must appear as some production's LHS); end is the
// terminal symbol representing end-of-input, conventionally "$".
func New(productions []Production, start string, end string) Grammar {
	g := Grammar{
		start:       start,
		end:         NewTerminal(end),
		productions: make([]Production, len(productions)),
		nonTerms:    util.NewStringSet(),
		terms:       util.NewStringSet(),
	}
	copy(g.productions, productions)

	for _, p := range g.productions {
		g.nonTerms.Add(p.NonTerminal)
	}
	for _, p := range g.productions {
		for _, sym := range p.Right {
			if sym.IsEpsilon() {
				continue
			}
			if g.nonTerms.Has(sym.Literal) {
				continue
			}
			g.terms.Add(sym.Literal)
		}
	}
	g.terms.Add(end)

	return g
}

// StartSymbol returns the grammar's designated start nonterminal.
func (g Grammar) StartSymbol() string { return g.start }

// EndSymbol returns the end-of-input terminal, "$" by convention.
func (g Grammar) EndSymbol() Symbol { return g.end }

// AugmentedStart returns the literal of the synthetic augmented start
// nonterminal, e.g. "program'".
func (g Grammar) AugmentedStart() string { return g.start + augmentedSuffix }

// Augmented returns a copy of g with a new start production
// S' -> S prepended as rule 0, where S is the original start symbol. This is the
// production consumed by the automaton package to seed state 0's item set
// and by the parser driver to recognize ACCEPT.
func (g Grammar) Augmented() Grammar {
	aug := g.Copy()
	aug.start = g.AugmentedStart()
	aug.nonTerms.Add(aug.start)
	aug.productions = append([]Production{
		{NonTerminal: aug.start, Right: []Symbol{NewNonTerminal(g.start)}},
	}, aug.productions...)
	return aug
}

// Copy returns a deep copy of g.
func (g Grammar) Copy() Grammar {
	productions := make([]Production, len(g.productions))
	for i, p := range g.productions {
		productions[i] = p.Copy()
	}
	return Grammar{
		start:       g.start,
		end:         g.end,
		productions: productions,
		nonTerms:    util.NewStringSet(g.nonTerms),
		terms:       util.NewStringSet(g.terms),
	}
}

// Rules returns the full ordered production list. Rule numbers used in
// reduce actions are indices into this slice.
func (g Grammar) Rules() []Production {
	out := make([]Production, len(g.productions))
	copy(out, g.productions)
	return out
}

// Rule returns the i'th production, in insertion order. It panics if i is
// out of range; callers only index with rule numbers produced by this same
// Grammar's table construction, which are always in range.
func (g Grammar) Rule(i int) Production { return g.productions[i] }

// RuleCount returns the number of productions in the grammar.
func (g Grammar) RuleCount() int { return len(g.productions) }

// RulesFor returns, in order, the productions whose LHS is nonTerm. Used by
// closure when expanding an item with the dot before a nonterminal.
func (g Grammar) RulesFor(nonTerm string) []Production {
	var out []Production
	for _, p := range g.productions {
		if p.NonTerminal == nonTerm {
			out = append(out, p)
		}
	}
	return out
}

// IsTerminal reports whether literal names a terminal symbol of g.
func (g Grammar) IsTerminal(literal string) bool { return g.terms.Has(literal) }

// IsNonTerminal reports whether literal names a nonterminal symbol of g.
func (g Grammar) IsNonTerminal(literal string) bool { return g.nonTerms.Has(literal) }

// Symbol resolves a literal to a Symbol using g's own terminal/nonterminal
// classification.
func (g Grammar) Symbol(literal string) Symbol {
	if literal == EpsilonLiteral {
		return EpsilonSymbol
	}
	if g.IsNonTerminal(literal) {
		return NewNonTerminal(literal)
	}
	return NewTerminal(literal)
}

// Terminals returns every terminal symbol of g, including the end marker,
// in no particular order.
func (g Grammar) Terminals() []Symbol {
	lits := g.terms.Elements()
	out := make([]Symbol, len(lits))
	for i, l := range lits {
		out[i] = NewTerminal(l)
	}
	return out
}

// NonTerminals returns every nonterminal symbol of g, in no particular
// order.
func (g Grammar) NonTerminals() []Symbol {
	lits := g.nonTerms.Elements()
	out := make([]Symbol, len(lits))
	for i, l := range lits {
		out[i] = NewNonTerminal(l)
	}
	return out
}

// String renders every production of g, one per line, for diagnostics.
func (g Grammar) String() string {
	s := fmt.Sprintf("Grammar(start=%s, end=%s):\n", g.start, g.end)
	for i, p := range g.productions {
		s += fmt.Sprintf("  (%d) %s\n", i, p)
	}
	return s
}
