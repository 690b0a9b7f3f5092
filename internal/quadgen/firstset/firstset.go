// Package firstset computes FIRST sets over a grammar.Grammar: FIRST(X) for
// every grammar symbol, and a FIRST(alpha) helper for arbitrary symbol
// strings, used by the automaton package's closure operation to compute
// lookaheads.
package firstset

import (
	"github.com/cishoon/quadtranslator/internal/quadgen/grammar"
	"github.com/cishoon/quadtranslator/internal/util"
)

// Table is the FIRST set of every grammar symbol, keyed by literal. Terminal
// and Epsilon FIRST sets are trivial ({itself}); only NonTerminal entries
// are computed by fixed point.
type Table struct {
	g     grammar.Grammar
	byLit map[string]util.StringSet
}

// Compute builds the FIRST-set table for g by round-robin fixed point:
// repeatedly scan every production, growing FIRST(lhs), until a full pass
// makes no change. Sets only grow and are bounded by the terminal alphabet
// plus epsilon, so this always terminates.
func Compute(g grammar.Grammar) Table {
	t := Table{g: g, byLit: make(map[string]util.StringSet)}

	for _, sym := range g.Terminals() {
		t.byLit[sym.Literal] = util.StringSetOf([]string{sym.Literal})
	}
	for _, sym := range g.NonTerminals() {
		t.byLit[sym.Literal] = util.NewStringSet()
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.Rules() {
			before := t.byLit[p.NonTerminal].Len()
			t.applyProduction(p)
			if t.byLit[p.NonTerminal].Len() != before {
				changed = true
			}
		}
	}

	return t
}

// applyProduction folds FIRST(rhs) into FIRST(lhs) for one production, per
// the standard rule: walk the right-hand side left to right, adding
// FIRST(Xi) \ {epsilon} until some Xi cannot derive epsilon; if every symbol
// in the production can derive epsilon (including the empty production
// itself), add epsilon to FIRST(lhs).
func (t Table) applyProduction(p grammar.Production) {
	lhsSet := t.byLit[p.NonTerminal]

	allEpsilon := true
	for _, sym := range p.Right {
		if sym.IsEpsilon() {
			continue
		}
		symSet := t.of(sym)
		for _, v := range symSet.Elements() {
			if v != grammar.EpsilonLiteral {
				lhsSet.Add(v)
			}
		}
		if !symSet.Has(grammar.EpsilonLiteral) {
			allEpsilon = false
			break
		}
	}
	if allEpsilon {
		lhsSet.Add(grammar.EpsilonLiteral)
	}
}

func (t Table) of(sym grammar.Symbol) util.StringSet {
	if sym.IsEpsilon() {
		return util.StringSetOf([]string{grammar.EpsilonLiteral})
	}
	if set, ok := t.byLit[sym.Literal]; ok {
		return set
	}
	return util.NewStringSet()
}

// Of returns FIRST(X) for a single symbol.
func (t Table) Of(sym grammar.Symbol) util.StringSet {
	return t.of(sym)
}

// OfString computes FIRST(alpha) for a string of symbols alpha = Y1...Ym:
// start empty, add FIRST(Yi) \ {epsilon} for each Yi in turn, stopping at
// the first Yi that cannot derive epsilon; if every Yi can derive epsilon,
// add epsilon to the result. An empty alpha has FIRST = {epsilon}.
func (t Table) OfString(alpha []grammar.Symbol) util.StringSet {
	result := util.NewStringSet()
	allEpsilon := true
	for _, sym := range alpha {
		symSet := t.of(sym)
		for _, v := range symSet.Elements() {
			if v != grammar.EpsilonLiteral {
				result.Add(v)
			}
		}
		if !symSet.Has(grammar.EpsilonLiteral) {
			allEpsilon = false
			break
		}
	}
	if allEpsilon {
		result.Add(grammar.EpsilonLiteral)
	}
	return result
}

// OfStringWithLookahead computes FIRST(beta a) where beta is a symbol
// string and a is a single trailing lookahead terminal — the exact
// operation the closure rule needs: FIRST(beta . a).
func (t Table) OfStringWithLookahead(beta []grammar.Symbol, a grammar.Symbol) util.StringSet {
	combined := make([]grammar.Symbol, 0, len(beta)+1)
	combined = append(combined, beta...)
	combined = append(combined, a)
	return t.OfString(combined)
}
