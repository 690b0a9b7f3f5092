// Package automaton builds the canonical LR(1) collection of item sets for
// a grammar: closure, goto, and the state-by-state construction of the
// collection itself.
//
// Unlike a generic automaton keyed by an encoded-string-to-state map, the
// collection here is kept as a plain ordered slice of item sets — state
// number IS list index, by construction — because the driver and table
// printer both need stable, dense integer state identifiers rather than an
// opaque key. New states are found by linear search against the existing
// list, exactly as the reference implementation's construct_tables does;
// for the grammar sizes this translator targets that is plenty fast, and it
// keeps "two item sets with the same items are the same state" trivially
// true by construction rather than by hashing discipline.
package automaton

import (
	"github.com/cishoon/quadtranslator/internal/quadgen/firstset"
	"github.com/cishoon/quadtranslator/internal/quadgen/grammar"
	"github.com/cishoon/quadtranslator/internal/util"
)

// ItemSet is an unordered set of LR1Items, keyed by each item's canonical
// string so that set equality reduces to key equality.
type ItemSet util.SVSet[grammar.LR1Item]

// NewItemSet returns an empty item set.
func NewItemSet() ItemSet {
	return ItemSet(util.NewSVSet[grammar.LR1Item]())
}

// Add inserts item into the set; re-adding an existing item is a no-op.
func (s ItemSet) Add(item grammar.LR1Item) {
	util.SVSet[grammar.LR1Item](s).Set(item.String(), item)
}

// Has reports whether an item with the same (core, lookahead) is present.
func (s ItemSet) Has(item grammar.LR1Item) bool {
	return util.SVSet[grammar.LR1Item](s).Has(item.String())
}

// Items returns every item in the set, in unspecified order.
func (s ItemSet) Items() []grammar.LR1Item {
	out := make([]grammar.LR1Item, 0, len(s))
	for _, k := range util.OrderedKeys(map[string]grammar.LR1Item(s)) {
		out = append(out, s[k])
	}
	return out
}

// Len returns the number of items in the set.
func (s ItemSet) Len() int { return len(s) }

// Equal reports whether two item sets contain exactly the same items. This
// is what the canonical-collection construction uses to decide whether a
// freshly computed goto(I, X) is an already-known state.
func (s ItemSet) Equal(o ItemSet) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if _, ok := o[k]; !ok {
			return false
		}
	}
	return true
}

// Closure computes the closure of an item set under the LR(1) closure rule:
// for each item [A -> alpha . B beta, a] with B a nonterminal, for each
// production B -> gamma and each b in FIRST(beta a), add [B -> . gamma, b].
// Repeats until no insertion changes the set.
func Closure(g grammar.Grammar, first firstset.Table, seed ItemSet) ItemSet {
	closed := NewItemSet()
	for _, it := range seed.Items() {
		closed.Add(it)
	}

	changed := true
	for changed {
		changed = false
		for _, item := range closed.Items() {
			next, ok := item.NextSymbol()
			if !ok || !next.IsNonTerminal() {
				continue
			}
			lookaheads := first.OfStringWithLookahead(item.Right[1:], item.Lookahead)
			for _, p := range g.RulesFor(next.Literal) {
				for _, b := range lookaheads.Elements() {
					if b == grammar.EpsilonLiteral {
						continue
					}
					newItem := grammar.LR1Item{
						LR0Item: grammar.LR0Item{
							NonTerminal: p.NonTerminal,
							Left:        nil,
							Right:       p.Right,
						},
						Lookahead: grammar.NewTerminal(b),
					}
					if !closed.Has(newItem) {
						closed.Add(newItem)
						changed = true
					}
				}
			}
		}
	}

	return closed
}

// Goto computes goto(I, X) = closure({[A -> alpha X . beta, a] | [A -> alpha
// . X beta, a] in I}).
func Goto(g grammar.Grammar, first firstset.Table, i ItemSet, x grammar.Symbol) ItemSet {
	moved := NewItemSet()
	for _, item := range i.Items() {
		next, ok := item.NextSymbol()
		if !ok || next != x {
			continue
		}
		moved.Add(item.Advanced())
	}
	return Closure(g, first, moved)
}

// symbolsAfterDot returns, in first-seen order, every distinct symbol that
// appears immediately after the dot in some item of i — the set of symbols
// goto() must be tried against when expanding a state.
func symbolsAfterDot(i ItemSet) []grammar.Symbol {
	var out []grammar.Symbol
	seen := make(map[grammar.Symbol]bool)
	for _, item := range i.Items() {
		next, ok := item.NextSymbol()
		if !ok || seen[next] {
			continue
		}
		seen[next] = true
		out = append(out, next)
	}
	return out
}

// Collection is the canonical LR(1) collection: an ordered list of item
// sets (states), plus the transition function recorded during
// construction.
type Collection struct {
	States      []ItemSet
	Transitions []map[grammar.Symbol]int
}

// Build constructs the canonical LR(1) collection for an already-augmented
// grammar g (see grammar.Grammar.Augmented). State 0 is
// closure({[start' -> . start, end]}); states are discovered by repeatedly
// computing goto(I, X) for every symbol X following a dot in every known
// state, appending J as a new state only when it does not equal any
// existing state.
func Build(g grammar.Grammar, first firstset.Table) Collection {
	startProd := g.Rule(0)
	seed := NewItemSet()
	seed.Add(grammar.LR1Item{
		LR0Item: grammar.LR0Item{
			NonTerminal: startProd.NonTerminal,
			Left:        nil,
			Right:       startProd.Right,
		},
		Lookahead: g.EndSymbol(),
	})

	coll := Collection{
		States:      []ItemSet{Closure(g, first, seed)},
		Transitions: []map[grammar.Symbol]int{{}},
	}

	for s := 0; s < len(coll.States); s++ {
		for _, x := range symbolsAfterDot(coll.States[s]) {
			j := Goto(g, first, coll.States[s], x)
			target := coll.findOrAppend(j)
			coll.Transitions[s][x] = target
		}
	}

	return coll
}

func (c *Collection) findOrAppend(j ItemSet) int {
	for idx, existing := range c.States {
		if existing.Equal(j) {
			return idx
		}
	}
	c.States = append(c.States, j)
	c.Transitions = append(c.Transitions, map[grammar.Symbol]int{})
	return len(c.States) - 1
}
