package parse

import (
	"fmt"

	"github.com/dekarrin/rosed"

	"github.com/cishoon/quadtranslator/internal/quadgen/automaton"
	"github.com/cishoon/quadtranslator/internal/quadgen/firstset"
	"github.com/cishoon/quadtranslator/internal/quadgen/grammar"
	"github.com/cishoon/quadtranslator/internal/quadgen/qgerrors"
)

// Table is the assembled ACTION/GOTO tables for an augmented grammar: ACTION
// keyed by (state, terminal literal), GOTO keyed by (state, nonterminal
// literal). At most one entry may ever be assigned per key; BuildTables
// reports a GrammarConflict instead of silently letting the later write win.
type Table struct {
	g      grammar.Grammar
	action []map[string]LRAction
	goTo   []map[string]int
}

// BuildTables runs automaton.Build over g's augmented form and assembles
// ACTION/GOTO from the resulting canonical collection, per the table
// assembly rule of spec.md's parser-generator component:
//
//   - a Shift item with next symbol t (terminal) sets ACTION[s, t] = Shift(goto(s, t))
//   - a Goto item with next symbol B (nonterminal) sets GOTO[s, B] = goto(s, B)
//   - a Reduce item (production p, lookahead a) sets ACTION[s, a] = Reduce(p)
//   - an Accept item (lookahead = end) sets ACTION[s, end] = Accept
//
// Any attempt to assign two different actions to the same (state, terminal)
// is a grammar conflict and is fatal, detected here rather than resolved by
// last-write-wins.
func BuildTables(g grammar.Grammar) (Table, error) {
	aug := g.Augmented()
	first := firstset.Compute(aug)
	coll := automaton.Build(aug, first)

	t := Table{
		g:      aug,
		action: make([]map[string]LRAction, len(coll.States)),
		goTo:   make([]map[string]int, len(coll.States)),
	}
	for s := range coll.States {
		t.action[s] = make(map[string]LRAction)
		t.goTo[s] = make(map[string]int)
	}

	startLit := aug.Rule(0).NonTerminal

	for s, items := range coll.States {
		for _, item := range items.Items() {
			next, hasNext := item.NextSymbol()

			switch {
			case !hasNext && item.NonTerminal == startLit && item.Lookahead == aug.EndSymbol():
				if err := t.setAction(s, aug.EndSymbol().Literal, LRAction{Kind: Accept}); err != nil {
					return Table{}, err
				}

			case !hasNext:
				act := LRAction{Kind: Reduce, ReduceRule: item.Production()}
				if err := t.setAction(s, item.Lookahead.Literal, act); err != nil {
					return Table{}, err
				}

			case next.IsTerminal():
				target, ok := coll.Transitions[s][next]
				if !ok {
					continue
				}
				act := LRAction{Kind: Shift, ShiftState: target}
				if err := t.setAction(s, next.Literal, act); err != nil {
					return Table{}, err
				}

			case next.IsNonTerminal():
				target, ok := coll.Transitions[s][next]
				if !ok {
					continue
				}
				t.goTo[s][next.Literal] = target
			}
		}
	}

	return t, nil
}

func (t Table) setAction(state int, terminal string, act LRAction) error {
	existing, ok := t.action[state][terminal]
	if ok && !existing.equalFor(act) {
		return qgerrors.GrammarConflictf(
			"state %d, symbol %q: conflicting actions %s and %s — grammar is not LR(1)",
			state, terminal, existing, act)
	}
	t.action[state][terminal] = act
	return nil
}

func (a LRAction) equalFor(o LRAction) bool {
	if a.Kind != o.Kind {
		return false
	}
	switch a.Kind {
	case Shift:
		return a.ShiftState == o.ShiftState
	case Reduce:
		return a.ReduceRule.Equal(o.ReduceRule)
	default:
		return true
	}
}

// Action looks up ACTION[state, terminal]. The ok result is false when
// there is no entry — a syntax error at the driver level.
func (t Table) Action(state int, terminal string) (LRAction, bool) {
	act, ok := t.action[state][terminal]
	return act, ok
}

// Goto looks up GOTO[state, nonterminal]. The ok result is false when there
// is no entry, which should not happen for a grammar the driver has
// successfully reduced against.
func (t Table) Goto(state int, nonTerminal string) (int, bool) {
	s, ok := t.goTo[state][nonTerminal]
	return s, ok
}

// StateCount returns the number of states in the tables.
func (t Table) StateCount() int { return len(t.action) }

// String renders ACTION and GOTO as a single table, columns grouped ACTION
// then GOTO, for the CLI's -t/--print-tables flag.
func (t Table) String() string {
	terms := make([]string, 0)
	for _, sym := range t.g.Terminals() {
		terms = append(terms, sym.Literal)
	}
	nonTerms := make([]string, 0)
	for _, sym := range t.g.NonTerminals() {
		if sym.Literal == t.g.StartSymbol() {
			continue
		}
		nonTerms = append(nonTerms, sym.Literal)
	}

	headers := []string{"state", "|"}
	for _, term := range terms {
		headers = append(headers, fmt.Sprintf("A:%s", term))
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}

	data := [][]string{headers}
	for s := 0; s < len(t.action); s++ {
		row := []string{fmt.Sprintf("%d", s), "|"}
		for _, term := range terms {
			cell := ""
			if act, ok := t.Action(s, term); ok {
				cell = act.String()
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonTerms {
			cell := ""
			if g, ok := t.Goto(s, nt); ok {
				cell = fmt.Sprintf("%d", g)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
