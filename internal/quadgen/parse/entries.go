package parse

import "github.com/cishoon/quadtranslator/internal/quadgen/grammar"

// ActionEntry is one (state, terminal) -> action record, the unit the
// table cache serializes.
type ActionEntry struct {
	State    int
	Terminal string
	Action   LRAction
}

// GotoEntry is one (state, nonterminal) -> target state record.
type GotoEntry struct {
	State       int
	NonTerminal string
	Target      int
}

// ActionEntries flattens the ACTION table into a stable, state-then-
// terminal ordered slice, suitable for serialization.
func (t Table) ActionEntries() []ActionEntry {
	var out []ActionEntry
	for s := 0; s < len(t.action); s++ {
		terms := make([]string, 0, len(t.action[s]))
		for term := range t.action[s] {
			terms = append(terms, term)
		}
		for _, term := range sortedStrings(terms) {
			out = append(out, ActionEntry{State: s, Terminal: term, Action: t.action[s][term]})
		}
	}
	return out
}

// GotoEntries flattens the GOTO table the same way.
func (t Table) GotoEntries() []GotoEntry {
	var out []GotoEntry
	for s := 0; s < len(t.goTo); s++ {
		nts := make([]string, 0, len(t.goTo[s]))
		for nt := range t.goTo[s] {
			nts = append(nts, nt)
		}
		for _, nt := range sortedStrings(nts) {
			out = append(out, GotoEntry{State: s, NonTerminal: nt, Target: t.goTo[s][nt]})
		}
	}
	return out
}

func sortedStrings(ss []string) []string {
	// small insertion sort; entry counts per state are tiny and this keeps
	// the package free of an extra sort import for one call site.
	out := make([]string, len(ss))
	copy(out, ss)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// FromEntries rebuilds a Table from previously-flattened entries, against
// the grammar g they were built from (the same augmented grammar BuildTables
// would have produced). stateCount must be at least one greater than the
// highest state referenced by either entry list.
func FromEntries(g grammar.Grammar, stateCount int, actions []ActionEntry, gotos []GotoEntry) Table {
	t := Table{
		g:      g,
		action: make([]map[string]LRAction, stateCount),
		goTo:   make([]map[string]int, stateCount),
	}
	for s := 0; s < stateCount; s++ {
		t.action[s] = make(map[string]LRAction)
		t.goTo[s] = make(map[string]int)
	}
	for _, e := range actions {
		t.action[e.State][e.Terminal] = e.Action
	}
	for _, e := range gotos {
		t.goTo[e.State][e.NonTerminal] = e.Target
	}
	return t
}
