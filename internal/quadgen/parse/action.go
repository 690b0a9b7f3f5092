// Package parse assembles ACTION/GOTO tables from an automaton.Collection
// and drives the shift/reduce algorithm over a token stream to build a
// types.ParseTree.
package parse

import (
	"fmt"

	"github.com/cishoon/quadtranslator/internal/quadgen/grammar"
)

// ActionKind tags which variant an LRAction holds.
type ActionKind int

const (
	Shift ActionKind = iota
	Reduce
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "unknown"
	}
}

// LRAction is the tagged union stored in the ACTION table: Shift carries the
// target state, Reduce carries the production to reduce by, Accept carries
// neither.
type LRAction struct {
	Kind       ActionKind
	ShiftState int
	ReduceRule grammar.Production
}

func (a LRAction) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("s%d", a.ShiftState)
	case Reduce:
		return fmt.Sprintf("r(%s)", a.ReduceRule)
	case Accept:
		return "acc"
	default:
		return "?"
	}
}
