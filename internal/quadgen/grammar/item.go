package grammar

import (
	"fmt"
	"strings"
)

// LR0Item is a production with a dot position marking how much of the
// right-hand side has been matched so far.
type LR0Item struct {
	NonTerminal string
	Left        []Symbol
	Right       []Symbol
}

// NextSymbol returns the symbol immediately after the dot, and whether one
// exists (false at the end of the production).
func (item LR0Item) NextSymbol() (Symbol, bool) {
	if len(item.Right) == 0 {
		return Symbol{}, false
	}
	return item.Right[0], true
}

// NextNextSymbol returns the symbol two past the dot, used by the original
// translator's lookahead-of-lookahead checks during closure.
func (item LR0Item) NextNextSymbol() (Symbol, bool) {
	if len(item.Right) < 2 {
		return Symbol{}, false
	}
	return item.Right[1], true
}

// Advanced returns a copy of item with the dot moved one position to the
// right. It panics if the item is already complete; callers must check
// NextSymbol first.
func (item LR0Item) Advanced() LR0Item {
	if len(item.Right) == 0 {
		panic("cannot advance a complete item")
	}
	left := make([]Symbol, len(item.Left)+1)
	copy(left, item.Left)
	left[len(item.Left)] = item.Right[0]

	right := make([]Symbol, len(item.Right)-1)
	copy(right, item.Right[1:])

	return LR0Item{NonTerminal: item.NonTerminal, Left: left, Right: right}
}

// Complete reports whether the dot has reached the end of the production.
func (item LR0Item) Complete() bool { return len(item.Right) == 0 }

// Production reconstructs the underlying production (dot removed).
func (item LR0Item) Production() Production {
	right := make([]Symbol, 0, len(item.Left)+len(item.Right))
	right = append(right, item.Left...)
	right = append(right, item.Right...)
	return Production{NonTerminal: item.NonTerminal, Right: right}
}

func (item LR0Item) String() string {
	return lr0Core(item)
}

func lr0Core(item LR0Item) string {
	var sb strings.Builder
	sb.WriteString(item.NonTerminal)
	sb.WriteString(" -> ")
	for _, s := range item.Left {
		sb.WriteString(s.String())
		sb.WriteRune(' ')
	}
	sb.WriteRune('.')
	for i, s := range item.Right {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Equal compares two LR0Items structurally.
func (item LR0Item) Equal(o LR0Item) bool {
	return item.String() == o.String()
}

// LR1Item is an LR0Item annotated with a single lookahead terminal. The
// canonical collection is built over LR1Items; Core strips the lookahead
// back down to the LR0 core for LALR-style merging, which this translator
// does not use but keeps available for symmetry with the reference design.
type LR1Item struct {
	LR0Item
	Lookahead Symbol
}

// Advanced returns a copy with the dot moved one position right, carrying
// the same lookahead forward.
func (item LR1Item) Advanced() LR1Item {
	return LR1Item{LR0Item: item.LR0Item.Advanced(), Lookahead: item.Lookahead}
}

func (item LR1Item) String() string {
	return fmt.Sprintf("%s, %s", lr0Core(item.LR0Item), item.Lookahead.String())
}

// Equal compares two LR1Items structurally, including lookahead.
func (item LR1Item) Equal(o LR1Item) bool {
	return item.String() == o.String()
}

// Core returns the LR0Item underlying this LR1Item, with the lookahead
// discarded.
func (item LR1Item) Core() LR0Item { return item.LR0Item }
