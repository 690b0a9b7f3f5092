package parse

import (
	"github.com/cishoon/quadtranslator/internal/quadgen/qgerrors"
	"github.com/cishoon/quadtranslator/internal/quadgen/types"
	"github.com/cishoon/quadtranslator/internal/util"
)

// Driver runs the shift/reduce algorithm over a token stream against a
// built Table, producing a types.ParseTree. It is stateless between calls
// to Parse; a single Driver value may be reused across many parses.
type Driver struct {
	Tables Table
	End    string // end-of-input terminal literal, e.g. "$"
}

// NewDriver wraps an already-built Table. end is the end-of-input terminal
// literal the token stream is expected to terminate with.
func NewDriver(tables Table, end string) Driver {
	return Driver{Tables: tables, End: end}
}

// Parse runs the shift/reduce driver to completion over tokens, which must
// end with a Token of class d.End. It maintains a state stack (seeded with
// 0), a parallel parse-tree-node stack, and the remaining input queue; at
// each step it looks up ACTION[top(states), front(input)] and shifts,
// reduces, accepts, or fails per spec.md §4.4.1.
func (d Driver) Parse(stream types.TokenStream) (*types.ParseTree, error) {
	input := stream.Tokens()

	var states util.Stack[int]
	states.Push(0)
	var nodes util.Stack[*types.ParseTree]

	pos := 0
	peek := func() types.Token {
		if pos < len(input) {
			return input[pos]
		}
		return types.Token{Class: d.End}
	}

	for {
		tok := peek()
		act, ok := d.Tables.Action(states.Peek(), tok.Class)
		if !ok {
			return nil, qgerrors.NoActionEntryf(
				"unexpected %s at line %d: no action for state %d", expectedDesc(tok), tok.Line, states.Peek())
		}

		switch act.Kind {
		case Shift:
			states.Push(act.ShiftState)
			nodes.Push(types.Leaf(tok))
			pos++

		case Reduce:
			prod := act.ReduceRule
			k := len(prod.Right)
			children := make([]*types.ParseTree, k)
			for i := k - 1; i >= 0; i-- {
				states.Pop()
				children[i] = nodes.Pop()
			}
			node := types.Internal(prod.NonTerminal, children)
			nodes.Push(node)

			gotoState, ok := d.Tables.Goto(states.Peek(), prod.NonTerminal)
			if !ok {
				return nil, qgerrors.NoActionEntryf(
					"no goto entry for state %d on nonterminal %q", states.Peek(), prod.NonTerminal)
			}
			states.Push(gotoState)

		case Accept:
			if nodes.Len() != 1 {
				return nil, qgerrors.NoActionEntryf("internal error: %d nodes remain at accept", nodes.Len())
			}
			return nodes.Peek(), nil

		default:
			return nil, qgerrors.NoActionEntryf("unrecognized action kind at state %d", states.Peek())
		}
	}
}

func expectedDesc(tok types.Token) string {
	article := util.ArticleFor(tok.Class, false)
	return article + " " + tok.Class
}
