package grammar

import "strings"

// Production is a single rewrite rule LHS -> RHS (RHS may be empty, meaning
// LHS derives epsilon).
type Production struct {
	NonTerminal string
	Right       []Symbol
}

// Copy returns a deep copy of p.
func (p Production) Copy() Production {
	right := make([]Symbol, len(p.Right))
	copy(right, p.Right)
	return Production{NonTerminal: p.NonTerminal, Right: right}
}

// Equal compares two productions by value.
func (p Production) Equal(o Production) bool {
	if p.NonTerminal != o.NonTerminal {
		return false
	}
	if len(p.Right) != len(o.Right) {
		return false
	}
	for i := range p.Right {
		if p.Right[i] != o.Right[i] {
			return false
		}
	}
	return true
}

// String renders the production with "->" between the sides, e.g.
// "expr -> expr + term"; an empty right-hand side renders as "Epsilon".
func (p Production) String() string {
	var sb strings.Builder
	sb.WriteString(p.NonTerminal)
	sb.WriteString(" -> ")
	if len(p.Right) == 0 {
		sb.WriteString(EpsilonSymbol.String())
	} else {
		for i, sym := range p.Right {
			if i > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteString(sym.String())
		}
	}
	return sb.String()
}
