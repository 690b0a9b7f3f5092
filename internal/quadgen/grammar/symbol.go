// Package grammar holds the immutable value types that describe a context-
// free grammar — symbols, productions, and LR(1) items — plus the Grammar
// container that owns them and the loader for the EBNF-like grammar file
// format.
//
// Symbols are identified purely by (Kind, Literal); any per-occurrence
// semantic value (a lexeme, an operand) is carried on types.Token or on a
// types.ParseTree node instead, so equality, map keys, and hashing never see
// it. This keeps the invariant from leaking: two Symbols with the same kind
// and literal are always the same symbol, full stop.
package grammar

// Kind classifies a Symbol.
type Kind int

const (
	Terminal Kind = iota
	NonTerminal
	Epsilon
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "Terminal"
	case NonTerminal:
		return "NonTerminal"
	case Epsilon:
		return "Epsilon"
	default:
		return "Unknown"
	}
}

// EpsilonLiteral is the literal used for the empty string in grammar files
// and in FIRST-set bookkeeping.
const EpsilonLiteral = ""

// Symbol is a single grammar symbol. It is a plain comparable value so it
// can be used directly as a map key — that is the mechanism by which the
// "no semantic value in equality" invariant is enforced: there is nowhere on
// Symbol to put one.
type Symbol struct {
	Kind    Kind
	Literal string
}

// NewTerminal returns a terminal symbol with the given literal.
func NewTerminal(literal string) Symbol { return Symbol{Kind: Terminal, Literal: literal} }

// NewNonTerminal returns a nonterminal symbol with the given literal.
func NewNonTerminal(literal string) Symbol { return Symbol{Kind: NonTerminal, Literal: literal} }

// EpsilonSymbol is the single shared epsilon value.
var EpsilonSymbol = Symbol{Kind: Epsilon, Literal: EpsilonLiteral}

func (s Symbol) String() string {
	if s.Kind == Epsilon {
		return "Epsilon"
	}
	return s.Literal
}

// IsTerminal, IsNonTerminal, IsEpsilon are convenience predicates used
// throughout the closure and table-construction code.
func (s Symbol) IsTerminal() bool    { return s.Kind == Terminal }
func (s Symbol) IsNonTerminal() bool { return s.Kind == NonTerminal }
func (s Symbol) IsEpsilon() bool     { return s.Kind == Epsilon }
