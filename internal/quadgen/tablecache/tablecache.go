// Package tablecache persists ACTION/GOTO tables to the text format
// described in spec.md §6, so a CLI invocation can skip regenerating tables
// for a grammar it has already compiled once.
package tablecache

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cishoon/quadtranslator/internal/quadgen/grammar"
	"github.com/cishoon/quadtranslator/internal/quadgen/parse"
	"github.com/cishoon/quadtranslator/internal/quadgen/qgerrors"
)

const separator = "---"

// nullLexeme is written in the symbol lexeme slot: grammar.Symbol never
// carries a semantic-value payload (see grammar.Symbol's doc comment), so
// there is never anything but "NULL" to put there. The slot is kept in the
// wire format anyway so the format matches the original source's generic
// Symbol encoding and stays a stable, self-describing round trip.
const nullLexeme = "NULL"

// Save writes t's ACTION table, a "---" separator, then t's GOTO table, one
// record per line.
func Save(w io.Writer, t parse.Table) error {
	bw := bufio.NewWriter(w)

	for _, e := range t.ActionEntries() {
		fmt.Fprintf(bw, "%d %s %s\n", e.State, encodeSymbol(grammar.Terminal, e.Terminal), encodeAction(e.Action))
	}
	fmt.Fprintln(bw, separator)
	for _, e := range t.GotoEntries() {
		fmt.Fprintf(bw, "%d %s %d\n", e.State, encodeSymbol(grammar.NonTerminal, e.NonTerminal), e.Target)
	}

	if err := bw.Flush(); err != nil {
		return qgerrors.WrapIOError(err, "write table cache")
	}
	return nil
}

// Load reads the format Save writes and reconstructs a parse.Table bound to
// g — the same augmented grammar the tables were originally built from.
func Load(r io.Reader, g grammar.Grammar) (parse.Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var actions []parse.ActionEntry
	var gotos []parse.GotoEntry
	stateCount := 0
	readingAction := true

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == separator {
			readingAction = false
			continue
		}

		fields := strings.Fields(line)
		cur := &cursor{fields: fields}
		state, err := cur.int_()
		if err != nil {
			return parse.Table{}, qgerrors.WrapGrammarFormat(err, "table cache: bad state field in %q", line)
		}
		if state+1 > stateCount {
			stateCount = state + 1
		}

		symLiteral, err := decodeSymbol(cur)
		if err != nil {
			return parse.Table{}, qgerrors.WrapGrammarFormat(err, "table cache: bad symbol field in %q", line)
		}

		if readingAction {
			act, err := decodeAction(cur)
			if err != nil {
				return parse.Table{}, qgerrors.WrapGrammarFormat(err, "table cache: bad action field in %q", line)
			}
			actions = append(actions, parse.ActionEntry{State: state, Terminal: symLiteral, Action: act})
			if act.Kind == parse.Shift && act.ShiftState+1 > stateCount {
				stateCount = act.ShiftState + 1
			}
		} else {
			target, err := cur.int_()
			if err != nil {
				return parse.Table{}, qgerrors.WrapGrammarFormat(err, "table cache: bad goto target in %q", line)
			}
			gotos = append(gotos, parse.GotoEntry{State: state, NonTerminal: symLiteral, Target: target})
			if target+1 > stateCount {
				stateCount = target + 1
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return parse.Table{}, qgerrors.WrapIOError(err, "read table cache")
	}

	return parse.FromEntries(g, stateCount, actions, gotos), nil
}

func encodeSymbol(kind grammar.Kind, literal string) string {
	if kind == grammar.Epsilon {
		return fmt.Sprintf("%d", int(kind))
	}
	return fmt.Sprintf("%d %s %s", int(kind), literal, nullLexeme)
}

// decodeSymbol reads "<kind_int> <literal> <lexeme_or_NULL>" (or just
// "<kind_int>" for Epsilon, which never appears as an ACTION/GOTO key in
// practice but is accepted for format symmetry) and returns the literal.
func decodeSymbol(cur *cursor) (string, error) {
	kind, err := cur.int_()
	if err != nil {
		return "", err
	}
	if grammar.Kind(kind) == grammar.Epsilon {
		return grammar.EpsilonLiteral, nil
	}
	literal, err := cur.str()
	if err != nil {
		return "", err
	}
	if _, err := cur.str(); err != nil { // lexeme slot, always NULL
		return "", err
	}
	return literal, nil
}

func encodeAction(act parse.LRAction) string {
	switch act.Kind {
	case parse.Shift:
		return fmt.Sprintf("%d %d %s", int(parse.Shift), act.ShiftState, encodeProduction(grammar.Production{}))
	case parse.Accept:
		return fmt.Sprintf("%d %d %s", int(parse.Accept), 0, encodeProduction(grammar.Production{}))
	case parse.Reduce:
		return fmt.Sprintf("%d %d %s", int(parse.Reduce), 0, encodeProduction(act.ReduceRule))
	default:
		return fmt.Sprintf("%d %d %s", -1, 0, encodeProduction(grammar.Production{}))
	}
}

func decodeAction(cur *cursor) (parse.LRAction, error) {
	kind, err := cur.int_()
	if err != nil {
		return parse.LRAction{}, err
	}
	number, err := cur.int_()
	if err != nil {
		return parse.LRAction{}, err
	}
	prod, err := decodeProduction(cur)
	if err != nil {
		return parse.LRAction{}, err
	}

	switch parse.ActionKind(kind) {
	case parse.Shift:
		return parse.LRAction{Kind: parse.Shift, ShiftState: number}, nil
	case parse.Accept:
		return parse.LRAction{Kind: parse.Accept}, nil
	case parse.Reduce:
		return parse.LRAction{Kind: parse.Reduce, ReduceRule: prod}, nil
	default:
		return parse.LRAction{}, fmt.Errorf("unrecognized action kind %d", kind)
	}
}

// encodeProduction writes "<lhs> <rhs_len> <rhs_1> ... <rhs_n>". A zero
// Production (used for non-Reduce actions, which have no production to
// carry) encodes as lhs "_" with rhs_len 0.
func encodeProduction(p grammar.Production) string {
	lhs := p.NonTerminal
	if lhs == "" {
		lhs = "_"
	}
	var sb strings.Builder
	sb.WriteString(lhs)
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(len(p.Right)))
	for _, sym := range p.Right {
		sb.WriteString(" ")
		sb.WriteString(sym.Literal)
	}
	return sb.String()
}

func decodeProduction(cur *cursor) (grammar.Production, error) {
	lhs, err := cur.str()
	if err != nil {
		return grammar.Production{}, err
	}
	n, err := cur.int_()
	if err != nil {
		return grammar.Production{}, err
	}
	if lhs == "_" && n == 0 {
		return grammar.Production{}, nil
	}
	right := make([]grammar.Symbol, 0, n)
	for i := 0; i < n; i++ {
		lit, err := cur.str()
		if err != nil {
			return grammar.Production{}, err
		}
		right = append(right, grammar.NewTerminal(lit))
	}
	return grammar.Production{NonTerminal: lhs, Right: right}, nil
}

// cursor walks a line's whitespace-separated fields left to right.
type cursor struct {
	fields []string
	pos    int
}

func (c *cursor) str() (string, error) {
	if c.pos >= len(c.fields) {
		return "", fmt.Errorf("unexpected end of fields")
	}
	v := c.fields[c.pos]
	c.pos++
	return v, nil
}

func (c *cursor) int_() (int, error) {
	s, err := c.str()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q", s)
	}
	return n, nil
}
