package grammar

import (
	"bufio"
	"io"
	"strings"

	"github.com/cishoon/quadtranslator/internal/quadgen/qgerrors"
)

// Load reads the EBNF-like grammar file format of the quadgen grammar
// language:
//
//	line 1: "<start> <end>"
//	line 2: whitespace-separated terminal names
//	line 3+: "LHS ::= alpha1 | alpha2 | ... | alphaK"
//
// where each alphaI is a whitespace-separated list of symbol names, and the
// literal "Epsilon" denotes the empty right-hand side. A symbol is a
// Terminal iff its name appears in the declared terminal list on line 2;
// otherwise it is a NonTerminal. No validation of grammar determinism is
// performed here; that is the parser generator's job.
func Load(r io.Reader) (Grammar, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return Grammar{}, qgerrors.WrapIOError(err, "read grammar file")
	}
	if len(lines) < 2 {
		return Grammar{}, qgerrors.GrammarFormatf("grammar file must have a start/end line and a terminals line")
	}

	header := strings.Fields(lines[0])
	if len(header) != 2 {
		return Grammar{}, qgerrors.GrammarFormatf("line 1: expected \"<start> <end>\", got %q", lines[0])
	}
	start, end := header[0], header[1]

	terminals := strings.Fields(lines[1])
	termSet := make(map[string]bool, len(terminals))
	for _, t := range terminals {
		termSet[t] = true
	}
	termSet[end] = true

	classify := func(literal string) Symbol {
		if literal == "Epsilon" {
			return EpsilonSymbol
		}
		if termSet[literal] {
			return NewTerminal(literal)
		}
		return NewNonTerminal(literal)
	}

	var productions []Production
	for i := 2; i < len(lines); i++ {
		line := lines[i]
		arrow := strings.Index(line, "::=")
		if arrow < 0 {
			return Grammar{}, qgerrors.GrammarFormatf("line %d: expected \"LHS ::= ...\", got %q", i+1, line)
		}
		lhs := strings.TrimSpace(line[:arrow])
		if lhs == "" {
			return Grammar{}, qgerrors.GrammarFormatf("line %d: missing left-hand side", i+1)
		}
		body := line[arrow+len("::="):]

		for _, alt := range strings.Split(body, "|") {
			fields := strings.Fields(alt)
			var right []Symbol
			if len(fields) == 1 && fields[0] == "Epsilon" {
				right = nil
			} else {
				right = make([]Symbol, 0, len(fields))
				for _, f := range fields {
					if f == "Epsilon" {
						continue
					}
					right = append(right, classify(f))
				}
			}
			productions = append(productions, Production{NonTerminal: lhs, Right: right})
		}
	}

	if len(productions) == 0 {
		return Grammar{}, qgerrors.GrammarFormatf("grammar file declares no productions")
	}

	g := New(productions, start, end)
	return g, nil
}
