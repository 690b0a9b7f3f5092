// Package qgerrors defines the fatal error kinds produced by the grammar,
// parser-generator, and translator packages. Every error in quadgen is
// fatal; there is no recovery or diagnostic batching. A constructor exists
// for each kind named in the system's error-handling design: GrammarFormat,
// GrammarConflict, NoActionEntry, Redeclaration, UndeclaredUse, and IOError.
package qgerrors

import "fmt"

// Kind identifies which of the fatal error categories an error belongs to.
type Kind int

const (
	GrammarFormat Kind = iota
	GrammarConflict
	NoActionEntry
	Redeclaration
	UndeclaredUse
	IOError
)

func (k Kind) String() string {
	switch k {
	case GrammarFormat:
		return "GrammarFormat"
	case GrammarConflict:
		return "GrammarConflict"
	case NoActionEntry:
		return "NoActionEntry"
	case Redeclaration:
		return "Redeclaration"
	case UndeclaredUse:
		return "UndeclaredUse"
	case IOError:
		return "IOError"
	default:
		return "Unknown"
	}
}

// qgError is a fatal error carrying both a technical Error() message and a
// human-readable Message() suitable for printing at the process boundary.
type qgError struct {
	kind  Kind
	msg   string
	human string
	wrap  error
}

func (e *qgError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Message returns the human-readable description to show an operator.
func (e *qgError) Message() string {
	if e.human != "" {
		return e.human
	}
	return e.msg
}

// Unwrap gives the error that this error wraps, if any.
func (e *qgError) Unwrap() error {
	return e.wrap
}

// KindOf returns the error's Kind if it is a qgerrors error, false otherwise.
func KindOf(err error) (Kind, bool) {
	qe, ok := err.(*qgError)
	if !ok {
		return 0, false
	}
	return qe.kind, true
}

// Message returns the human-readable message for err if it is a qgerrors
// error, else err.Error().
func Message(err error) string {
	if qe, ok := err.(*qgError); ok {
		return qe.Message()
	}
	return err.Error()
}

func newf(kind Kind, format string, a ...interface{}) error {
	return &qgError{kind: kind, msg: fmt.Sprintf(format, a...)}
}

func wrapf(kind Kind, wrapped error, format string, a ...interface{}) error {
	return &qgError{kind: kind, msg: fmt.Sprintf(format, a...), wrap: wrapped}
}

// Grammar-format errors.

func GrammarFormatf(format string, a ...interface{}) error {
	return newf(GrammarFormat, format, a...)
}

func WrapGrammarFormat(err error, format string, a ...interface{}) error {
	return wrapf(GrammarFormat, err, format, a...)
}

// Grammar-conflict errors (non-LR(1) grammar detected during table build).

func GrammarConflictf(format string, a ...interface{}) error {
	return newf(GrammarConflict, format, a...)
}

// No-action-entry errors (driver found no ACTION[state, symbol]).

func NoActionEntryf(format string, a ...interface{}) error {
	return newf(NoActionEntry, format, a...)
}

// Redeclaration errors (duplicate variable name in var_declaration).

func Redeclarationf(format string, a ...interface{}) error {
	return newf(Redeclaration, format, a...)
}

// Undeclared-use errors (identifier used in expression without declaration).

func UndeclaredUsef(format string, a ...interface{}) error {
	return newf(UndeclaredUse, format, a...)
}

// IO errors (cannot open/read/write a file).

func WrapIOError(err error, format string, a ...interface{}) error {
	return wrapf(IOError, err, format, a...)
}

func IOErrorf(format string, a ...interface{}) error {
	return newf(IOError, format, a...)
}
