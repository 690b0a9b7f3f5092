// Package translate implements the post-order syntax-directed walk that
// turns a types.ParseTree into a variable table and a flat list of
// quadruples (three-address code).
package translate

import "github.com/cishoon/quadtranslator/internal/util"

// VarMeta is what the variable table stores about a declared variable: its
// declared type and, for simplicity, its initializer expression rendered
// as a string rather than evaluated.
type VarMeta struct {
	Type string
	Init string
}

// VarTable maps declared variable names to their metadata. Declaration
// order is not significant to the table itself; callers that need a stable
// printed order should sort the keys (see util.OrderedKeys).
type VarTable map[string]VarMeta

func newVarTable() VarTable { return make(VarTable) }

func (vt VarTable) declared(name string) bool {
	_, ok := vt[name]
	return ok
}

// Names returns the declared variable names in alphabetical order, for
// pretty-printing.
func (vt VarTable) Names() []string {
	return util.OrderedKeys(map[string]VarMeta(vt))
}
