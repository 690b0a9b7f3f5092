package translate

import (
	"strconv"
	"strings"

	"github.com/cishoon/quadtranslator/internal/quadgen/qgerrors"
	"github.com/cishoon/quadtranslator/internal/quadgen/types"
)

// identifierSymbol is the lex/types.Token class the lexer assigns to
// identifiers. The unary-collapse rule rewrites a node's Symbol to this
// value whenever the node has exactly one child carrying it, so that
// higher nonterminals (var, factor, term, ...) transparently inherit raw
// identifier names.
const identifierSymbol = "id"

// incDecOperatorSymbol names the nonterminal wrapping the "++"/"--"
// prefix operator, distinguishing ++x/--x from unary !x/~x in
// prefix_expression.
const incDecOperatorSymbol = "inc_dec_operator"

// Translator runs the post-order semantic walk described in the syntax-
// directed translation design: default synthesis of real_value and
// quater_list at every node, then a per-lhs rule, then the unary-identifier
// collapse. Both the temporary-name counter and the variable table are
// scoped to one Translator instance; nothing here is safe to share across
// goroutines, matching the single-threaded, sequential pipeline.
type Translator struct {
	vars     VarTable
	nextTemp int
}

// New returns a Translator with an empty variable table and a temporary
// counter starting at 0.
func New() *Translator {
	return &Translator{vars: newVarTable()}
}

func (tr *Translator) newTemp() string {
	name := "t" + strconv.Itoa(tr.nextTemp)
	tr.nextTemp++
	return name
}

// Translate walks root in post-order, mutating each node's RealValue and
// Quads in place, and returns the final variable table together with the
// root's accumulated quadruple list — the program's full three-address
// code.
func (tr *Translator) Translate(root *types.ParseTree) (VarTable, types.QuadList, error) {
	if root == nil {
		return tr.vars, nil, nil
	}
	if err := tr.visit(root); err != nil {
		return nil, nil, err
	}
	return tr.vars, root.Quads, nil
}

func (tr *Translator) visit(node *types.ParseTree) error {
	if node.Terminal {
		return nil
	}
	for _, child := range node.Children {
		if err := tr.visit(child); err != nil {
			return err
		}
	}

	tr.synthesizeDefault(node)

	var err error
	switch node.Symbol {
	case "var_declaration":
		err = tr.handleVarDeclaration(node)
	case "opt_init":
		tr.handleOptInit(node)
	case "expression":
		err = tr.handleExpression(node)
	case "simple_expression":
		tr.handleBinaryOp(node)
	case "additive_expression":
		tr.handleBinaryOp(node)
	case "term":
		tr.handleBinaryOp(node)
	case "factor":
		tr.handleFactor(node)
	case "prefix_expression":
		tr.handlePrefixExpression(node)
	case "postfix_expression":
		tr.handlePostfixExpression(node)
	case "selection_stmt":
		tr.handleSelectionStmt(node)
	case "iteration_stmt":
		tr.handleIterationStmt(node)
	case "opt_expression_stmt":
		tr.handleOptExpressionStmt(node)
	}
	if err != nil {
		return err
	}

	if len(node.Children) == 1 && node.Children[0].Symbol == identifierSymbol {
		node.Symbol = identifierSymbol
	}
	return nil
}

// synthesizeDefault concatenates children's RealValue and, for every node
// except the control-flow constructs that manage their own quadruple
// layout, appends children's Quads left to right. Go's slice append does
// the "renumber into dense parent-local ids" step implicitly: the parent's
// Quads is simply however many quadruples have been appended to it so far.
func (tr *Translator) synthesizeDefault(node *types.ParseTree) {
	managesOwnQuads := node.Symbol == "selection_stmt" || node.Symbol == "iteration_stmt"
	for _, child := range node.Children {
		node.RealValue += child.RealValue
		if !managesOwnQuads {
			node.Quads = append(node.Quads, child.Quads...)
		}
	}
}

func (tr *Translator) emit(node *types.ParseTree, op, arg1, arg2, result string) {
	node.Quads = append(node.Quads, types.Quadruple{Op: op, Arg1: arg1, Arg2: arg2, Result: result})
}

func jumpTarget(n int) string { return strconv.Itoa(n) }

func (tr *Translator) handleVarDeclaration(node *types.ParseTree) error {
	children := node.Children
	typ := children[0].RealValue
	name := children[1].RealValue
	init := "NULL"
	if len(children) >= 3 && children[2].Symbol == "opt_init" {
		init = children[2].RealValue
	}

	if tr.vars.declared(name) {
		return qgerrors.Redeclarationf("redeclaration of variable %q", name)
	}
	tr.vars[name] = VarMeta{Type: typ, Init: init}
	node.RealValue = typ + " " + name + " " + init + ";"
	return nil
}

func (tr *Translator) handleOptInit(node *types.ParseTree) {
	// "=" expression
	node.RealValue = node.Children[1].RealValue
}

func (tr *Translator) handleExpression(node *types.ParseTree) error {
	children := node.Children
	if len(children) == 1 {
		return nil
	}

	varNode, exprNode := children[0], children[2]
	if varNode.Symbol == identifierSymbol && !tr.vars.declared(varNode.RealValue) {
		return qgerrors.UndeclaredUsef("use of undeclared variable %q", varNode.RealValue)
	}
	if exprNode.Symbol == identifierSymbol && !tr.vars.declared(exprNode.RealValue) {
		return qgerrors.UndeclaredUsef("use of undeclared variable %q", exprNode.RealValue)
	}

	tr.emit(node, "=", exprNode.RealValue, "", varNode.RealValue)
	node.RealValue = varNode.RealValue
	return nil
}

// handleBinaryOp covers simple_expression, additive_expression, and term,
// which share the same "a op b" shape: when there is only the inherited
// single-child form, the default synthesis already set RealValue and there
// is nothing further to do.
func (tr *Translator) handleBinaryOp(node *types.ParseTree) {
	children := node.Children
	if len(children) == 1 {
		return
	}
	arg1, op, arg2 := children[0].RealValue, children[1].RealValue, children[2].RealValue
	temp := tr.newTemp()
	tr.emit(node, op, arg1, arg2, temp)
	node.RealValue = temp
}

func (tr *Translator) handleFactor(node *types.ParseTree) {
	// "(" expression ")" — anything else is the single-child default case.
	if len(node.Children) == 1 {
		return
	}
	node.RealValue = node.Children[1].RealValue
}

func (tr *Translator) handlePrefixExpression(node *types.ParseTree) {
	children := node.Children
	op := children[0].RealValue
	operand := children[1].RealValue

	if children[0].Symbol == incDecOperatorSymbol {
		arith := "+"
		if op == "--" {
			arith = "-"
		}
		tr.emit(node, arith, operand, "1", operand)
		node.RealValue = operand
		return
	}

	temp := tr.newTemp()
	tr.emit(node, op, operand, "", temp)
	node.RealValue = temp
}

func (tr *Translator) handlePostfixExpression(node *types.ParseTree) {
	children := node.Children
	name := children[0].RealValue
	op := children[1].RealValue

	temp := tr.newTemp()
	tr.emit(node, "=", name, "", temp)
	arith := "+"
	if op == "--" {
		arith = "-"
	}
	tr.emit(node, arith, name, "1", name)
	node.RealValue = temp
}

// handleSelectionStmt lowers "if (E) S" and "if (E) S else T" using offsets
// computed from quadruple-list lengths, not child counts — both branches
// are built from this node's own (still-empty at entry) Quads.
func (tr *Translator) handleSelectionStmt(node *types.ParseTree) {
	children := node.Children
	cond := children[2]

	if len(children) == 5 {
		stmtThen := children[4]

		node.Quads = append(node.Quads, cond.Quads...)
		then := 2 + len(cond.Quads)
		endIf := then + len(stmtThen.Quads)

		tr.emit(node, "jnz", cond.RealValue, "", jumpTarget(then))
		tr.emit(node, "j", "", "", jumpTarget(endIf))
		node.Quads = append(node.Quads, stmtThen.Quads...)
		return
	}

	// if (E) S else T: children[4] is S (the if-branch), children[6] is T
	// (the else-branch). Layout is [E][jnz->THEN][T][j->ENDIF][S]: the
	// fall-through path runs T, the taken-branch jumps over it to S.
	ifBranch, elseBranch := children[4], children[6]

	node.Quads = append(node.Quads, cond.Quads...)
	elseStart := 1 + len(cond.Quads)
	thenStart := elseStart + len(elseBranch.Quads) + 1
	endIf := thenStart + len(ifBranch.Quads)

	tr.emit(node, "jnz", cond.RealValue, "", jumpTarget(thenStart))
	node.Quads = append(node.Quads, elseBranch.Quads...)
	tr.emit(node, "j", "", "", jumpTarget(endIf))
	node.Quads = append(node.Quads, ifBranch.Quads...)
}

func (tr *Translator) handleIterationStmt(node *types.ParseTree) {
	children := node.Children

	if children[0].Symbol == "while" {
		cond, stmt := children[2], children[4]

		loop := 0
		body := len(cond.Quads) + 2
		end := body + len(stmt.Quads) + 1

		node.Quads = append(node.Quads, cond.Quads...)
		tr.emit(node, "jnz", cond.RealValue, "", jumpTarget(body))
		tr.emit(node, "j", "", "", jumpTarget(end))
		node.Quads = append(node.Quads, stmt.Quads...)
		tr.emit(node, "j", "", "", jumpTarget(loop))
		return
	}

	// for (init; cond; step) body
	init, cond, step, stmt := children[2], children[3], children[4], children[6]

	start := len(init.Quads)
	body := start + len(cond.Quads) + 2
	end := body + len(stmt.Quads) + len(step.Quads) + 1

	node.Quads = append(node.Quads, init.Quads...)
	node.Quads = append(node.Quads, cond.Quads...)
	tr.emit(node, "jnz", cond.RealValue, "", jumpTarget(body))
	tr.emit(node, "j", "", "", jumpTarget(end))
	node.Quads = append(node.Quads, stmt.Quads...)
	node.Quads = append(node.Quads, step.Quads...)
	tr.emit(node, "j", "", "", jumpTarget(start))
}

func (tr *Translator) handleOptExpressionStmt(node *types.ParseTree) {
	node.RealValue = strings.TrimSuffix(node.RealValue, ";")
}
