package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ExprString renders an expression tree as concrete-ish brio syntax.
// Intended for diagnostics and logging, not for re-parsing.
func ExprString(expr Expr) string {
	ctx := newShowContext()
	ctx.showExprWalker(expr, 0)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
}

func newShowContext() *showContext {
	return &showContext{Builder: &strings.Builder{}}
}

// showExprWalker prints to ctx
//
// precedences are as follows:
// 0: can be shown on its own
// 1-10: binder bodies (let, fn, if arms)
// 18: ||
// 20: ==
// 23: +
// 30: call position
func (ctx *showContext) showExprWalker(expr Expr, outerPrecedence int16) {
	if expr == nil {
		ctx.WriteString("nil")
		return
	}
	paren := func(innerPrecedence int16) (close func()) {
		if outerPrecedence > innerPrecedence {
			ctx.WriteString("(")
			return func() { ctx.WriteString(")") }
		}
		return func() {}
	}
	switch expr := expr.(type) {
	case *Num:
		ctx.WriteString(strconv.FormatFloat(expr.Value, 'f', -1, 64))
	case *Bool:
		ctx.WriteString(strconv.FormatBool(expr.Value))
	case *Var:
		ctx.WriteString(expr.Name)
	case *Plus:
		defer paren(23)()
		ctx.showExprWalker(expr.Left, 23)
		ctx.WriteString(" + ")
		ctx.showExprWalker(expr.Right, 24)
	case *Or:
		defer paren(18)()
		ctx.showExprWalker(expr.Left, 18)
		ctx.WriteString(" || ")
		ctx.showExprWalker(expr.Right, 19)
	case *Eq:
		defer paren(20)()
		ctx.showExprWalker(expr.Left, 21)
		ctx.WriteString(" == ")
		ctx.showExprWalker(expr.Right, 21)
	case *If:
		defer paren(1)()
		ctx.WriteString("if ")
		ctx.showExprWalker(expr.Cond, 1)
		ctx.WriteString(" then ")
		ctx.showExprWalker(expr.Then, 1)
		ctx.WriteString(" else ")
		ctx.showExprWalker(expr.Else, 1)
	case *Let:
		defer paren(1)()
		ctx.WriteString(fmt.Sprintf("val %s = ", expr.Name))
		ctx.showExprWalker(expr.Bound, 1)
		ctx.WriteString("\n")
		ctx.showExprWalker(expr.Body, 0)
	case *Fun:
		defer paren(1)()
		ctx.WriteString(fmt.Sprintf("fn (%s: %s) -> ", expr.Param, expr.ParamType.ShowIn(0)))
		ctx.showExprWalker(expr.Body, 1)
	case *Call:
		ctx.showExprWalker(expr.Func, 30)
		ctx.WriteString("(")
		ctx.showExprWalker(expr.Arg, 0)
		ctx.WriteString(")")
	case *LetFun:
		defer paren(1)()
		ctx.WriteString(fmt.Sprintf("fun %s(%s: %s): %s = ",
			expr.Name, expr.Param, expr.ParamType.ShowIn(0), expr.Return.ShowIn(0)))
		ctx.showExprWalker(expr.FnBody, 1)
		ctx.WriteString("\n")
		ctx.showExprWalker(expr.Body, 0)
	default:
		ctx.WriteString("(" + expr.ExprName() + ")")
	}
}
