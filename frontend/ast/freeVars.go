package ast

import (
	"github.com/hashicorp/go-set/v3" // Using v3 as v2 is deprecated
)

// FreeVars returns the names an expression reads without binding them
// itself. Any name in the result must be supplied by the environment for
// inference of the expression to succeed.
func FreeVars(expr Expr) *set.Set[string] {
	free := set.New[string](0)
	collectFreeVars(expr, set.New[string](0), free)
	return free
}

func collectFreeVars(expr Expr, bound *set.Set[string], free *set.Set[string]) {
	switch expr := expr.(type) {
	case *Num, *Bool:
	case *Var:
		if !bound.Contains(expr.Name) {
			free.Insert(expr.Name)
		}
	case *Let:
		collectFreeVars(expr.Bound, bound, free)
		collectFreeVars(expr.Body, withBound(bound, expr.Name), free)
	case *Plus:
		collectFreeVars(expr.Left, bound, free)
		collectFreeVars(expr.Right, bound, free)
	case *Or:
		collectFreeVars(expr.Left, bound, free)
		collectFreeVars(expr.Right, bound, free)
	case *Eq:
		collectFreeVars(expr.Left, bound, free)
		collectFreeVars(expr.Right, bound, free)
	case *If:
		collectFreeVars(expr.Cond, bound, free)
		collectFreeVars(expr.Then, bound, free)
		collectFreeVars(expr.Else, bound, free)
	case *Fun:
		collectFreeVars(expr.Body, withBound(bound, expr.Param), free)
	case *Call:
		collectFreeVars(expr.Func, bound, free)
		collectFreeVars(expr.Arg, bound, free)
	case *LetFun:
		collectFreeVars(expr.FnBody, withBound(bound, expr.Name, expr.Param), free)
		collectFreeVars(expr.Body, withBound(bound, expr.Name), free)
	}
}

// withBound copies rather than mutates: sibling subtrees must not see each
// other's binders.
func withBound(bound *set.Set[string], names ...string) *set.Set[string] {
	extended := bound.Copy()
	extended.InsertSlice(names)
	return extended
}
