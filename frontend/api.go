// Package frontend is the host-facing surface of the brio type checker.
// A host builds expression trees out of ast constructors and asks this
// package to type them; no parsing, evaluation or I/O happens here.
package frontend

import (
	"github.com/brio-lang/brio/frontend/ast"
	"github.com/brio-lang/brio/frontend/brerr"
	"github.com/brio-lang/brio/frontend/infer"
	"github.com/brio-lang/brio/frontend/types"
	"github.com/brio-lang/brio/internal/log"
	"github.com/hashicorp/go-set/v3"
)

var logger = log.DefaultLogger.With("section", "frontend")

// InferExpr types a self-contained expression, starting from an environment
// with no bound variables.
func InferExpr(expr ast.Expr) (types.Type, error) {
	return infer.Infer(infer.EmptyTypeEnv(), expr)
}

// CheckExpr asserts a self-contained expression has the expected type.
func CheckExpr(expr ast.Expr, expected types.Type) error {
	return infer.Check(infer.EmptyTypeEnv(), expr, expected)
}

// Declaration is one top-level `val name = expr` binding of a program.
type Declaration struct {
	ast.Range
	Name  string
	Value ast.Expr
}

// TypeProgram types a sequence of declarations in order. Each declaration
// that types successfully is bound for the ones after it, so later
// declarations may refer to earlier ones by name.
//
// Unlike a single Infer call, which stops at its first error, TypeProgram
// keeps going: a declaration that fails is reported and left unbound, and
// later declarations referring to it fail with UndefinedVariable. The
// returned map holds the types of the declarations that succeeded.
func TypeProgram(decls []Declaration) (map[string]types.Type, *brerr.Errors) {
	env := infer.EmptyTypeEnv()
	typed := make(map[string]types.Type, len(decls))
	var errs *brerr.Errors
	for _, decl := range decls {
		t, err := infer.Infer(env, decl.Value)
		if err != nil {
			errs = errs.With(brerr.As(err, decl.Range))
			continue
		}
		logger.Debug("typed declaration", "decl.name", decl.Name, "type", types.TypeString(t))
		env = env.Extend(decl.Name, t)
		typed[decl.Name] = t
	}
	if errs.HasError() {
		logger.Debug("program typed with errors", "errors", errs)
	}
	return typed, errs
}

// UnboundNames returns the names a program's declarations read without any
// earlier declaration providing them. It is a cheap pre-flight check: any
// name it returns would make TypeProgram fail with UndefinedVariable.
func UnboundNames(decls []Declaration) []string {
	bound := set.New[string](len(decls))
	unbound := set.New[string](0)
	for _, decl := range decls {
		for name := range ast.FreeVars(decl.Value).Items() {
			if !bound.Contains(name) {
				unbound.Insert(name)
			}
		}
		bound.Insert(decl.Name)
	}
	return unbound.Slice()
}
