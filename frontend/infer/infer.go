// Package infer implements the bidirectional typing judgment for brio
// expressions: Infer synthesises a type bottom-up, Check verifies an
// expected type by inferring and then comparing structurally.
//
// There is no unification and there are no type variables: every binder in
// the language carries an explicit annotation, so the judgment is a single
// pure recursive descent over the tree. Premises are established left to
// right and the first failure aborts the whole call.
package infer

import (
	"errors"
	"github.com/brio-lang/brio/frontend/ast"
	"github.com/brio-lang/brio/frontend/brerr"
	"github.com/brio-lang/brio/frontend/types"
	"github.com/brio-lang/brio/internal/log"
)

var logger = ast.ExprLogger(log.DefaultLogger).With("section", "inference")

// Infer synthesises the type of expr under env.
func Infer(env TypeEnv, expr ast.Expr) (types.Type, error) {
	logger.Debug("infer: typing expression", "expr.name", expr.ExprName(), "expr", expr)
	switch e := expr.(type) {
	case *ast.Num:
		return types.NumberType, nil

	case *ast.Bool:
		return types.BooleanType, nil

	case *ast.Var:
		t, ok := env.Lookup(e.Name)
		if !ok {
			return nil, brerr.New(brerr.NewUndefinedVariable{
				Positioner: e,
				Name:       e.Name,
			})
		}
		return t, nil

	case *ast.Let:
		bound, err := Infer(env, e.Bound)
		if err != nil {
			return nil, err
		}
		// the binding is visible in the body subtree only
		return Infer(env.Extend(e.Name, bound), e.Body)

	case *ast.Plus:
		if err := Check(env, e.Left, types.NumberType); err != nil {
			return nil, err
		}
		if err := Check(env, e.Right, types.NumberType); err != nil {
			return nil, err
		}
		return types.NumberType, nil

	case *ast.Or:
		if err := Check(env, e.Left, types.BooleanType); err != nil {
			return nil, err
		}
		if err := Check(env, e.Right, types.BooleanType); err != nil {
			return nil, err
		}
		return types.BooleanType, nil

	case *ast.Eq:
		// any two operands of one shared type are comparable, functions
		// included; the result is Boolean whatever that type is
		left, err := Infer(env, e.Left)
		if err != nil {
			return nil, err
		}
		if err := Check(env, e.Right, left); err != nil {
			return nil, err
		}
		return types.BooleanType, nil

	case *ast.If:
		if err := Check(env, e.Cond, types.BooleanType); err != nil {
			return nil, err
		}
		then, err := Infer(env, e.Then)
		if err != nil {
			return nil, err
		}
		// both branches must produce the same type, there is no widening
		if err := Check(env, e.Else, then); err != nil {
			return nil, err
		}
		return then, nil

	case *ast.Fun:
		body, err := Infer(env.Extend(e.Param, e.ParamType), e.Body)
		if err != nil {
			return nil, err
		}
		return types.NewFunc(e.ParamType, body), nil

	case *ast.Call:
		callee, err := Infer(env, e.Func)
		if err != nil {
			return nil, err
		}
		fn, isFunc := callee.(*types.Func)
		if !isFunc {
			return nil, brerr.New(brerr.NewNotAFunction{
				Positioner: e,
				Actual:     callee,
			})
		}
		if err := Check(env, e.Arg, fn.Arg); err != nil {
			return nil, err
		}
		return fn.Return, nil

	case *ast.LetFun:
		fnType := types.NewFunc(e.ParamType, e.Return)
		// the function's own name is bound before its body is checked,
		// which is what lets recursive calls typecheck
		fnBodyEnv := env.Extend(e.Name, fnType).Extend(e.Param, e.ParamType)
		if err := Check(fnBodyEnv, e.FnBody, e.Return); err != nil {
			return nil, err
		}
		// the parameter is not visible in the trailing body
		return Infer(env.Extend(e.Name, fnType), e.Body)
	}

	return nil, errors.New("unhandled expression variant (" + expr.ExprName() + ")")
}

// Check verifies that expr has type expected under env, by inferring and
// comparing structurally. On success it has no observable effect.
func Check(env TypeEnv, expr ast.Expr, expected types.Type) error {
	actual, err := Infer(env, expr)
	if err != nil {
		return err
	}
	if !types.Equal(expected, actual) {
		return brerr.New(brerr.NewTypeMismatch{
			Positioner: expr,
			Expected:   expected,
			Actual:     actual,
		})
	}
	return nil
}
