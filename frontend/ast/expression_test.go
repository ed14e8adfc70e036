package ast_test

import (
	"github.com/brio-lang/brio/frontend/ast"
	"github.com/brio-lang/brio/frontend/types"
	"github.com/stretchr/testify/assert"
	"sort"
	"testing"
)

func TestExprString(t *testing.T) {
	for _, tc := range []struct {
		expected string
		expr     ast.Expr
	}{
		{"42", ast.NewNum(42)},
		{"1.5", ast.NewNum(1.5)},
		{"true", ast.NewBool(true)},
		{"x", ast.NewVar("x")},
		{"1 + 2", ast.NewPlus(ast.NewNum(1), ast.NewNum(2))},
		{"1 + 2 + 3", ast.NewPlus(ast.NewPlus(ast.NewNum(1), ast.NewNum(2)), ast.NewNum(3))},
		{"1 + (2 + 3)", ast.NewPlus(ast.NewNum(1), ast.NewPlus(ast.NewNum(2), ast.NewNum(3)))},
		{"a || b", ast.NewOr(ast.NewVar("a"), ast.NewVar("b"))},
		{"x == 10", ast.NewEq(ast.NewVar("x"), ast.NewNum(10))},
		{"f(1)", ast.NewCall(ast.NewVar("f"), ast.NewNum(1))},
		{"f(1)(2)", ast.NewCall(ast.NewCall(ast.NewVar("f"), ast.NewNum(1)), ast.NewNum(2))},
		{"x + y == z", ast.NewEq(ast.NewPlus(ast.NewVar("x"), ast.NewVar("y")), ast.NewVar("z"))},
		{"val x = 1\nx", ast.NewLet("x", ast.NewNum(1), ast.NewVar("x"))},
		{"fn (x: Number) -> x", ast.NewFun("x", types.NumberType, ast.NewVar("x"))},
		{"if b then 1 else 2", ast.NewIf(ast.NewVar("b"), ast.NewNum(1), ast.NewNum(2))},
	} {
		assert.Equal(t, tc.expected, ast.ExprString(tc.expr))
	}

	t.Run("binders parenthesise inside operators", func(t *testing.T) {
		expr := ast.NewPlus(
			ast.NewLet("x", ast.NewNum(1), ast.NewVar("x")),
			ast.NewNum(2))
		assert.Equal(t, "(val x = 1\nx) + 2", ast.ExprString(expr))
	})

	t.Run("letfun shows annotation and both bodies", func(t *testing.T) {
		expr := ast.NewLetFun("f", "x", types.NumberType, types.NumberType,
			ast.NewVar("x"),
			ast.NewCall(ast.NewVar("f"), ast.NewNum(8)))
		assert.Equal(t, "fun f(x: Number): Number = x\nf(8)", ast.ExprString(expr))
	})
}

func freeVarsSorted(expr ast.Expr) []string {
	names := ast.FreeVars(expr).Slice()
	sort.Strings(names)
	return names
}

func TestFreeVars(t *testing.T) {
	assert.Empty(t, freeVarsSorted(ast.NewNum(1)))
	assert.Equal(t, []string{"x"}, freeVarsSorted(ast.NewVar("x")))

	t.Run("let binds in body only", func(t *testing.T) {
		expr := ast.NewLet("x", ast.NewVar("y"), ast.NewVar("x"))
		assert.Equal(t, []string{"y"}, freeVarsSorted(expr))

		// the bound expression does not see the binder
		expr = ast.NewLet("x", ast.NewVar("x"), ast.NewVar("x"))
		assert.Equal(t, []string{"x"}, freeVarsSorted(expr))
	})

	t.Run("binder does not leak to siblings", func(t *testing.T) {
		expr := ast.NewPlus(
			ast.NewLet("x", ast.NewNum(1), ast.NewVar("x")),
			ast.NewVar("x"))
		assert.Equal(t, []string{"x"}, freeVarsSorted(expr))
	})

	t.Run("fun binds its parameter", func(t *testing.T) {
		expr := ast.NewFun("x", types.NumberType,
			ast.NewPlus(ast.NewVar("x"), ast.NewVar("y")))
		assert.Equal(t, []string{"y"}, freeVarsSorted(expr))
	})

	t.Run("letfun binds name in both bodies, param in one", func(t *testing.T) {
		expr := ast.NewLetFun("f", "x", types.NumberType, types.NumberType,
			ast.NewCall(ast.NewVar("f"), ast.NewVar("x")),
			ast.NewCall(ast.NewVar("f"), ast.NewVar("x")))
		assert.Equal(t, []string{"x"}, freeVarsSorted(expr))
	})
}

func TestHashIsStructural(t *testing.T) {
	build := func() ast.Expr {
		return ast.NewLet("x", ast.NewNum(1),
			ast.NewPlus(ast.NewVar("x"), ast.NewNum(2)))
	}
	assert.Equal(t, build().Hash(), build().Hash())
	assert.NotEqual(t, ast.NewNum(1).Hash(), ast.NewNum(2).Hash())
	assert.NotEqual(t, ast.NewVar("x").Hash(), ast.NewVar("y").Hash())
	assert.NotEqual(t,
		ast.NewPlus(ast.NewVar("x"), ast.NewVar("y")).Hash(),
		ast.NewPlus(ast.NewVar("y"), ast.NewVar("x")).Hash())
	assert.NotEqual(t, ast.NewBool(true).Hash(), ast.NewBool(false).Hash())
}
