package ast

import (
	"encoding/binary"
	"github.com/brio-lang/brio/frontend/types"
	"hash/fnv"
	"math"
)

var (
	_ Expr = (*Num)(nil)
	_ Expr = (*Bool)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*Plus)(nil)
	_ Expr = (*Or)(nil)
	_ Expr = (*Eq)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Fun)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*LetFun)(nil)
)

// Num is a numeric literal.
type Num struct {
	Range
	Value float64
}

// Bool is a boolean literal.
type Bool struct {
	Range
	Value bool
}

// Var reads a variable. It binds nothing itself.
type Var struct {
	Range
	Name string
}

// Let binds Name to Bound within Body only.
type Let struct {
	Range
	Name  string
	Bound Expr
	Body  Expr
}

// Plus is numeric addition.
type Plus struct {
	Range
	Left  Expr
	Right Expr
}

// Or is boolean disjunction.
type Or struct {
	Range
	Left  Expr
	Right Expr
}

// Eq compares two values of the same type, whatever that type is.
type Eq struct {
	Range
	Left  Expr
	Right Expr
}

// If requires a Boolean condition and branches of one shared type.
type If struct {
	Range
	Cond Expr
	Then Expr
	Else Expr
}

// Fun is a function literal. The parameter carries an explicit type
// annotation and is bound within Body only.
type Fun struct {
	Range
	Param     string
	ParamType types.Type
	Body      Expr
}

// Call applies Func to a single argument.
type Call struct {
	Range
	Func Expr
	Arg  Expr
}

// LetFun binds a possibly self-recursive function. Name is visible in both
// FnBody and Body; Param only in FnBody. Return annotates FnBody's type,
// which is what lets recursive uses of Name be typed without a fixpoint.
type LetFun struct {
	Range
	Name      string
	Param     string
	ParamType types.Type
	Return    types.Type
	FnBody    Expr
	Body      Expr
}

// One constructor per variant. Positions can be set on the returned node
// afterwards by hosts that track them.

func NewNum(value float64) *Num { return &Num{Value: value} }

func NewBool(value bool) *Bool { return &Bool{Value: value} }

func NewVar(name string) *Var { return &Var{Name: name} }

func NewLet(name string, bound, body Expr) *Let {
	return &Let{Name: name, Bound: bound, Body: body}
}

func NewPlus(left, right Expr) *Plus { return &Plus{Left: left, Right: right} }

func NewOr(left, right Expr) *Or { return &Or{Left: left, Right: right} }

func NewEq(left, right Expr) *Eq { return &Eq{Left: left, Right: right} }

func NewIf(cond, then, els Expr) *If {
	return &If{Cond: cond, Then: then, Else: els}
}

func NewFun(param string, paramType types.Type, body Expr) *Fun {
	return &Fun{Param: param, ParamType: paramType, Body: body}
}

func NewCall(fn, arg Expr) *Call { return &Call{Func: fn, Arg: arg} }

func NewLetFun(name, param string, paramType, ret types.Type, fnBody, body Expr) *LetFun {
	return &LetFun{Name: name, Param: param, ParamType: paramType, Return: ret, FnBody: fnBody, Body: body}
}

func (*Num) exprNode()    {}
func (*Bool) exprNode()   {}
func (*Var) exprNode()    {}
func (*Let) exprNode()    {}
func (*Plus) exprNode()   {}
func (*Or) exprNode()     {}
func (*Eq) exprNode()     {}
func (*If) exprNode()     {}
func (*Fun) exprNode()    {}
func (*Call) exprNode()   {}
func (*LetFun) exprNode() {}

func (*Num) ExprName() string    { return "num" }
func (*Bool) ExprName() string   { return "bool" }
func (*Var) ExprName() string    { return "var" }
func (*Let) ExprName() string    { return "let" }
func (*Plus) ExprName() string   { return "plus" }
func (*Or) ExprName() string     { return "or" }
func (*Eq) ExprName() string     { return "eq" }
func (*If) ExprName() string     { return "if" }
func (*Fun) ExprName() string    { return "fun" }
func (*Call) ExprName() string   { return "call" }
func (*LetFun) ExprName() string { return "letfun" }

func (*Num) Describe() string    { return "number literal" }
func (*Bool) Describe() string   { return "boolean literal" }
func (*Var) Describe() string    { return "variable" }
func (*Let) Describe() string    { return "let binding" }
func (*Plus) Describe() string   { return "addition" }
func (*Or) Describe() string     { return "disjunction" }
func (*Eq) Describe() string     { return "equality comparison" }
func (*If) Describe() string     { return "conditional" }
func (*Fun) Describe() string    { return "function" }
func (*Call) Describe() string   { return "function call" }
func (*LetFun) Describe() string { return "recursive function binding" }

func hashNode(tag string, parts ...uint64) uint64 {
	h := fnv.New64a()
	arr := []byte(tag)
	for _, part := range parts {
		arr = binary.LittleEndian.AppendUint64(arr, part)
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Hash returns a hash value for the node, based on its structural characteristics
func (e *Num) Hash() uint64 {
	return hashNode("Num", math.Float64bits(e.Value), e.Range.Hash())
}

func (e *Bool) Hash() uint64 {
	var lit uint64
	if e.Value {
		lit = 1
	}
	return hashNode("Bool", lit, e.Range.Hash())
}

func (e *Var) Hash() uint64 {
	return hashNode("Var", hashString(e.Name), e.Range.Hash())
}

func (e *Let) Hash() uint64 {
	return hashNode("Let", hashString(e.Name), e.Bound.Hash(), e.Body.Hash(), e.Range.Hash())
}

func (e *Plus) Hash() uint64 {
	return hashNode("Plus", e.Left.Hash(), e.Right.Hash(), e.Range.Hash())
}

func (e *Or) Hash() uint64 {
	return hashNode("Or", e.Left.Hash(), e.Right.Hash(), e.Range.Hash())
}

func (e *Eq) Hash() uint64 {
	return hashNode("Eq", e.Left.Hash(), e.Right.Hash(), e.Range.Hash())
}

func (e *If) Hash() uint64 {
	return hashNode("If", e.Cond.Hash(), e.Then.Hash(), e.Else.Hash(), e.Range.Hash())
}

func (e *Fun) Hash() uint64 {
	return hashNode("Fun", hashString(e.Param), e.ParamType.Hash(), e.Body.Hash(), e.Range.Hash())
}

func (e *Call) Hash() uint64 {
	return hashNode("Call", e.Func.Hash(), e.Arg.Hash(), e.Range.Hash())
}

func (e *LetFun) Hash() uint64 {
	return hashNode("LetFun",
		hashString(e.Name), hashString(e.Param),
		e.ParamType.Hash(), e.Return.Hash(),
		e.FnBody.Hash(), e.Body.Hash(), e.Range.Hash())
}
