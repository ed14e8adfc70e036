package types

import (
	"encoding/binary"
	"hash/fnv"
)

var (
	_ Type = (*Number)(nil)
	_ Type = (*Boolean)(nil)
	_ Type = (*Func)(nil)
)

// Type is the closed set of types a brio expression can have.
// It is recursive only through Func.
type Type interface {
	// TypeName is the name of the type shape, without its components
	TypeName() string
	// ShowIn renders the type, parenthesising when outerPrecedence requires it
	ShowIn(outerPrecedence uint16) string
	Hash() uint64
	typeNode()
}

// TypeString renders a Type as it would appear in an annotation
func TypeString(t Type) string {
	return t.ShowIn(0)
}

// Number is the type of numeric literals and arithmetic
type Number struct{}

func (*Number) typeNode()              {}
func (*Number) TypeName() string       { return "Number" }
func (*Number) ShowIn(_ uint16) string { return "Number" }

func (*Number) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("NumberType"))
	return h.Sum64()
}

// Boolean is the type of truth values
type Boolean struct{}

func (*Boolean) typeNode()              {}
func (*Boolean) TypeName() string       { return "Boolean" }
func (*Boolean) ShowIn(_ uint16) string { return "Boolean" }

func (*Boolean) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("BooleanType"))
	return h.Sum64()
}

// Func is the type of single-argument functions.
// Arg and Return are never nil.
type Func struct {
	Arg    Type
	Return Type
}

func (*Func) typeNode()        {}
func (*Func) TypeName() string { return "Function" }

// arrowPrecedence makes `->` bind looser than anything else, and associate
// to the right: Number -> Number -> Number needs no parens, but
// (Number -> Number) -> Number does.
const arrowPrecedence uint16 = 10

func (t *Func) ShowIn(outerPrecedence uint16) string {
	shown := t.Arg.ShowIn(arrowPrecedence+1) + " -> " + t.Return.ShowIn(arrowPrecedence)
	if outerPrecedence > arrowPrecedence {
		return "(" + shown + ")"
	}
	return shown
}

func (t *Func) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("FuncType")
	arr = binary.LittleEndian.AppendUint64(arr, t.Arg.Hash())
	arr = binary.LittleEndian.AppendUint64(arr, t.Return.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

var (
	// NumberType and BooleanType are the canonical values for the
	// primitive types. Always compare with Equal, never by identity.
	NumberType  Type = &Number{}
	BooleanType Type = &Boolean{}
)

// NewFunc is the function type constructor
func NewFunc(arg, ret Type) *Func {
	return &Func{Arg: arg, Return: ret}
}

// Equal compares two types structurally: same shape, and for functions,
// recursively equal argument and return components. Two independently
// constructed types compare equal whenever their shapes do.
func Equal(this, that Type) bool {
	switch this := this.(type) {
	case *Number:
		_, ok := that.(*Number)
		return ok
	case *Boolean:
		_, ok := that.(*Boolean)
		return ok
	case *Func:
		thatFunc, ok := that.(*Func)
		return ok && Equal(this.Arg, thatFunc.Arg) && Equal(this.Return, thatFunc.Return)
	default:
		return false
	}
}
