package brerr

import (
	"fmt"
	"github.com/brio-lang/brio/frontend/ast"
	"github.com/brio-lang/brio/frontend/types"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None              ErrCode = iota
	UndefinedVariable ErrCode = iota
	TypeMismatch
	NotAFunction
)

type BrioError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) BrioError
	getStack() []byte
}

func FormatWithCode(e BrioError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E BrioError](err E) BrioError {
	return err.withStack(debug.Stack())
}

// As unwraps err as a BrioError, falling back to Unclassified so hosts can
// always report a code and a position.
func As(err error, pos ast.Positioner) BrioError {
	if err == nil {
		return nil
	}
	if brioErr, ok := err.(BrioError); ok {
		return brioErr
	}
	return Unclassified{From: err, Positioner: pos}
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) BrioError {
	e.stack = stack
	return e
}

type NewUndefinedVariable struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedVariable) Code() ErrCode { return UndefinedVariable }
func (e NewUndefinedVariable) Error() string {
	return fmt.Sprintf("variable '%s' is not defined", e.Name)
}
func (e NewUndefinedVariable) getStack() []byte { return e.stack }
func (e NewUndefinedVariable) withStack(stack []byte) BrioError {
	e.stack = stack
	return e
}

type NewTypeMismatch struct {
	ast.Positioner
	Expected types.Type
	Actual   types.Type
	stack    []byte
}

func (e NewTypeMismatch) Code() ErrCode { return TypeMismatch }
func (e NewTypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: expected type '%v', but found a different type '%v'",
		types.TypeString(e.Expected), types.TypeString(e.Actual))
}
func (e NewTypeMismatch) getStack() []byte { return e.stack }
func (e NewTypeMismatch) withStack(stack []byte) BrioError {
	e.stack = stack
	return e
}

type NewNotAFunction struct {
	ast.Positioner
	Actual types.Type
	stack  []byte
}

func (e NewNotAFunction) Code() ErrCode { return NotAFunction }
func (e NewNotAFunction) Error() string {
	return fmt.Sprintf("cannot call a value of type '%v', which is not a function",
		types.TypeString(e.Actual))
}
func (e NewNotAFunction) getStack() []byte { return e.stack }
func (e NewNotAFunction) withStack(stack []byte) BrioError {
	e.stack = stack
	return e
}
