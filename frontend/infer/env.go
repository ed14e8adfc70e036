package infer

import (
	"github.com/benbjohnson/immutable"
	"github.com/brio-lang/brio/frontend/types"
	"iter"
)

// TypeEnv maps the variable names visible at one point of an expression
// tree to their types. It is a persistent value: Extend returns a new env
// sharing structure with the receiver, which is never modified. That is
// the whole story of lexical scoping here: a binder extends the env for
// its body subtree and nobody else ever sees the extension.
//
// The zero value is a valid empty environment. Envs are safe to share
// across goroutines inferring disjoint trees.
type TypeEnv struct {
	bindings *immutable.Map[string, types.Type]
}

// EmptyTypeEnv is the canonical starting point for a top-level judgment:
// no variables are bound.
func EmptyTypeEnv() TypeEnv {
	return TypeEnv{bindings: immutable.NewMap[string, types.Type](nil)}
}

// Lookup returns the type bound to name, if any.
func (env TypeEnv) Lookup(name string) (types.Type, bool) {
	if env.bindings == nil {
		return nil, false
	}
	return env.bindings.Get(name)
}

// Extend returns a new env equal to this one plus name bound to t,
// overwriting a previous binding of name in the copy only. The receiver
// remains valid and unchanged for any other branch holding it.
func (env TypeEnv) Extend(name string, t types.Type) TypeEnv {
	if env.bindings == nil {
		env = EmptyTypeEnv()
	}
	return TypeEnv{bindings: env.bindings.Set(name, t)}
}

// Len returns the number of bound names.
func (env TypeEnv) Len() int {
	if env.bindings == nil {
		return 0
	}
	return env.bindings.Len()
}

// Names iterates over the bound names, in no particular order.
func (env TypeEnv) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		if env.bindings == nil {
			return
		}
		itr := env.bindings.Iterator()
		for !itr.Done() {
			name, _, _ := itr.Next()
			if !yield(name) {
				return
			}
		}
	}
}
