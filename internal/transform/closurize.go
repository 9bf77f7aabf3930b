package transform

import (
	"github.com/nacre-lang/nacre/internal/eval"
	"github.com/nacre-lang/nacre/internal/term"
	"github.com/nacre-lang/nacre/internal/typing"
)

// Closurize packs rt together with the environment withEnv as a
// closure in env: it allocates a fresh identifier, binds it in env to
// a suspended thunk holding (rt, withEnv), and returns a bare variable
// reference to it. This is where every term acquires its durable
// association with its lexical captures; the thunks behind the
// sharing rewrite's fresh variables are all allocated here when the
// evaluator reaches the corresponding let.
func Closurize(rt term.RichTerm, env *eval.Environment, withEnv *eval.Environment) term.RichTerm {
	fresh := freshVar()
	thunk := eval.NewThunk(eval.Closure{Body: rt, Env: withEnv})
	env.Insert(fresh, thunk, eval.IdentRecord)
	return term.Var(fresh)
}

// ClosurizeType packs the contract of ty with withEnv as a closure in
// env: the underlying runtime-check term is closurized and wrapped
// back as a flat type, so later dynamic checks evaluate the contract
// under the environment captured here.
func ClosurizeType(ty typing.Type, env *eval.Environment, withEnv *eval.Environment) typing.Type {
	return typing.Flat{Term: Closurize(ty.Contract(), env, withEnv)}
}
