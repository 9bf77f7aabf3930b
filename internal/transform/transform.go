package transform

import (
	"github.com/nacre-lang/nacre/internal/imports"
	"github.com/nacre-lang/nacre/internal/term"
)

// transformState is threaded through one traversal pass: the resolver
// and the worklist of freshly discovered files shared by all passes of
// one Transform call.
type transformState struct {
	resolver imports.Resolver
	stack    *[]Pending
}

// Transform applies the whole transformation pipeline to rt: one
// combined share-normal-form and import-resolution pass over the root,
// then one pass over every transitively discovered file, each of which
// is handed back to the resolver's cache in transformed form.
//
// The worklist is a stack, so a file's own imports are fully expanded
// before siblings discovered earlier: transitive discovery runs depth
// first. Deduplication is the resolver's job — a file reached through
// several import sites is fresh only the first time, so it is queued
// and inserted at most once.
//
// The first error aborts everything: a failing root pass returns
// before any queued file is processed, and a failing queued pass
// leaves the remaining worklist undrained. Cache inserts already made
// by completed passes are not rolled back.
func Transform(rt term.RichTerm, resolver imports.Resolver) (term.RichTerm, error) {
	var stack []Pending

	result, err := transformPass(rt, resolver, &stack)
	if err != nil {
		return term.RichTerm{}, err
	}

	for len(stack) > 0 {
		pending := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		transformed, err := transformPass(pending.Term, resolver, &stack)
		if err != nil {
			return term.RichTerm{}, err
		}
		resolver.Insert(pending.File, transformed)
	}

	return result, nil
}

// transformPass runs one full pass over rt, applying one step of each
// rewrite to every node. Imports resolved for the first time are
// pushed onto stack but not processed.
func transformPass(rt term.RichTerm, resolver imports.Resolver, stack *[]Pending) (term.RichTerm, error) {
	state := &transformState{resolver: resolver, stack: stack}

	return term.Traverse(rt, func(rt term.RichTerm, state *transformState) (term.RichTerm, error) {
		rt = ShareNormalForm(rt)

		rt, pending, err := ResolveImport(rt, state.resolver)
		if err != nil {
			return term.RichTerm{}, err
		}
		if pending != nil {
			*state.stack = append(*state.stack, *pending)
		}
		return rt, nil
	}, state)
}
