// Package transform rewrites a parsed program before evaluation. Two
// rewrites run in one combined traversal: share normal form, which
// introduces let bindings so record fields and list elements become
// shareable thunks, and import resolution, which replaces import nodes
// by resolved markers while feeding newly discovered files through a
// worklist until the whole import graph is transformed and cached.
package transform

import (
	"strconv"
	"sync/atomic"

	"github.com/nacre-lang/nacre/internal/term"
)

// freshVarCounter backs freshVar. A single process-wide sequence keeps
// every synthetic identifier unique across all transform pipelines.
var freshVarCounter atomic.Uint64

// freshVar mints an identifier that cannot clash with user-defined
// variables: '%' is not a legal identifier character in the surface
// grammar.
func freshVar() term.Ident {
	n := freshVarCounter.Add(1) - 1
	return term.Ident("%" + strconv.FormatUint(n, 10))
}

// resetFreshVars rewinds the counter. Tests only.
func resetFreshVars() {
	freshVarCounter.Store(0)
}
