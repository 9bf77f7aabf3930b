// Package imports owns import path resolution and the cache of
// transformed per-file terms, keyed by opaque file identifiers.
package imports

import (
	"github.com/nacre-lang/nacre/internal/files"
	"github.com/nacre-lang/nacre/internal/term"
)

// ResolvedTerm is the outcome of resolving one import path. When Fresh
// is true the path was loaded for the first time and Term carries its
// parsed, not-yet-transformed content; otherwise the path was already
// cached and Term is the zero value.
type ResolvedTerm struct {
	Term  term.RichTerm
	Fresh bool
}

// FromFile builds the freshly-loaded variant.
func FromFile(rt term.RichTerm) ResolvedTerm {
	return ResolvedTerm{Term: rt, Fresh: true}
}

// FromCache builds the already-cached variant.
func FromCache() ResolvedTerm {
	return ResolvedTerm{}
}

// Resolver is the capability the transformation stage consumes.
//
// Resolve locates, reads and parses the file behind path, minting a
// files.ID the first time and answering from cache afterwards. pos is
// the position of the importing node and is used only for error
// attribution. Insert stores the transformed term for a file; the
// transformation driver calls it exactly once per freshly resolved
// file, so the cache only ever holds fully transformed content.
type Resolver interface {
	Resolve(path string, pos term.Pos) (ResolvedTerm, files.ID, error)
	Insert(id files.ID, rt term.RichTerm)
	Get(id files.ID) (term.RichTerm, bool)
}
