package transform

import (
	"github.com/nacre-lang/nacre/internal/files"
	"github.com/nacre-lang/nacre/internal/imports"
	"github.com/nacre-lang/nacre/internal/term"
)

// Pending is a freshly resolved file waiting for its own transform
// pass: the parsed content together with the identifier the resolver
// minted for it.
type Pending struct {
	Term term.RichTerm
	File files.ID
}

// ResolveImport resolves rt if it is an unresolved import node, and
// passes every other node through untouched.
//
// A resolved import is replaced in place by a marker carrying the
// file's identifier; the raw path never survives resolution. When the
// resolver loaded the file for the first time, its content is returned
// as a Pending so the driver can queue a pass over it — a cache hit
// returns nil instead, since that file has already been (or is being)
// transformed. Like ShareNormalForm, this applies to the top node
// only.
func ResolveImport(rt term.RichTerm, resolver imports.Resolver) (term.RichTerm, *Pending, error) {
	imp, ok := rt.Term.(*term.Import)
	if !ok {
		return rt, nil, nil
	}

	resolved, id, err := resolver.Resolve(imp.Path, rt.Pos)
	if err != nil {
		return term.RichTerm{}, nil, err
	}

	marker := term.RichTerm{Term: &term.ResolvedImport{File: id}, Pos: rt.Pos}
	if !resolved.Fresh {
		return marker, nil, nil
	}
	return marker, &Pending{Term: resolved.Term, File: id}, nil
}
