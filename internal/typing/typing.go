// Package typing holds the slice of the nacre type system that the
// transformation stage touches: enough structure to pull the runtime
// contract out of a type and to wrap a contract back up as an opaque
// type.
package typing

import (
	"fmt"

	"github.com/nacre-lang/nacre/internal/term"
)

// Type is the interface for all types. Contract returns the term that
// checks a value against the type at runtime; base types delegate to
// built-in contracts, flat types carry their contract directly.
type Type interface {
	Contract() term.RichTerm
	String() string
}

// Dyn is the dynamic type, satisfied by every value.
type Dyn struct{}

// Num is the type of numbers.
type Num struct{}

// Bool is the type of booleans.
type Bool struct{}

// Str is the type of strings.
type Str struct{}

// Arrow is the function type Domain -> Codomain.
type Arrow struct {
	Domain   Type
	Codomain Type
}

// Flat is an opaque type defined entirely by a custom contract term.
type Flat struct {
	Term term.RichTerm
}

// Built-in contract identifiers. The '$' prefix is reserved by the
// surface grammar, like the '%' prefix of fresh variables.
const (
	contractDyn   term.Ident = "$dyn"
	contractNum   term.Ident = "$num"
	contractBool  term.Ident = "$bool"
	contractStr   term.Ident = "$str"
	contractArrow term.Ident = "$arrow"
)

func (Dyn) Contract() term.RichTerm  { return term.Var(contractDyn) }
func (Num) Contract() term.RichTerm  { return term.Var(contractNum) }
func (Bool) Contract() term.RichTerm { return term.Var(contractBool) }
func (Str) Contract() term.RichTerm  { return term.Var(contractStr) }

// Contract for an arrow type applies the built-in arrow contract to
// the contracts of the domain and codomain.
func (a Arrow) Contract() term.RichTerm {
	return term.RichTerm{Term: &term.Application{
		Fn: term.RichTerm{Term: &term.Application{
			Fn:  term.Var(contractArrow),
			Arg: a.Domain.Contract(),
		}},
		Arg: a.Codomain.Contract(),
	}}
}

func (f Flat) Contract() term.RichTerm { return f.Term }

func (Dyn) String() string  { return "Dyn" }
func (Num) String() string  { return "Num" }
func (Bool) String() string { return "Bool" }
func (Str) String() string  { return "Str" }

func (a Arrow) String() string {
	return fmt.Sprintf("%s -> %s", a.Domain, a.Codomain)
}

func (Flat) String() string { return "#<contract>" }
