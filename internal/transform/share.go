package transform

import "github.com/nacre-lang/nacre/internal/term"

// ShareNormalForm applies one step of the share normal form rewrite to
// the top node of rt.
//
// A record or list is a weak head normal form: once a thunk holds one,
// that thunk is never updated again, so unshared field and element
// expressions would be recomputed on every access. The rewrite gives
// each such expression its own binding, e.g.
//
//	{a = 1 + 1}   becomes   let %0 = 1 + 1 in {a = %0}
//
// so the evaluator allocates a dedicated thunk for it and every access
// after the first hits the memoized result.
//
// The function is not recursive: nested subterms are left alone.
// Composing it into a whole-program rewrite is the traversal's job.
func ShareNormalForm(rt term.RichTerm) term.RichTerm {
	switch t := rt.Term.(type) {
	case *term.RecordLiteral:
		var bindings []binding
		fields := make([]term.RecordField, len(t.Fields))
		for i, field := range t.Fields {
			fields[i] = field
			if shouldShare(field.Value.Term) {
				fresh := freshVar()
				bindings = append(bindings, binding{name: fresh, bound: field.Value})
				fields[i].Value = term.Var(fresh)
			}
		}
		return wrapBindings(term.RichTerm{Term: &term.RecordLiteral{Fields: fields}, Pos: rt.Pos}, bindings)

	case *term.ListLiteral:
		var bindings []binding
		elements := make([]term.RichTerm, len(t.Elements))
		for i, element := range t.Elements {
			elements[i] = element
			if shouldShare(element.Term) {
				fresh := freshVar()
				bindings = append(bindings, binding{name: fresh, bound: element})
				elements[i] = term.Var(fresh)
			}
		}
		return wrapBindings(term.RichTerm{Term: &term.ListLiteral{Elements: elements}, Pos: rt.Pos}, bindings)

	case *term.DefaultValue:
		if !shouldShare(t.Inner.Term) {
			return rt
		}
		fresh := freshVar()
		inner := term.RichTerm{Term: &term.DefaultValue{Inner: term.Var(fresh)}, Pos: rt.Pos}
		return letIn(fresh, t.Inner, inner)

	case *term.ContractWithDefault:
		if !shouldShare(t.Inner.Term) {
			return rt
		}
		fresh := freshVar()
		inner := term.RichTerm{
			Term: &term.ContractWithDefault{Contract: t.Contract, Label: t.Label, Inner: term.Var(fresh)},
			Pos:  rt.Pos,
		}
		return letIn(fresh, t.Inner, inner)

	case *term.Docstring:
		if !shouldShare(t.Inner.Term) {
			return rt
		}
		fresh := freshVar()
		inner := term.RichTerm{Term: &term.Docstring{Doc: t.Doc, Inner: term.Var(fresh)}, Pos: rt.Pos}
		return letIn(fresh, t.Inner, inner)

	default:
		return rt
	}
}

// shouldShare decides whether a record field or list element is worth
// indirecting through a binding. Terms that are already cheap weak
// head normal forms copy without duplicating work; anything that can
// still contain unevaluated subterms gets shared.
func shouldShare(t term.Term) bool {
	switch t.(type) {
	case *term.BooleanLiteral,
		*term.NumberLiteral,
		*term.StringLiteral,
		*term.LabelLiteral,
		*term.SymbolLiteral,
		*term.Identifier,
		*term.EnumTag,
		*term.FunctionLiteral:
		return false
	default:
		return true
	}
}

type binding struct {
	name  term.Ident
	bound term.RichTerm
}

// wrapBindings nests rt under one let per binding. The bindings are
// independent, so the nesting order is unobservable.
func wrapBindings(rt term.RichTerm, bindings []binding) term.RichTerm {
	for _, b := range bindings {
		rt = letIn(b.name, b.bound, rt)
	}
	return rt
}

func letIn(name term.Ident, bound, body term.RichTerm) term.RichTerm {
	return term.RichTerm{Term: &term.LetExpression{Name: name, Bound: bound, Body: body}}
}
