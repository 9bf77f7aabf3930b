package term

// TraverseFunc is a fallible single-step rewrite applied to one node.
// State is threaded through the whole traversal unchanged.
type TraverseFunc[S any] func(RichTerm, S) (RichTerm, error)

// Traverse applies f once to every node of rt, children before their
// parent. The callback sees each child already rewritten; nodes the
// callback synthesizes around a result (such as let bindings wrapping
// a record) are not revisited. The first error aborts the traversal.
func Traverse[S any](rt RichTerm, f TraverseFunc[S], state S) (RichTerm, error) {
	var err error

	switch t := rt.Term.(type) {
	case *FunctionLiteral:
		body, err := Traverse(t.Body, f, state)
		if err != nil {
			return RichTerm{}, err
		}
		rt = RichTerm{Term: &FunctionLiteral{Param: t.Param, Body: body}, Pos: rt.Pos}

	case *LetExpression:
		bound, err := Traverse(t.Bound, f, state)
		if err != nil {
			return RichTerm{}, err
		}
		body, err := Traverse(t.Body, f, state)
		if err != nil {
			return RichTerm{}, err
		}
		rt = RichTerm{Term: &LetExpression{Name: t.Name, Bound: bound, Body: body}, Pos: rt.Pos}

	case *Application:
		fn, err := Traverse(t.Fn, f, state)
		if err != nil {
			return RichTerm{}, err
		}
		arg, err := Traverse(t.Arg, f, state)
		if err != nil {
			return RichTerm{}, err
		}
		rt = RichTerm{Term: &Application{Fn: fn, Arg: arg}, Pos: rt.Pos}

	case *UnaryOp:
		arg, err := Traverse(t.Arg, f, state)
		if err != nil {
			return RichTerm{}, err
		}
		rt = RichTerm{Term: &UnaryOp{Op: t.Op, Arg: arg}, Pos: rt.Pos}

	case *BinaryOp:
		left, err := Traverse(t.Left, f, state)
		if err != nil {
			return RichTerm{}, err
		}
		right, err := Traverse(t.Right, f, state)
		if err != nil {
			return RichTerm{}, err
		}
		rt = RichTerm{Term: &BinaryOp{Op: t.Op, Left: left, Right: right}, Pos: rt.Pos}

	case *RecordLiteral:
		fields := make([]RecordField, len(t.Fields))
		for i, field := range t.Fields {
			value, err := Traverse(field.Value, f, state)
			if err != nil {
				return RichTerm{}, err
			}
			fields[i] = RecordField{Name: field.Name, Value: value}
		}
		rt = RichTerm{Term: &RecordLiteral{Fields: fields}, Pos: rt.Pos}

	case *ListLiteral:
		elements := make([]RichTerm, len(t.Elements))
		for i, element := range t.Elements {
			elements[i], err = Traverse(element, f, state)
			if err != nil {
				return RichTerm{}, err
			}
		}
		rt = RichTerm{Term: &ListLiteral{Elements: elements}, Pos: rt.Pos}

	case *DefaultValue:
		inner, err := Traverse(t.Inner, f, state)
		if err != nil {
			return RichTerm{}, err
		}
		rt = RichTerm{Term: &DefaultValue{Inner: inner}, Pos: rt.Pos}

	case *ContractWithDefault:
		inner, err := Traverse(t.Inner, f, state)
		if err != nil {
			return RichTerm{}, err
		}
		rt = RichTerm{Term: &ContractWithDefault{Contract: t.Contract, Label: t.Label, Inner: inner}, Pos: rt.Pos}

	case *Docstring:
		inner, err := Traverse(t.Inner, f, state)
		if err != nil {
			return RichTerm{}, err
		}
		rt = RichTerm{Term: &Docstring{Doc: t.Doc, Inner: inner}, Pos: rt.Pos}
	}

	return f(rt, state)
}
