package term

import "fmt"

// Pos is a source position. The zero value means "unknown". Positions
// are carried through every rewrite untouched; the only consumer in
// this stage is import-error attribution.
type Pos struct {
	File string
	Line int
	Col  int
}

// IsKnown reports whether p points at an actual source location.
func (p Pos) IsKnown() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsKnown() {
		return "<unknown>"
	}
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}
