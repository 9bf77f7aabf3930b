// Package term defines the AST of the nacre language as it exists
// between parsing and evaluation, together with the generic traversal
// used by the transformation stage.
package term

import "github.com/nacre-lang/nacre/internal/files"

// Ident is an interned name. User identifiers come from the parser;
// synthetic identifiers minted by the transformation stage start with
// '%', which the surface grammar reserves, so the two can never clash.
type Ident string

// Term is the base interface for all AST node kinds.
type Term interface {
	termNode()
}

// RichTerm is a term together with its source position. Rewrites keep
// the position of the node they replace; freshly synthesized nodes
// carry the zero (unknown) position.
type RichTerm struct {
	Term Term
	Pos  Pos
}

// ContractType is the slice of the type system this package needs to
// see: something that can produce its runtime-check term. The real
// implementation lives in internal/typing.
type ContractType interface {
	Contract() RichTerm
}

// Label is the blame label attached to contract checks. This stage
// only carries labels around; assigning blame is the evaluator's job.
type Label struct {
	Tag      string
	Polarity bool
	Pos      Pos
}

// BooleanLiteral represents true or false.
type BooleanLiteral struct {
	Value bool
}

// NumberLiteral represents a numeric literal.
type NumberLiteral struct {
	Value float64
}

// StringLiteral represents a string literal.
type StringLiteral struct {
	Value string
}

// LabelLiteral represents a first-class blame label.
type LabelLiteral struct {
	Label Label
}

// SymbolLiteral represents a sealing symbol used by polymorphic
// contracts.
type SymbolLiteral struct {
	ID int64
}

// EnumTag represents an enum tag, e.g. `foo.
type EnumTag struct {
	Tag Ident
}

// FunctionLiteral represents a single-parameter function.
type FunctionLiteral struct {
	Param Ident
	Body  RichTerm
}

// Identifier represents a variable reference.
type Identifier struct {
	Name Ident
}

// LetExpression binds Name to Bound inside Body.
type LetExpression struct {
	Name  Ident
	Bound RichTerm
	Body  RichTerm
}

// Application applies Fn to Arg.
type Application struct {
	Fn  RichTerm
	Arg RichTerm
}

// UnaryOp is a primitive unary operator application.
type UnaryOp struct {
	Op  string
	Arg RichTerm
}

// BinaryOp is a primitive binary operator application, e.g. 1 + 1.
type BinaryOp struct {
	Op    string
	Left  RichTerm
	Right RichTerm
}

// RecordField is a single field of a record literal.
type RecordField struct {
	Name  Ident
	Value RichTerm
}

// RecordLiteral represents a record. Field names are unique; fields
// are kept as an ordered slice so rewrites that walk them produce a
// deterministic result.
type RecordLiteral struct {
	Fields []RecordField
}

// ListLiteral represents a list, e.g. [1, 2, 3].
type ListLiteral struct {
	Elements []RichTerm
}

// DefaultValue wraps the default value of a record field.
type DefaultValue struct {
	Inner RichTerm
}

// ContractWithDefault wraps a default value that must also satisfy a
// contract.
type ContractWithDefault struct {
	Contract ContractType
	Label    Label
	Inner    RichTerm
}

// Docstring attaches documentation to a term.
type Docstring struct {
	Doc   string
	Inner RichTerm
}

// Import is an unresolved import of the file at Path.
type Import struct {
	Path string
}

// ResolvedImport replaces an Import once the resolver has loaded the
// target file. The content is reached through the resolver's cache,
// never through the AST.
type ResolvedImport struct {
	File files.ID
}

func (*BooleanLiteral) termNode()      {}
func (*NumberLiteral) termNode()       {}
func (*StringLiteral) termNode()       {}
func (*LabelLiteral) termNode()        {}
func (*SymbolLiteral) termNode()       {}
func (*EnumTag) termNode()             {}
func (*FunctionLiteral) termNode()     {}
func (*Identifier) termNode()          {}
func (*LetExpression) termNode()       {}
func (*Application) termNode()         {}
func (*UnaryOp) termNode()             {}
func (*BinaryOp) termNode()            {}
func (*RecordLiteral) termNode()       {}
func (*ListLiteral) termNode()         {}
func (*DefaultValue) termNode()        {}
func (*ContractWithDefault) termNode() {}
func (*Docstring) termNode()           {}
func (*Import) termNode()              {}
func (*ResolvedImport) termNode()      {}

// Var builds a bare variable reference with no position.
func Var(name Ident) RichTerm {
	return RichTerm{Term: &Identifier{Name: name}}
}
