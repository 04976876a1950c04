package ast

import "rosa/internal/source"

// Declaration is the sum of Rosa's top-level declaration syntax.
type Declaration interface {
	Node
	declNode()
}

// Param is one function parameter: "name: Type".
type Param struct {
	Name string
	Type Type
	Pos  source.Span
}

// FuncDecl is "[pub] fun name(params) [-> Type] = Block<Statement>".
type FuncDecl struct {
	Public bool
	Name   string
	Params []Param
	Result Type // nil means void
	Body   Block[Statement]
	Pos    source.Span
}

func (d *FuncDecl) Span() source.Span { return d.Pos }
func (*FuncDecl) declNode()           {}

// File is the root of a parsed source file: its top-level declarations in
// source order. A source with no declarations gives an empty Decls.
type File struct {
	Decls []Declaration
	Pos   source.Span
}

func (f *File) Span() source.Span { return f.Pos }
