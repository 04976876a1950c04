package sema

import (
	"rosa/internal/ast"
	"rosa/internal/source"
)

// SymbolKind distinguishes what a Symbol names.
type SymbolKind uint8

const (
	SymFunc SymbolKind = iota
	SymVal
	SymVar
	SymParam
)

// Symbol is a named entity resolved during semantic analysis.
type Symbol struct {
	Name string
	Kind SymbolKind
	Pos  source.Span
	Decl ast.Node
}
