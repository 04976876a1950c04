package ast

import "rosa/internal/source"

// Expression is the sum of Rosa's expression syntax.
type Expression interface {
	Node
	exprNode()
}

// BinOp enumerates binary operators, ordered to match the precedence table
// the parser uses; the numeric value itself carries no meaning beyond
// identity.
type BinOp uint8

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpShl
	OpShr
	OpLt
	OpGt
	OpLe
	OpGe
	OpEq
	OpNe
)

// UnOp enumerates unary prefix operators.
type UnOp uint8

const (
	UnNeg UnOp = iota
	UnNot
)

type IntLiteral struct {
	Value uint64
	Pos   source.Span
}

func (e *IntLiteral) Span() source.Span { return e.Pos }
func (*IntLiteral) exprNode()           {}

type StrLiteral struct {
	Value string
	Pos   source.Span
}

func (e *StrLiteral) Span() source.Span { return e.Pos }
func (*StrLiteral) exprNode()           {}

type CharLiteral struct {
	Value rune
	Pos   source.Span
}

func (e *CharLiteral) Span() source.Span { return e.Pos }
func (*CharLiteral) exprNode()           {}

type BoolLiteral struct {
	Value bool
	Pos   source.Span
}

func (e *BoolLiteral) Span() source.Span { return e.Pos }
func (*BoolLiteral) exprNode()           {}

// Symbol references an identifier, resolved to a declaration by sema.
type Symbol struct {
	Name string
	Pos  source.Span
}

func (e *Symbol) Span() source.Span { return e.Pos }
func (*Symbol) exprNode()           {}

type UnaryExpr struct {
	Op      UnOp
	Operand Expression
	Pos     source.Span
}

func (e *UnaryExpr) Span() source.Span { return e.Pos }
func (*UnaryExpr) exprNode()           {}

type BinaryExpr struct {
	Op          BinOp
	Left, Right Expression
	Pos         source.Span
}

func (e *BinaryExpr) Span() source.Span { return e.Pos }
func (*BinaryExpr) exprNode()           {}

// CallExpr applies Callee to Args; "func(args)" where Callee resolves to a
// function declaration or a fun-typed value.
type CallExpr struct {
	Callee Expression
	Args   []Expression
	Pos    source.Span
}

func (e *CallExpr) Span() source.Span { return e.Pos }
func (*CallExpr) exprNode()           {}
