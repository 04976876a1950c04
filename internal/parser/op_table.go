package parser

import (
	"rosa/internal/ast"
	"rosa/internal/token"
)

// binInfo records a binary operator's precedence and the ast.BinOp it
// lowers to. Higher precedence binds tighter. All binary operators are
// left-associative; unary minus and logical not are the only
// right-associative operators and are handled in parseUnary.
type binInfo struct {
	prec int
	op   ast.BinOp
}

var binOps = map[token.PunctID]binInfo{
	token.Star:    {7, ast.OpMul},
	token.Slash:   {7, ast.OpDiv},
	token.Percent: {7, ast.OpMod},
	token.Plus:    {6, ast.OpAdd},
	token.Minus:   {6, ast.OpSub},
	token.Shl:     {5, ast.OpShl},
	token.Shr:     {5, ast.OpShr},
	token.Lt:      {4, ast.OpLt},
	token.Gt:      {4, ast.OpGt},
	token.Le:      {4, ast.OpLe},
	token.Ge:      {4, ast.OpGe},
	token.EqEq:    {3, ast.OpEq},
	token.NotEq:   {3, ast.OpNe},
}

// unaryPrec is the binding power of prefix "-" and "!", above every binary
// operator.
const unaryPrec = 8
