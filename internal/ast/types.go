package ast

import "rosa/internal/source"

// Primitive enumerates Rosa's built-in scalar types.
type Primitive uint8

const (
	PrimInvalid Primitive = iota
	PrimI8
	PrimI16
	PrimI32
	PrimI64
	PrimU8
	PrimU16
	PrimU32
	PrimU64
	PrimBool
	PrimChar
	PrimStr
	PrimVoid
)

var primitiveNames = map[string]Primitive{
	"i8": PrimI8, "i16": PrimI16, "i32": PrimI32, "i64": PrimI64,
	"u8": PrimU8, "u16": PrimU16, "u32": PrimU32, "u64": PrimU64,
	"bool": PrimBool, "char": PrimChar, "str": PrimStr, "void": PrimVoid,
}

// LookupPrimitive reports whether name names a built-in type.
func LookupPrimitive(name string) (Primitive, bool) {
	p, ok := primitiveNames[name]
	return p, ok
}

// Type is the sum of Rosa's type syntax: a primitive name, or a function
// pointer type "fun(T, ...) -> R".
type Type interface {
	Node
	typeNode()
}

// PrimitiveType references one of the built-in scalar types by name.
type PrimitiveType struct {
	Kind Primitive
	Pos  source.Span
}

func (t *PrimitiveType) Span() source.Span { return t.Pos }
func (*PrimitiveType) typeNode()           {}

// FnPtrType is the type of a function value: "fun(Params) -> Result".
type FnPtrType struct {
	Params []Type
	Result Type
	Pos    source.Span
}

func (t *FnPtrType) Span() source.Span { return t.Pos }
func (*FnPtrType) typeNode()           {}
