package vm

// Opcode is a single-byte virtual machine instruction. The dispatch table
// is sized to the full byte range; any value with no registered handler
// faults with FaultUnknownInst.
type Opcode byte

const (
	OpNoOp Opcode = 0
	OpExit Opcode = 1
	// OpConst reads a dyn-int constant-pool index from the instruction
	// stream and pushes the referenced constant.
	OpConst Opcode = 2

	// U8 arithmetic and comparison operators, each popping two u8 operands
	// and pushing one result.
	OpAddU8 Opcode = 3
	OpSubU8 Opcode = 4
	OpMulU8 Opcode = 5
	OpDivU8 Opcode = 6
	OpModU8 Opcode = 7
	OpShlU8 Opcode = 8
	OpShrU8 Opcode = 9
	OpEqU8  Opcode = 10
	OpNeU8  Opcode = 11
	OpLtU8  Opcode = 12
	OpGtU8  Opcode = 13
	OpLeU8  Opcode = 14
	OpGeU8  Opcode = 15

	// U16 arithmetic and comparison operators, mirroring the U8 set.
	OpAddU16 Opcode = 16
	OpSubU16 Opcode = 17
	OpMulU16 Opcode = 18
	OpDivU16 Opcode = 19
	OpModU16 Opcode = 20
	OpShlU16 Opcode = 21
	OpShrU16 Opcode = 22
	OpEqU16  Opcode = 23
	OpNeU16  Opcode = 24
	OpLtU16  Opcode = 25
	OpGtU16  Opcode = 26
	OpLeU16  Opcode = 27
	OpGeU16  Opcode = 28
)
