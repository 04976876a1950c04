package vm

import (
	"context"

	"rosa/internal/dynint"
	"rosa/internal/trace"
)

// DefaultStackBytes is the maximum size of a VM's operand stack when the
// caller doesn't override it. The stack starts smaller and grows on demand.
const DefaultStackBytes = 4096

// VM executes one Chunk to completion or fault.
type VM struct {
	chunk Chunk
	ip    int
	stack *Stack
	exit  int

	dispatch [256]func(*VM) error
}

// New creates a VM ready to run chunk, with a stack capped at maxStack
// bytes (DefaultStackBytes if 0).
func New(chunk Chunk, maxStack int) *VM {
	if maxStack <= 0 {
		maxStack = DefaultStackBytes
	}
	initial := 64
	if initial > maxStack {
		initial = maxStack
	}
	v := &VM{chunk: chunk, stack: NewStack(initial, maxStack)}
	v.installDispatch()
	return v
}

// ExitCode returns the value OpExit most recently set, or 0 if the program
// never executed one.
func (v *VM) ExitCode() int { return v.exit }

// StackTail returns up to n trailing bytes currently on the operand stack.
// It is a read-only view meant for debugging and tests, not part of the
// fetch-decode-execute loop itself.
func (v *VM) StackTail(n int) []byte { return v.stack.Tail(n) }

// Run executes instructions until OpExit or a fault. ctx is used only for
// tracing spans; the VM does not otherwise check for cancellation, mirroring
// a real stack machine's run-to-completion semantics.
func (v *VM) Run(ctx context.Context) error {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeVM, "run", 0)
	defer func() {
		if span != nil {
			span.End("")
		}
	}()
	for {
		if v.ip >= len(v.chunk.Code) {
			// Running off the end of the program with no explicit Exit is a
			// normal halt with an implicit exit code of 0, not a fault.
			return nil
		}
		op := Opcode(v.chunk.Code[v.ip])
		handler := v.dispatch[op]
		if handler == nil {
			return newFault(FaultUnknownInst, v.ip, v.stack.Tail(32), "")
		}
		startIP := v.ip
		if err := handler(v); err != nil {
			if f, ok := err.(*Fault); ok {
				f.IP = startIP
			}
			return err
		}
		if op == OpExit {
			return nil
		}
	}
}

// readDynInt decodes a dyn-int operand at the current instruction pointer
// and advances past it.
func (v *VM) readDynInt() (uint64, error) {
	n, size, err := dynint.Decode(v.chunk.Code[v.ip:])
	if err != nil {
		return 0, newFault(FaultDynIntShortRead, v.ip, v.stack.Tail(32), err.Error())
	}
	v.ip += size
	return n, nil
}
