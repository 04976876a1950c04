package vm

func (v *VM) installDispatch() {
	v.dispatch[OpNoOp] = opNoOp
	v.dispatch[OpExit] = opExit
	v.dispatch[OpConst] = opConst

	v.dispatch[OpAddU8] = binU8(addU8Checked)
	v.dispatch[OpSubU8] = binU8(subU8Checked)
	v.dispatch[OpMulU8] = binU8(mulU8Checked)
	v.dispatch[OpDivU8] = binU8(divU8Checked)
	v.dispatch[OpModU8] = binU8(modU8Checked)
	v.dispatch[OpShlU8] = binU8(shlU8Checked)
	v.dispatch[OpShrU8] = binU8(shrU8Checked)
	v.dispatch[OpEqU8] = cmpU8(func(a, b uint8) bool { return a == b })
	v.dispatch[OpNeU8] = cmpU8(func(a, b uint8) bool { return a != b })
	v.dispatch[OpLtU8] = cmpU8(func(a, b uint8) bool { return a < b })
	v.dispatch[OpGtU8] = cmpU8(func(a, b uint8) bool { return a > b })
	v.dispatch[OpLeU8] = cmpU8(func(a, b uint8) bool { return a <= b })
	v.dispatch[OpGeU8] = cmpU8(func(a, b uint8) bool { return a >= b })

	v.dispatch[OpAddU16] = binU16(addU16Checked)
	v.dispatch[OpSubU16] = binU16(subU16Checked)
	v.dispatch[OpMulU16] = binU16(mulU16Checked)
	v.dispatch[OpDivU16] = binU16(divU16Checked)
	v.dispatch[OpModU16] = binU16(modU16Checked)
	v.dispatch[OpShlU16] = binU16(shlU16Checked)
	v.dispatch[OpShrU16] = binU16(shrU16Checked)
	v.dispatch[OpEqU16] = cmpU16(func(a, b uint16) bool { return a == b })
	v.dispatch[OpNeU16] = cmpU16(func(a, b uint16) bool { return a != b })
	v.dispatch[OpLtU16] = cmpU16(func(a, b uint16) bool { return a < b })
	v.dispatch[OpGtU16] = cmpU16(func(a, b uint16) bool { return a > b })
	v.dispatch[OpLeU16] = cmpU16(func(a, b uint16) bool { return a <= b })
	v.dispatch[OpGeU16] = cmpU16(func(a, b uint16) bool { return a >= b })
}

func opNoOp(v *VM) error {
	v.ip++
	return nil
}

// opExit pops one u8 exit code off the stack and stores it. A chunk that
// reaches OpExit with nothing on the stack is itself an underflow fault.
func opExit(v *VM) error {
	v.ip++
	code, ok := v.stack.PopU8()
	if !ok {
		return newFault(FaultStackUnderflow, v.ip, v.stack.Tail(32), "OpExit requires a u8 exit code on the stack")
	}
	v.exit = int(code)
	return nil
}

func opConst(v *VM) error {
	v.ip++
	idx, err := v.readDynInt()
	if err != nil {
		return err
	}
	data, ok := v.chunk.Pool.Get(uint32(idx))
	if !ok {
		return newFault(FaultUnknownConst, v.ip, v.stack.Tail(32), "")
	}
	if !v.stack.PushRaw(data) {
		return newFault(FaultStackOverflow, v.ip, v.stack.Tail(32), "")
	}
	return nil
}

func binU8(f func(a, b uint8) (uint8, bool)) func(*VM) error {
	return func(v *VM) error {
		v.ip++
		b, ok1 := v.stack.PopU8()
		a, ok2 := v.stack.PopU8()
		if !ok1 || !ok2 {
			return newFault(FaultStackUnderflow, v.ip, v.stack.Tail(32), "")
		}
		r, ok := f(a, b)
		if !ok {
			return newFault(FaultArithmetic, v.ip, v.stack.Tail(32), "")
		}
		if !v.stack.PushU8(r) {
			return newFault(FaultStackOverflow, v.ip, v.stack.Tail(32), "")
		}
		return nil
	}
}

func cmpU8(f func(a, b uint8) bool) func(*VM) error {
	return func(v *VM) error {
		v.ip++
		b, ok1 := v.stack.PopU8()
		a, ok2 := v.stack.PopU8()
		if !ok1 || !ok2 {
			return newFault(FaultStackUnderflow, v.ip, v.stack.Tail(32), "")
		}
		if !v.stack.PushU8(boolByte(f(a, b))) {
			return newFault(FaultStackOverflow, v.ip, v.stack.Tail(32), "")
		}
		return nil
	}
}

func binU16(f func(a, b uint16) (uint16, bool)) func(*VM) error {
	return func(v *VM) error {
		v.ip++
		b, ok1 := v.stack.PopU16()
		a, ok2 := v.stack.PopU16()
		if !ok1 || !ok2 {
			return newFault(FaultStackUnderflow, v.ip, v.stack.Tail(32), "")
		}
		r, ok := f(a, b)
		if !ok {
			return newFault(FaultArithmetic, v.ip, v.stack.Tail(32), "")
		}
		if !v.stack.PushU16(r) {
			return newFault(FaultStackOverflow, v.ip, v.stack.Tail(32), "")
		}
		return nil
	}
}

func cmpU16(f func(a, b uint16) bool) func(*VM) error {
	return func(v *VM) error {
		v.ip++
		b, ok1 := v.stack.PopU16()
		a, ok2 := v.stack.PopU16()
		if !ok1 || !ok2 {
			return newFault(FaultStackUnderflow, v.ip, v.stack.Tail(32), "")
		}
		if !v.stack.PushU8(boolByte(f(a, b))) {
			return newFault(FaultStackOverflow, v.ip, v.stack.Tail(32), "")
		}
		return nil
	}
}
