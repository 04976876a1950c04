package vm

// Chunk is a compiled unit of bytecode: the raw instruction stream plus
// the constant pool it indexes into.
type Chunk struct {
	Code []byte
	Pool ConstantPool
}

// ConstantPool stores constants as a single contiguous blob with an
// offset table; the length of constant i is offsets[i+1]-offsets[i], which
// is why Offsets always has one more entry than there are constants.
type ConstantPool struct {
	Data    []byte
	Offsets []uint32
}

// NewConstantPool returns an empty pool, seeded with the sentinel offset
// every pool must start with.
func NewConstantPool() ConstantPool {
	return ConstantPool{Offsets: []uint32{0}}
}

// Add appends data as a new constant and returns its index.
func (p *ConstantPool) Add(data []byte) uint32 {
	idx := uint32(len(p.Offsets) - 1)
	p.Data = append(p.Data, data...)
	p.Offsets = append(p.Offsets, uint32(len(p.Data)))
	return idx
}

// Get returns the bytes of constant idx, and whether idx is valid.
func (p *ConstantPool) Get(idx uint32) ([]byte, bool) {
	if int(idx)+1 >= len(p.Offsets) {
		return nil, false
	}
	lo, hi := p.Offsets[idx], p.Offsets[idx+1]
	return p.Data[lo:hi], true
}

// Len returns the number of constants in the pool.
func (p *ConstantPool) Len() int {
	if len(p.Offsets) == 0 {
		return 0
	}
	return len(p.Offsets) - 1
}
