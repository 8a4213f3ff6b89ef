package buffer

// Block is a fixed-length run of 16-bit samples owned by a Pool.
type Block struct {
	samples []int16
	refs    int
	owner   *Pool
}

// Samples returns the block's samples. The slice is only valid while the
// caller holds a reference.
func (b *Block) Samples() []int16 {
	return b.samples
}

// Len returns the number of samples in the block.
func (b *Block) Len() int {
	return len(b.samples)
}

// Refs returns the number of outstanding references; 0 means the block is
// back in its pool.
func (b *Block) Refs() int {
	return b.refs
}

// Zero sets all samples to 0.
func (b *Block) Zero() {
	clear(b.samples)
}

// Release drops one reference on the pool that owns b. It is a no-op for
// blocks without an owner.
func (b *Block) Release() {
	if b == nil || b.owner == nil {
		return
	}

	b.owner.Release(b)
}
