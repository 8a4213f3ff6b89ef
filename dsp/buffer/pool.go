package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-hpf/dsp/core"
)

// Pool is a fixed-capacity free list of equally sized blocks.
type Pool struct {
	blockSize int
	blocks    []*Block
	free      []*Block
	maxInUse  int
}

// NewPool allocates capacity blocks of blockSize samples. A blockSize <= 0
// selects core.DefaultBlockSize.
func NewPool(capacity, blockSize int) (*Pool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("buffer: pool capacity must be > 0: %d", capacity)
	}

	if blockSize <= 0 {
		blockSize = core.DefaultBlockSize
	}

	p := &Pool{
		blockSize: blockSize,
		blocks:    make([]*Block, capacity),
		free:      make([]*Block, 0, capacity),
	}

	backing := make([]int16, capacity*blockSize)
	for i := range p.blocks {
		b := &Block{
			samples: backing[i*blockSize : (i+1)*blockSize : (i+1)*blockSize],
			owner:   p,
		}
		p.blocks[i] = b
		p.free = append(p.free, b)
	}

	return p, nil
}

// Allocate returns a zeroed block holding one reference, or nil when the pool
// is exhausted.
func (p *Pool) Allocate() *Block {
	n := len(p.free)
	if n == 0 {
		return nil
	}

	b := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]

	b.refs = 1
	b.Zero()

	if used := p.InUse(); used > p.maxInUse {
		p.maxInUse = used
	}

	return b
}

// Retain adds a reference to a block that is currently allocated from p.
// It reports whether a reference was added.
func (p *Pool) Retain(b *Block) bool {
	if b == nil || b.owner != p || b.refs == 0 {
		return false
	}

	b.refs++

	return true
}

// Release drops one reference and returns the block to the free list when
// the last reference is gone. Releasing nil, a free block, or a block owned
// by another pool is a no-op.
func (p *Pool) Release(b *Block) {
	if b == nil || b.owner != p || b.refs == 0 {
		return
	}

	b.refs--
	if b.refs == 0 {
		p.free = append(p.free, b)
	}
}

// BlockSize returns the number of samples per block.
func (p *Pool) BlockSize() int { return p.blockSize }

// Capacity returns the total number of blocks.
func (p *Pool) Capacity() int { return len(p.blocks) }

// Available returns the number of free blocks.
func (p *Pool) Available() int { return len(p.free) }

// InUse returns the number of allocated blocks.
func (p *Pool) InUse() int { return len(p.blocks) - len(p.free) }

// MaxInUse returns the high-water mark of allocated blocks.
func (p *Pool) MaxInUse() int { return p.maxInUse }

// ResetMaxInUse sets the high-water mark to the current usage.
func (p *Pool) ResetMaxInUse() { p.maxInUse = p.InUse() }
