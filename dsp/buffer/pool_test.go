package buffer

import "testing"

func newTestPool(t *testing.T, capacity, blockSize int) *Pool {
	t.Helper()

	p, err := NewPool(capacity, blockSize)
	if err != nil {
		t.Fatalf("NewPool() error = %v", err)
	}

	return p
}

func TestNewPoolValidation(t *testing.T) {
	if _, err := NewPool(0, 128); err == nil {
		t.Fatal("expected error for zero capacity")
	}

	p := newTestPool(t, 2, 0)
	if p.BlockSize() != 128 {
		t.Fatalf("BlockSize() = %d, want default 128", p.BlockSize())
	}
}

func TestPoolAllocateReturnsZeroed(t *testing.T) {
	p := newTestPool(t, 1, 8)

	b := p.Allocate()
	if b == nil {
		t.Fatal("Allocate() = nil")
	}

	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}

	if b.Refs() != 1 {
		t.Fatalf("Refs() = %d, want 1", b.Refs())
	}

	b.Samples()[0] = 42
	b.Samples()[7] = -42
	p.Release(b)

	// Get again; should be zeroed regardless of reuse.
	b2 := p.Allocate()
	for i, v := range b2.Samples() {
		if v != 0 {
			t.Fatalf("reused Samples()[%d] = %d, want 0", i, v)
		}
	}
}

func TestPoolExhaustion(t *testing.T) {
	p := newTestPool(t, 2, 4)

	a := p.Allocate()
	b := p.Allocate()

	if a == nil || b == nil || a == b {
		t.Fatal("expected two distinct blocks")
	}

	if c := p.Allocate(); c != nil {
		t.Fatal("Allocate() on exhausted pool should return nil")
	}

	if p.Available() != 0 || p.InUse() != 2 {
		t.Fatalf("Available()=%d InUse()=%d", p.Available(), p.InUse())
	}

	p.Release(a)

	if c := p.Allocate(); c != a {
		t.Fatal("released block should be reused")
	}
}

func TestPoolReleaseIsIdempotent(t *testing.T) {
	p := newTestPool(t, 2, 4)

	b := p.Allocate()
	p.Release(b)
	p.Release(b)
	p.Release(nil)

	if p.Available() != 2 {
		t.Fatalf("Available() = %d, want 2", p.Available())
	}

	// A double release must not hand the same block out twice.
	x, y := p.Allocate(), p.Allocate()
	if x == y {
		t.Fatal("same block allocated twice")
	}
}

func TestPoolIgnoresForeignBlocks(t *testing.T) {
	p1 := newTestPool(t, 1, 4)
	p2 := newTestPool(t, 1, 4)

	b := p1.Allocate()
	p2.Release(b)

	if p2.Retain(b) {
		t.Fatal("Retain() on foreign block should fail")
	}

	if b.Refs() != 1 || p2.Available() != 1 {
		t.Fatalf("foreign release changed state: refs=%d available=%d", b.Refs(), p2.Available())
	}
}

func TestPoolRetain(t *testing.T) {
	p := newTestPool(t, 1, 4)

	b := p.Allocate()
	if !p.Retain(b) {
		t.Fatal("Retain() = false")
	}

	p.Release(b)

	if p.Available() != 0 {
		t.Fatal("block returned while a reference is outstanding")
	}

	p.Release(b)

	if p.Available() != 1 || b.Refs() != 0 {
		t.Fatalf("Available()=%d Refs()=%d after last release", p.Available(), b.Refs())
	}

	if p.Retain(b) {
		t.Fatal("Retain() on a free block should fail")
	}
}

func TestPoolMaxInUse(t *testing.T) {
	p := newTestPool(t, 3, 4)

	a := p.Allocate()
	b := p.Allocate()
	p.Release(a)
	p.Release(b)

	if p.MaxInUse() != 2 {
		t.Fatalf("MaxInUse() = %d, want 2", p.MaxInUse())
	}

	p.ResetMaxInUse()

	if p.MaxInUse() != 0 {
		t.Fatalf("MaxInUse() after reset = %d, want 0", p.MaxInUse())
	}
}

func TestBlocksDoNotOverlap(t *testing.T) {
	p := newTestPool(t, 2, 4)

	a := p.Allocate()
	b := p.Allocate()

	for i := range a.Samples() {
		a.Samples()[i] = 7
	}

	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("write to one block leaked into another at %d", i)
		}
	}

	// Appending past the block must not spill into the neighbour.
	_ = append(a.Samples(), 1)

	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("append leaked into neighbour at %d", i)
		}
	}
}

func TestBlockReleaseReturnsToOwner(t *testing.T) {
	p1 := newTestPool(t, 1, 4)
	p2 := newTestPool(t, 1, 4)

	b := p1.Allocate()
	other := p2.Allocate()

	b.Release()

	if p1.Available() != 1 || b.Refs() != 0 {
		t.Fatalf("owner pool: Available()=%d Refs()=%d", p1.Available(), b.Refs())
	}

	if p2.Available() != 0 || other.Refs() != 1 {
		t.Fatal("Release() touched another pool")
	}

	b.Release()

	if p1.Available() != 1 {
		t.Fatalf("second Release() changed Available() to %d", p1.Available())
	}

	var orphan Block
	orphan.Release()

	var nilBlock *Block
	nilBlock.Release()
}
