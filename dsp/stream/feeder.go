package stream

import (
	"github.com/cwbudde/algo-hpf/dsp/buffer"
	"github.com/cwbudde/algo-hpf/dsp/core"
)

// Allocator hands out blocks, returning nil under pressure.
type Allocator interface {
	Allocate() *buffer.Block
}

// SliceFeeder cuts a signal into pool-sized blocks and transmits one per
// call to Feed. The last block is zero-padded.
type SliceFeeder struct {
	pool    Allocator
	sink    Sink
	signal  []int16
	offset  int
	stalled uint64
}

// NewSliceFeeder returns a feeder for signal.
func NewSliceFeeder(signal []int16, pool Allocator, sink Sink) *SliceFeeder {
	return &SliceFeeder{pool: pool, sink: sink, signal: signal}
}

// Feed transmits the next block. It reports whether samples remain to be
// fed, including the current one when the pool had no free block.
func (f *SliceFeeder) Feed() bool {
	if f.Done() {
		return false
	}

	b := f.pool.Allocate()
	if b == nil {
		f.stalled++
		return true
	}

	f.offset += core.CopyInto(b.Samples(), f.signal[f.offset:])
	f.sink.Transmit(b)

	return !f.Done()
}

// Done reports whether the whole signal has been fed.
func (f *SliceFeeder) Done() bool { return f.offset >= len(f.signal) }

// Stalled returns the number of Feed calls that found the pool exhausted.
func (f *SliceFeeder) Stalled() uint64 { return f.stalled }
