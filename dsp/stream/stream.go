package stream

import "github.com/cwbudde/algo-hpf/dsp/buffer"

// Source yields at most one block per call, or nil.
type Source interface {
	Acquire() *buffer.Block
}

// Sink consumes a block. Transmit takes over one reference; the sink must
// release it when done.
type Sink interface {
	Transmit(b *buffer.Block)
}

// Stage produces at most one output block per cycle.
type Stage interface {
	Process() (*buffer.Block, bool)
}

// Releaser returns blocks to their pool.
type Releaser interface {
	Release(b *buffer.Block)
}

// Retainer adds references to pooled blocks.
type Retainer interface {
	Releaser
	Retain(b *buffer.Block) bool
}

// Drainer is an input that may still hold blocks when a run ends.
type Drainer interface {
	Len() int
	Clear()
}
