package stream

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-hpf/dsp/buffer"
)

// Queue is a bounded FIFO of blocks acting as a stage's input channel.
// It is both a Sink (upstream side) and a Source (stage side).
type Queue struct {
	pool    Releaser
	blocks  []*buffer.Block
	head    int
	size    int
	dropped uint64
}

// NewQueue returns a Queue holding up to depth blocks. Blocks that do not fit
// are released to pool.
func NewQueue(depth int, pool Releaser) (*Queue, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("stream: queue depth must be > 0: %d", depth)
	}

	if pool == nil {
		return nil, errors.New("stream: queue needs a releaser")
	}

	return &Queue{
		pool:   pool,
		blocks: make([]*buffer.Block, depth),
	}, nil
}

// Transmit enqueues b, or releases it when the queue is full.
func (q *Queue) Transmit(b *buffer.Block) {
	if b == nil {
		return
	}

	if q.size == len(q.blocks) {
		q.dropped++
		q.pool.Release(b)

		return
	}

	q.blocks[(q.head+q.size)%len(q.blocks)] = b
	q.size++
}

// Acquire dequeues the oldest block, or returns nil when empty.
func (q *Queue) Acquire() *buffer.Block {
	if q.size == 0 {
		return nil
	}

	b := q.blocks[q.head]
	q.blocks[q.head] = nil
	q.head = (q.head + 1) % len(q.blocks)
	q.size--

	return b
}

// Len returns the number of queued blocks.
func (q *Queue) Len() int { return q.size }

// Full reports whether the next Transmit would drop.
func (q *Queue) Full() bool { return q.size == len(q.blocks) }

// Dropped returns the number of blocks discarded because the queue was full.
func (q *Queue) Dropped() uint64 { return q.dropped }

// Clear releases every queued block.
func (q *Queue) Clear() {
	for q.size > 0 {
		q.pool.Release(q.Acquire())
	}
}
