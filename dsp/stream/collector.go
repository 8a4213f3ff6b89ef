package stream

import "github.com/cwbudde/algo-hpf/dsp/buffer"

// Collector is a Sink that appends every received block to a slice and
// releases it.
type Collector struct {
	pool    Releaser
	samples []int16
	blocks  int
}

// NewCollector returns a Collector releasing to pool.
func NewCollector(pool Releaser) *Collector {
	return &Collector{pool: pool}
}

// Transmit copies b's samples and releases it.
func (c *Collector) Transmit(b *buffer.Block) {
	if b == nil {
		return
	}

	c.samples = append(c.samples, b.Samples()...)
	c.blocks++
	c.pool.Release(b)
}

// Samples returns everything collected so far.
func (c *Collector) Samples() []int16 { return c.samples }

// Blocks returns the number of received blocks.
func (c *Collector) Blocks() int { return c.blocks }

// Reset drops the collected samples.
func (c *Collector) Reset() {
	c.samples = c.samples[:0]
	c.blocks = 0
}
