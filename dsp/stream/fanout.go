package stream

import (
	"errors"

	"github.com/cwbudde/algo-hpf/dsp/buffer"
)

// Fanout delivers one block to every attached sink, e.g. the mono filter
// output to both channels of a stereo output.
type Fanout struct {
	pool   Retainer
	sinks  []Sink
	missed uint64
}

// NewFanout returns a Fanout over sinks.
func NewFanout(pool Retainer, sinks ...Sink) (*Fanout, error) {
	if pool == nil {
		return nil, errors.New("stream: fanout needs a retainer")
	}

	for _, s := range sinks {
		if s == nil {
			return nil, errors.New("stream: fanout sink is nil")
		}
	}

	return &Fanout{pool: pool, sinks: sinks}, nil
}

// Transmit hands b to each sink. The caller's single reference is passed to
// the first sink; every further sink gets a reference of its own. When the
// pool refuses a reference (a block it does not own) the remaining sinks are
// skipped, and a block that is already free reaches no sink at all. With no
// sinks the block is released.
func (f *Fanout) Transmit(b *buffer.Block) {
	if b == nil {
		return
	}

	if b.Refs() == 0 {
		f.missed += uint64(len(f.sinks))
		return
	}

	if len(f.sinks) == 0 {
		f.pool.Release(b)
		return
	}

	reached := 1
	for range f.sinks[1:] {
		if !f.pool.Retain(b) {
			break
		}

		reached++
	}

	f.missed += uint64(len(f.sinks) - reached)

	for _, s := range f.sinks[:reached] {
		s.Transmit(b)
	}
}

// Missed returns the number of sink deliveries skipped because no reference
// could be taken.
func (f *Fanout) Missed() uint64 { return f.missed }

// Sinks returns the number of attached sinks.
func (f *Fanout) Sinks() int { return len(f.sinks) }
