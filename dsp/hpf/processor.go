package hpf

import (
	"errors"

	"github.com/cwbudde/algo-hpf/dsp/buffer"
	"github.com/cwbudde/algo-hpf/dsp/filter/onepole"
	"github.com/cwbudde/algo-hpf/dsp/pcm"
)

// Source yields at most one input block per cycle, or nil when none is
// ready. Ownership of a returned block passes to the caller.
type Source interface {
	Acquire() *buffer.Block
}

// Allocator provides output blocks. Allocate returns nil under pressure.
type Allocator interface {
	Allocate() *buffer.Block
}

// Counters reports cycle outcomes since construction.
type Counters struct {
	Processed    uint64 // blocks produced
	MissingInput uint64 // cycles skipped, no input
	AllocFailed  uint64 // cycles skipped, no output block
	Clipped      uint64 // samples saturated to the int16 range
}

// Processor is the high-pass block stage. It is driven by one goroutine at
// block rate and is not safe for concurrent use.
type Processor struct {
	src  Source
	pool Allocator

	filter    onepole.HighPass
	quantizer pcm.Quantizer

	counters Counters
}

// New builds a Processor reading from src and allocating from pool. The
// filter is configured at the default 60 Hz / 44.1 kHz unless overridden,
// then reset.
func New(src Source, pool Allocator, opts ...Option) (*Processor, error) {
	if src == nil {
		return nil, errors.New("hpf: source is nil")
	}

	if pool == nil {
		return nil, errors.New("hpf: allocator is nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	q, err := pcm.NewQuantizer(cfg.rounding)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		src:       src,
		pool:      pool,
		quantizer: *q,
	}
	p.filter.Configure(cfg.cutoffHz, cfg.sampleRate)
	p.filter.Reset()

	return p, nil
}

// Process runs one cycle. It returns the filtered block and true, or nil and
// false when the cycle was skipped. The caller owns the returned block and
// must release it once consumed.
func (p *Processor) Process() (*buffer.Block, bool) {
	in := p.src.Acquire()
	if in == nil {
		p.counters.MissingInput++
		return nil, false
	}
	defer in.Release()

	out := p.pool.Allocate()
	if out == nil {
		p.counters.AllocFailed++
		return nil, false
	}

	p.ProcessBlock(out.Samples(), in.Samples())
	p.counters.Processed++

	return out, true
}

// ProcessBlock filters src into dst sample by sample, in order, and returns
// the number of samples written (the shorter length).
func (p *Processor) ProcessBlock(dst, src []int16) int {
	n := min(len(dst), len(src))
	before := p.quantizer.Clipped()

	for i := range n {
		y := p.filter.ProcessSample(pcm.ToFloat(src[i]))
		dst[i] = p.quantizer.ProcessSample(y)
	}

	p.counters.Clipped += p.quantizer.Clipped() - before

	return n
}

// SetCutoffHz moves the cutoff while streaming. The filter history is kept.
func (p *Processor) SetCutoffHz(cutoffHz float64) {
	p.filter.Configure(cutoffHz, p.filter.SampleRate())
}

// SetSampleRate changes the processing rate. The filter history is kept.
func (p *Processor) SetSampleRate(sampleRate float64) {
	p.filter.Configure(p.filter.CutoffHz(), sampleRate)
}

// Reset clears the filter history, e.g. at a stream discontinuity.
func (p *Processor) Reset() {
	p.filter.Reset()
}

// CutoffHz returns the effective cutoff in Hz.
func (p *Processor) CutoffHz() float64 { return p.filter.CutoffHz() }

// SampleRate returns the effective sample rate in Hz.
func (p *Processor) SampleRate() float64 { return p.filter.SampleRate() }

// Coefficient returns the filter's feedback coefficient.
func (p *Processor) Coefficient() float64 { return p.filter.Coefficient() }

// Rounding returns the int16 rounding mode.
func (p *Processor) Rounding() pcm.Rounding { return p.quantizer.Rounding() }

// FilterState returns the filter history.
func (p *Processor) FilterState() onepole.State { return p.filter.State() }

// Counters returns the cycle counters.
func (p *Processor) Counters() Counters { return p.counters }
