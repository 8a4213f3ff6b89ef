package pcm

import "fmt"

// Quantizer converts float values to samples with a fixed rounding mode and
// counts how many values had to be clipped to the 16-bit range.
type Quantizer struct {
	rounding Rounding
	clipped  uint64
}

// NewQuantizer returns a Quantizer using mode.
func NewQuantizer(mode Rounding) (*Quantizer, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("pcm: invalid rounding mode: %d", mode)
	}

	return &Quantizer{rounding: mode}, nil
}

// ProcessSample quantizes y.
func (q *Quantizer) ProcessSample(y float64) int16 {
	if y > MaxSample || y < MinSample {
		q.clipped++
	}

	return Quantize(y, q.rounding)
}

// ProcessBlock quantizes src into dst and returns the number of written
// samples (the shorter length).
func (q *Quantizer) ProcessBlock(dst []int16, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = q.ProcessSample(src[i])
	}

	return n
}

// Rounding returns the rounding mode.
func (q *Quantizer) Rounding() Rounding { return q.rounding }

// Clipped returns the number of values clamped since the last Reset.
func (q *Quantizer) Clipped() uint64 { return q.clipped }

// Reset clears the clip counter.
func (q *Quantizer) Reset() { q.clipped = 0 }
