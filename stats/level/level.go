// Package level provides a streaming level meter for 16-bit sample blocks.
package level

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-hpf/dsp/core"
	"github.com/cwbudde/algo-hpf/dsp/pcm"
)

// FullScale is the reference amplitude for the dB fields.
const FullScale = 32768.0

// Stats holds level statistics. dB fields are relative to full scale and
// -Inf for zero values.
//
//nolint:revive
type Stats struct {
	Length    int
	DC        float64 // mean
	DC_dB     float64
	RMS       float64
	RMS_dB    float64
	Peak      float64 // max |x|
	Peak_dB   float64
	FullScale int // samples at -32768 or 32767
}

// Meter accumulates Stats over successive blocks.
type Meter struct {
	n         int
	sum       float64
	sumSq     float64
	peak      float64
	fullScale int

	scratch []float64
	squares []float64
}

// NewMeter returns an empty Meter.
func NewMeter() *Meter {
	return &Meter{}
}

// Update folds samples into the running totals.
func (m *Meter) Update(samples []int16) {
	if len(samples) == 0 {
		return
	}

	m.scratch = core.EnsureLen(m.scratch, len(samples))
	m.squares = core.EnsureLen(m.squares, len(samples))

	pcm.ToFloatBlock(m.scratch, samples)
	vecmath.MulBlock(m.squares, m.scratch, m.scratch)

	for i, x := range m.scratch {
		m.sum += x
		m.sumSq += m.squares[i]

		if a := math.Abs(x); a > m.peak {
			m.peak = a
		}

		if samples[i] == pcm.MinSample || samples[i] == pcm.MaxSample {
			m.fullScale++
		}
	}

	m.n += len(samples)
}

// Result returns the statistics over everything seen since the last Reset.
func (m *Meter) Result() Stats {
	if m.n == 0 {
		return Stats{
			DC_dB:   math.Inf(-1),
			RMS_dB:  math.Inf(-1),
			Peak_dB: math.Inf(-1),
		}
	}

	nf := float64(m.n)
	dc := m.sum / nf
	rms := math.Sqrt(m.sumSq / nf)

	return Stats{
		Length:    m.n,
		DC:        dc,
		DC_dB:     toDBFS(dc),
		RMS:       rms,
		RMS_dB:    toDBFS(rms),
		Peak:      m.peak,
		Peak_dB:   toDBFS(m.peak),
		FullScale: m.fullScale,
	}
}

// Reset clears the totals and keeps the scratch buffers.
func (m *Meter) Reset() {
	m.n = 0
	m.sum = 0
	m.sumSq = 0
	m.peak = 0
	m.fullScale = 0
}

func toDBFS(v float64) float64 {
	return core.LinearToDB(math.Abs(v) / FullScale)
}
