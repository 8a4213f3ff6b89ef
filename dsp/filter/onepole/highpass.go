package onepole

import (
	"math"
	"math/cmplx"
)

const (
	// MinCutoffHz is the lowest accepted cutoff. Lower values are raised to it.
	MinCutoffHz = 1.0
	// MinSampleRate is the lowest accepted sample rate. Lower values are
	// replaced by FallbackSampleRate.
	MinSampleRate = 1000.0
	// FallbackSampleRate is the pipeline's operating rate.
	FallbackSampleRate = 44100.0
)

// State holds the recurrence history.
type State struct {
	PrevInput  float64
	PrevOutput float64
}

// HighPass is a one-pole high-pass filter.
//
// The zero value is a pass-through filter (coefficient 1) with cleared
// history. It is not safe for concurrent use.
type HighPass struct {
	coefficient float64
	cutoffHz    float64
	sampleRate  float64
	state       State

	configured bool
}

// New returns a HighPass configured for cutoffHz at sampleRate with cleared
// history.
func New(cutoffHz, sampleRate float64) *HighPass {
	h := &HighPass{}
	h.Configure(cutoffHz, sampleRate)

	return h
}

// Configure derives the feedback coefficient from cutoffHz and sampleRate.
// Out-of-range inputs are clamped, never rejected. The history is left
// untouched so the cutoff can be moved while streaming.
func (h *HighPass) Configure(cutoffHz, sampleRate float64) {
	if !(cutoffHz >= MinCutoffHz) {
		cutoffHz = MinCutoffHz
	}

	if !(sampleRate >= MinSampleRate) {
		sampleRate = FallbackSampleRate
	}

	rc := 1 / (2 * math.Pi * cutoffHz)
	dt := 1 / sampleRate

	h.coefficient = rc / (rc + dt)
	h.cutoffHz = cutoffHz
	h.sampleRate = sampleRate
	h.configured = true
}

// ProcessSample runs one sample through the recurrence.
func (h *HighPass) ProcessSample(x float64) float64 {
	a := h.Coefficient()
	y := a * (h.state.PrevOutput + x - h.state.PrevInput)
	h.state.PrevInput = x
	h.state.PrevOutput = y

	return y
}

// ProcessInPlace filters buf in place.
func (h *HighPass) ProcessInPlace(buf []float64) {
	for i, x := range buf {
		buf[i] = h.ProcessSample(x)
	}
}

// ProcessTo filters src into dst. dst must be at least as long as src.
func (h *HighPass) ProcessTo(dst, src []float64) {
	n := len(src)
	if n == 0 {
		return
	}

	_ = dst[n-1]
	for i, x := range src {
		dst[i] = h.ProcessSample(x)
	}
}

// Reset clears the history. The coefficient is kept.
func (h *HighPass) Reset() {
	h.state = State{}
}

// State returns a copy of the recurrence history.
func (h *HighPass) State() State { return h.state }

// SetState restores history previously obtained from State.
func (h *HighPass) SetState(s State) { h.state = s }

// Coefficient returns the feedback coefficient, 1 before the first Configure.
func (h *HighPass) Coefficient() float64 {
	if !h.configured {
		return 1
	}

	return h.coefficient
}

// CutoffHz returns the effective (clamped) nominal cutoff, or 0 if the
// filter was never configured.
func (h *HighPass) CutoffHz() float64 { return h.cutoffHz }

// SampleRate returns the effective sample rate, or 0 if the filter was never
// configured.
func (h *HighPass) SampleRate() float64 { return h.sampleRate }

// Response returns the linear magnitude response at freqHz.
//
//	|H(e^jw)| = a * |1 - e^-jw| / |1 - a*e^-jw|
func (h *HighPass) Response(freqHz float64) float64 {
	a := h.Coefficient()
	fs := h.sampleRate
	if fs <= 0 {
		fs = FallbackSampleRate
	}

	z1 := cmplx.Exp(complex(0, -2*math.Pi*freqHz/fs))
	den := 1 - complex(a, 0)*z1
	if den == 0 {
		return 1
	}

	return a * cmplx.Abs(1-z1) / cmplx.Abs(den)
}

// CutoffFrequency returns the frequency at which the discretized filter is
// 3 dB down. For cutoffs far below Nyquist it lands close to CutoffHz.
// Returns 0 for a pass-through coefficient and fs/2 when even the Nyquist
// gain stays below -3 dB.
func (h *HighPass) CutoffFrequency() float64 {
	a := h.Coefficient()
	fs := h.sampleRate
	if fs <= 0 {
		fs = FallbackSampleRate
	}

	if a >= 1 {
		return 0
	}

	den := 2*a - 4*a*a
	if den == 0 {
		return fs / 2
	}

	// |H|^2 = 1/2  =>  cos w = (1 - 3a^2) / (2a - 4a^2)
	c := (1 - 3*a*a) / den
	if c > 1 || c < -1 {
		return fs / 2
	}

	return math.Acos(c) * fs / (2 * math.Pi)
}
