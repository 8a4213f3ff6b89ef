package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-hpf/dsp/core"
)

var (
	// ErrEmptyImpulse is returned when Measure gets no samples.
	ErrEmptyImpulse = errors.New("response: empty impulse response")
	// ErrInvalidFFTSize is returned for FFT sizes below 2.
	ErrInvalidFFTSize = errors.New("response: fft size must be at least 2")
	// ErrInvalidSampleRate is returned for non-positive sample rates.
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
)

// SampleProcessor is anything that filters one sample at a time.
type SampleProcessor interface {
	ProcessSample(x float64) float64
}

// ImpulseResponse feeds a unit impulse followed by n-1 zeros through p.
// p's state is not reset first.
func ImpulseResponse(p SampleProcessor, n int) []float64 {
	if n <= 0 {
		return nil
	}

	ir := make([]float64, n)

	ir[0] = p.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = p.ProcessSample(0)
	}

	return ir
}

// Response is a measured magnitude response over bins 0..fftSize/2.
type Response struct {
	SampleRate float64
	FFTSize    int
	Magnitude  []float64 // linear
}

// Measure transforms ir (truncated to fftSize when longer) and returns its
// magnitude over the non-negative frequencies.
func Measure(ir []float64, sampleRate float64, fftSize int) (Response, error) {
	if len(ir) == 0 {
		return Response{}, ErrEmptyImpulse
	}

	if fftSize < 2 {
		return Response{}, ErrInvalidFFTSize
	}

	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return Response{}, ErrInvalidSampleRate
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Response{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i := 0; i < len(ir) && i < fftSize; i++ {
		in[i] = complex(ir[i], 0)
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return Response{}, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(spec[k])
		im[k] = imag(spec[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return Response{SampleRate: sampleRate, FFTSize: fftSize, Magnitude: mag}, nil
}

// BinHz returns the frequency spacing between bins.
func (r Response) BinHz() float64 {
	if r.FFTSize == 0 {
		return 0
	}

	return r.SampleRate / float64(r.FFTSize)
}

// MagnitudeAt returns the linear magnitude at freqHz, interpolated between
// neighbouring bins. Frequencies outside [0, Nyquist] are clamped.
func (r Response) MagnitudeAt(freqHz float64) float64 {
	if len(r.Magnitude) == 0 {
		return 0
	}

	last := len(r.Magnitude) - 1
	pos := core.Clamp(freqHz/r.BinHz(), 0, float64(last))

	k := int(pos)
	if k >= last {
		return r.Magnitude[last]
	}

	frac := pos - float64(k)

	return r.Magnitude[k] + frac*(r.Magnitude[k+1]-r.Magnitude[k])
}

// MagnitudeDBAt returns MagnitudeAt in decibels.
func (r Response) MagnitudeDBAt(freqHz float64) float64 {
	return core.LinearToDB(r.MagnitudeAt(freqHz))
}

// CutoffHz returns the lowest frequency at which a rising response first
// reaches levelDB, interpolated in dB between bins. It returns 0 when the
// response starts at or above levelDB, and NaN when it never gets there.
func (r Response) CutoffHz(levelDB float64) float64 {
	if len(r.Magnitude) == 0 {
		return math.NaN()
	}

	target := core.DBToLinear(levelDB)
	if r.Magnitude[0] >= target {
		return 0
	}

	for k := 1; k < len(r.Magnitude); k++ {
		if r.Magnitude[k] < target {
			continue
		}

		prev := core.LinearToDB(r.Magnitude[k-1])
		if math.IsInf(prev, -1) {
			return float64(k) * r.BinHz()
		}

		cur := core.LinearToDB(r.Magnitude[k])
		frac := (levelDB - prev) / (cur - prev)

		return (float64(k-1) + frac) * r.BinHz()
	}

	return math.NaN()
}
