package hpf

import (
	"fmt"

	"github.com/cwbudde/algo-hpf/dsp/core"
	"github.com/cwbudde/algo-hpf/dsp/pcm"
)

// DefaultCutoffHz is the construction-time cutoff, a floor for voice
// fundamentals.
const DefaultCutoffHz = 60.0

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	sampleRate float64
	cutoffHz   float64
	rounding   pcm.Rounding
}

func defaultConfig() config {
	return config{
		sampleRate: core.DefaultSampleRate,
		cutoffHz:   DefaultCutoffHz,
		rounding:   pcm.RoundTruncate,
	}
}

// WithCutoffHz sets the initial cutoff. Values below 1 Hz are clamped by
// the filter, not rejected.
func WithCutoffHz(cutoffHz float64) Option {
	return func(cfg *config) error {
		cfg.cutoffHz = cutoffHz
		return nil
	}
}

// WithSampleRate sets the processing rate. Values below 1 kHz fall back to
// 44.1 kHz inside the filter.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) error {
		cfg.sampleRate = sampleRate
		return nil
	}
}

// WithRounding selects how filtered values are rounded to int16
// (default pcm.RoundTruncate).
func WithRounding(mode pcm.Rounding) Option {
	return func(cfg *config) error {
		if !mode.Valid() {
			return fmt.Errorf("hpf: invalid rounding mode: %d", mode)
		}

		cfg.rounding = mode

		return nil
	}
}
