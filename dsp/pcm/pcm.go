package pcm

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hpf/dsp/core"
)

const (
	// MinSample is the lowest representable 16-bit sample.
	MinSample = math.MinInt16
	// MaxSample is the highest representable 16-bit sample.
	MaxSample = math.MaxInt16
)

// Rounding selects how a saturated float value becomes an integer sample.
type Rounding int

const (
	// RoundTruncate rounds toward zero.
	RoundTruncate Rounding = iota
	// RoundNearest rounds half away from zero.
	RoundNearest
	// RoundFloor rounds toward negative infinity.
	RoundFloor
)

func (r Rounding) String() string {
	switch r {
	case RoundTruncate:
		return "truncate"
	case RoundNearest:
		return "nearest"
	case RoundFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// Valid reports whether r is a known rounding mode.
func (r Rounding) Valid() bool {
	return r >= RoundTruncate && r <= RoundFloor
}

// ParseRounding returns the rounding mode with the given name.
func ParseRounding(name string) (Rounding, error) {
	for r := RoundTruncate; r <= RoundFloor; r++ {
		if r.String() == name {
			return r, nil
		}
	}

	return 0, fmt.Errorf("pcm: unknown rounding mode: %q", name)
}

// ToFloat converts a sample to the working unit without scaling.
func ToFloat(s int16) float64 {
	return float64(s)
}

// Saturate clamps y to [MinSample, MaxSample]. NaN maps to 0.
func Saturate(y float64) float64 {
	if math.IsNaN(y) {
		return 0
	}

	return core.Clamp(y, MinSample, MaxSample)
}

// Quantize saturates y and rounds it to a sample.
func Quantize(y float64, mode Rounding) int16 {
	v := Saturate(y)

	switch mode {
	case RoundNearest:
		v = math.Round(v)
	case RoundFloor:
		v = math.Floor(v)
	default:
		v = math.Trunc(v)
	}

	return int16(v)
}

// ToFloatBlock converts src into dst and returns the number of converted
// samples (the shorter length).
func ToFloatBlock(dst []float64, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = ToFloat(src[i])
	}

	return n
}
