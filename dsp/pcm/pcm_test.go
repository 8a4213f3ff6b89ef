package pcm

import (
	"math"
	"testing"
)

func TestToFloatIsUnscaled(t *testing.T) {
	for _, s := range []int16{math.MinInt16, -1, 0, 1, 1000, math.MaxInt16} {
		if got := ToFloat(s); got != float64(s) {
			t.Fatalf("ToFloat(%d) = %v", s, got)
		}
	}
}

func TestSaturate(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 32767, want: 32767},
		{in: 32767.9, want: 32767},
		{in: 1e9, want: 32767},
		{in: math.Inf(1), want: 32767},
		{in: -32768, want: -32768},
		{in: -32768.5, want: -32768},
		{in: math.Inf(-1), want: -32768},
		{in: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		if got := Saturate(tt.in); got != tt.want {
			t.Fatalf("Saturate(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestQuantizeSaturationLaw(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		mode Rounding
		want int16
	}{
		{name: "truncate positive", in: 991.52, mode: RoundTruncate, want: 991},
		{name: "truncate negative", in: -991.52, mode: RoundTruncate, want: -991},
		{name: "nearest positive", in: 991.52, mode: RoundNearest, want: 992},
		{name: "nearest half", in: -0.5, mode: RoundNearest, want: -1},
		{name: "floor negative", in: -991.2, mode: RoundFloor, want: -992},
		{name: "above range truncate", in: 64979.3, mode: RoundTruncate, want: 32767},
		{name: "above range nearest", in: 32767.6, mode: RoundNearest, want: 32767},
		{name: "below range truncate", in: -64979.3, mode: RoundTruncate, want: -32768},
		{name: "below range floor", in: -32768.2, mode: RoundFloor, want: -32768},
		{name: "no wrap", in: 32768, mode: RoundTruncate, want: 32767},
		{name: "nan", in: math.NaN(), mode: RoundNearest, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.in, tt.mode); got != tt.want {
				t.Fatalf("Quantize(%v, %v) = %d, want %d", tt.in, tt.mode, got, tt.want)
			}
		})
	}
}

func TestQuantizeMatchesClampOfTruncation(t *testing.T) {
	for y := -70000.0; y <= 70000; y += 77.3 {
		want := math.Trunc(y)
		want = math.Max(-32768, math.Min(32767, want))

		if got := Quantize(y, RoundTruncate); float64(got) != want {
			t.Fatalf("Quantize(%v) = %d, want %v", y, got, want)
		}
	}
}

func TestParseRounding(t *testing.T) {
	for _, r := range []Rounding{RoundTruncate, RoundNearest, RoundFloor} {
		got, err := ParseRounding(r.String())
		if err != nil {
			t.Fatalf("ParseRounding(%q) error = %v", r.String(), err)
		}

		if got != r {
			t.Fatalf("ParseRounding(%q) = %v, want %v", r.String(), got, r)
		}
	}

	if _, err := ParseRounding("banker"); err == nil {
		t.Fatal("expected error for unknown mode")
	}

	if Rounding(7).Valid() || Rounding(7).String() != "unknown" {
		t.Fatal("Rounding(7) should be invalid")
	}
}

func TestToFloatBlock(t *testing.T) {
	dst := make([]float64, 3)

	n := ToFloatBlock(dst, []int16{-5, 6, 7, 8})
	if n != 3 || dst[0] != -5 || dst[2] != 7 {
		t.Fatalf("n=%d dst=%v", n, dst)
	}
}
