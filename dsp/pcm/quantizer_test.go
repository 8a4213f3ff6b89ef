package pcm

import "testing"

func TestNewQuantizerValidation(t *testing.T) {
	if _, err := NewQuantizer(Rounding(-1)); err == nil {
		t.Fatal("expected error for invalid rounding")
	}

	q, err := NewQuantizer(RoundNearest)
	if err != nil {
		t.Fatalf("NewQuantizer() error = %v", err)
	}

	if q.Rounding() != RoundNearest {
		t.Fatalf("Rounding() = %v, want nearest", q.Rounding())
	}
}

func TestQuantizerCountsClipping(t *testing.T) {
	q, err := NewQuantizer(RoundTruncate)
	if err != nil {
		t.Fatalf("NewQuantizer() error = %v", err)
	}

	src := []float64{0, 32767, 32767.5, 40000, -32768, -32768.1, -1e6}
	dst := make([]int16, len(src))

	if n := q.ProcessBlock(dst, src); n != len(src) {
		t.Fatalf("ProcessBlock() = %d, want %d", n, len(src))
	}

	want := []int16{0, 32767, 32767, 32767, -32768, -32768, -32768}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}

	if q.Clipped() != 4 {
		t.Fatalf("Clipped() = %d, want 4", q.Clipped())
	}

	q.Reset()

	if q.Clipped() != 0 {
		t.Fatalf("Clipped() after Reset = %d", q.Clipped())
	}
}
