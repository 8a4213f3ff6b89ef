package onepole_test

import (
	"fmt"

	"github.com/cwbudde/algo-hpf/dsp/filter/onepole"
)

func ExampleHighPass_ProcessSample() {
	h := onepole.New(60, 44100)
	fmt.Printf("a = %.6f\n", h.Coefficient())

	// A DC step decays geometrically toward zero.
	for i := range 4 {
		fmt.Printf("y[%d] = %.4f\n", i, h.ProcessSample(1000))
	}
	// Output:
	// a = 0.991524
	// y[0] = 991.5239
	// y[1] = 983.1197
	// y[2] = 974.7866
	// y[3] = 966.5243
}

func ExampleHighPass_Configure() {
	var h onepole.HighPass

	// Out-of-range values are clamped rather than rejected.
	h.Configure(0, 0)
	fmt.Printf("%.0f Hz @ %.0f Hz\n", h.CutoffHz(), h.SampleRate())
	// Output:
	// 1 Hz @ 44100 Hz
}
