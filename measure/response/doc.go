// Package response measures the magnitude response of a sample processor
// from its impulse response.
//
// The impulse response is zero-padded to the FFT size and transformed once;
// bin k then holds the response at k*sampleRate/fftSize. For a stable
// recursive filter the measured curve converges to the analytic one as the
// impulse response decays within the FFT length.
//
// # Usage
//
//	f := onepole.New(60, 44100)
//	ir := response.ImpulseResponse(f, 1<<16)
//	r, _ := response.Measure(ir, 44100, 1<<16)
//	fc := r.CutoffHz(-3.0103)
package response
