// Package onepole provides a first-order (RC-equivalent) high-pass filter
// used to strip rumble, DC offset and proximity bass ahead of voice
// processing.
//
// The filter is the classic discrete RC high-pass:
//
//	a    = RC / (RC + dt),   RC = 1/(2*pi*fc),   dt = 1/fs
//	y[n] = a * (y[n-1] + x[n] - x[n-1])
//
// Configuration never fails: a cutoff below 1 Hz is raised to 1 Hz and a
// sample rate below 1 kHz is replaced by 44.1 kHz, so the filter is always
// in a well-defined numeric state. Reconfiguring keeps the recurrence
// history; call Reset at stream discontinuities.
package onepole
