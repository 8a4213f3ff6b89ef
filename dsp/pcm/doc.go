// Package pcm converts between signed 16-bit PCM samples and the float64
// working unit used by the filters.
//
// Conversion is unscaled: the int16 value is used directly as the float
// value, so a filter sees samples in [-32768, 32767]. The way back saturates
// (clamps) to that range before rounding; it never wraps.
package pcm
