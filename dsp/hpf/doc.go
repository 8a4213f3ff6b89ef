// Package hpf implements the high-pass block stage of a mono 16-bit audio
// pipeline.
//
// A Processor pulls one block per cycle from its Source, runs every sample
// through an embedded one-pole high-pass filter (60 Hz at 44.1 kHz by
// default), saturates the result back to int16 and returns a freshly
// allocated output block. A cycle with no input, or with no free output
// block, is skipped silently; both are normal events in a pooled-buffer
// pipeline and the next cycle simply tries again. Input blocks are always
// returned to the pool that owns them, which need not be the output pool.
package hpf
