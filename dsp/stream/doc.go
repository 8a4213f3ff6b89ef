// Package stream wires block stages into a small block-rate pipeline.
//
// It supplies the collaborators a stage such as hpf.Processor expects
// around it: a bounded input Queue, a Fanout that duplicates one output
// onto several sinks by reference counting, a Collector sink, a
// SliceFeeder that cuts a signal into pool blocks, and a Runner that ticks
// the stage once per block. Everything runs on the caller's goroutine.
package stream
