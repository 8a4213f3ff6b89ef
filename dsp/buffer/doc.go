// Package buffer provides the fixed-length 16-bit audio Block and a bounded
// Pool that hands them out.
//
// The pool is sized once, up front, like the block memory of an embedded
// audio runtime: Allocate fails (returns nil) instead of growing when every
// block is in use, and callers treat that as back-pressure and skip the
// cycle. Blocks are reference counted so one block can be delivered to more
// than one consumer; each consumer releases it once, and the last release
// returns it to the pool.
//
// Pool and Block are not safe for concurrent use.
package buffer
