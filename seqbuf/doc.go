// Package seqbuf provides a growable, contiguous, bounds-checked sequence
// buffer specialized per element type at build time.
//
// Buffer[T] is the generic form; the Go compiler instantiates it for every
// element type in use. The seqbuf-gen tool emits non-generic equivalents
// (one named type per manifest entry) that share the limits, growth
// arithmetic and error model defined here, so both forms fail identically.
//
// # Growth
//
// An inserting operation on a full buffer doubles its capacity. Two guards
// run first, in order:
//   - count guard: capacity > MaxCount/2 cannot be doubled;
//   - byte guard: 2*capacity elements must fit into MaxBytes.
//
// A failed guard leaves the buffer untouched and the inserting operation
// returns the same error.
//
// # Views
//
// Data and DataMut expose the backing storage directly. Any operation that
// may grow (Push, Insert) or release (Free) the buffer invalidates views
// obtained earlier; holding on to them past such a call reads stale memory.
//
// # Diagnostics
//
// Every failure is returned as a *Error and also written to the buffer's
// logger (see WithLogger, SetLogger). Logging never changes control flow.
//
// Buffers are not safe for concurrent use.
package seqbuf
