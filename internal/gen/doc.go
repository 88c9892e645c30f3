// Package gen emits one non-generic sequence buffer type per manifest
// instance.
//
// Generation uses text/template + go/format. Each file holds the type, its
// constructor and the full method set, with the element type substituted.
// Growth arithmetic, bounds checks and errors are delegated to package
// seqbuf, so generated types fail exactly like seqbuf.Buffer.
package gen
