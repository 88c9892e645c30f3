// Package main provides the CLI entrypoint for seqbuf-gen.
//
// seqbuf-gen reads a YAML manifest of (name, element type) pairs and writes
// one bounds-checked, growable array type per pair:
//   - gen: validate, resolve element types, render and write files
//   - check: validate and resolve only, printing diagnostics
//   - init: write a starter manifest
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}
