// Package analyze resolves manifest element types against real Go packages.
//
// It uses golang.org/x/tools/go/packages to load the output package and the
// packages named by instance imports, then type-checks each element type
// expression in a scope holding both. Resolution catches typos and
// unexported names before generated code fails to compile, and reports the
// element size the runtime guards will see.
//
// Key types:
//   - Analyzer: caches loaded packages for one run
//   - PackageInfo: import path, name and directory of a loaded package
//   - ElemInfo: resolved element type and its size
package analyze
