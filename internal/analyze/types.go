package analyze

import (
	"go/types"
)

// PackageInfo describes a loaded Go package.
type PackageInfo struct {
	Path string // import path, e.g. "example.com/shapes/geom"
	Name string // package name, e.g. "geom"
	Dir  string // directory holding the package sources

	types *types.Package
}

// ElemInfo describes a resolved element type.
type ElemInfo struct {
	// Expr is the expression as written in the manifest.
	Expr string
	// Type is the go/types view of the element type.
	Type types.Type
	// Size is the storage size in bytes for the target architecture.
	Size int64
}

// LargeElemSize is the element size above which Check warns that growth
// copies become expensive.
const LargeElemSize = 64 << 10
