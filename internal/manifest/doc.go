// Package manifest provides the YAML schema, parsing, defaults and
// structural validation for seqbuf-gen manifests.
//
// A manifest lists the element types a package wants a sequence buffer for.
// Each instance becomes one generated, non-generic type.
//
// # Schema Overview
//
//	version: "1"
//	package: ints            # optional, discovered from the output dir
//	comments: true           # optional, doc comments in generated code
//	runtime: seqbuf-generator/seqbuf
//	instances:
//	  - name: Int            # IntArray / NewIntArray
//	    type: int
//	  - name: Point
//	    type: geom.Point
//	    import: example.com/geom
//	    file: point_array.go
//	  - string               # shorthand: name derived from the type (String)
//
// # Naming
//
// An instance named N produces the type NArray, the constructor NewNArray
// and, unless overridden, the file n_array.go (N in snake case).
package manifest
