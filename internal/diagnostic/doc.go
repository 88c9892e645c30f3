// Package diagnostic provides structured errors, warnings and notes
// produced while checking a seqbuf-gen manifest.
//
// Key capabilities:
//   - Invalid or duplicate instance names
//   - Element type expressions that do not parse or do not resolve
//   - Import paths that are missing or unused
//   - Notes about element types (zero size, very large elements)
package diagnostic
