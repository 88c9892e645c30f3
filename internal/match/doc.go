// Package match ranks identifiers by edit distance. It backs the "did you
// mean" hints attached to unresolved element types.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the nearest candidate within a distance budget
package match
