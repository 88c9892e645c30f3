package match

import (
	"sort"
	"strings"
)

// Levenshtein computes the edit distance between a and b: the minimum number
// of single-rune insertions, deletions or substitutions turning one into the
// other.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// Keep the row over the shorter string.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			up := row[i]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[i] = min(row[i]+1, row[i-1]+1, diag+cost)
			diag = up
		}
	}

	return row[len(ra)]
}

// Closest returns the candidate nearest to name. Comparison ignores case, so
// "point" finds "Point". Candidates further than maxDist edits away are
// ignored; ties go to the lexically smaller candidate. ok is false when
// nothing qualifies or name itself is a candidate.
func Closest(name string, candidates []string, maxDist int) (best string, ok bool) {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	bestDist := maxDist + 1
	lower := strings.ToLower(name)

	for _, c := range sorted {
		if c == name {
			return "", false
		}

		d := Levenshtein(lower, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist <= maxDist
}

// DefaultBudget is the edit budget used for a name of n runes: a third of
// the name, at least two edits so a swapped pair still matches.
func DefaultBudget(n int) int {
	return max(2, n/3)
}
