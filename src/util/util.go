// Package util holds small helpers shared by the candidate pipeline: a
// lightweight byte/rune view over one candidate string (Chars) and integer
// helpers, adapted from the teacher's own util package of the same name and
// purpose (github.com/junegunn/fzf/src/util), generalized here to feed
// src/simdscore's batch builder instead of fzf's rune-indexed scanner.
package util

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Max16 returns the larger of a and b for int16 lanes, used by the legacy
// single-lane scorer in src/algo.
func Max16(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}
