// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import "strings"

// Similarity returns a case-insensitive similarity ratio between two strings:
// 1 minus the Levenshtein distance normalized by the longer length. Identical
// strings score 1.0, fully dissimilar strings 0.0.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1.0
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(a, b))/float64(longest)
}

// IsFuzzyMatch reports whether two surface forms are similar enough to be
// treated as variants of each other under the configured threshold.
func IsFuzzyMatch(a, b string, threshold float64) bool {
	return Similarity(a, b) >= threshold
}

// levenshtein computes the edit distance between two strings, by rune.
// Two rows of the classic DP table are enough.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
