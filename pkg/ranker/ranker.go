// Package ranker orders evaluation results by error magnitude.
package ranker

import (
	"cmp"
	"slices"
)

// Rank returns a copy of items sorted by ascending absolute key. Items with
// equal magnitude keep their input order. The input slice is not modified.
func Rank[T any](items []T, key func(T) int) []T {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b T) int {
		return cmp.Compare(Abs(key(a)), Abs(key(b)))
	})
	return ranked
}

// Abs returns the magnitude of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
