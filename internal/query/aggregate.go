package query

import (
	"cmp"
	"slices"

	"reel/internal/catalog"
)

// CountBy groups movies by the string form of field. Map iteration order is
// the only order the result has.
func CountBy(movies []catalog.Movie, field catalog.Field) map[string]int {
	counts := make(map[string]int)
	for _, m := range movies {
		counts[field.Key(m)]++
	}
	return counts
}

type Count struct {
	Value string
	N     int
}

func SortedCounts(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for v, n := range counts {
		out = append(out, Count{Value: v, N: n})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.N, a.N); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}
