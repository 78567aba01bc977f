package proptest

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"

	"reel/internal/catalog"
	"reel/internal/query"
)

func assertMoviesEqual(t *rapid.T, expected, actual []catalog.Movie) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("movies mismatch (-want +got):\n%s", diff)
	}
}

// assertSubsequence checks that sub appears in super in the same relative
// order, each element used at most once.
func assertSubsequence(t *rapid.T, sub, super []catalog.Movie) {
	t.Helper()
	j := 0
	for i, m := range sub {
		for j < len(super) && !cmp.Equal(super[j], m) {
			j++
		}
		if j == len(super) {
			t.Fatalf("element %d (%q) is not an ordered member of the superset", i, m.Title)
		}
		j++
	}
}

// assertPermutation checks that a and b hold the same movies, ignoring order.
func assertPermutation(t *rapid.T, a, b []catalog.Movie) {
	t.Helper()
	less := func(x, y catalog.Movie) bool { return x.String() < y.String() }
	if diff := cmp.Diff(a, b, cmpopts.EquateEmpty(), cmpopts.SortSlices(less)); diff != "" {
		t.Fatalf("not a permutation (-a +b):\n%s", diff)
	}
}

func assertSortedBy(t *rapid.T, movies []catalog.Movie, field catalog.Field, dir query.Direction) {
	t.Helper()
	for i := 0; i < len(movies)-1; i++ {
		c := field.Compare(movies[i], movies[i+1])
		if dir == query.Descending {
			c = -c
		}
		if c > 0 {
			t.Fatalf("%s order violated by %s at positions %d, %d: %q then %q",
				dir, field, i, i+1, field.Key(movies[i]), field.Key(movies[i+1]))
		}
	}
}
