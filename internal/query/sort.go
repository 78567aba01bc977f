// Package query sorts, filters, searches and aggregates movie lists, and
// tracks a browsing View over a master store.
package query

import (
	"slices"

	"reel/internal/catalog"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func DirectionFromToggle(on bool) Direction {
	if on {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

func comparator(field catalog.Field, dir Direction) func(a, b catalog.Movie) int {
	return func(a, b catalog.Movie) int {
		c := field.Compare(a, b)
		if dir == Descending {
			return -c
		}
		return c
	}
}

// Sort orders movies in place. Equal keys keep their input order.
func Sort(movies []catalog.Movie, field catalog.Field, dir Direction) {
	slices.SortStableFunc(movies, comparator(field, dir))
}

func SortStore(s *catalog.Store, field catalog.Field, dir Direction) {
	s.Sort(comparator(field, dir))
}
