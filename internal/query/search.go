package query

import (
	"slices"
	"strings"

	"reel/internal/catalog"
)

// Search returns the movies whose title contains term, ignoring case. An
// empty term matches everything.
func Search(movies []catalog.Movie, term string) []catalog.Movie {
	if term == "" {
		return slices.Clone(movies)
	}

	term = strings.ToLower(term)
	var results []catalog.Movie
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), term) {
			results = append(results, m)
		}
	}
	return results
}
