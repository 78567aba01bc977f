package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reel/internal/catalog"
)

var (
	alien       = catalog.NewMovie("Alien", "Ridley Scott", catalog.Horror, 1979)
	up          = catalog.NewMovie("Up", "Pete Docter", catalog.Animation, 2009)
	heat        = catalog.NewMovie("Heat", "Michael Mann", catalog.Crime, 1995)
	bladeRunner = catalog.NewMovie("Blade Runner", "Ridley Scott", catalog.ScienceFiction, 1982)
)

func newStore(t *testing.T, movies ...catalog.Movie) *catalog.Store {
	t.Helper()
	s := catalog.NewStore(nil)
	for _, m := range movies {
		s.Add(m)
	}
	require.Equal(t, len(movies), s.Len())
	return s
}

func titlesOf(movies []catalog.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}
