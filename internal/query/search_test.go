package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reel/internal/catalog"
	"reel/internal/query"
)

func TestSearch(t *testing.T) {
	movies := []catalog.Movie{alien, up, heat, bladeRunner}

	t.Run("case-insensitive substring", func(t *testing.T) {
		assert.Equal(t, []string{"Blade Runner"}, titlesOf(query.Search(movies, "RUN")))
	})

	t.Run("keeps catalog order", func(t *testing.T) {
		assert.Equal(t, []string{"Alien", "Heat", "Blade Runner"}, titlesOf(query.Search(movies, "a")))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, query.Search(movies, "zzz"))
	})

	t.Run("empty term returns everything", func(t *testing.T) {
		got := query.Search(movies, "")

		assert.Equal(t, movies, got)
		got[0].SetTitle("changed")
		assert.Equal(t, "Alien", movies[0].Title)
	})

	t.Run("matches only titles", func(t *testing.T) {
		assert.Empty(t, query.Search(movies, "Scott"))
	})
}
