package proptest

import (
	"fmt"

	"pgregory.net/rapid"

	"reel/internal/catalog"
	"reel/internal/query"
)

var (
	iterDirGen    = rapid.StringMatching(`[a-z]{8}`)
	shortQueryGen = rapid.StringMatching(`[a-z]{1,3}`)
	queryGen      = rapid.StringMatching(`[a-zA-Z ]{1,10}`)
	yearGen       = rapid.IntRange(1900, 2030)
)

// Small pools so that duplicates, ties and filter hits are common.
var (
	titlePool    = []string{"Alien", "Up", "Heat", "Blade Runner", "Amélie", "Ran", "Her", "Se7en"}
	directorPool = []string{"Ridley Scott", "Pete Docter", "Michael Mann", "Akira Kurosawa", "Spike Jonze"}
)

func titleGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.SampledFrom(titlePool),
		rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 :'-]{0,30}`),
	)
}

func directorGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.SampledFrom(directorPool),
		rapid.StringMatching(`[A-Z][a-z]{1,10} [A-Z][a-z]{1,12}`),
	)
}

func genreGen() *rapid.Generator[catalog.Genre] {
	return rapid.SampledFrom(catalog.Genres())
}

func movieGen() *rapid.Generator[catalog.Movie] {
	return rapid.Custom(func(t *rapid.T) catalog.Movie {
		return catalog.NewMovie(
			titleGen().Draw(t, "title"),
			directorGen().Draw(t, "director"),
			genreGen().Draw(t, "genre"),
			yearGen.Draw(t, "year"),
		)
	})
}

func moviesGen(minLen, maxLen int) *rapid.Generator[[]catalog.Movie] {
	return rapid.SliceOfN(movieGen(), minLen, maxLen)
}

func fieldGen() *rapid.Generator[catalog.Field] {
	return rapid.SampledFrom(catalog.Fields())
}

func directionGen() *rapid.Generator[query.Direction] {
	return rapid.SampledFrom([]query.Direction{query.Ascending, query.Descending})
}

// criterionGen draws a filter whose value is present in movies when possible.
func criterionGen(movies []catalog.Movie) *rapid.Generator[query.Criterion] {
	return rapid.Custom(func(t *rapid.T) query.Criterion {
		field := rapid.SampledFrom(query.FilterFields()).Draw(t, "filterField")
		if len(movies) > 0 && rapid.Bool().Draw(t, "fromCatalog") {
			m := rapid.SampledFrom(movies).Draw(t, "source")
			return query.Criterion{Field: field, Value: field.Key(m)}
		}
		var value string
		switch field {
		case catalog.FieldYear:
			value = fmt.Sprint(yearGen.Draw(t, "filterYear"))
		case catalog.FieldGenre:
			value = genreGen().Draw(t, "filterGenre").String()
		default:
			value = directorGen().Draw(t, "filterDirector")
		}
		return query.Criterion{Field: field, Value: value}
	})
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("}}}}"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("movies: [unclosed"),
		rapid.Just("movies: {unclosed"),
		rapid.Just("- item\n  bad indent"),
		rapid.Just("\t\ttabs: everywhere"),
		rapid.Just("version: \"unmatched quote"),
		rapid.Just("movies:\n  - title: missing\n  director: value"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

func missingFieldsGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("version: 1\nmovies:\n  - title: Alien\n"),
		rapid.Just("version: 1\nmovies:\n  - director: Ridley Scott\n"),
		rapid.Just("version: 1\nmovies:\n  - year: 1979\n"),
		rapid.Just("version: 1\nmovies:\n  - {}\n"),
		rapid.Just("version: 1\nmovies:\n  - title: Alien\n    director: Ridley Scott\n    year: 1979\n"),
		rapid.Just("version: 1\nmovies:\n  - title: \"  \"\n    director: Ridley Scott\n    genre: HORROR\n"),
	)
}

func extraFieldsGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		extraField := rapid.SampledFrom([]string{
			"unknown_field",
			"rating",
			"foo",
			"bar_baz",
			"randomField123",
		}).Draw(t, "fieldName")
		extraValue := rapid.SampledFrom([]string{
			"string_value",
			"123",
			"true",
			"[1, 2, 3]",
			"{nested: value}",
		}).Draw(t, "fieldValue")

		return fmt.Sprintf(`version: 1
%s: %s
movies:
  - title: Alien
    director: Ridley Scott
    %s: %s
    genre: HORROR
    year: 1979
`, extraField, extraValue, extraField, extraValue)
	})
}

func invalidTypesGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(`version: "not_a_number"
movies: []
`),
		rapid.Just(`version: 1
movies:
  - title: Alien
    director: Ridley Scott
    genre: WESTERN
    year: 1979
`),
		rapid.Just(`version: 1
movies:
  - title: [not, a, string]
    director: Ridley Scott
    genre: HORROR
    year: 1979
`),
		rapid.Just(`version: 1
movies:
  - title: Alien
    director: Ridley Scott
    genre: HORROR
    year: "nineteen seventy-nine"
`),
		rapid.Just(`version: 99
movies: []
`),
	)
}
