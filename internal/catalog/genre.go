package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrUnknownGenre = errors.New("unknown genre")

type Genre int

const (
	GenreUnknown Genre = iota
	Horror
	Action
	Drama
	Thriller
	Romance
	Comedy
	Adventure
	ScienceFiction
	Crime
	Animation
)

var genreNames = [...]string{
	GenreUnknown:   "",
	Horror:         "HORROR",
	Action:         "ACTION",
	Drama:          "DRAMA",
	Thriller:       "THRILLER",
	Romance:        "ROMANCE",
	Comedy:         "COMEDY",
	Adventure:      "ADVENTURE",
	ScienceFiction: "SCIENCE_FICTION",
	Crime:          "CRIME",
	Animation:      "ANIMATION",
}

func Genres() []Genre {
	genres := make([]Genre, 0, len(genreNames)-1)
	for g := Horror; g <= Animation; g++ {
		genres = append(genres, g)
	}
	return genres
}

func (g Genre) Valid() bool {
	return g >= Horror && g <= Animation
}

func (g Genre) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Genre(%d)", int(g))
	}
	return genreNames[g]
}

func (g Genre) Label() string {
	if !g.Valid() {
		return "Unknown"
	}
	words := strings.ToLower(strings.ReplaceAll(genreNames[g], "_", " "))
	return cases.Title(language.English).String(words)
}

func ParseGenre(s string) (Genre, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	token = strings.NewReplacer(" ", "_", "-", "_").Replace(token)
	if token == "" {
		return GenreUnknown, fmt.Errorf("%w: empty value", ErrUnknownGenre)
	}
	for _, g := range Genres() {
		if genreNames[g] == token {
			return g, nil
		}
	}
	return GenreUnknown, fmt.Errorf("%w: %q", ErrUnknownGenre, s)
}

func (g Genre) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGenre, int(g))
	}
	return []byte(genreNames[g]), nil
}

func (g *Genre) UnmarshalText(text []byte) error {
	parsed, err := ParseGenre(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
