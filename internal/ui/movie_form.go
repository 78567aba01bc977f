package ui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"reel/internal/catalog"
)

type MovieInput struct {
	Title    string
	Director string
	Genre    string
	Year     string
}

func InputFromMovie(m catalog.Movie) MovieInput {
	in := MovieInput{
		Title:    m.Title,
		Director: m.Director,
		Year:     strconv.Itoa(m.Year),
	}
	if m.Genre.Valid() {
		in.Genre = m.Genre.String()
	}
	return in
}

func (in MovieInput) Missing() []string {
	var missing []string
	for _, f := range in.fields() {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Label)
		}
	}
	return missing
}

func (in MovieInput) Movie() (catalog.Movie, error) {
	genre, err := catalog.ParseGenre(in.Genre)
	if err != nil {
		return catalog.Movie{}, err
	}
	year, err := catalog.ParseYear(in.Year)
	if err != nil {
		return catalog.Movie{}, err
	}

	m := catalog.NewMovie(strings.TrimSpace(in.Title), strings.TrimSpace(in.Director), genre, year)
	if err := m.Validate(); err != nil {
		return catalog.Movie{}, err
	}
	return m, nil
}

func (in MovieInput) Summary() []Field {
	fields := in.fields()
	if g, err := catalog.ParseGenre(in.Genre); err == nil {
		fields[2].Value = g.Label()
	}
	return fields
}

func (in MovieInput) fields() []Field {
	return []Field{
		{Label: "Title", Value: in.Title},
		{Label: "Director", Value: in.Director},
		{Label: "Genre", Value: in.Genre},
		{Label: "Year", Value: in.Year},
	}
}

func NewMovieForm(in *MovieInput) *huh.Form {
	options := make([]huh.Option[string], 0, len(catalog.Genres()))
	for _, g := range catalog.Genres() {
		options = append(options, huh.NewOption(g.Label(), g.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&in.Title).
				Validate(ValidateTitle),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Director").
				Value(&in.Director).
				Validate(ValidateDirector),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Genre").
				Options(options...).
				Value(&in.Genre),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Year").
				Value(&in.Year).
				Validate(ValidateYear),
		),
	).WithTheme(FormTheme())
}

func ValidateTitle(s string) error {
	if errors.Is(catalog.ValidateTitle(s), catalog.ErrEmptyTitle) {
		return errors.New("Title cannot be empty")
	}
	return nil
}

func ValidateDirector(s string) error {
	if errors.Is(catalog.ValidateDirector(s), catalog.ErrEmptyDirector) {
		return errors.New("Director cannot be empty")
	}
	return nil
}

func ValidateYear(s string) error {
	if _, err := catalog.ParseYear(s); err != nil {
		return errors.New("Year must be a number")
	}
	return nil
}
