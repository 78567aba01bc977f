package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyTitle    = errors.New("movie title cannot be empty")
	ErrEmptyDirector = errors.New("movie director cannot be empty")
	ErrInvalidYear   = errors.New("invalid year")
)

type Movie struct {
	Title    string `yaml:"title"`
	Director string `yaml:"director"`
	Genre    Genre  `yaml:"genre"`
	Year     int    `yaml:"year"`
}

func NewMovie(title, director string, genre Genre, year int) Movie {
	return Movie{
		Title:    title,
		Director: director,
		Genre:    genre,
		Year:     year,
	}
}

func (m *Movie) SetTitle(title string)       { m.Title = title }
func (m *Movie) SetDirector(director string) { m.Director = director }
func (m *Movie) SetGenre(genre Genre)        { m.Genre = genre }
func (m *Movie) SetYear(year int)            { m.Year = year }

func (m Movie) String() string {
	return fmt.Sprintf("Title: %s\nDirector: %s\nGenre: %s\nYear: %d", m.Title, m.Director, m.Genre, m.Year)
}

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

func ValidateDirector(director string) error {
	if strings.TrimSpace(director) == "" {
		return ErrEmptyDirector
	}
	return nil
}

func (m Movie) Validate() error {
	if err := ValidateTitle(m.Title); err != nil {
		return err
	}
	if err := ValidateDirector(m.Director); err != nil {
		return err
	}
	if !m.Genre.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownGenre, int(m.Genre))
	}
	return nil
}

// ParseYear accepts any integer; four digits are expected but not enforced.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, s)
	}
	return year, nil
}
