package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// Store is an ordered list of movies. Records are held by value, so copying
// between stores never shares a Movie.
type Store struct {
	backend Backend
	movies  []Movie
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) Add(m Movie) {
	s.movies = append(s.movies, m)
}

func (s *Store) CopyAllFrom(src *Store) {
	s.movies = append(s.movies, src.movies...)
}

// KeepMatching removes every movie for which match is false. Survivors keep
// their relative order.
func (s *Store) KeepMatching(match func(Movie) bool) int {
	before := len(s.movies)
	s.movies = slices.DeleteFunc(s.movies, func(m Movie) bool { return !match(m) })
	return before - len(s.movies)
}

func (s *Store) IndexOfTitle(title string) int {
	return slices.IndexFunc(s.movies, func(m Movie) bool { return m.Title == title })
}

func (s *Store) FindByTitle(title string) (Movie, error) {
	i := s.IndexOfTitle(title)
	if i < 0 {
		return Movie{}, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return s.movies[i], nil
}

// UpdateByTitle applies edit to the first movie titled title. The edit is
// discarded if the result no longer validates.
func (s *Store) UpdateByTitle(title string, edit func(*Movie)) error {
	i := s.IndexOfTitle(title)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	updated := s.movies[i]
	edit(&updated)
	if err := updated.Validate(); err != nil {
		return err
	}
	s.movies[i] = updated
	return nil
}

func (s *Store) RemoveByTitle(title string) error {
	i := s.IndexOfTitle(title)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	s.movies = slices.Delete(s.movies, i, i+1)
	return nil
}

func (s *Store) Movies() []Movie {
	return slices.Clone(s.movies)
}

func (s *Store) Sort(cmp func(a, b Movie) int) {
	slices.SortStableFunc(s.movies, cmp)
}

func (s *Store) Len() int {
	return len(s.movies)
}

func (s *Store) Clear() {
	s.movies = nil
}

func (s *Store) Options(field Field) []string {
	return distinctKeys(s.movies, field)
}

func (s *Store) Path() string {
	if s.backend == nil {
		return ""
	}
	return s.backend.Path()
}

// Load replaces the contents of the store with the persisted list. On any
// failure the store is left empty; the result says why.
func (s *Store) Load() (LoadResult, error) {
	if s.backend == nil {
		return LoadMissing, ErrNoBackend
	}

	movies, err := s.backend.Load()
	if errors.Is(err, ErrMissing) {
		s.movies = nil
		return LoadMissing, nil
	}
	if err != nil {
		s.movies = nil
		return LoadCorrupt, err
	}

	s.movies = movies
	return LoadOK, nil
}

func (s *Store) Save() error {
	if s.backend == nil {
		return ErrNoBackend
	}
	return s.backend.Save(s.Movies())
}
