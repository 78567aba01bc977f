package proptest

import (
	"errors"
	"slices"

	"pgregory.net/rapid"

	"reel/internal/catalog"
)

// storeModel is a plain slice that mirrors what a Store should contain.
type storeModel struct {
	movies []catalog.Movie
}

func (s *storeModel) Add(m catalog.Movie) {
	s.movies = append(s.movies, m)
}

func (s *storeModel) index(title string) int {
	for i, m := range s.movies {
		if m.Title == title {
			return i
		}
	}
	return -1
}

func (s *storeModel) RemoveByTitle(title string) error {
	i := s.index(title)
	if i < 0 {
		return catalog.ErrNotFound
	}
	s.movies = append(s.movies[:i:i], s.movies[i+1:]...)
	return nil
}

func (s *storeModel) FindByTitle(title string) (catalog.Movie, error) {
	i := s.index(title)
	if i < 0 {
		return catalog.Movie{}, catalog.ErrNotFound
	}
	return s.movies[i], nil
}

func (s *storeModel) KeepMatching(match func(catalog.Movie) bool) int {
	var kept []catalog.Movie
	for _, m := range s.movies {
		if match(m) {
			kept = append(kept, m)
		}
	}
	removed := len(s.movies) - len(kept)
	s.movies = kept
	return removed
}

func (s *storeModel) Titles() []string {
	titles := make([]string, 0, len(s.movies))
	for _, m := range s.movies {
		titles = append(titles, m.Title)
	}
	slices.Sort(titles)
	return slices.Compact(titles)
}

type CheckedStore struct {
	real  *catalog.Store
	model *storeModel
	t     *rapid.T
}

func NewCheckedStore(t *rapid.T, s *catalog.Store) *CheckedStore {
	model := &storeModel{}
	for _, m := range s.Movies() {
		model.Add(m)
	}
	return &CheckedStore{real: s, model: model, t: t}
}

func (c *CheckedStore) Model() *storeModel {
	return c.model
}

func (c *CheckedStore) check() {
	verifyStructuralInvariants(c.t, c.real)
	assertMoviesEqual(c.t, c.model.movies, c.real.Movies())
}

func (c *CheckedStore) Add(m catalog.Movie) {
	c.real.Add(m)
	c.model.Add(m)
	c.check()
}

func (c *CheckedStore) RemoveByTitle(title string) error {
	realErr := c.real.RemoveByTitle(title)
	modelErr := c.model.RemoveByTitle(title)
	if (realErr == nil) != (modelErr == nil) {
		c.t.Fatalf("RemoveByTitle divergence: real=%v model=%v", realErr, modelErr)
	}
	if realErr != nil && !errors.Is(realErr, catalog.ErrNotFound) {
		c.t.Fatalf("RemoveByTitle: unexpected error %v", realErr)
	}
	c.check()
	return realErr
}

func (c *CheckedStore) FindByTitle(title string) (catalog.Movie, error) {
	realMovie, realErr := c.real.FindByTitle(title)
	modelMovie, modelErr := c.model.FindByTitle(title)
	if (realErr == nil) != (modelErr == nil) {
		c.t.Fatalf("FindByTitle divergence: real=%v model=%v", realErr, modelErr)
	}
	if realMovie != modelMovie {
		c.t.Fatalf("FindByTitle(%q) = %v, model has %v", title, realMovie, modelMovie)
	}
	return realMovie, realErr
}

func (c *CheckedStore) KeepMatching(match func(catalog.Movie) bool) int {
	realN := c.real.KeepMatching(match)
	modelN := c.model.KeepMatching(match)
	if realN != modelN {
		c.t.Fatalf("KeepMatching removed %d, model removed %d", realN, modelN)
	}
	c.check()
	return realN
}

func (c *CheckedStore) CopyAllFrom(src *catalog.Store) {
	c.real.CopyAllFrom(src)
	for _, m := range src.Movies() {
		c.model.Add(m)
	}
	c.check()
}
