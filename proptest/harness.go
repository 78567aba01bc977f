package proptest

import (
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"

	"reel/internal/catalog"
)

const (
	minMovies          = 0
	maxMovies          = 20
	typicalMinMovies   = 1
	typicalMaxMovies   = 10
	transitivityMinLen = 3
)

type MovieGenOpt func(*movieGenConfig)

type movieGenConfig struct {
	title    *string
	director *string
	genre    *catalog.Genre
}

func WithTitle(title string) MovieGenOpt {
	return func(c *movieGenConfig) {
		c.title = &title
	}
}

func WithDirector(director string) MovieGenOpt {
	return func(c *movieGenConfig) {
		c.director = &director
	}
}

func WithGenre(g catalog.Genre) MovieGenOpt {
	return func(c *movieGenConfig) {
		c.genre = &g
	}
}

func GenMovie(t *rapid.T, opts ...MovieGenOpt) catalog.Movie {
	cfg := &movieGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	m := movieGen().Draw(t, "movie")
	if cfg.title != nil {
		m.SetTitle(*cfg.title)
	}
	if cfg.director != nil {
		m.SetDirector(*cfg.director)
	}
	if cfg.genre != nil {
		m.SetGenre(*cfg.genre)
	}
	return m
}

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenMovie(opts ...MovieGenOpt) catalog.Movie {
	return GenMovie(h.T, opts...)
}

// StoreHarness pairs a store with the backend file it persists to.
type StoreHarness struct {
	Harness
	Kind  catalog.BackendKind
	Path  string
	Store *catalog.Store
}

func (h *StoreHarness) MustAddMovie(opts ...MovieGenOpt) catalog.Movie {
	m := h.GenMovie(opts...)
	if err := m.Validate(); err != nil {
		h.T.Fatalf("generated invalid movie: %v", err)
	}
	h.Store.Add(m)
	return m
}

func (h *StoreHarness) AddMovies(minCount, maxCount int) []catalog.Movie {
	var added []catalog.Movie
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numMovies")
	for range n {
		added = append(added, h.MustAddMovie())
	}
	return added
}

// Reopen returns a second store over the same file.
func (h *StoreHarness) Reopen() *catalog.Store {
	backend, err := catalog.OpenBackend(h.Kind, h.Path)
	if err != nil {
		h.T.Fatalf("failed to reopen backend: %v", err)
	}
	return catalog.NewStore(backend)
}

func catalogFile(kind catalog.BackendKind) string {
	if kind == catalog.BackendSQLite {
		return "catalog.db"
	}
	return "catalog.yaml"
}

func RunWithStore(t *testing.T, kind catalog.BackendKind, fn func(h *StoreHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		path := filepath.Join(iterDir, catalogFile(kind))
		_ = os.Remove(path)
		backend, err := catalog.OpenBackend(kind, path)
		if err != nil {
			rt.Fatalf("failed to open backend: %v", err)
		}

		harness := &StoreHarness{
			Harness: Harness{
				T:   rt,
				Dir: iterDir,
			},
			Kind:  kind,
			Path:  path,
			Store: catalog.NewStore(backend),
		}

		fn(harness)
	})
}

// RunInMemory runs fn against a store with no backend.
func RunInMemory(t *testing.T, fn func(h *StoreHarness)) {
	rapid.Check(t, func(rt *rapid.T) {
		fn(&StoreHarness{
			Harness: Harness{T: rt},
			Store:   catalog.NewStore(nil),
		})
	})
}
