package proptest

import (
	"os"
	"testing"

	"pgregory.net/rapid"

	"reel/internal/catalog"
)

var backendKinds = []catalog.BackendKind{catalog.BackendYAML, catalog.BackendSQLite}

func requireNoPanic(rt *rapid.T, description, input string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			rt.Fatalf("%s panicked: %v\nInput: %q", description, r, input)
		}
	}()
	fn()
}

func TestProperty_SaveLoad_RoundTrip(t *testing.T) {
	for _, kind := range backendKinds {
		t.Run(string(kind), func(t *testing.T) {
			RunWithStore(t, kind, func(h *StoreHarness) {
				added := h.AddMovies(minMovies, typicalMaxMovies)

				if err := h.Store.Save(); err != nil {
					h.T.Fatalf("failed to save: %v", err)
				}

				reopened := h.Reopen()
				result, err := reopened.Load()
				if err != nil || result != catalog.LoadOK {
					h.T.Fatalf("load = %s, %v", result, err)
				}

				assertMoviesEqual(h.T, added, reopened.Movies())
			})
		})
	}
}

func TestProperty_Save_ReplacesPreviousContents(t *testing.T) {
	for _, kind := range backendKinds {
		t.Run(string(kind), func(t *testing.T) {
			RunWithStore(t, kind, func(h *StoreHarness) {
				h.AddMovies(typicalMinMovies, typicalMaxMovies)
				if err := h.Store.Save(); err != nil {
					h.T.Fatalf("first save: %v", err)
				}

				h.Store.Clear()
				second := h.AddMovies(minMovies, typicalMaxMovies)
				if err := h.Store.Save(); err != nil {
					h.T.Fatalf("second save: %v", err)
				}

				reopened := h.Reopen()
				if _, err := reopened.Load(); err != nil {
					h.T.Fatalf("load: %v", err)
				}
				assertMoviesEqual(h.T, second, reopened.Movies())
			})
		})
	}
}

func TestProperty_Load_MissingFile(t *testing.T) {
	for _, kind := range backendKinds {
		t.Run(string(kind), func(t *testing.T) {
			RunWithStore(t, kind, func(h *StoreHarness) {
				h.AddMovies(typicalMinMovies, typicalMaxMovies)

				result, err := h.Store.Load()

				if err != nil || result != catalog.LoadMissing {
					h.T.Fatalf("load = %s, %v; want missing", result, err)
				}
				if h.Store.Len() != 0 {
					h.T.Fatalf("expected empty store, got %d movies", h.Store.Len())
				}
			})
		})
	}
}

func writeCatalog(h *StoreHarness, content string) {
	if err := os.WriteFile(h.Path, []byte(content), 0o644); err != nil {
		h.T.Fatalf("failed to write catalog: %v", err)
	}
}

func TestProperty_Load_EmptyFile(t *testing.T) {
	RunWithStore(t, catalog.BackendYAML, func(h *StoreHarness) {
		writeCatalog(h, rapid.SampledFrom([]string{"", " ", "\n\n", "\t \n"}).Draw(h.T, "blank"))

		result, err := h.Store.Load()

		if err != nil || result != catalog.LoadOK {
			h.T.Fatalf("Load should succeed on a blank file, got %s, %v", result, err)
		}
		if h.Store.Len() != 0 {
			h.T.Fatalf("expected 0 movies from blank file, got %d", h.Store.Len())
		}
	})
}

func TestProperty_Load_MalformedYAML(t *testing.T) {
	RunWithStore(t, catalog.BackendYAML, func(h *StoreHarness) {
		h.AddMovies(typicalMinMovies, typicalMaxMovies)
		malformed := malformedYAMLGen().Draw(h.T, "malformed")
		writeCatalog(h, malformed)

		requireNoPanic(h.T, "Load on malformed YAML", malformed, func() {
			_, _ = h.Store.Load()
		})
		if h.Store.Len() != 0 {
			h.T.Fatalf("malformed catalog left %d movies in the store", h.Store.Len())
		}
	})
}

func TestProperty_Load_MissingFields(t *testing.T) {
	RunWithStore(t, catalog.BackendYAML, func(h *StoreHarness) {
		content := missingFieldsGen().Draw(h.T, "content")
		writeCatalog(h, content)

		requireNoPanic(h.T, "Load on missing fields", content, func() {
			result, err := h.Store.Load()
			if result != catalog.LoadCorrupt || err == nil {
				h.T.Fatalf("expected corrupt result, got %s, %v", result, err)
			}
		})
	})
}

func TestProperty_Load_ExtraFields(t *testing.T) {
	RunWithStore(t, catalog.BackendYAML, func(h *StoreHarness) {
		content := extraFieldsGen().Draw(h.T, "content")
		writeCatalog(h, content)

		requireNoPanic(h.T, "Load on extra fields", content, func() {
			if _, err := h.Store.Load(); err != nil {
				h.T.Fatalf("Load should ignore extra fields, got error: %v", err)
			}
			want := []catalog.Movie{catalog.NewMovie("Alien", "Ridley Scott", catalog.Horror, 1979)}
			assertMoviesEqual(h.T, want, h.Store.Movies())
		})
	})
}

func TestProperty_Load_InvalidTypes(t *testing.T) {
	RunWithStore(t, catalog.BackendYAML, func(h *StoreHarness) {
		content := invalidTypesGen().Draw(h.T, "content")
		writeCatalog(h, content)

		requireNoPanic(h.T, "Load on invalid types", content, func() {
			result, err := h.Store.Load()
			if result != catalog.LoadCorrupt || err == nil {
				h.T.Fatalf("expected corrupt result, got %s, %v", result, err)
			}
			if h.Store.Len() != 0 {
				h.T.Fatalf("corrupt catalog left %d movies in the store", h.Store.Len())
			}
		})
	})
}

func TestProperty_SQLite_GarbageIsCorrupt(t *testing.T) {
	RunWithStore(t, catalog.BackendSQLite, func(h *StoreHarness) {
		garbage := rapid.StringMatching(`[a-z ]{600,800}`).Draw(h.T, "garbage")
		writeCatalog(h, garbage)

		requireNoPanic(h.T, "Load on garbage sqlite file", garbage[:20], func() {
			result, _ := h.Store.Load()
			if result != catalog.LoadCorrupt {
				h.T.Fatalf("expected corrupt result, got %s", result)
			}
		})
	})
}
