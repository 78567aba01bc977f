package proptest

import (
	"pgregory.net/rapid"

	"reel/internal/catalog"
)

// verifyStructuralInvariants checks what every store must hold between
// operations: a consistent length, valid records, and value copies out.
func verifyStructuralInvariants(t *rapid.T, s *catalog.Store) {
	t.Helper()
	list := s.Movies()

	if s.Len() != len(list) {
		t.Fatalf("Len()=%d but len(Movies())=%d", s.Len(), len(list))
	}

	for i, m := range list {
		if err := m.Validate(); err != nil {
			t.Fatalf("movie %d is invalid: %v", i, err)
		}
	}

	if len(list) > 0 {
		before := list[0]
		list[0].SetTitle(before.Title + " (mutated)")
		if got := s.Movies()[0]; got != before {
			t.Fatalf("mutating a returned movie changed the store: %v", got)
		}
	}
}
