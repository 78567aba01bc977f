package query

import (
	"slices"

	"reel/internal/catalog"
)

type Mode int

const (
	Unfiltered Mode = iota
	Filtered
	Sorted
	Searched
)

func (m Mode) String() string {
	switch m {
	case Filtered:
		return "filtered"
	case Sorted:
		return "sorted"
	case Searched:
		return "searched"
	default:
		return "unfiltered"
	}
}

// View is a browsing session over a master store. Filters, searches and
// sorts work on a private scratch copy, so the master keeps its insertion
// order.
type View struct {
	master  *catalog.Store
	scratch *catalog.Store
	mode    Mode
	active  bool
	filters []Criterion
	term    string
}

func NewView(master *catalog.Store) *View {
	return &View{
		master:  master,
		scratch: catalog.NewStore(nil),
	}
}

// seed refills an empty scratch from the master. Filters and search terms
// of the emptied view no longer apply and are dropped.
func (v *View) seed() {
	if v.active && v.scratch.Len() > 0 {
		return
	}
	v.scratch.Clear()
	v.scratch.CopyAllFrom(v.master)
	v.filters = nil
	v.term = ""
	v.active = true
}

// Search rebuilds the scratch view from the master. Any active filter is
// dropped. An empty term resets the view.
func (v *View) Search(term string) {
	if term == "" {
		v.Reset()
		return
	}

	v.filters = nil
	v.term = term
	v.scratch.Clear()
	for _, m := range Search(v.master.Movies(), term) {
		v.scratch.Add(m)
	}
	v.active = true
	v.mode = Searched
}

func (v *View) Filter(c Criterion) error {
	match, err := c.matcher()
	if err != nil {
		return err
	}

	v.seed()
	v.scratch.KeepMatching(match)
	v.filters = append(v.filters, c)
	v.mode = Filtered
	return nil
}

func (v *View) Sort(field catalog.Field, dir Direction) {
	v.seed()
	SortStore(v.scratch, field, dir)
	v.mode = Sorted
}

func (v *View) Reset() {
	v.scratch.Clear()
	v.filters = nil
	v.term = ""
	v.active = false
	v.mode = Unfiltered
}

func (v *View) Movies() []catalog.Movie {
	if !v.active {
		return v.master.Movies()
	}
	return v.scratch.Movies()
}

func (v *View) Mode() Mode {
	return v.mode
}

func (v *View) ActiveFilters() []Criterion {
	return slices.Clone(v.filters)
}

func (v *View) SearchTerm() string {
	return v.term
}

func (v *View) Empty() bool {
	if !v.active {
		return v.master.Len() == 0
	}
	return v.scratch.Len() == 0
}
