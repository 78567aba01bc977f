package render

type Renderer interface {
	RenderMovieList(view MovieListView) string
}

type MovieListView struct {
	Items []MovieListItem
	// Highlight marks this substring of each title, case-insensitively.
	Highlight string
	EmptyMessage string
}

type MovieListItem struct {
	Title    string
	Director string
	Genre    string
	Year     int
}

func (v MovieListView) IsEmpty() bool {
	return len(v.Items) == 0
}
