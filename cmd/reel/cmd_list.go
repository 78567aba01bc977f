package main

import (
	"fmt"

	"reel/internal/catalog"
	"reel/internal/query"
)

const (
	msgSearchEmpty = "Search yields no result."
	msgFilterEmpty = "Filter yields nothing."
)

type ListCmd struct {
	Search string            `short:"s" help:"Only titles containing this text (case-insensitive)"`
	Filter []query.Criterion `short:"f" help:"Keep movies where field=value (director, genre, year; repeatable)" sep:"none"`
	Sort   catalog.Field     `help:"Sort by field (title, director, genre, year)"`
	Desc   bool              `help:"Sort descending"`
	Titles bool              `short:"n" help:"Output only titles (one per line)"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	view := query.NewView(g.Store)
	emptyMsg := ""

	if cmd.Search != "" {
		view.Search(cmd.Search)
		emptyMsg = msgSearchEmpty
	}
	for _, c := range cmd.Filter {
		if err := view.Filter(c); err != nil {
			return err
		}
		g.logger().Debug("filter applied", "criterion", c.String(), "remaining", len(view.Movies()))
		emptyMsg = msgFilterEmpty
	}
	if cmd.Sort.Valid() {
		view.Sort(cmd.Sort, query.DirectionFromToggle(cmd.Desc))
	}

	movies := view.Movies()

	if cmd.Titles {
		for _, m := range movies {
			fmt.Fprintln(g.Out, m.Title)
		}
		return nil
	}

	lv := listView(movies)
	lv.EmptyMessage = emptyMsg
	lv.Highlight = view.SearchTerm()
	fmt.Fprint(g.Out, g.Render.RenderMovieList(lv))
	return nil
}
