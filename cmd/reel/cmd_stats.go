package main

import (
	"fmt"

	"reel/internal/catalog"
	"reel/internal/report"
)

type StatsCmd struct {
	By    catalog.Field `default:"genre" help:"Group counts by field (title, director, genre, year)"`
	Table bool          `help:"Render counts as a table"`
}

func (cmd *StatsCmd) Run(g *Globals) error {
	movies := g.Store.Movies()

	if cmd.Table {
		fmt.Fprintf(g.Out, "Total movies: %d\n", len(movies))
		fmt.Fprintln(g.Out, report.CountTable(movies, cmd.By))
		return nil
	}

	fmt.Fprint(g.Out, report.Stats(movies, cmd.By))
	return nil
}
