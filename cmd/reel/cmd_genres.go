package main

import (
	"fmt"
	"text/tabwriter"

	"reel/internal/catalog"
)

type GenresCmd struct{}

func (cmd *GenresCmd) Run(g *Globals) error {
	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tLABEL")
	for _, genre := range catalog.Genres() {
		fmt.Fprintf(w, "%s\t%s\n", genre, genre.Label())
	}
	return w.Flush()
}
