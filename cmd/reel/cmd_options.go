package main

import (
	"fmt"

	"reel/internal/catalog"
)

type OptionsCmd struct {
	Field catalog.Field `arg:"" help:"Field whose values to list (title, director, genre, year)"`
}

func (cmd *OptionsCmd) Run(g *Globals) error {
	values := g.Store.Options(cmd.Field)
	if len(values) == 0 {
		fmt.Fprintln(g.Out, "No movies found.")
		return nil
	}
	for _, v := range values {
		fmt.Fprintln(g.Out, v)
	}
	return nil
}
