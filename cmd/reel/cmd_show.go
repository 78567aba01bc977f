package main

import "fmt"

type ShowCmd struct {
	Title string `arg:"" help:"Exact title of the movie" completion:"reel list --titles"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	movie, err := g.Store.FindByTitle(cmd.Title)
	if err != nil {
		return err
	}

	fmt.Fprintln(g.Out, movie)
	return nil
}
