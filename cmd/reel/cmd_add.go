package main

import (
	"fmt"

	"reel/internal/catalog"
	"reel/internal/config"
	"reel/internal/ui"
)

type AddCmd struct {
	Title    string        `short:"t" help:"Movie title"`
	Director string        `short:"d" help:"Director name"`
	Genre    catalog.Genre `short:"g" help:"Genre (see 'reel genres')"`
	Year     string        `short:"y" help:"Release year"`
}

func (cmd *AddCmd) input() ui.MovieInput {
	in := ui.MovieInput{Title: cmd.Title, Director: cmd.Director, Year: cmd.Year}
	if cmd.Genre.Valid() {
		in.Genre = cmd.Genre.String()
	}
	return in
}

func (cmd *AddCmd) Run(g *Globals) error {
	in := cmd.input()

	interactive := false
	if missing := in.Missing(); len(missing) > 0 {
		if !g.Interactive {
			return missingFieldsError(missing)
		}
		if err := g.runForm(ui.NewMovieForm(&in)); err != nil {
			return handleFormError(err)
		}
		interactive = true
	}

	movie, err := in.Movie()
	if err != nil {
		return err
	}

	g.Store.Add(movie)
	saved := g.save()

	if interactive {
		card := ui.Card{Heading: "Added " + movie.Title, Fields: in.Summary()}
		if saved {
			card.Checks = append(card.Checks, "Saved to "+config.ShortenPath(g.Store.Path()))
		}
		fmt.Fprint(g.Out, card.Render())
		return nil
	}

	fmt.Fprintf(g.Out, "Added: %s (%d)\n", movie.Title, movie.Year)
	return nil
}
