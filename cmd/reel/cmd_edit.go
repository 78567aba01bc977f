package main

import (
	"fmt"

	"reel/internal/catalog"
	"reel/internal/ui"
)

type EditCmd struct {
	Name     string        `arg:"" help:"Exact title of the movie to edit" completion:"reel list --titles"`
	Title    string        `help:"New title"`
	Director string        `help:"New director"`
	Genre    catalog.Genre `help:"New genre"`
	Year     string        `help:"New release year"`
}

func (cmd *EditCmd) hasEdits() bool {
	return cmd.Title != "" || cmd.Director != "" || cmd.Genre.Valid() || cmd.Year != ""
}

func (cmd *EditCmd) applyEdits(m *catalog.Movie, year int) {
	if cmd.Title != "" {
		m.SetTitle(cmd.Title)
	}
	if cmd.Director != "" {
		m.SetDirector(cmd.Director)
	}
	if cmd.Genre.Valid() {
		m.SetGenre(cmd.Genre)
	}
	if cmd.Year != "" {
		m.SetYear(year)
	}
}

func (cmd *EditCmd) Run(g *Globals) error {
	current, err := g.Store.FindByTitle(cmd.Name)
	if err != nil {
		return err
	}

	var edit func(*catalog.Movie)
	switch {
	case cmd.hasEdits():
		year := 0
		if cmd.Year != "" {
			if year, err = catalog.ParseYear(cmd.Year); err != nil {
				return err
			}
		}
		edit = func(m *catalog.Movie) { cmd.applyEdits(m, year) }
	case g.Interactive:
		in := ui.InputFromMovie(current)
		if err := g.runForm(ui.NewMovieForm(&in)); err != nil {
			return handleFormError(err)
		}
		updated, err := in.Movie()
		if err != nil {
			return err
		}
		edit = func(m *catalog.Movie) { *m = updated }
	default:
		return ErrNothingToEdit
	}

	var result catalog.Movie
	err = g.Store.UpdateByTitle(cmd.Name, func(m *catalog.Movie) {
		edit(m)
		result = *m
	})
	if err != nil {
		return fmt.Errorf("failed to update movie %q: %w", cmd.Name, err)
	}
	g.save()

	fmt.Fprintf(g.Out, "Updated: %s\n", result.Title)
	return nil
}
