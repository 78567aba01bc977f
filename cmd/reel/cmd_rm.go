package main

import (
	"fmt"

	"reel/internal/catalog"
	"reel/internal/query"
)

type RmCmd struct {
	Title string            `arg:"" optional:"" help:"Exact title of the movie to remove" completion:"reel list --titles"`
	Where []query.Criterion `help:"Remove every movie matching field=value (repeatable, all must match)" sep:"none"`
}

func (cmd *RmCmd) Run(g *Globals) error {
	switch {
	case cmd.Title != "" && len(cmd.Where) > 0:
		return fmt.Errorf("%w, not both", ErrNoSelection)
	case cmd.Title != "":
		return cmd.removeTitle(g)
	case len(cmd.Where) > 0:
		return cmd.removeWhere(g)
	default:
		return ErrNoSelection
	}
}

func (cmd *RmCmd) removeTitle(g *Globals) error {
	if err := g.Store.RemoveByTitle(cmd.Title); err != nil {
		return fmt.Errorf("failed to remove movie: %w", err)
	}
	g.save()

	fmt.Fprintf(g.Out, "Removed: %s\n", cmd.Title)
	return nil
}

func (cmd *RmCmd) removeWhere(g *Globals) error {
	match, err := query.MatchAll(cmd.Where)
	if err != nil {
		return err
	}

	removed := g.Store.KeepMatching(func(m catalog.Movie) bool { return !match(m) })
	if removed == 0 {
		fmt.Fprintln(g.Out, "No movies matched.")
		return nil
	}
	g.save()

	fmt.Fprintf(g.Out, "Removed %d movie(s).\n", removed)
	return nil
}
