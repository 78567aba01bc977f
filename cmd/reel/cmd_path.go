package main

import (
	"fmt"

	"reel/internal/config"
)

type PathCmd struct {
	Full bool `help:"Print the absolute path without ~ shortening"`
}

func (cmd *PathCmd) Run(g *Globals) error {
	path := g.Store.Path()
	if !cmd.Full {
		path = config.ShortenPath(path)
	}
	fmt.Fprintln(g.Out, path)
	return nil
}
