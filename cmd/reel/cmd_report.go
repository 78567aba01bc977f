package main

import (
	"fmt"

	"reel/internal/catalog"
	"reel/internal/config"
	"reel/internal/logging"
	"reel/internal/report"
)

type ReportCmd struct {
	Field catalog.Field `arg:"" help:"Field to report on (director, genre, year)"`
	Value string        `arg:"" help:"Value the field must equal"`
	Save  bool          `help:"Also write the report to Reports.txt in the report directory"`
}

func (cmd *ReportCmd) Run(g *Globals) error {
	text, err := report.ForValue(g.Store.Movies(), cmd.Field, cmd.Value)
	if err != nil {
		return err
	}
	fmt.Fprint(g.Out, text)

	if !cmd.Save {
		return nil
	}

	dir := g.ReportDir
	if dir == "" {
		dir = "."
	}
	path, err := report.Export(dir, text)
	if err != nil {
		g.logger().Warn("failed to export report", "dir", dir, logging.Error(err))
		return nil
	}
	fmt.Fprintf(g.Out, "Report saved to %s\n", config.ShortenPath(path))
	return nil
}
