package main

import (
	"fmt"
	"os"
	"path/filepath"

	"reel/internal/report"
)

type OpenCmd struct {
	Report bool `help:"Open the last saved report instead of the catalog"`
}

func (cmd *OpenCmd) Run(g *Globals) error {
	path := g.Store.Path()
	if cmd.Report {
		dir := g.ReportDir
		if dir == "" {
			dir = "."
		}
		path = filepath.Join(dir, report.FileName)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if cmd.Report {
			return fmt.Errorf("no report at %s\nRun 'reel report <field> <value> --save' first", path)
		}
		return fmt.Errorf("catalog file does not exist yet: %s\nRun 'reel add' first", path)
	}

	editor, err := resolveEditor()
	if err != nil {
		return err
	}

	args := append(editor[1:], path)
	return g.runCmd(editor[0], args...)
}
