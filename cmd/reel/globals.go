package main

import (
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/charmbracelet/huh"

	"reel/cmd/reel/render"
	"reel/internal/catalog"
	"reel/internal/logging"
)

type Globals struct {
	Store     *catalog.Store
	Out       io.Writer
	Log       *slog.Logger
	Render    render.Renderer
	ReportDir string
	Interactive bool
	RunForm     func(form *huh.Form) error
	RunCmd      func(name string, args ...string) error
}

func (g *Globals) logger() *slog.Logger {
	if g.Log == nil {
		return logging.NewNop()
	}
	return g.Log
}

// save persists the store. Failures are logged at warn, not returned.
func (g *Globals) save() bool {
	if err := g.Store.Save(); err != nil {
		g.logger().Warn("failed to save catalog", "path", g.Store.Path(), logging.Error(err))
		return false
	}
	return true
}

func (g *Globals) runForm(form *huh.Form) error {
	if g.RunForm != nil {
		return g.RunForm(form)
	}
	return form.Run()
}

func (g *Globals) runCmd(name string, args ...string) error {
	if g.RunCmd != nil {
		return g.RunCmd(name, args...)
	}
	return defaultRunCmd(name, args...)
}

func defaultRunCmd(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
