package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
	checkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func FormTheme() *huh.Theme {
	t := huh.ThemeBase()
	accent := lipgloss.Color("5")
	red := lipgloss.Color("1")
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

type Field struct {
	Label string
	Value string
}

type Card struct {
	Heading string
	Fields  []Field
	Checks  []string
}

func (c Card) Render() string {
	side := borderStyle.Render("│")

	width := 0
	for _, f := range c.Fields {
		width = max(width, len(f.Label))
	}

	lines := []string{borderStyle.Render("┌") + " ◆ " + c.Heading, side}
	for _, f := range c.Fields {
		if f.Value == "" {
			continue
		}
		lines = append(lines, side+" "+labelStyle.Render(fmt.Sprintf("%-*s", width, f.Label))+"  "+f.Value)
	}
	if len(c.Checks) > 0 {
		lines = append(lines, side)
		for _, check := range c.Checks {
			lines = append(lines, side+" "+checkStyle.Render("✓")+" "+check)
		}
	}
	lines = append(lines, borderStyle.Render("└"))
	return strings.Join(lines, "\n") + "\n"
}
