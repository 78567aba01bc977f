package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/huh"

	"reel/cmd/reel/render"
	"reel/internal/catalog"
)

var (
	ErrMissingFields = errors.New("missing fields required")
	ErrNothingToEdit = errors.New("nothing to edit: pass at least one field flag")
	ErrNoSelection   = errors.New("give a title or at least one --where criterion")
)

func handleFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

func missingFieldsError(labels []string) error {
	return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(labels, ", "))
}

func listView(movies []catalog.Movie) render.MovieListView {
	items := make([]render.MovieListItem, len(movies))
	for i, m := range movies {
		items[i] = render.MovieListItem{
			Title:    m.Title,
			Director: m.Director,
			Genre:    m.Genre.Label(),
			Year:     m.Year,
		}
	}
	return render.MovieListView{Items: items}
}

func splitCommand(s string) []string {
	var result []string
	var current strings.Builder
	var inQuote rune

	for _, r := range s {
		if inQuote != 0 {
			if r == inQuote {
				inQuote = 0
			} else {
				current.WriteRune(r)
			}
			continue
		}
		switch r {
		case '"', '\'':
			inQuote = r
		case ' ', '\t':
			if current.Len() > 0 {
				result = append(result, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		result = append(result, current.String())
	}
	return result
}

func resolveEditor() ([]string, error) {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vim"
	}

	parts := splitCommand(editor)
	if len(parts) == 0 {
		return nil, fmt.Errorf("editor %q is empty after parsing", editor)
	}
	if _, err := exec.LookPath(parts[0]); err != nil {
		return nil, fmt.Errorf("editor %q not found in PATH", parts[0])
	}
	return parts, nil
}
