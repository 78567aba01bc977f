package render

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const defaultEmptyMessage = "No movies found."

type LipglossRenderer struct {
	width int
	now   func() time.Time
	r     *lipgloss.Renderer

	titleStyle     lipgloss.Style
	matchStyle     lipgloss.Style
	detailStyle    lipgloss.Style
	yearStyle      lipgloss.Style
	newReleaseYear lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:          width,
		now:            time.Now,
		r:              r,
		titleStyle:     r.NewStyle().Bold(true),
		matchStyle:     r.NewStyle().Bold(true).Underline(true),
		detailStyle:    r.NewStyle().Faint(true),
		yearStyle:      r.NewStyle().Faint(true),
		newReleaseYear: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) WithClock(now func() time.Time) *LipglossRenderer {
	r.now = now
	return r
}

func (r *LipglossRenderer) RenderMovieList(view MovieListView) string {
	if view.IsEmpty() {
		msg := view.EmptyMessage
		if msg == "" {
			msg = defaultEmptyMessage
		}
		return msg + "\n"
	}

	thisYear := r.now().Year()
	var sb strings.Builder
	for i, item := range view.Items {
		last := i == len(view.Items)-1
		sb.WriteString(r.renderItem(item, view.Highlight, thisYear, last))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item MovieListItem, highlight string, thisYear int, last bool) string {
	yearStyle := r.yearStyle
	if item.Year >= thisYear-1 {
		yearStyle = r.newReleaseYear
	}

	title := r.renderTitle(item.Title, highlight)
	year := yearStyle.Render(strconv.Itoa(item.Year))

	padding := max(1, r.width-lipgloss.Width(title)-lipgloss.Width(year))
	header := title + strings.Repeat(" ", padding) + year
	detail := r.detailStyle.Render("  " + item.Director + " · " + item.Genre)

	lines := []string{header, detail}
	if !last {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (r *LipglossRenderer) renderTitle(title, highlight string) string {
	if highlight == "" {
		return r.titleStyle.Render(title)
	}
	lowerTitle, lowerHighlight := strings.ToLower(title), strings.ToLower(highlight)
	if len(lowerTitle) != len(title) || len(lowerHighlight) != len(highlight) {
		return r.titleStyle.Render(title)
	}
	i := strings.Index(lowerTitle, lowerHighlight)
	if i < 0 {
		return r.titleStyle.Render(title)
	}
	end := i + len(highlight)
	return r.titleStyle.Render(title[:i]) +
		r.matchStyle.Render(title[i:end]) +
		r.titleStyle.Render(title[end:])
}
