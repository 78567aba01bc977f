package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reel/internal/catalog"
	"reel/internal/query"
)

const FileName = "Reports.txt"

// Stats renders the general statistics block: the total, then a count per
// value of by. A zero by renders the total only.
func Stats(movies []catalog.Movie, by catalog.Field) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total movies: %d\n", len(movies))
	if !by.Valid() {
		return b.String()
	}

	fmt.Fprintf(&b, "By %s:\n", by)
	for _, c := range query.SortedCounts(query.CountBy(movies, by)) {
		fmt.Fprintf(&b, "%s: %d movies\n", c.Value, c.N)
	}
	return b.String()
}

func ForValue(movies []catalog.Movie, field catalog.Field, value string) (string, error) {
	value = strings.TrimSpace(value)
	scratch := catalog.NewStore(nil)
	for _, m := range movies {
		scratch.Add(m)
	}
	if _, err := query.Filter(scratch, field, value); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "There are %d movies for the %s %s\n", scratch.Len(), field, value)
	b.WriteString("These movies are:")
	for i, m := range scratch.Movies() {
		fmt.Fprintf(&b, "\n\tMovie %d\n%s", i+1, m)
	}
	b.WriteString("\n")
	return b.String(), nil
}

func Export(dir, text string) (string, error) {
	path := filepath.Join(dir, FileName)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
