package ui

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestCardRender(t *testing.T) {
	t.Run("labels are padded to the widest", func(t *testing.T) {
		card := Card{
			Heading: "Added Alien",
			Fields: []Field{
				{Label: "Title", Value: "Alien"},
				{Label: "Director", Value: "Ridley Scott"},
			},
		}

		output := stripANSI(card.Render())

		assert.Equal(t, "┌ ◆ Added Alien\n│\n│ Title     Alien\n│ Director  Ridley Scott\n└\n", output)
	})

	t.Run("empty values are skipped", func(t *testing.T) {
		card := Card{Heading: "Added Up", Fields: []Field{{Label: "Title", Value: "Up"}, {Label: "Year"}}}

		output := stripANSI(card.Render())

		assert.NotContains(t, output, "Year")
	})

	t.Run("checks follow a blank border line", func(t *testing.T) {
		card := Card{Heading: "Added Up", Checks: []string{"Saved to ~/catalog.yaml"}}

		output := stripANSI(card.Render())

		assert.Equal(t, "┌ ◆ Added Up\n│\n│\n│ ✓ Saved to ~/catalog.yaml\n└\n", output)
	})
}
