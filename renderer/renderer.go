// Package renderer builds the markdown shown on the terminal for the notes
// command-line tool. It is a pure projection of domain values to strings.
package renderer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zizevskikh-dev/notes"
)

// Note renders a single note as a fenced block, preserving its four labeled
// lines verbatim through markdown rendering.
func Note(n notes.Note) string {
	return "```\n" + n.String() + "\n```\n"
}

// Section renders a titled list of notes.
func Section(title string, list []notes.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	for _, n := range list {
		b.WriteString(Note(n))
		b.WriteString("\n")
	}
	return b.String()
}

// Balance renders the current balance line with two decimals.
func Balance(total decimal.Decimal) string {
	return fmt.Sprintf("Your current balance is: %s", total.StringFixed(2))
}
