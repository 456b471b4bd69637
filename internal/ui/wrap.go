package ui

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap splits text into display rows no wider than width cells. Explicit
// newlines always start a new row; long rows break at the last space that
// fits, or mid-word when there is none.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var rows []string
	for _, line := range strings.Split(text, "\n") {
		rows = append(rows, wrapLine(line, width)...)
	}
	return rows
}

func wrapLine(line string, width int) []string {
	if uniseg.StringWidth(line) <= width {
		return []string{line}
	}

	var rows []string
	var cur strings.Builder
	curWidth := 0
	lastSpace := -1 // Byte offset in cur of the last space

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cluster := g.Str()
		w := g.Width()

		if curWidth+w > width {
			row := cur.String()
			rest := ""
			if lastSpace >= 0 && cluster != " " {
				rest = row[lastSpace+1:]
				row = row[:lastSpace]
			}
			rows = append(rows, strings.TrimRight(row, " "))

			cur.Reset()
			cur.WriteString(rest)
			curWidth = uniseg.StringWidth(rest)
			lastSpace = -1
			if cluster == " " {
				continue
			}
		}

		if cluster == " " {
			lastSpace = cur.Len()
		}
		cur.WriteString(cluster)
		curWidth += w
	}
	rows = append(rows, cur.String())
	return rows
}
