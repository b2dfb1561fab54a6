// Package render turns a solved puzzle.Table and a generated clue list
// into the formatted text a CLI prints — surface rendering kept out of
// the core engine.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gitrdm/zebragen/pkg/puzzle"
)

// FormatTable renders table as a bordered, column-aligned grid with a
// numeric header row, ported from original_source/generator_example.py's
// format_table: attribute names left-aligned down the side, each row's
// values sorted alphabetically across the columns (so the true solution
// order is not shown) and left-aligned within each column, headers
// centered.
func FormatTable(table *puzzle.Table) string {
	m := table.M()
	header := make([]string, m)
	for j := 0; j < m; j++ {
		header[j] = fmt.Sprintf("%d", j+1)
	}

	rows := make([][]string, len(table.Rows))
	for i, r := range table.Rows {
		sorted := append([]string(nil), r.Values...)
		sort.Strings(sorted)
		rows[i] = sorted
	}

	widths := make([]int, m+1)
	widths[0] = len("") // filled below against attribute names
	for _, r := range table.Rows {
		if len(r.Name) > widths[0] {
			widths[0] = len(r.Name)
		}
	}
	for j := 0; j < m; j++ {
		widths[j+1] = len(header[j])
		for _, r := range rows {
			if len(r[j]) > widths[j+1] {
				widths[j+1] = len(r[j])
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, center bool) {
		b.WriteString("|")
		for j, cell := range cells {
			w := widths[j]
			if center {
				b.WriteString(centerPad(cell, w+2))
			} else {
				b.WriteString(" ")
				b.WriteString(leftPad(cell, w))
				b.WriteString(" ")
			}
			b.WriteString("|")
		}
		b.WriteString("\n")
	}

	headerRow := append([]string{""}, header...)
	writeRow(headerRow, true)
	for i, r := range table.Rows {
		dataRow := append([]string{r.Name}, rows[i]...)
		writeRow(dataRow, false)
	}
	return strings.TrimRight(b.String(), "\n")
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func centerPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// FormatClues renders a 1-indexed numbered list of clue strings, the shape
// the reference generator prints premises in.
func FormatClues(clues []string) string {
	var b strings.Builder
	for i, c := range clues {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	return strings.TrimRight(b.String(), "\n")
}
