// Package display renders SAP machine state as text tables.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mgutz/ansi"
)

// Style is a table drawing style.
type Style string

const (
	STYLE_PLAIN   = Style("plain")
	STYLE_OUTLINE = Style("outline")
)

// ParseStyle checks a style name.
func ParseStyle(name string) (style Style, err error) {
	style = Style(strings.ToLower(strings.TrimSpace(name)))
	switch style {
	case STYLE_PLAIN, STYLE_OUTLINE:
	default:
		err = fmt.Errorf("%w: %q", ErrStyle, name)
	}
	return
}

var colorHighlight = ansi.ColorCode("default+bu:default")

// Table is a header row and data rows.
type Table struct {
	Header    []string     // Column titles, or nil for no header.
	Rows      [][]string   // Data cells.
	Highlight map[int]bool // Highlighted rows.
}

// widths returns the display width of each column.
func (table *Table) widths() (widths []int) {
	measure := func(row []string) {
		for n, cell := range row {
			if n >= len(widths) {
				widths = append(widths, 0)
			}
			widths[n] = max(widths[n], runewidth.StringWidth(cell))
		}
	}

	measure(table.Header)
	for _, row := range table.Rows {
		measure(row)
	}

	return
}

// numeric reports columns where every data cell is a decimal integer.
func (table *Table) numeric(columns int) (numeric []bool) {
	numeric = make([]bool, columns)
	for n := range numeric {
		numeric[n] = len(table.Rows) > 0
		for _, row := range table.Rows {
			if n >= len(row) || row[n] == "" {
				continue
			}
			if _, err := strconv.ParseInt(row[n], 10, 64); err != nil {
				numeric[n] = false
				break
			}
		}
	}
	return
}

// Renderer draws tables in a style.
type Renderer struct {
	Style Style // Drawing style, STYLE_OUTLINE if empty.
	Color bool  // Use ANSI color for highlighted rows.
}

type rule struct {
	left, cross, right string
}

var (
	ruleTop    = rule{"┌─", "─┬─", "─┐"}
	ruleMiddle = rule{"├─", "─┼─", "─┤"}
	ruleBottom = rule{"└─", "─┴─", "─┘"}
)

// Render writes a table.
func (r *Renderer) Render(w io.Writer, table *Table) (err error) {
	widths := table.widths()
	numeric := table.numeric(len(widths))
	outline := r.Style != STYLE_PLAIN

	var lines []string

	drawRule := func(rl rule) {
		cells := make([]string, len(widths))
		for n, width := range widths {
			cells[n] = strings.Repeat("─", width)
		}
		lines = append(lines, rl.left+strings.Join(cells, rl.cross)+rl.right)
	}

	drawRow := func(row []string, align bool, highlight bool) {
		cells := make([]string, len(widths))
		for n, width := range widths {
			var cell string
			if n < len(row) {
				cell = row[n]
			}
			if align && numeric[n] {
				cell = runewidth.FillLeft(cell, width)
			} else {
				cell = runewidth.FillRight(cell, width)
			}
			cells[n] = cell
		}

		var line string
		if outline {
			line = "│ " + strings.Join(cells, " │ ") + " │"
		} else {
			line = strings.TrimRight(strings.Join(cells, "  "), " ")
		}
		if highlight && r.Color {
			line = colorHighlight + line + ansi.Reset
		}
		lines = append(lines, line)
	}

	if outline {
		drawRule(ruleTop)
	}
	if table.Header != nil {
		drawRow(table.Header, false, false)
		if outline {
			drawRule(ruleMiddle)
		} else {
			cells := make([]string, len(widths))
			for n, width := range widths {
				cells[n] = strings.Repeat("-", width)
			}
			lines = append(lines, strings.Join(cells, "  "))
		}
	}
	for n, row := range table.Rows {
		drawRow(row, true, table.Highlight[n])
	}
	if outline {
		drawRule(ruleBottom)
	}

	for _, line := range lines {
		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return
		}
	}

	return
}
