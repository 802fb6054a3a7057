package render

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ErrInvalidTerminal reports terminal dimensions nothing can be laid out in.
var ErrInvalidTerminal = errors.New("terminal too narrow")

// EstimateRows returns the number of terminal rows the given lines occupy
// when printed at the given width, counting the extra rows the terminal
// produces by wrapping long lines. An empty line still advances the cursor
// and counts as one row.
func EstimateRows(lines []string, columns int) (int, error) {
	if columns < 1 {
		return 0, fmt.Errorf("estimate rows for %d columns: %w", columns, ErrInvalidTerminal)
	}
	total := 0
	for _, line := range lines {
		total += wrappedRows(line, columns)
	}
	return total, nil
}

// wrappedRows simulates the cursor walking one logical line. Grapheme
// clusters keep combining sequences together and runewidth accounts for
// double-width glyphs, which wrap early when the remaining columns cannot
// hold them.
func wrappedRows(line string, columns int) int {
	rows := 1
	col := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		w := runewidth.StringWidth(gr.Str())
		if w == 0 {
			continue
		}
		if w > columns {
			w = columns
		}
		if col+w > columns {
			rows++
			col = 0
		}
		col += w
	}
	return rows
}
