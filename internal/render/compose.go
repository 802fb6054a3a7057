package render

import (
	"fmt"
	"strings"
)

const sgrReset = "\x1b[0m"

// Rough escape footprint used to presize the output builder.
const composedBytesPerCell = 24

// Compose renders a grid as a stream of 24-bit color escape sequences.
// Each cell emits its background escape (fill mode), then its foreground
// escape, then the glyph. Every row ends with exactly one color reset
// before the newline so no color state leaks into whatever is printed
// below the art. Cells are emitted in a single linear pass; runs of equal
// color are not merged.
func Compose(g Grid, mode Mode) string {
	var b strings.Builder
	b.Grow(composedSize(g, mode))
	for _, row := range g {
		for _, c := range row {
			if mode == ModeFill && c.HasBg {
				fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm", c.Bg.R, c.Bg.G, c.Bg.B)
			}
			fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm", c.Fg.R, c.Fg.G, c.Fg.B)
			b.WriteRune(c.Glyph)
		}
		b.WriteString(sgrReset)
		b.WriteByte('\n')
	}
	return b.String()
}

func composedSize(g Grid, mode Mode) int {
	per := composedBytesPerCell
	if mode == ModeFill {
		per *= 2
	}
	n := 0
	for _, row := range g {
		n += len(row)*per + len(sgrReset) + 1
	}
	return n
}
