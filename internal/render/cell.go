// Package render turns converter output into ANSI truecolor art sized to
// the terminal. It decodes the HTML-wrapped cell encoding emitted by
// jp2a-compatible converters, composes escape-sequence output from the
// decoded grid, and estimates how many terminal rows a caption will occupy.
package render

// Mode selects how much color information each cell carries.
type Mode int

const (
	// ModeForeground colors the glyph only and leaves the cell
	// background untouched.
	ModeForeground Mode = iota
	// ModeFill paints the cell background as well as the glyph.
	ModeFill
)

// String returns the converter-facing name of the mode.
func (m Mode) String() string {
	if m == ModeFill {
		return "fill"
	}
	return "foreground"
}

// RGB is one 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Cell is one character position of rendered artwork.
type Cell struct {
	Glyph rune
	Fg    RGB
	Bg    RGB
	// HasBg reports whether Bg holds a real color. Decoding in ModeFill
	// always sets it; in ModeForeground it is always false.
	HasBg bool
}

// Row holds the cells of one art line, left to right.
type Row []Cell

// Grid is a fully decoded artwork, top to bottom. Decode builds it in one
// pass and it is read-only afterwards.
type Grid []Row
