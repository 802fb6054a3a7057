package render

import (
	"fmt"
	"html"
	"strings"
)

const docHeader = `<?xml version='1.0' encoding='UTF-8'?>
<!DOCTYPE html PUBLIC '-//W3C//DTD XHTML 1.0 Strict//EN' 'http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd'>
<html xmlns='http://www.w3.org/1999/xhtml' lang='en' xml:lang='en'>
<head>
<title>converted image</title>
<style type='text/css'>
body { background-color: #000000; }
.ascii { font-family: Courier, monospace; font-size: 8pt; }
</style>
</head>
<body>
<div class='ascii'>
<pre>
`

const docFooter = `</pre>
</div>
</body>
</html>
`

// Rough span footprint used to presize the output builder.
const encodedBytesPerCell = 48

// Encode writes a grid in the HTML wire format converters emit. The native
// converter goes through Encode so built-in and external converters share a
// single decode path.
func Encode(g Grid, mode Mode) string {
	var b strings.Builder
	b.Grow(len(docHeader) + len(docFooter) + encodedSize(g, mode))
	b.WriteString(docHeader)
	for _, row := range g {
		for _, c := range row {
			writeSpan(&b, c, mode)
		}
		b.WriteString(rowBreak)
		b.WriteByte('\n')
	}
	b.WriteString(docFooter)
	return b.String()
}

func encodedSize(g Grid, mode Mode) int {
	per := encodedBytesPerCell
	if mode == ModeFill {
		per += 32
	}
	n := 0
	for _, row := range g {
		n += len(row)*per + len(rowBreak) + 1
	}
	return n
}

func writeSpan(b *strings.Builder, c Cell, mode Mode) {
	fmt.Fprintf(b, "<span style='color:#%02x%02x%02x;", c.Fg.R, c.Fg.G, c.Fg.B)
	if mode == ModeFill && c.HasBg {
		fmt.Fprintf(b, " background-color:#%02x%02x%02x;", c.Bg.R, c.Bg.G, c.Bg.B)
	}
	b.WriteString("'>")
	b.WriteString(escapeGlyph(c.Glyph))
	b.WriteString("</span>")
}

// escapeGlyph makes a glyph safe inside markup. Spaces become &nbsp; so the
// decoder can tell art blanks apart from formatting whitespace.
func escapeGlyph(r rune) string {
	if r == ' ' {
		return nbspEntity
	}
	return html.EscapeString(string(r))
}
