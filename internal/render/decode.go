package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// Markers of the converter wire format. The decoder locates them
// structurally instead of counting preamble bytes, so header drift between
// converter versions cannot corrupt the first row.
const (
	preOpen    = "<pre>"
	preClose   = "</pre>"
	rowBreak   = "<br/>"
	nbspEntity = "&nbsp;"
)

// DecodeError reports malformed converter output. Row is the zero-based art
// row that failed; it is -1 when the document wrapper itself is broken.
type DecodeError struct {
	Row    int
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Row < 0 {
		return "decode cell encoding: " + e.Reason
	}
	return fmt.Sprintf("decode cell encoding: row %d: %s", e.Row, e.Reason)
}

// spanPattern matches one styled span at the start of the input. The color
// captures stay loose on purpose: channel validation happens afterwards so
// a bad hex digit reports the row that carried it.
var spanPattern = regexp.MustCompile(`^<span style='color:#([^;']*);( background-color:#([^;']*);)?'>(.*?)</span>`)

// Decode parses HTML-wrapped converter output into a Grid. mode must match
// the color mode the converter ran with: fill output carries a background
// color on every span and foreground-only output carries none, anything
// else is a DecodeError. Decode never returns a partial grid.
func Decode(raw string, mode Mode) (Grid, error) {
	body, err := stripWrapper(raw)
	if err != nil {
		return nil, err
	}
	var g Grid
	for i, chunk := range splitRows(body) {
		row, err := parseRow(chunk, i, mode)
		if err != nil {
			return nil, err
		}
		g = append(g, row)
	}
	return g, nil
}

// stripWrapper cuts the art body out of the surrounding HTML document.
func stripWrapper(raw string) (string, error) {
	start := strings.Index(raw, preOpen)
	if start < 0 {
		return "", &DecodeError{Row: -1, Reason: "missing " + preOpen + " marker"}
	}
	start += len(preOpen)
	end := strings.LastIndex(raw, preClose)
	if end < start {
		return "", &DecodeError{Row: -1, Reason: "missing " + preClose + " marker"}
	}
	return raw[start:end], nil
}

// splitRows cuts the art body on row breaks. Converters terminate every row
// with a break, so a whitespace-only tail is normal; any other trailing
// content is treated as a final unterminated row.
func splitRows(body string) []string {
	parts := strings.Split(body, rowBreak)
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func parseRow(chunk string, row int, mode Mode) (Row, error) {
	cells := make(Row, 0, strings.Count(chunk, "</span>"))
	rest := strings.TrimSpace(chunk)
	for rest != "" {
		m := spanPattern.FindStringSubmatch(rest)
		if m == nil {
			return nil, &DecodeError{Row: row, Reason: fmt.Sprintf("unrecognized content %q", clip(rest))}
		}
		cell, err := parseCell(m, row, mode)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
		rest = strings.TrimLeft(rest[len(m[0]):], " \t\r\n")
	}
	return cells, nil
}

func parseCell(m []string, row int, mode Mode) (Cell, error) {
	fg, err := parseHex(m[1])
	if err != nil {
		return Cell{}, &DecodeError{Row: row, Reason: "foreground " + err.Error()}
	}
	c := Cell{Fg: fg}

	hasBg := m[2] != ""
	switch {
	case mode == ModeFill && !hasBg:
		return Cell{}, &DecodeError{Row: row, Reason: "fill mode span without background color"}
	case mode == ModeForeground && hasBg:
		return Cell{}, &DecodeError{Row: row, Reason: "foreground mode span with background color"}
	case hasBg:
		bg, err := parseHex(m[3])
		if err != nil {
			return Cell{}, &DecodeError{Row: row, Reason: "background " + err.Error()}
		}
		c.Bg = bg
		c.HasBg = true
	}

	glyph, err := parseGlyph(m[4])
	if err != nil {
		return Cell{}, &DecodeError{Row: row, Reason: err.Error()}
	}
	c.Glyph = glyph
	return c, nil
}

// parseHex converts an RRGGBB value to 8-bit channels.
func parseHex(hex string) (RGB, error) {
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("color #%s is not a 6-digit hex value", hex)
	}
	col, err := colorful.Hex("#" + hex)
	if err != nil {
		return RGB{}, fmt.Errorf("color #%s has a non-hex channel", hex)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// parseGlyph unescapes a span body to exactly one rune. Converters write
// literal spaces as &nbsp; so meaningful blanks survive inside HTML.
func parseGlyph(inner string) (rune, error) {
	if inner == nbspEntity {
		return ' ', nil
	}
	text := html.UnescapeString(inner)
	if text == " " {
		return ' ', nil
	}
	if utf8.RuneCountInString(text) != 1 {
		return 0, fmt.Errorf("span holds %q, want exactly one character", inner)
	}
	r, _ := utf8.DecodeRuneInString(text)
	return r, nil
}

// clip bounds error excerpts so a malformed megabyte row stays readable.
func clip(s string) string {
	const n = 40
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
