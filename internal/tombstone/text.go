package tombstone

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Sanitize strips control characters, replaces non-breaking spaces with
// regular ones, drops invalid UTF-8 bytes, and trims surrounding
// whitespace. Bad metadata must not be allowed to move the cursor or leave
// the caption width unaccountable.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return strings.TrimSpace(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			// Invalid byte, skip it
			i++
			continue
		}
		switch {
		case r == '\t' || r == '\u00a0':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			// dropped
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return strings.TrimSpace(b.String())
}

// needsSanitize reports whether the string contains bytes Sanitize would
// touch, so clean metadata skips the rebuild.
func needsSanitize(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for i := range len(s) {
		b := s[i]
		if b < 0x20 || b == 0x7f { // ASCII control chars
			return true
		}
		if b >= 0x80 && b <= 0x9f { // C1 control range
			return true
		}
		if b == 0xc2 { // potential 2-byte sequence for U+00A0 (NBSP)
			if i+1 < len(s) && s[i+1] == 0xa0 {
				return true
			}
		}
	}
	return false
}

// Truncate shortens a line to fit within maxWidth display cells, adding an
// ellipsis when something was cut. Wide glyphs count per runewidth.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}
