// Package tombstone builds the caption block printed under rendered
// artwork: the museum-label lines naming title, date, artist, and source
// URL.
package tombstone

import (
	"fmt"
	"strings"

	"github.com/mbaudet/oeuvre/internal/artic"
)

// untitled stands in for records catalogued without a title.
const untitled = "Untitled"

// Build formats an artwork's metadata as caption lines: a title line
// carrying the date, one line per artist_display line, and the artwork's
// public URL. Metadata arrives from the API unvetted, so every line is
// sanitized before it can reach the terminal.
func Build(a *artic.Artwork) []string {
	lines := []string{titleLine(a)}
	lines = append(lines, artistLines(a.ArtistDisplay)...)
	return append(lines, a.WebURL())
}

// titleLine renders "Title (Date)", degrading to the bare title when the
// record carries no date.
func titleLine(a *artic.Artwork) string {
	title := Sanitize(a.Title)
	if title == "" {
		title = untitled
	}
	date := Sanitize(a.DateDisplay)
	if date == "" {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, date)
}

// artistLines splits the multi-line artist_display field into caption
// lines. The museum stacks the artist's name above nationality and life
// dates; blank lines between them carry nothing and are dropped.
func artistLines(display string) []string {
	var lines []string
	for _, raw := range strings.Split(display, "\n") {
		if line := Sanitize(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
