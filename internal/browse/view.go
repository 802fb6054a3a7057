package browse

import (
	"fmt"
	"strings"

	"github.com/mbaudet/oeuvre/internal/artic"
	"github.com/mbaudet/oeuvre/internal/tombstone"
	"github.com/mbaudet/oeuvre/internal/ui/styles"
)

const (
	titleColWidth  = 44
	artistColWidth = 28
)

// View renders the browser.
func (m *Model) View() string {
	// The artwork view is full-bleed: no header, every row goes to art.
	if m.state == StateView {
		return m.viewArtwork()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.state {
	case StateSearch:
		b.WriteString(m.renderSearch())
	case StateSearching:
		b.WriteString(m.renderWait("Searching the collection..."))
	case StateResults:
		b.WriteString(m.renderResults())
	case StateRendering:
		b.WriteString(m.renderWait("Fetching the artwork..."))
	case StateError:
		b.WriteString(styles.T().S().Error.Render(m.errorMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *Model) renderHeader() string {
	t := styles.T()
	title := styles.Gradient("oeuvre", t.Primary, t.Secondary)
	return title + "  " + t.S().Subtle.Render("art from the collection, in your terminal")
}

func (m *Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(styles.T().S().Muted.Render("Search for an artwork:"))
	b.WriteString("\n")
	b.WriteString(styles.Frame(true).Render(m.searchInput.View()))
	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.T().S().Muted.Render(m.statusMsg))
	}
	return b.String()
}

func (m *Model) renderWait(label string) string {
	return m.spin.View() + " " + styles.T().S().Muted.Render(label)
}

func (m *Model) renderResults() string {
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(s.Muted.Render(fmt.Sprintf("%d results for %q:", len(m.results), m.searchQuery)))
	b.WriteString("\n\n")

	start, end := m.cursor.VisibleRange(len(m.results), m.listHeight())
	for i := start; i < end; i++ {
		line := formatArtwork(&m.results[i])
		if i == m.cursor.Pos() {
			b.WriteString(s.Accent.Render("> "))
			b.WriteString(s.Title.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(s.Base.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatArtwork renders one result line. Metadata arrives from the API
// unvetted, so every field is sanitized before it reaches the screen.
func formatArtwork(a *artic.Artwork) string {
	title := tombstone.Truncate(a.Title, titleColWidth)
	if title == "" {
		title = "Untitled"
	}
	parts := []string{title}
	if date := tombstone.Sanitize(a.DateDisplay); date != "" {
		parts = append(parts, "("+date+")")
	}
	artist, _, _ := strings.Cut(a.ArtistDisplay, "\n")
	if artist = tombstone.Truncate(artist, artistColWidth); artist != "" {
		parts = append(parts, artist)
	}
	if !a.HasImage() {
		parts = append(parts, "[no image]")
	}
	return strings.Join(parts, " ")
}

// viewArtwork renders the selected artwork: art rows, then the caption
// the way the one-shot prints it, then one help row.
func (m *Model) viewArtwork() string {
	s := styles.T().S()

	var b strings.Builder
	if m.art != "" {
		b.WriteString(m.art)
	} else {
		b.WriteString(s.Subtle.Render("(no digitized image for this artwork)"))
		b.WriteString("\n")
	}
	for i, line := range m.caption {
		switch {
		case i == 0:
			b.WriteString(s.Title.Render(line))
		case i == len(m.caption)-1:
			b.WriteString(s.Muted.Render(line))
		default:
			b.WriteString(s.Base.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelp())
	return b.String()
}

// renderHelp renders context-sensitive help.
func (m *Model) renderHelp() string {
	var help string
	switch m.state {
	case StateSearch:
		help = "Enter: Search | Esc: Quit"
	case StateSearching:
		help = "Searching... | Esc: Quit"
	case StateResults:
		help = "↑/↓: Navigate | Enter: View | /: New search | q: Quit"
	case StateRendering:
		help = "Fetching... | Esc: Quit"
	case StateView:
		help = "n/p: Next/Previous | Esc: Back | /: New search | q: Quit"
	case StateError:
		help = "Esc: Back | q: Quit"
	}
	return styles.T().S().Subtle.Render(help)
}
