// Package browse provides the interactive gallery: search the collection,
// pick an artwork from the results, and view it rendered in place.
package browse

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbaudet/oeuvre/internal/artic"
	"github.com/mbaudet/oeuvre/internal/convert"
	"github.com/mbaudet/oeuvre/internal/render"
	"github.com/mbaudet/oeuvre/internal/ui"
	"github.com/mbaudet/oeuvre/internal/ui/cursor"
	"github.com/mbaudet/oeuvre/internal/ui/styles"
)

// State represents what the browser currently shows.
type State int

const (
	StateSearch    State = iota // Waiting for a query
	StateSearching              // Search request in flight
	StateResults                // Result list on screen
	StateRendering              // Selected artwork being fetched and rasterized
	StateView                   // Rendered artwork on screen
	StateError                  // Failure message on screen
)

// Model is the Bubble Tea model for the gallery browser.
type Model struct {
	ui.Base

	state State

	searchInput textinput.Model
	spin        spinner.Model
	searchQuery string

	results []artic.Artwork
	cursor  cursor.Cursor

	// Rendered view of the selected artwork
	art     string
	caption []string

	statusMsg string
	errorMsg  string

	client    *artic.Client
	converter convert.Converter
	mode      render.Mode
	limit     int
}

// New creates a browser over the given collection client and converter.
// limit bounds how many search results are requested per query.
func New(client *artic.Client, converter convert.Converter, mode render.Mode, limit int) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search the collection..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.T().S().Accent

	return &Model{
		state:       StateSearch,
		searchInput: ti,
		spin:        sp,
		cursor:      cursor.New(ui.ScrollMargin),
		client:      client,
		converter:   converter,
		mode:        mode,
		limit:       limit,
	}
}

// State returns the current state.
func (m *Model) State() State {
	return m.state
}

// Selected returns the artwork under the cursor, or nil when there are no
// results.
func (m *Model) Selected() *artic.Artwork {
	if len(m.results) == 0 {
		return nil
	}
	return &m.results[m.cursor.Pos()]
}

// listHeight returns the rows available to the results list.
func (m *Model) listHeight() int {
	return max(m.ListHeight(ui.ListOverhead), 1)
}

// Run starts the interactive browser and blocks until the user quits.
func Run(client *artic.Client, converter convert.Converter, mode render.Mode, limit int) error {
	p := tea.NewProgram(New(client, converter, mode, limit), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
