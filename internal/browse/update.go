package browse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbaudet/oeuvre/internal/artic"
	"github.com/mbaudet/oeuvre/internal/errmsg"
)

// Init starts the input cursor blink and the spinner.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Track the state before handling keys so navigation back into search
	// does not replay the key into the text input.
	wasInSearch := m.state == StateSearch

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		newModel, cmd := m.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if newModel != nil {
			return newModel, tea.Batch(cmds...)
		}

	case spinner.TickMsg:
		if m.state == StateSearching || m.state == StateRendering {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case renderResultMsg:
		return m.handleRenderResult(msg)
	}

	if wasInSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleResize stores the new size and re-renders the artwork on screen,
// which was composed for the old dimensions.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.SetSize(msg.Width, msg.Height)
	m.searchInput.Width = min(msg.Width-8, 50)

	if m.state == StateView {
		if a := m.Selected(); a != nil {
			m.state = StateRendering
			return m, tea.Batch(
				renderArtwork(m.client, m.converter, *a, m.mode, msg.Width, msg.Height),
				m.spin.Tick,
			)
		}
	}
	return m, nil
}

// handleKey routes keyboard input by state. A nil model means the key was
// not consumed and falls through to the text input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case StateSearch:
		return m.handleSearchKey(key)
	case StateSearching, StateRendering:
		// A request is in flight; only quitting makes sense.
		if key == "q" || key == "esc" {
			return m, tea.Quit
		}
		return m, nil
	case StateResults:
		return m.handleResultsKey(key)
	case StateView:
		return m.handleViewKey(key)
	case StateError:
		return m.handleErrorKey(key)
	}
	return nil, nil
}

func (m *Model) handleSearchKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		return m, tea.Quit
	case "enter":
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			return m, nil
		}
		m.state = StateSearching
		m.searchQuery = query
		m.statusMsg = ""
		return m, tea.Batch(search(m.client, query, m.limit), m.spin.Tick)
	}
	// Everything else is typing.
	return nil, nil
}

func (m *Model) handleResultsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "esc", "/":
		return m, m.toSearch()
	case "enter":
		return m.startRender()
	}
	m.cursor.HandleKey(key, len(m.results), m.listHeight())
	return m, nil
}

func (m *Model) handleViewKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.state = StateResults
		m.art = ""
		m.caption = nil
		return m, nil
	case "/":
		return m, m.toSearch()
	case "n", "right":
		m.cursor.Move(1, len(m.results), m.listHeight())
		return m.startRender()
	case "p", "left":
		m.cursor.Move(-1, len(m.results), m.listHeight())
		return m.startRender()
	}
	return m, nil
}

func (m *Model) handleErrorKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		if len(m.results) > 0 {
			m.state = StateResults
			return m, nil
		}
		return m, m.toSearch()
	}
	return m, nil
}

// toSearch returns to the query prompt, keeping previous results around
// for when the render view needs them again.
func (m *Model) toSearch() tea.Cmd {
	m.state = StateSearch
	m.statusMsg = ""
	m.errorMsg = ""
	m.searchInput.SetValue("")
	m.searchInput.Focus()
	return textinput.Blink
}

// startRender kicks off the pipeline for the artwork under the cursor.
func (m *Model) startRender() (tea.Model, tea.Cmd) {
	a := m.Selected()
	if a == nil {
		return m, nil
	}
	m.state = StateRendering
	w, h := m.Size()
	return m, tea.Batch(
		renderArtwork(m.client, m.converter, *a, m.mode, w, h),
		m.spin.Tick,
	)
}

func (m *Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state = StateError
		m.errorMsg = errmsg.Format(errmsg.OpSearchArtworks, msg.err)
		return m, nil
	}
	if len(msg.artworks) == 0 {
		m.state = StateSearch
		m.statusMsg = fmt.Sprintf("Nothing in the collection matches %q", msg.query)
		m.searchInput.Focus()
		return m, textinput.Blink
	}
	m.results = msg.artworks
	m.cursor.Reset()
	m.state = StateResults
	return m, nil
}

func (m *Model) handleRenderResult(msg renderResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil && !errors.Is(msg.err, artic.ErrNoImage) {
		m.state = StateError
		m.errorMsg = errmsg.Format(errmsg.OpRenderArt, msg.err)
		return m, nil
	}
	// No digitized image still gets its caption on screen, same as the
	// one-shot output.
	m.art = msg.art
	m.caption = msg.caption
	m.state = StateView
	return m, nil
}
