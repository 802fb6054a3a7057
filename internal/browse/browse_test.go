package browse

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbaudet/oeuvre/internal/artic"
	"github.com/mbaudet/oeuvre/internal/convert"
	"github.com/mbaudet/oeuvre/internal/render"
	"github.com/mbaudet/oeuvre/internal/ui/testutil"
)

// recordingConverter emits a fixed grid and remembers every request.
type recordingConverter struct {
	reqs []convert.Request
}

func (c *recordingConverter) Convert(_ context.Context, _ string, req convert.Request) (string, error) {
	c.reqs = append(c.reqs, req)
	return render.Encode(testGrid(), render.ModeForeground), nil
}

func testGrid() render.Grid {
	return render.Grid{
		{{Glyph: 'a', Fg: render.RGB{R: 1, G: 2, B: 3}}, {Glyph: 'b', Fg: render.RGB{R: 4, G: 5, B: 6}}},
	}
}

// newBrowseModel builds a model against a stub API. The query "empty"
// matches nothing and "boom" fails; anything else returns two artworks,
// the second without an image.
func newBrowseModel(t *testing.T) (*Model, *recordingConverter) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/artworks/search":
			switch r.URL.Query().Get("q") {
			case "empty":
				fmt.Fprint(w, `{"pagination": {"total": 0}, "data": [], "config": {}}`)
			case "boom":
				http.Error(w, "boom", http.StatusInternalServerError)
			default:
				fmt.Fprint(w, `{
					"pagination": {"total": 2, "limit": 10, "total_pages": 1, "current_page": 1},
					"data": [
						{"id": 28560, "title": "The Bedroom", "artist_display": "Vincent van Gogh\nDutch, 1853-1890", "date_display": "1889", "image_id": "img-1"},
						{"id": 27992, "title": "A Sunday on La Grande Jatte", "artist_display": "Georges Seurat", "date_display": "1884/86", "image_id": ""}
					],
					"config": {}
				}`)
			}
		case strings.HasPrefix(r.URL.Path, "/iiif/"):
			w.Write([]byte("image bytes"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	conv := &recordingConverter{}
	m := New(artic.NewClient(srv.URL, srv.URL+"/iiif", time.Second), conv, render.ModeForeground, 10)
	m.SetSize(80, 24)
	return m, conv
}

// press feeds one key through Update and returns the resulting command.
func press(m *Model, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// drain executes a command, expanding batches, and returns the first
// message that is not a spinner frame.
func drain(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return msg
	}
	for _, c := range batch {
		if inner := c(); !isSpinnerTick(inner) {
			return inner
		}
	}
	t.Fatal("batch held only spinner ticks")
	return nil
}

func isSpinnerTick(msg tea.Msg) bool {
	_, ok := msg.(spinner.TickMsg)
	return ok
}

func loadResults(t *testing.T, m *Model) {
	t.Helper()
	m.searchInput.SetValue("van gogh")
	msg := drain(t, press(m, "enter"))
	m.Update(msg)
	if m.state != StateResults {
		t.Fatalf("state after search = %d, want StateResults", m.state)
	}
}

func loadView(t *testing.T, m *Model) {
	t.Helper()
	loadResults(t, m)
	msg := drain(t, press(m, "enter"))
	m.Update(msg)
	if m.state != StateView {
		t.Fatalf("state after render = %d, want StateView", m.state)
	}
}

// === Search Tests ===

func TestBrowse_InitialState(t *testing.T) {
	m, _ := newBrowseModel(t)

	if m.State() != StateSearch {
		t.Errorf("initial state = %d, want StateSearch", m.State())
	}
	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, "oeuvre") {
		t.Error("view is missing the header")
	}
	if !strings.Contains(view, "Search for an artwork") {
		t.Error("view is missing the search prompt")
	}
}

func TestBrowse_EmptyQueryIsIgnored(t *testing.T) {
	m, _ := newBrowseModel(t)
	m.searchInput.SetValue("   ")

	if cmd := press(m, "enter"); cmd != nil {
		t.Error("blank query produced a command")
	}
	if m.state != StateSearch {
		t.Errorf("state = %d, want StateSearch", m.state)
	}
}

func TestBrowse_SearchShowsResults(t *testing.T) {
	m, _ := newBrowseModel(t)
	m.searchInput.SetValue("van gogh")

	cmd := press(m, "enter")
	if m.state != StateSearching {
		t.Fatalf("state = %d, want StateSearching", m.state)
	}
	msg := drain(t, cmd)
	res, ok := msg.(searchResultMsg)
	if !ok {
		t.Fatalf("command produced %T, want searchResultMsg", msg)
	}
	m.Update(res)

	if m.state != StateResults {
		t.Fatalf("state = %d, want StateResults", m.state)
	}
	view := testutil.StripANSI(m.View())
	if !testutil.ContainsLine(view, `2 results for "van gogh"`) {
		t.Error("view is missing the results label")
	}
	line := testutil.FindLine(view, "The Bedroom")
	if !strings.HasPrefix(line, "> ") {
		t.Errorf("first result not under the cursor: %q", line)
	}
	if !strings.Contains(line, "Vincent van Gogh") {
		t.Errorf("result line is missing the artist: %q", line)
	}
	if !testutil.ContainsLine(view, "[no image]") {
		t.Error("image-less artwork is not flagged")
	}
}

func TestBrowse_SearchNoMatches(t *testing.T) {
	m, _ := newBrowseModel(t)
	m.searchInput.SetValue("empty")

	msg := drain(t, press(m, "enter"))
	m.Update(msg)

	if m.state != StateSearch {
		t.Fatalf("state = %d, want StateSearch", m.state)
	}
	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, `Nothing in the collection matches "empty"`) {
		t.Error("view is missing the no-matches notice")
	}
}

func TestBrowse_SearchFailure(t *testing.T) {
	m, _ := newBrowseModel(t)
	m.searchInput.SetValue("boom")

	msg := drain(t, press(m, "enter"))
	m.Update(msg)

	if m.state != StateError {
		t.Fatalf("state = %d, want StateError", m.state)
	}
	if !strings.Contains(testutil.StripANSI(m.View()), "Failed to search artworks") {
		t.Error("view is missing the failure message")
	}
}

func TestBrowse_ErrorBackReturnsToSearch(t *testing.T) {
	m, _ := newBrowseModel(t)
	m.searchInput.SetValue("boom")
	m.Update(drain(t, press(m, "enter")))

	press(m, "esc")
	if m.state != StateSearch {
		t.Errorf("state = %d, want StateSearch", m.state)
	}
}

// === Navigation Tests ===

func TestBrowse_CursorMoves(t *testing.T) {
	m, _ := newBrowseModel(t)
	loadResults(t, m)

	press(m, "j")
	if m.cursor.Pos() != 1 {
		t.Fatalf("cursor = %d after j, want 1", m.cursor.Pos())
	}
	line := testutil.FindLine(testutil.StripANSI(m.View()), "La Grande Jatte")
	if !strings.HasPrefix(line, "> ") {
		t.Errorf("cursor marker not on second result: %q", line)
	}

	press(m, "k")
	if m.cursor.Pos() != 0 {
		t.Errorf("cursor = %d after k, want 0", m.cursor.Pos())
	}
}

func TestBrowse_SlashStartsNewSearch(t *testing.T) {
	m, _ := newBrowseModel(t)
	loadResults(t, m)

	press(m, "/")
	if m.state != StateSearch {
		t.Fatalf("state = %d, want StateSearch", m.state)
	}
	if m.searchInput.Value() != "" {
		t.Errorf("search input still holds %q", m.searchInput.Value())
	}
	if len(m.results) == 0 {
		t.Error("previous results were thrown away")
	}
}

// === Render Tests ===

func TestBrowse_EnterRendersSelection(t *testing.T) {
	m, conv := newBrowseModel(t)
	loadResults(t, m)

	cmd := press(m, "enter")
	if m.state != StateRendering {
		t.Fatalf("state = %d, want StateRendering", m.state)
	}
	msg := drain(t, cmd)
	res, ok := msg.(renderResultMsg)
	if !ok {
		t.Fatalf("command produced %T, want renderResultMsg", msg)
	}
	if res.err != nil {
		t.Fatalf("render failed: %v", res.err)
	}
	m.Update(res)

	if m.state != StateView {
		t.Fatalf("state = %d, want StateView", m.state)
	}
	if len(conv.reqs) != 1 {
		t.Fatalf("converter ran %d times, want 1", len(conv.reqs))
	}
	// 24 rows minus a 4-line caption minus the help row.
	want := convert.Request{Columns: 80, Rows: 19, Mode: render.ModeForeground}
	if conv.reqs[0] != want {
		t.Errorf("converter request = %+v, want %+v", conv.reqs[0], want)
	}

	raw := m.View()
	if !strings.Contains(raw, "\x1b[38;2;1;2;3m") {
		t.Error("view is missing the art escape sequences")
	}
	view := testutil.StripANSI(raw)
	if !testutil.ContainsLine(view, "The Bedroom (1889)") {
		t.Error("view is missing the caption title")
	}
	if !testutil.ContainsLine(view, "https://www.artic.edu/artworks/28560") {
		t.Error("view is missing the artwork URL")
	}
}

func TestBrowse_RenderWithoutImageShowsCaption(t *testing.T) {
	m, conv := newBrowseModel(t)
	loadResults(t, m)

	press(m, "j")
	msg := drain(t, press(m, "enter"))
	res, ok := msg.(renderResultMsg)
	if !ok {
		t.Fatalf("command produced %T, want renderResultMsg", msg)
	}
	if res.err == nil {
		t.Fatal("rendering an image-less artwork did not report ErrNoImage")
	}
	m.Update(res)

	if m.state != StateView {
		t.Fatalf("state = %d, want StateView", m.state)
	}
	if len(conv.reqs) != 0 {
		t.Errorf("converter ran %d times without an image", len(conv.reqs))
	}
	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, "no digitized image") {
		t.Error("view is missing the no-image notice")
	}
	if !testutil.ContainsLine(view, "A Sunday on La Grande Jatte (1884/86)") {
		t.Error("view is missing the caption title")
	}
}

func TestBrowse_ViewBackToResults(t *testing.T) {
	m, _ := newBrowseModel(t)
	loadView(t, m)

	press(m, "esc")
	if m.state != StateResults {
		t.Fatalf("state = %d, want StateResults", m.state)
	}
	if m.art != "" {
		t.Error("art was not cleared on leaving the view")
	}
}

func TestBrowse_NextRendersFollowingArtwork(t *testing.T) {
	m, _ := newBrowseModel(t)
	loadView(t, m)

	cmd := press(m, "n")
	if m.state != StateRendering {
		t.Fatalf("state = %d, want StateRendering", m.state)
	}
	if m.cursor.Pos() != 1 {
		t.Errorf("cursor = %d after n, want 1", m.cursor.Pos())
	}
	if cmd == nil {
		t.Error("n produced no render command")
	}
}

func TestBrowse_ResizeReRendersView(t *testing.T) {
	m, conv := newBrowseModel(t)
	loadView(t, m)
	before := len(conv.reqs)

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.state != StateRendering {
		t.Fatalf("state after resize = %d, want StateRendering", m.state)
	}
	msg := drain(t, cmd)
	m.Update(msg)

	if m.state != StateView {
		t.Fatalf("state = %d, want StateView", m.state)
	}
	if len(conv.reqs) != before+1 {
		t.Fatalf("converter ran %d times, want %d", len(conv.reqs), before+1)
	}
	got := conv.reqs[len(conv.reqs)-1]
	if got.Columns != 100 {
		t.Errorf("re-render columns = %d, want 100", got.Columns)
	}
}

// === Quit Tests ===

func TestBrowse_QuitKeys(t *testing.T) {
	assertQuit := func(t *testing.T, cmd tea.Cmd) {
		t.Helper()
		if cmd == nil {
			t.Fatal("expected a quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatal("command did not produce QuitMsg")
		}
	}

	t.Run("esc from search", func(t *testing.T) {
		m, _ := newBrowseModel(t)
		assertQuit(t, press(m, "esc"))
	})
	t.Run("q from results", func(t *testing.T) {
		m, _ := newBrowseModel(t)
		loadResults(t, m)
		assertQuit(t, press(m, "q"))
	})
	t.Run("q from view", func(t *testing.T) {
		m, _ := newBrowseModel(t)
		loadView(t, m)
		assertQuit(t, press(m, "q"))
	})
	t.Run("ctrl+c anywhere", func(t *testing.T) {
		m, _ := newBrowseModel(t)
		loadResults(t, m)
		assertQuit(t, press(m, "ctrl+c"))
	})
}

// === Formatting Tests ===

func TestFormatArtwork(t *testing.T) {
	tests := []struct {
		name string
		in   artic.Artwork
		want string
	}{
		{
			name: "full metadata",
			in: artic.Artwork{
				Title:         "The Bedroom",
				DateDisplay:   "1889",
				ArtistDisplay: "Vincent van Gogh\nDutch, 1853-1890",
				ImageID:       "img-1",
			},
			want: "The Bedroom (1889) Vincent van Gogh",
		},
		{
			name: "no image tag",
			in: artic.Artwork{
				Title:       "A Sunday on La Grande Jatte",
				DateDisplay: "1884/86",
			},
			want: "A Sunday on La Grande Jatte (1884/86) [no image]",
		},
		{
			name: "untitled",
			in:   artic.Artwork{ImageID: "img-2"},
			want: "Untitled",
		},
		{
			name: "control characters stripped",
			in: artic.Artwork{
				Title:   "Clean\x1b[31m Title",
				ImageID: "img-3",
			},
			want: "Clean[31m Title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatArtwork(&tt.in); got != tt.want {
				t.Errorf("formatArtwork() = %q, want %q", got, tt.want)
			}
		})
	}
}
