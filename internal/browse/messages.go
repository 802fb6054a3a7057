package browse

import "github.com/mbaudet/oeuvre/internal/artic"

// searchResultMsg is sent when a collection search completes.
type searchResultMsg struct {
	query    string
	artworks []artic.Artwork
	err      error
}

// renderResultMsg is sent when the selected artwork has been rendered.
// caption is always populated, art only on success.
type renderResultMsg struct {
	art     string
	caption []string
	err     error
}
