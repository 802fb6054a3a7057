package browse

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbaudet/oeuvre/internal/artic"
	"github.com/mbaudet/oeuvre/internal/convert"
	"github.com/mbaudet/oeuvre/internal/render"
	"github.com/mbaudet/oeuvre/internal/tombstone"
	"github.com/mbaudet/oeuvre/internal/ui"
)

// search queries the collection for artworks.
func search(client *artic.Client, query string, limit int) tea.Cmd {
	return func() tea.Msg {
		artworks, err := client.Search(context.Background(), query, limit)
		return searchResultMsg{query: query, artworks: artworks, err: err}
	}
}

// renderArtwork downloads and rasterizes one artwork sized to the current
// viewport, leaving room for the caption and the help line.
func renderArtwork(client *artic.Client, converter convert.Converter, a artic.Artwork, mode render.Mode, width, height int) tea.Cmd {
	return func() tea.Msg {
		caption := tombstone.Build(&a)
		art, err := buildArt(client, converter, &a, caption, mode, width, height)
		if err != nil {
			return renderResultMsg{caption: caption, err: err}
		}
		return renderResultMsg{art: art, caption: caption}
	}
}

// buildArt runs the image pipeline for one artwork at viewport size.
func buildArt(client *artic.Client, converter convert.Converter, a *artic.Artwork, caption []string, mode render.Mode, width, height int) (string, error) {
	ctx := context.Background()

	reserved, err := render.EstimateRows(caption, width)
	if err != nil {
		return "", err
	}
	rows := max(height-reserved-ui.ViewOverhead, 1)

	data, err := client.DownloadImage(ctx, a)
	if err != nil {
		return "", err
	}
	scratch, cleanup, err := convert.Scratch(data)
	if err != nil {
		return "", err
	}
	defer cleanup()

	raw, err := converter.Convert(ctx, scratch, convert.Request{
		Columns: width,
		Rows:    rows,
		Mode:    mode,
	})
	if err != nil {
		return "", err
	}
	grid, err := render.Decode(raw, mode)
	if err != nil {
		return "", err
	}
	return render.Compose(grid, mode), nil
}
