// Package artic provides a client for the Art Institute of Chicago public API.
package artic

import "fmt"

// Artwork is one record from the artworks endpoint, limited to the fields
// the viewer needs for rendering and captioning.
type Artwork struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	ArtistDisplay string `json:"artist_display"`
	DateDisplay   string `json:"date_display"`
	ImageID       string `json:"image_id"`
}

// HasImage reports whether the artwork carries a renderable image. Plenty of
// records are catalogue-only and have no digitized image at all.
func (a Artwork) HasImage() bool {
	return a.ImageID != ""
}

// WebURL returns the public artwork page shown in the caption.
func (a Artwork) WebURL() string {
	return fmt.Sprintf("%s/artworks/%d", websiteURL, a.ID)
}

// searchResponse is the envelope wrapping every list endpoint.
type searchResponse struct {
	Pagination pagination `json:"pagination"`
	Data       []Artwork  `json:"data"`
	Config     apiConfig  `json:"config"`
}

// artworkResponse is the envelope wrapping a single-record fetch.
type artworkResponse struct {
	Data   Artwork   `json:"data"`
	Config apiConfig `json:"config"`
}

type pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

type apiConfig struct {
	IIIFURL    string `json:"iiif_url"`
	WebsiteURL string `json:"website_url"`
}
