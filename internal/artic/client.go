package artic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrNoImage is returned when an artwork has no digitized image. It marks a
// legitimate empty case, not a failure: the caller still has usable metadata.
var ErrNoImage = errors.New("artwork has no image")

// ErrNoResults is returned when a search matches nothing.
var ErrNoResults = errors.New("no artworks found")

const (
	defaultBaseURL = "https://api.artic.edu/api/v1"
	defaultIIIFURL = "https://www.artic.edu/iiif/2"
	websiteURL     = "https://www.artic.edu"
	userAgent      = "oeuvre/1.0 (https://github.com/mbaudet/oeuvre)"

	defaultTimeout = 15 * time.Second

	// artworkFields keeps responses small; the API returns every catalogued
	// field otherwise.
	artworkFields = "id,title,artist_display,date_display,image_id"

	// imageParams is the IIIF request tail (region, size, rotation,
	// quality). 843px wide is the largest rendition the museum serves
	// without restriction.
	imageParams = "full/843,/0/default.jpg"

	// randomPool caps how deep Random reaches into the collection. The API
	// refuses offsets past 10000 records.
	randomPool = 10000

	// searchConcurrency bounds parallel page fetches in SearchAll.
	searchConcurrency = 4
)

// Client provides access to the Art Institute of Chicago API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	iiifURL    string
	userAgent  string
}

// New creates a client against the public API with default settings.
func New() *Client {
	return NewClient("", "", 0)
}

// NewClient creates a client with custom endpoints and timeout. Empty or
// zero arguments keep the defaults.
func NewClient(baseURL, iiifURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if iiifURL == "" {
		iiifURL = defaultIIIFURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		iiifURL:    iiifURL,
		userAgent:  userAgent,
	}
}

// SetUserAgent overrides the User-Agent header sent with every request.
func (c *Client) SetUserAgent(ua string) {
	if ua != "" {
		c.userAgent = ua
	}
}

// Search returns up to limit artworks matching the query, in the API's
// relevance order.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Artwork, error) {
	resp, err := c.searchPage(ctx, query, limit, 1)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SearchAll fetches up to pages result pages of limit artworks each,
// concurrently, and returns them reassembled in page order.
func (c *Client) SearchAll(ctx context.Context, query string, limit, pages int) ([]Artwork, error) {
	first, err := c.searchPage(ctx, query, limit, 1)
	if err != nil {
		return nil, err
	}
	if pages > first.Pagination.TotalPages {
		pages = first.Pagination.TotalPages
	}
	if pages <= 1 {
		return first.Data, nil
	}

	byPage := make([][]Artwork, pages)
	byPage[0] = first.Data

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(searchConcurrency)
	for page := 2; page <= pages; page++ {
		g.Go(func() error {
			resp, err := c.searchPage(ctx, query, limit, page)
			if err != nil {
				return err
			}
			byPage[page-1] = resp.Data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Artwork
	for _, page := range byPage {
		all = append(all, page...)
	}
	return all, nil
}

// searchPage fetches one page of search results.
func (c *Client) searchPage(ctx context.Context, query string, limit, page int) (*searchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("fields", artworkFields)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))

	var resp searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/artworks/search?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("search artworks: %w", err)
	}
	return &resp, nil
}

// Artwork fetches a single artwork by its API id.
func (c *Client) Artwork(ctx context.Context, id int) (*Artwork, error) {
	params := url.Values{}
	params.Set("fields", artworkFields)

	reqURL := fmt.Sprintf("%s/artworks/%d?%s", c.baseURL, id, params.Encode())
	var resp artworkResponse
	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("fetch artwork %d: %w", id, err)
	}
	return &resp.Data, nil
}

// Random returns one artwork drawn from the collection listing. It probes
// the total count first, then fetches a single record at a random offset.
func (c *Client) Random(ctx context.Context) (*Artwork, error) {
	probe, err := c.listPage(ctx, 1, 1)
	if err != nil {
		return nil, err
	}
	pool := min(probe.Pagination.Total, randomPool)
	if pool < 1 {
		return nil, ErrNoResults
	}

	resp, err := c.listPage(ctx, 1, rand.IntN(pool)+1)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, ErrNoResults
	}
	return &resp.Data[0], nil
}

// listPage fetches one page of the plain collection listing.
func (c *Client) listPage(ctx context.Context, limit, page int) (*searchResponse, error) {
	params := url.Values{}
	params.Set("fields", artworkFields)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))

	var resp searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/artworks?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	return &resp, nil
}

// ImageURL returns the IIIF URL for an artwork's primary image.
func (c *Client) ImageURL(a *Artwork) (string, error) {
	if !a.HasImage() {
		return "", ErrNoImage
	}
	return fmt.Sprintf("%s/%s/%s", c.iiifURL, a.ImageID, imageParams), nil
}

// DownloadImage fetches the artwork's primary image bytes from the IIIF
// server. A 404 maps to ErrNoImage: some records reference images the
// server no longer holds.
func (c *Client) DownloadImage(ctx context.Context, a *Artwork) ([]byte, error) {
	imageURL, err := c.ImageURL(a)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoImage
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	return data, nil
}

// getJSON performs one GET and decodes the JSON body. Single attempt per
// call: retries are the caller's business, and the museum API does not
// rate-limit polite clients.
func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
