// internal/storefront/client.go
package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/javajoker/artwork-storefront/internal/models"
	"github.com/javajoker/artwork-storefront/internal/utils"
)

// CatalogSource is where a session loads its data from.
type CatalogSource interface {
	FetchArtworks(ctx context.Context) ([]models.ArtworkTree, error)
	FetchMenu(ctx context.Context) ([]models.MenuItem, error)
}

// StatusError is a non-200 answer from the storefront API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("storefront api returned %d", e.StatusCode)
	}
	return fmt.Sprintf("storefront api returned %d: %s", e.StatusCode, e.Message)
}

// Client reads the catalog endpoints of the storefront API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for baseURL. A zero timeout leaves requests
// bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) FetchArtworks(ctx context.Context) ([]models.ArtworkTree, error) {
	artworks := make([]models.ArtworkTree, 0)
	if err := c.getJSON(ctx, "/api/artworks", &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

func (c *Client) FetchMenu(ctx context.Context) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0)
	if err := c.getJSON(ctx, "/api/menu", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr utils.APIError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
