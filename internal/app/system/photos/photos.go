// Package photos enriches listings with an image from the Google Places API.
// The site stores at most the photo URL; images are served by Google.
package photos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// ErrNoPhoto is returned when the place exists but has no photos.
var ErrNoPhoto = errors.New("place has no photos")

// Client talks to the Places Details API.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// NewClient creates a Places client. The API key comes from configuration;
// an empty key disables photo fetching at the caller.
func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

// detailsResponse is the subset of the Place Details payload we read.
type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
			Width          int    `json:"width"`
			Height         int    `json:"height"`
		} `json:"photos"`
	} `json:"result"`
}

// PhotoURL resolves a display URL for the first photo of a place.
func (c *Client) PhotoURL(ctx context.Context, placeID string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("places api key not configured")
	}

	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "photo")
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/details/json?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("place details: unexpected status %d", resp.StatusCode)
	}

	var details detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return "", fmt.Errorf("place details: decode: %w", err)
	}

	switch details.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return "", ErrNoPhoto
	default:
		return "", fmt.Errorf("place details: status %s", details.Status)
	}

	if len(details.Result.Photos) == 0 {
		return "", ErrNoPhoto
	}

	ref := details.Result.Photos[0].PhotoReference
	p := url.Values{}
	p.Set("maxwidth", "800")
	p.Set("photo_reference", ref)
	p.Set("key", c.apiKey)
	return c.baseURL + "/photo?" + p.Encode(), nil
}
