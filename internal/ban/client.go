// Package ban proxies the Base Adresse Nationale geocoding service.
package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "casamx/internal/errors"
)

// Suggestion is one autocomplete candidate returned by BAN.
type Suggestion struct {
	Label      string   `json:"label"`
	City       *string  `json:"city,omitempty"`
	PostalCode *string  `json:"postal_code,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
	Score      *float64 `json:"score,omitempty"`
	Source     string   `json:"source"`
}

// Client calls the BAN search endpoint.
type Client interface {
	Search(ctx context.Context, query string, limit int) ([]Suggestion, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a BAN client with a bounded request timeout. Calls fail
// fast on timeout or non-200; nothing is retried.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// geoJSON mirrors the subset of the BAN response we consume.
type geoJSON struct {
	Features []struct {
		Properties struct {
			Label    string   `json:"label"`
			City     *string  `json:"city"`
			Postcode *string  `json:"postcode"`
			Score    *float64 `json:"score"`
		} `json:"properties"`
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
	} `json:"features"`
}

func (c *httpClient) Search(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build ban request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrUpstream, resp.StatusCode)
	}

	var payload geoJSON
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", apperrors.ErrUpstream, err)
	}

	suggestions := make([]Suggestion, 0, len(payload.Features))
	for _, feat := range payload.Features {
		s := Suggestion{
			Label:      feat.Properties.Label,
			City:       feat.Properties.City,
			PostalCode: feat.Properties.Postcode,
			Score:      feat.Properties.Score,
			Source:     "ban",
		}
		if len(feat.Geometry.Coordinates) >= 2 {
			lon, lat := feat.Geometry.Coordinates[0], feat.Geometry.Coordinates[1]
			s.Lng = &lon
			s.Lat = &lat
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, nil
}
