// Package nominatim reverse-geocodes coordinates to ISO-3166-2 sub-region
// codes via the OpenStreetMap Nominatim service.
//
// Nominatim's usage policy allows at most one request per second; the
// enrichment pass that drives this client owns the pacing.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/weglide/flugfeld/feature/airport/enrich"
)

// Config holds configuration for the Nominatim client.
type Config struct {
	// Endpoint is the reverse geocoding URL.
	Endpoint string `mapstructure:"endpoint" default:"https://nominatim.openstreetmap.org/reverse"`
	// UserAgent identifies this tool, as the usage policy requires.
	UserAgent string `mapstructure:"user_agent" default:"WeGlide/1.0 Match airport to country and region"`
	// DelayMillis is the pause between consecutive requests.
	DelayMillis int `mapstructure:"delay_millis" default:"1000"`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Delay returns the configured request spacing.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMillis) * time.Millisecond
}

// Client resolves sub-regions. It implements enrich.Geocoder.
type Client struct {
	cfg  Config
	http *http.Client
}

var _ enrich.Geocoder = (*Client)(nil)

// NewClient creates a Nominatim client.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

type reverseResponse struct {
	Address struct {
		Level4 string `json:"ISO3166-2-lvl4"`
		Level6 string `json:"ISO3166-2-lvl6"`
	} `json:"address"`
}

// ResolveSubregion returns the ISO-3166-2 code at the coordinate, preferring
// the level-4 subdivision and falling back to level 6. A missing code or a
// non-200 status is an error: the record then needs a manual region entry.
func (c *Client) ResolveSubregion(ctx context.Context, lon, lat float64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build nominatim request: %w", err)
	}
	q := req.URL.Query()
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("format", "json")
	q.Set("zoom", "15")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	region := decoded.Address.Level4
	if region == "" {
		region = decoded.Address.Level6
	}
	if region == "" {
		return "", fmt.Errorf("no ISO3166-2 code at (%f, %f)", lon, lat)
	}
	return region, nil
}
