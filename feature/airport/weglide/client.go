// Package weglide queries the WeGlide API for airport usage statistics.
package weglide

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/weglide/flugfeld/feature/airport/enrich"
)

// Config holds configuration for the WeGlide client.
type Config struct {
	// Endpoint is the airport resource URL.
	Endpoint string `mapstructure:"endpoint" default:"https://api.weglide.org/v1/airport"`
	// UserAgent identifies this tool to the API.
	UserAgent string `mapstructure:"user_agent" default:"WeGlide/1.0 Airport launches"`
	// DelayMillis is the pause between consecutive lookups.
	DelayMillis int `mapstructure:"delay_millis" default:"200"`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Delay returns the configured lookup spacing.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMillis) * time.Millisecond
}

// Client fetches launch counts. It implements enrich.LaunchSource.
type Client struct {
	cfg  Config
	http *http.Client
}

var _ enrich.LaunchSource = (*Client)(nil)

// NewClient creates a WeGlide client.
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

type airportResponse struct {
	Stats struct {
		Count *int `json:"count"`
	} `json:"stats"`
}

// LaunchesFor returns the launch count recorded for a WeGlide airport id.
// A 404, or a response without a count, means the airport is not on WeGlide
// yet. Any other non-200 status is an error the caller must treat as fatal.
func (c *Client) LaunchesFor(ctx context.Context, weglideID int) (int, bool, error) {
	url := fmt.Sprintf("%s/%d", c.cfg.Endpoint, weglideID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to build weglide request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, false, fmt.Errorf("weglide request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("weglide returned status %d for airport %d", resp.StatusCode, weglideID)
	}

	var decoded airportResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, false, fmt.Errorf("failed to decode weglide response for airport %d: %w", weglideID, err)
	}
	if decoded.Stats.Count == nil {
		return 0, false, nil
	}
	return *decoded.Stats.Count, true, nil
}
