// Package openaip fetches the airport directory from the OpenAIP API and
// converts raw items into the internal record model.
//
// https://docs.openaip.net/#/Airports/get_airports
package openaip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/weglide/flugfeld/feature/airport/models"
)

// Config holds configuration for the OpenAIP client.
type Config struct {
	// Endpoint is the airports collection URL.
	Endpoint string `mapstructure:"endpoint" default:"https://api.core.openaip.net/api/airports"`
	// APIKey is sent as the x-openaip-api-key header.
	APIKey string `mapstructure:"api_key" default:""`
	// PageSize is the fixed page size of the collection endpoint.
	PageSize int `mapstructure:"page_size" default:"1000"`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

// Client downloads airports from OpenAIP.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates an OpenAIP client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 1000
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: logger,
	}
}

type pageResponse struct {
	TotalCount int       `json:"totalCount"`
	Items      []rawItem `json:"items"`
}

// FetchAll drives pagination until every page covering totalCount has been
// retrieved, and parses each raw item into an Airport. Any malformed item
// aborts the download; a partially validated batch must never reach the
// merge.
func (c *Client) FetchAll(ctx context.Context) ([]models.Airport, error) {
	first, err := c.fetchPage(ctx, 0)
	if err != nil {
		return nil, err
	}
	total := first.TotalCount
	c.logger.Info("Downloading airports from OpenAIP", zap.Int("total", total))

	var raw []rawItem
	for page := 1; page <= 1+total/c.cfg.PageSize; page++ {
		resp, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		raw = append(raw, resp.Items...)
		c.logger.Info("Downloaded page",
			zap.Int("page", page),
			zap.Int("airports", len(raw)),
			zap.Int("total", total))
	}

	airports := make([]models.Airport, 0, len(raw))
	for _, item := range raw {
		airport, err := parseItem(item)
		if err != nil {
			return nil, fmt.Errorf("openaip item %s (%s): %w", item.ID, item.Name, err)
		}
		airports = append(airports, airport)
	}
	return airports, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) (*pageResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build openaip request: %w", err)
	}
	req.Header.Set("x-openaip-api-key", c.cfg.APIKey)
	if page > 0 {
		q := req.URL.Query()
		q.Set("page", strconv.Itoa(page))
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openaip request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openaip returned status %d for page %d", resp.StatusCode, page)
	}

	var decoded pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode openaip page %d: %w", page, err)
	}
	return &decoded, nil
}
