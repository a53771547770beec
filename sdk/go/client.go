// Package contactrelay is a client for the contact form relay endpoint.
package contactrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultPath is the endpoint path of the relay.
const DefaultPath = "/api/send-email"

// Config holds the configuration for the relay client.
type Config struct {
	// BaseURL is the site root, e.g. "https://example.com".
	BaseURL string

	// Path overrides DefaultPath.
	Path string

	// HTTPClient is an optional custom HTTP client.
	// If nil, a default client with 15s timeout is used.
	HTTPClient *http.Client
}

func (c *Config) defaults() {
	if c.Path == "" {
		c.Path = DefaultPath
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
}

// Client posts submissions to the relay.
type Client struct {
	cfg Config
}

// NewClient creates a new relay client with the given configuration.
func NewClient(cfg Config) *Client {
	cfg.defaults()
	return &Client{cfg: cfg}
}

// Send posts s to the relay. Non-2xx answers are returned as *APIError.
func (c *Client) Send(ctx context.Context, s Submission) (*SendResult, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("contactrelay: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+c.cfg.Path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("contactrelay: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contactrelay: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("contactrelay: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	var result SendResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &result, nil
}
