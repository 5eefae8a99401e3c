package mgmt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Client issues requests against a tenant's Management API. It holds no
// mutable state after construction and is safe for concurrent use.
type Client struct {
	config  *Config
	baseURL string
	client  *http.Client
	logger  hclog.Logger

	actions *ActionsEntity
}

// NewClient creates a new Management API client.
func NewClient(cfg *Config) (*Client, error) {
	// Apply defaults
	if cfg.TLSVerify == nil {
		cfg.TLSVerify = DefaultConfig().TLSVerify
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid management client config: %w", err)
	}

	baseURL, err := cfg.BaseURL()
	if err != nil {
		return nil, err
	}

	c := &Client{
		config:  cfg,
		baseURL: baseURL,
		client:  cfg.NewHTTPClient(),
		logger:  cfg.Logger.Named("actions-client"),
	}
	c.actions = &ActionsEntity{client: c}

	c.logger.Debug("management client configured", "base_url", baseURL, "timeout", cfg.Timeout)

	return c, nil
}

// BaseURL returns the tenant URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Actions returns the entity for the /api/v2/actions endpoints.
func (c *Client) Actions() *ActionsEntity {
	return c.actions
}

// do executes a single HTTP round trip. A nil body sends no payload; a nil
// result discards the response body.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("request complete",
		"method", method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp, respBody)
	}

	// Decode response if result is provided
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
