package mgmt

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/oauth2"
)

// Config contains configuration for a Management API client.
//
// Example:
//
//	cfg := &mgmt.Config{
//	  Domain:    "tenant.example-idp.com",
//	  AuthToken: os.Getenv("ACTIONS_API_TOKEN"),
//	}
type Config struct {
	// Domain is the tenant domain. A bare host gets the https scheme; a full
	// URL is used as given.
	// Example: "tenant.example-idp.com"
	Domain string `json:"domain"`

	// AuthToken is a Management API access token sent as a Bearer token.
	AuthToken string `json:"-"` // Don't marshal auth token to JSON

	// TokenSource supplies the access token instead of AuthToken. Acquiring
	// and refreshing tokens is left to the caller.
	TokenSource oauth2.TokenSource `json:"-"`

	// TLSVerify controls TLS certificate verification
	// Set to false only for development/testing with self-signed certs
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout for API requests
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// Logger receives one debug line per round trip (optional).
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		TLSVerify: &tlsVerify,
		Timeout:   30 * time.Second,
	}
}

// BaseURL returns the normalized tenant URL without a trailing slash.
func (c *Config) BaseURL() (string, error) {
	raw := strings.TrimSpace(c.Domain)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsedURL, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid domain: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", fmt.Errorf("domain must use http or https scheme, got: %s", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return "", fmt.Errorf("domain has no host: %q", c.Domain)
	}

	return strings.TrimRight(parsedURL.String(), "/"), nil
}

// Validate checks if the configuration is valid. All problems are reported
// together.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Domain == "" {
		result = multierror.Append(result, fmt.Errorf("domain is required"))
	} else if _, err := c.BaseURL(); err != nil {
		result = multierror.Append(result, err)
	}

	if c.AuthToken == "" && c.TokenSource == nil {
		result = multierror.Append(result, fmt.Errorf("api_token is required"))
	}

	if c.Timeout < 0 {
		result = multierror.Append(result,
			fmt.Errorf("timeout must not be negative, got: %v", c.Timeout))
	}

	return result.ErrorOrNil()
}

// NewHTTPClient creates a configured HTTP client that attaches the bearer
// token to every request.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	// Configure TLS verification
	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout: c.Timeout,
		Transport: &oauth2.Transport{
			Source: c.tokenSource(),
			Base:   transport,
		},
	}
}

func (c *Config) tokenSource() oauth2.TokenSource {
	if c.TokenSource != nil {
		return c.TokenSource
	}
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: c.AuthToken,
		TokenType:   "Bearer",
	})
}
