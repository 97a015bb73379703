// Package axiora provides a client for the Axiora REST API: financial data
// for Japanese listed companies. The client is the shared HTTP adapter used by
// the agent tools in tools/ and the filing-translation retriever in retriever/.
package axiora

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Version identifies this library in the User-Agent header.
const Version = "0.3.0"

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.axiora.dev/v1"

// EnvAPIKey is the environment variable consulted when no key is passed explicitly.
const EnvAPIKey = "AXIORA_API_KEY"

const defaultTimeout = 30 * time.Second

// Params holds query-string parameters for a request. Nil-valued entries are
// dropped before the request is sent, so optional parameters can always be
// set and left nil when absent.
type Params map[string]interface{}

// Client is the shared HTTP adapter. One Client owns one connection pool;
// every tool bound to it reuses that pool. Construct with New and share it.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the API key explicitly. Takes precedence over AXIORA_API_KEY.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithBaseURL overrides the API root, e.g. for a staging environment or a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout sets the per-request timeout. Default is 30s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client entirely.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a Client. The API key is resolved once, here: an explicit
// WithAPIKey wins, otherwise AXIORA_API_KEY is read from the environment.
// A missing key is a construction error; it never reaches the network.
// The HTTP client is created eagerly so there is no lazy shared state.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.apiKey == "" {
		c.apiKey = os.Getenv(EnvAPIKey)
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf(
			"axiora: API key not found: set the %s environment variable or pass axiora.WithAPIKey", EnvAPIKey)
	}
	return c, nil
}

// String redacts the API key. The key must never appear in logs or dumps.
// Value receiver so both Client and *Client format through it.
func (c Client) String() string {
	return fmt.Sprintf("axiora.Client{base_url: %s, api_key: REDACTED}", c.baseURL)
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL }

// Request issues an HTTP call against the API and returns the decoded JSON
// body, whatever its shape. path must start with "/". Nil params entries are
// stripped. A non-2xx status yields a *StatusError carrying the raw response;
// nothing is retried or logged here.
func (c *Client) Request(ctx context.Context, method, path string, params Params) (interface{}, error) {
	url := strings.TrimRight(c.baseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("axiora: build request: %w", err)
	}
	req.URL.RawQuery = params.encode()
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "axiora-go/"+Version)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("axiora: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("axiora: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       body,
			Header:     resp.Header,
		}
	}
	if len(body) == 0 {
		return nil, nil
	}
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("axiora: decode response: %w", err)
	}
	return v, nil
}

// Ping checks connectivity and credentials against the /coverage endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Request(ctx, http.MethodGet, "/coverage", nil)
	return err
}
