package contentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driven"
)

const (
	// DefaultBaseURL is the management API endpoint.
	DefaultBaseURL = "https://mapi.storyblok.com/v1"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Ensure Client implements the full port.
var _ driven.ContentClient = (*Client)(nil)

// Client talks to the space management API. Credentials are bound at
// construction; spaces are addressed per call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *RateLimiter
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used for self-hosted backends
// and tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a management API client authenticated with the given
// bearer token. A missing token is a configuration error detected before
// any remote call.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	hc := oauth2.NewClient(context.Background(), ts)
	hc.Timeout = DefaultTimeout

	c := &Client{
		httpClient: hc,
		baseURL:    DefaultBaseURL,
		limiter:    NewRateLimiter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do performs one API call: waits for the rate limiter, sends the request
// and decodes the enveloped response into out. The response headers are
// returned for pagination.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (http.Header, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.limiter.UpdateFromResponse(resp)

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{RetryAfter: c.limiter.RetryAfter()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(bytes.TrimSpace(msg)),
			URL:        url,
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.Header, nil
}

// RateLimiter returns the client's rate limiter for external inspection.
func (c *Client) RateLimiter() *RateLimiter {
	return c.limiter
}
