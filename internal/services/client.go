// Authenticated JSON transport for the Spotify Web API
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/desertthunder/spotlist/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// APIError is returned for any non-2xx response.
//
// Message holds the provider's error.message when the body carries one, else the HTTP status text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

// Unwrap lets callers match any transport failure with [shared.ErrAPIRequest].
func (e *APIError) Unwrap() error {
	return shared.ErrAPIRequest
}

// errorEnvelope is Spotify's regular error object.
type errorEnvelope struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client issues GET/POST/DELETE calls against a base URL with a static bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOption configures a [Client].
type ClientOption func(*Client)

// WithHTTPClient sets the underlying [http.Client]. Its transport is wrapped with the bearer token.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRateLimit paces requests to rps per second. Zero or less disables pacing.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewClient creates a [Client] for baseURL that authorizes every request with token.
//
// The token is attached by an [oauth2.Transport] over a static token source; it is never refreshed.
func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = shared.DefaultBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Inf, 0),
	}
	for _, opt := range opts {
		opt(c)
	}

	base := c.httpClient
	c.httpClient = &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   base.Transport,
		},
		CheckRedirect: base.CheckRedirect,
		Jar:           base.Jar,
		Timeout:       base.Timeout,
	}

	return c
}

// BaseURL returns the API root requests are issued against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues an authenticated GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

// Post issues an authenticated POST with an empty body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, nil, out)
}

// Delete issues an authenticated DELETE carrying payload as JSON and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, payload, out any) error {
	return c.doRequest(ctx, http.MethodDelete, path, payload, out)
}

// doRequest performs an authenticated HTTP request to the API.
//
// An empty response body leaves out untouched so callers can detect absent fields.
func (c *Client) doRequest(ctx context.Context, method, path string, body, out any) error {
	if c.token == "" {
		return fmt.Errorf("%w: no access token configured", shared.ErrMissingCredentials)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrFetch, err)
	}

	return nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}
