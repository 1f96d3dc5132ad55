// Package client is the Go API client for the FitFusion backend. It owns the
// session token, attaches it to every request, and drives an optional global
// loading indicator around mutating requests.
package client

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

// Notifier receives loading indicator callbacks. Show is invoked before every
// non-GET request is dispatched and Hide exactly once when that request
// settles, whether it succeeded or failed. Overlapping requests call the pair
// independently, so an implementation that wants a single indicator should
// keep its own in-flight count.
type Notifier interface {
	Show(message string)
	Hide()
}

// noopNotifier is used when no Notifier is supplied.
type noopNotifier struct{}

func (noopNotifier) Show(string) {}
func (noopNotifier) Hide()       {}

// APIError is an error response from the server. Message carries the server's
// own message text verbatim so callers can surface it directly.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// IsAuthError reports whether err is an APIError with a 401 status.
func IsAuthError(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// Client is the configured HTTP client for the FitFusion API. All requests
// flow through do, which attaches the bearer token and drives the notifier.
// The client performs no retries and no error translation beyond APIError.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	notifier   Notifier
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithNotifier installs the loading indicator callbacks.
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithTokenStore overrides the default in-memory token store.
func WithTokenStore(ts TokenStore) Option {
	return func(c *Client) { c.tokens = ts }
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     NewMemoryTokenStore(),
		notifier:   noopNotifier{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tokens exposes the client's token store.
func (c *Client) Tokens() TokenStore {
	return c.tokens
}

// request describes one API call for do.
type request struct {
	method string
	path   string // e.g. "/api/workouts"
	query  string
	body   io.Reader
	// contentType is the body's content type. JSON when jsonBody was used;
	// for multipart it must be the writer's FormDataContentType so the
	// transport keeps the boundary parameter intact.
	contentType string
	loadingMsg  string
}

// jsonBody encodes v for use as a request body.
func jsonBody(v any) (io.Reader, string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(data), "application/json", nil
}

// do executes one API request and decodes a JSON response into out (unless
// out is nil or the response has no content). The bearer token is attached
// when present. For non-GET requests the notifier's Show fires before
// dispatch and Hide exactly once after the request settles.
func (c *Client) do(ctx context.Context, req request, out any) error {
	url := c.baseURL + req.path
	if req.query != "" {
		url += "?" + req.query
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, url, req.body)
	if err != nil {
		return err
	}

	if token := c.tokens.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}

	if req.method != http.MethodGet {
		msg := req.loadingMsg
		if msg == "" {
			msg = "Processing..."
		}
		c.notifier.Show(msg)
		defer c.notifier.Hide()
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeAPIError builds an APIError from an error response, preserving the
// server's message text.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	} else if len(body) > 0 {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
