// Package advice talks to the external services that answer chat, recipe and
// exercise questions. Everything behind Fetcher is a collaborator; the core
// never depends on how long it takes or how it is implemented.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the hosted advice backend.
const DefaultBaseURL = "https://diabeyes-server.vercel.app"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 15 * time.Second

// ErrTimeout is returned when the collaborator does not answer in time.
var ErrTimeout = errors.New("advice request timed out")

// Request is a single call to an advice collaborator.
type Request struct {
	Path    string // e.g. "/api/exercise-suggestions"
	Payload any
}

// Response is the raw answer from a collaborator.
type Response struct {
	Status int
	Body   []byte
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to parse advice response: %w", err)
	}
	return nil
}

// Fetcher answers advice requests. Implementations return a response,
// ErrTimeout, or some other error.
type Fetcher interface {
	FetchAdvice(ctx context.Context, req Request) (*Response, error)
}

// Client is an HTTP Fetcher that POSTs JSON payloads.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new advice client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Endpoint returns the full URL for a request path.
func (c *Client) Endpoint(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}

// FetchAdvice sends the request payload as JSON and returns the response body.
func (c *Client) FetchAdvice(ctx context.Context, r Request) (*Response, error) {
	data, err := json.Marshal(r.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal advice request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(r.Path), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create advice request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %s", ErrTimeout, r.Path)
		}
		return nil, fmt.Errorf("advice request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %s", ErrTimeout, r.Path)
		}
		return nil, fmt.Errorf("failed to read advice response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	return &Response{Status: resp.StatusCode, Body: body}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsTimeout checks if an error is an advice timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// Verify interface compliance
var _ Fetcher = (*Client)(nil)
