package apod

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBody bounds how much of a response is read.
const maxBody = 1 << 20

// HTTPClient performs single-attempt GET requests.
type HTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewHTTPClient creates a new HTTP client with the given timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: "Stardeck/1.0",
	}
}

// GetResult contains the result of a GET request.
type GetResult struct {
	StatusCode int
	Body       []byte
	Duration   time.Duration
}

// Get sends one GET request. Any non-2xx status is returned as an error
// alongside the result.
func (c *HTTPClient) Get(ctx context.Context, url string) (*GetResult, error) {
	result := &GetResult{}
	start := time.Now()
	defer func() { result.Duration = time.Since(start) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return result, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Body, err = io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return result, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return result, nil
}
