// ABOUTME: Standard HTTP client with retry logic and client-side rate limiting
// ABOUTME: Paces listing fan-outs so the upstream source is never hammered

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"topicpics-api/core/interfaces"
)

const (
	maxRetries       = 3
	defaultUserAgent = "topicpics-api/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using the standard
// library, with a token-bucket limiter applied before every request
type StandardHTTPClient struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewStandardHTTPClient creates an HTTP client with the specified timeout and
// request pacing. requestsPerSecond <= 0 disables the limiter.
func NewStandardHTTPClient(timeout time.Duration, requestsPerSecond float64, userAgent string) *StandardHTTPClient {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		limiter:   limiter,
		userAgent: userAgent,
	}
}

// Get performs an HTTP GET request, waiting for the limiter first
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		// Close body for retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
