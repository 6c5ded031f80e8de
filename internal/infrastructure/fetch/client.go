package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/basketwise/backend/internal/domain"
)

// maxBodyBytes caps how much of a retailer response is read
const maxBodyBytes = 8 << 20

// Client issues GET requests against retailer sites and APIs
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxBody    int64
	debug      bool
}

// NewClient creates a new fetch client
func NewClient(userAgent string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		maxBody:   maxBodyBytes,
	}
}

// SetDebug enables or disables request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Fetch executes a GET request and returns the response body.
// Network failures, non-2xx statuses and oversized bodies are reported as domain.ErrTransport.
func (c *Client) Fetch(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	if c.debug {
		log.Printf("[Fetch] GET %s", url)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrTransport, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", domain.ErrTransport, c.maxBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[Fetch] Unexpected status %d for %s", resp.StatusCode, url)
		return nil, fmt.Errorf("%w: status %d", domain.ErrTransport, resp.StatusCode)
	}

	if c.debug {
		log.Printf("[Fetch] %d bytes from %s", len(body), url)
	}

	return body, nil
}
