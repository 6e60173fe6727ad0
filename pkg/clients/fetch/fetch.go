// Package fetch retrieves remote content over HTTP with retries on
// transient failures.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

type Client struct {
	http *retryablehttp.Client
}

func NewClient() *Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 3
	c.Logger = nil
	// Exhausted retries must still surface the final status code so the
	// moderators can map it to their modality-specific reasons.
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{http: c}
}

// Fetch downloads the content at url, returning the body and status code.
// Non-200 responses are not errors here; the caller decides what they mean.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, int, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body of %s: %w", url, err)
	}

	return body, resp.StatusCode, nil
}
