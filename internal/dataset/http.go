package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPProvider fetches the dataset with a GET request.
type HTTPProvider struct {
	url    string
	client *http.Client
}

// NewHTTP creates an HTTPProvider. A nil client gets a 30 second timeout.
func NewHTTP(url string, client *http.Client) *HTTPProvider {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPProvider{url: url, client: client}
}

// Open performs the request and returns the response body.
func (h *HTTPProvider) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset: build request: %w", err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset: fetch %s: %w", h.url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("dataset: fetch %s: unexpected status %d", h.url, resp.StatusCode)
	}
	return resp.Body, nil
}

// Name returns the dataset URL.
func (h *HTTPProvider) Name() string {
	return h.url
}
