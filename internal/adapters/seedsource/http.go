// Package seedsource fetches seed files from remote locations.
package seedsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxSeedBytes caps the size of a downloaded seed file.
const maxSeedBytes = 4 << 20

// HTTPFetcher downloads seed files over HTTP(S).
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a fetcher using client, or http.DefaultClient when nil.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client}
}

// Fetch returns the body served at url. Non-200 responses are errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/yaml, text/yaml, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seed file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed source returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSeedBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	if len(body) > maxSeedBytes {
		return nil, fmt.Errorf("seed file exceeds %d bytes", maxSeedBytes)
	}
	return body, nil
}
