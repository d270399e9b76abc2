// Package searxng provides a skimmer.Searcher backed by a SearXNG
// metasearch instance's JSON API.
package searxng

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/skimmer"
)

// DefaultSearchTimeout is the default timeout for search requests.
// Kept consistent with http.DefaultFetchTimeout (10s).
const DefaultSearchTimeout = 10 * time.Second

// userAgent identifies requests as coming from a regular desktop browser.
// Public SearXNG instances commonly block bare Go clients.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Client implements skimmer.Searcher at compile time.
var _ skimmer.Searcher = (*Client)(nil)

// Client queries a SearXNG instance for search result stubs.
type Client struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultSearchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a Client for the given SearXNG base URL
// (e.g. "https://searx.example.org").
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		timeout:  DefaultSearchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// Search issues one GET to <endpoint>/search with q and format=json query
// parameters and decodes the result list. A response without a results key
// decodes as an empty list, which is not an error. The undecoded body is
// retained in SearchData.Raw for pass-through callers.
func (c *Client) Search(ctx context.Context, query string) (*skimmer.SearchData, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, skimmer.Errorf(skimmer.EINVALID, "invalid search endpoint %q: %v", c.endpoint, err)
	}
	u = u.JoinPath("search")

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, skimmer.Errorf(skimmer.EINVALID, "invalid search request: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, skimmer.Errorf(skimmer.EUNAVAILABLE, "search %q: %v", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, skimmer.Errorf(skimmer.EUNAVAILABLE, "search endpoint returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, skimmer.Errorf(skimmer.EUNAVAILABLE, "read search response: %v", err)
	}

	data := &skimmer.SearchData{Raw: body}
	if err := json.Unmarshal(body, data); err != nil {
		return nil, skimmer.Errorf(skimmer.EUNAVAILABLE, "search endpoint returned malformed JSON: %v", err)
	}

	return data, nil
}
