package skimmer

import (
	"context"
	"encoding/json"
)

// SearchResult is a lightweight search-result stub as returned by the
// search aggregator, prior to any content extraction.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// SearchData is the decoded payload of one aggregator query. Results may
// be empty; an absent results key and an empty list both mean "no
// results", not failure. Raw preserves the aggregator's response body
// byte for byte for pass-through use.
type SearchData struct {
	Results []SearchResult  `json:"results"`
	Raw     json.RawMessage `json:"-"`
}

// Searcher queries a search aggregator endpoint.
type Searcher interface {
	// Search issues one query and returns the decoded result list.
	// A transport failure or malformed response is returned as an
	// error; a single attempt is made.
	Search(ctx context.Context, query string) (*SearchData, error)
}
