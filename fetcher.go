package skimmer

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single GET request for the URL and returns the
	// response body. The context controls timeout and cancellation.
	// A transport error, timeout, or non-2xx status is returned as an
	// error; no retries are attempted.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
