package skimmer

// ExtractResult holds the readable content isolated from an HTML page.
type ExtractResult struct {
	// Title is the extractor's own guess at the page title, taken from
	// document metadata. May be empty.
	Title string

	// Text is the main article text with boilerplate (nav, footer,
	// sidebar, ads) removed. Empty when no article-like region exists.
	Text string

	// ContentHTML is the same main content as clean HTML, for callers
	// that want to re-render it (e.g. as markdown).
	ContentHTML string
}

// Extractor isolates the primary readable content of an HTML page,
// discarding navigation, ads, comments, and other chrome.
type Extractor interface {
	// Extract processes raw HTML and returns the main content. The
	// source URL lets the extractor resolve relative links inside the
	// content. An empty result is not an error: it means the page has
	// no article-like region (a listing, an app shell).
	Extract(html string, sourceURL string) (*ExtractResult, error)
}
