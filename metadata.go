package skimmer

// Metadata holds page metadata resolved through ordered fallback chains.
type Metadata struct {
	// Title is never empty; the last link in its chain is "No title".
	Title string

	// Description may be empty, never absent.
	Description string

	// Date is nil when no rule produced a value. The value is reported
	// verbatim as found in the page, never normalized.
	Date *string
}

// MetadataResolver resolves title, description, and publish date from raw
// HTML. Each field is resolved by an ordered chain of rules; the first
// rule yielding a non-empty value wins.
type MetadataResolver interface {
	// Resolve parses the HTML once and runs all three chains.
	// titleFallback is consulted after the document's own title
	// candidates; it is typically the content extractor's title guess.
	Resolve(html string, titleFallback string) (*Metadata, error)
}
