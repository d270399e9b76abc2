// Package readability implements skimmer.Extractor using go-readability,
// a port of Mozilla's Readability. It is an alternative to the trafilatura
// extractor; it tends to keep more of the page.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/skimmer"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements skimmer.Extractor at compile time.
var _ skimmer.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to isolate the main article content
// from raw HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. A page
// readability cannot make sense of yields an empty result, not an error.
func (e *Extractor) Extract(rawHTML string, sourceURL string) (*skimmer.ExtractResult, error) {
	if rawHTML == "" {
		return nil, skimmer.Errorf(skimmer.EINVALID, "empty HTML input")
	}

	pageURL, err := url.Parse(sourceURL)
	if err != nil {
		pageURL = nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return &skimmer.ExtractResult{}, nil
	}

	return &skimmer.ExtractResult{
		Title:       article.Title,
		Text:        article.TextContent,
		ContentHTML: article.Content,
	}, nil
}
