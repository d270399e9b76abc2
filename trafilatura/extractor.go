// Package trafilatura implements skimmer.Extractor using go-trafilatura's
// boilerplate-removal heuristics, which score DOM nodes by text density,
// link density, and tag semantics to isolate the primary article body.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/skimmer"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements skimmer.Extractor at compile time.
var _ skimmer.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate the main article content
// from raw HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text
// plus clean HTML, along with the library's own title guess. An empty
// result means no article-like region was found; that is not an error.
func (e *Extractor) Extract(rawHTML string, sourceURL string) (*skimmer.ExtractResult, error) {
	if rawHTML == "" {
		return nil, skimmer.Errorf(skimmer.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(sourceURL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		// go-trafilatura reports an unextractable page as an error;
		// under this contract that is the no-content case.
		return &skimmer.ExtractResult{}, nil
	}

	res := &skimmer.ExtractResult{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}

	if result.ContentNode != nil {
		contentHTML, err := renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
		res.ContentHTML = contentHTML
	}

	return res, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
