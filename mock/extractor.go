package mock

import "github.com/fwojciec/skimmer"

var _ skimmer.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of skimmer.Extractor.
type Extractor struct {
	ExtractFn func(html string, sourceURL string) (*skimmer.ExtractResult, error)
}

func (e *Extractor) Extract(html string, sourceURL string) (*skimmer.ExtractResult, error) {
	return e.ExtractFn(html, sourceURL)
}
