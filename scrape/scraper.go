// Package scrape composes fetching, content extraction, and metadata
// resolution into article records, and drives the search-and-scrape
// batch flow.
package scrape

import (
	"context"

	"github.com/fwojciec/skimmer"
)

// Scraper turns a URL into a skimmer.Article. Failures never escape as
// errors: a fetch or parse problem is captured on the record itself so
// batch callers can keep going.
type Scraper struct {
	Fetcher   skimmer.Fetcher
	Extractor skimmer.Extractor
	Resolver  skimmer.MetadataResolver

	// Converter, when set, renders the extracted content HTML as
	// markdown in place of the extractor's plain text.
	Converter skimmer.Converter
}

// ScrapeArticle fetches the URL, isolates the readable content, and
// resolves metadata through the fallback chains. The returned record has
// Success false with Error set when the page could not be fetched or
// parsed; a reachable page with no article-like content still succeeds,
// with empty text.
func (s *Scraper) ScrapeArticle(ctx context.Context, url string) *skimmer.Article {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return failed(url, err)
	}

	extracted, err := s.Extractor.Extract(html, url)
	if err != nil {
		return failed(url, err)
	}

	meta, err := s.Resolver.Resolve(html, extracted.Title)
	if err != nil {
		return failed(url, err)
	}

	text := extracted.Text
	if s.Converter != nil && extracted.ContentHTML != "" {
		if md, err := s.Converter.Convert(extracted.ContentHTML); err == nil && md != "" {
			text = md
		}
	}

	return &skimmer.Article{
		Success:     true,
		URL:         url,
		Title:       meta.Title,
		Description: meta.Description,
		Date:        meta.Date,
		Text:        skimmer.TruncateText(text),
	}
}

func failed(url string, err error) *skimmer.Article {
	return &skimmer.Article{
		URL:   url,
		Error: skimmer.ErrorMessage(err),
	}
}
