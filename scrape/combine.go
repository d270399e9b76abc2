package scrape

import (
	"context"

	"github.com/fwojciec/skimmer"
	"golang.org/x/time/rate"
)

// Combiner runs one search query and scrapes the top results
// sequentially, pairing each result stub with its scraped article.
type Combiner struct {
	Searcher skimmer.Searcher
	Scraper  *Scraper

	// Limiter, when set, paces the per-result scrapes so a batch does
	// not hammer third parties. Nil means no throttling.
	Limiter *rate.Limiter
}

// SearchAndScrape queries the aggregator and scrapes the first
// skimmer.MaxCombinedResults stubs in the order returned, one at a time
// with no re-ranking or deduplication. A failed scrape is recorded on its
// item and does not abort the batch. A search failure is returned as-is;
// zero results is an ENOTFOUND error, never an empty combined record.
func (c *Combiner) SearchAndScrape(ctx context.Context, query string) (*skimmer.CombinedResult, error) {
	data, err := c.Searcher.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(data.Results) == 0 {
		return nil, skimmer.Errorf(skimmer.ENOTFOUND, "no results found for query: %s", query)
	}

	stubs := data.Results
	if len(stubs) > skimmer.MaxCombinedResults {
		stubs = stubs[:skimmer.MaxCombinedResults]
	}

	combined := &skimmer.CombinedResult{
		Query:        query,
		TotalResults: len(data.Results),
		Results:      make([]skimmer.CombinedItem, 0, len(stubs)),
	}

	for _, stub := range stubs {
		if stub.URL == "" {
			continue
		}

		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		combined.Results = append(combined.Results, skimmer.CombinedItem{
			SearchResult:   stub,
			ScrapedContent: c.Scraper.ScrapeArticle(ctx, stub.URL),
		})
		combined.ScrapedCount++
	}

	return combined, nil
}
