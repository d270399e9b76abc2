package skimmer

// MaxCombinedResults caps how many search results a combined
// search-and-scrape operation processes.
const MaxCombinedResults = 5

// CombinedItem pairs a search result stub with the article scraped from
// its URL.
type CombinedItem struct {
	SearchResult   SearchResult `json:"search_result"`
	ScrapedContent *Article     `json:"scraped_content"`
}

// CombinedResult aggregates one search query with per-result scraped
// content. ScrapedCount counts the stubs actually processed (those with a
// non-empty URL among the first MaxCombinedResults), independent of
// whether each individual scrape succeeded; Results has one entry per
// processed stub.
type CombinedResult struct {
	Query        string         `json:"query"`
	TotalResults int            `json:"total_results"`
	ScrapedCount int            `json:"scraped_count"`
	Results      []CombinedItem `json:"results"`
}
