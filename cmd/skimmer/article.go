package main

// Run executes the article command. A scrape failure is not a command
// failure: the failed record is the output.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	article := deps.Scraper.ScrapeArticle(deps.Ctx, c.URL)
	return writeJSON(deps.Stdout, article)
}
