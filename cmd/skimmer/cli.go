package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fwojciec/skimmer"
	"github.com/fwojciec/skimmer/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Scraper  *scrape.Scraper
	Searcher skimmer.Searcher
	Combiner *scrape.Combiner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Article   ArticleCmd   `cmd:"" help:"Scrape a single URL into a structured article record"`
	Search    SearchCmd    `cmd:"" help:"Search and scrape the top results into one combined record"`
	RawSearch RawSearchCmd `cmd:"" name:"raw-search" help:"Return the raw search aggregator payload"`

	Endpoint string  `help:"SearXNG base URL" env:"SKIMMER_SEARXNG_URL"`
	Verbose  bool    `short:"v" help:"Enable debug logging on stderr"`
	Throttle float64 `help:"Maximum scrapes per second during search-and-scrape (0 = unthrottled)"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	URL      string `arg:"" help:"Absolute URL of the page to scrape"`
	Markdown bool   `help:"Render the extracted content as markdown"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string `arg:"" help:"Search query"`
	Endpoint string `help:"Override the configured SearXNG base URL"`
}

// RawSearchCmd is the "raw-search" subcommand.
type RawSearchCmd struct {
	Query    string `arg:"" help:"Search query"`
	Endpoint string `help:"Override the configured SearXNG base URL"`
}

// errorPayload is the JSON envelope for failed search operations.
type errorPayload struct {
	Error string `json:"error"`
}

// writeJSON renders v as indented JSON on w. HTML escaping is off so URLs
// survive round trips unmangled.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
