package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/skimmer/goquery"
	"github.com/fwojciec/skimmer/htmltomarkdown"
	skimhttp "github.com/fwojciec/skimmer/http"
	"github.com/fwojciec/skimmer/scrape"
	"github.com/fwojciec/skimmer/searxng"
	skimslog "github.com/fwojciec/skimmer/slog"
	"github.com/fwojciec/skimmer/trafilatura"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A .env file, when present, supplies SKIMMER_SEARXNG_URL during
	// development. Missing files are fine.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("skimmer"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'skimmer --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	fetcher := skimslog.NewLoggingFetcher(skimhttp.NewFetcher(), logger)
	defer fetcher.Close()

	scraper := &scrape.Scraper{
		Fetcher:   fetcher,
		Extractor: trafilatura.NewExtractor(),
		Resolver:  goquery.NewResolver(),
	}
	if cli.Article.Markdown {
		scraper.Converter = htmltomarkdown.NewConverter()
	}
	deps.Scraper = scraper

	// Wire search dependencies only for the commands that query the
	// aggregator; a missing endpoint is a startup error for those.
	command := kongCtx.Command()
	if strings.HasPrefix(command, "search") || strings.HasPrefix(command, "raw-search") {
		endpoint := cli.Endpoint
		if strings.HasPrefix(command, "search") && cli.Search.Endpoint != "" {
			endpoint = cli.Search.Endpoint
		}
		if strings.HasPrefix(command, "raw-search") && cli.RawSearch.Endpoint != "" {
			endpoint = cli.RawSearch.Endpoint
		}
		if endpoint == "" {
			return fmt.Errorf("no search endpoint configured. Set SKIMMER_SEARXNG_URL or pass --endpoint")
		}

		searcher := skimslog.NewLoggingSearcher(searxng.NewClient(endpoint), logger)
		deps.Searcher = searcher

		combiner := &scrape.Combiner{Searcher: searcher, Scraper: scraper}
		if cli.Throttle > 0 {
			combiner.Limiter = rate.NewLimiter(rate.Limit(cli.Throttle), 1)
		}
		deps.Combiner = combiner
	}

	return kongCtx.Run(deps)
}
