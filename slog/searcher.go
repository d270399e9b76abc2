package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skimmer"
)

// Ensure LoggingSearcher implements skimmer.Searcher.
var _ skimmer.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with query logging.
type LoggingSearcher struct {
	next   skimmer.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next skimmer.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (data *skimmer.SearchData, err error) {
	defer func(begin time.Time) {
		count := 0
		if data != nil {
			count = len(data.Results)
		}
		s.logger.Info("search",
			"query", query,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
