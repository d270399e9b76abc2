package mock

import (
	"context"

	"github.com/fwojciec/skimmer"
)

var _ skimmer.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of skimmer.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) (*skimmer.SearchData, error)
}

func (s *Searcher) Search(ctx context.Context, query string) (*skimmer.SearchData, error) {
	return s.SearchFn(ctx, query)
}
