package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/skimmer"
	"github.com/fwojciec/skimmer/mock"
	skimslog "github.com/fwojciec/skimmer/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query with result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string) (*skimmer.SearchData, error) {
				return &skimmer.SearchData{Results: []skimmer.SearchResult{
					{Title: "a", URL: "https://a.example"},
					{Title: "b", URL: "https://b.example"},
				}}, nil
			},
		}

		searcher := skimslog.NewLoggingSearcher(inner, logger)
		data, err := searcher.Search(context.Background(), "go generics")

		require.NoError(t, err)
		assert.Len(t, data.Results, 2)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string) (*skimmer.SearchData, error) {
				return nil, skimmer.Errorf(skimmer.EUNAVAILABLE, "endpoint down")
			},
		}

		searcher := skimslog.NewLoggingSearcher(inner, logger)
		_, err := searcher.Search(context.Background(), "anything")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "endpoint down")
	})
}
