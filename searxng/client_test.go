package searxng_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/skimmer"
	"github.com/fwojciec/skimmer/searxng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("queries the search path with q and format parameters", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotQuery, gotFormat, gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query().Get("q")
			gotFormat = r.URL.Query().Get("format")
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte(`{"results": []}`))
		}))
		defer server.Close()

		client := searxng.NewClient(server.URL)
		_, err := client.Search(context.Background(), "golang testing")

		require.NoError(t, err)
		assert.Equal(t, "/search", gotPath)
		assert.Equal(t, "golang testing", gotQuery)
		assert.Equal(t, "json", gotFormat)
		assert.Contains(t, gotUA, "Mozilla/5.0")
	})

	t.Run("decodes result stubs", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"query": "go",
				"results": [
					{"title": "The Go Programming Language", "url": "https://go.dev", "content": "Build simple, secure software"},
					{"title": "Go (game)", "url": "https://example.com/go", "content": "An abstract strategy game"}
				]
			}`))
		}))
		defer server.Close()

		client := searxng.NewClient(server.URL)
		data, err := client.Search(context.Background(), "go")

		require.NoError(t, err)
		require.Len(t, data.Results, 2)
		assert.Equal(t, "The Go Programming Language", data.Results[0].Title)
		assert.Equal(t, "https://go.dev", data.Results[0].URL)
		assert.Equal(t, "Build simple, secure software", data.Results[0].Content)
	})

	t.Run("retains the raw response body", func(t *testing.T) {
		t.Parallel()

		body := `{"results":[{"title":"t","url":"u","content":"c"}],"suggestions":["more"]}`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		client := searxng.NewClient(server.URL)
		data, err := client.Search(context.Background(), "t")

		require.NoError(t, err)
		assert.Equal(t, body, string(data.Raw))
	})

	t.Run("treats a missing results key as no results", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"query": "nothing here"}`))
		}))
		defer server.Close()

		client := searxng.NewClient(server.URL)
		data, err := client.Search(context.Background(), "nothing here")

		require.NoError(t, err)
		assert.Empty(t, data.Results)
	})

	t.Run("returns unavailable error for malformed JSON", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>rate limited</html>`))
		}))
		defer server.Close()

		client := searxng.NewClient(server.URL)
		_, err := client.Search(context.Background(), "q")

		require.Error(t, err)
		assert.Equal(t, skimmer.EUNAVAILABLE, skimmer.ErrorCode(err))
	})

	t.Run("returns unavailable error for non-2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := searxng.NewClient(server.URL)
		_, err := client.Search(context.Background(), "q")

		require.Error(t, err)
		assert.Equal(t, skimmer.EUNAVAILABLE, skimmer.ErrorCode(err))
		assert.Contains(t, skimmer.ErrorMessage(err), "429")
	})

	t.Run("returns error for unreachable endpoint", func(t *testing.T) {
		t.Parallel()

		client := searxng.NewClient("http://non-existent-host.invalid", searxng.WithTimeout(100*time.Millisecond))
		_, err := client.Search(context.Background(), "q")

		require.Error(t, err)
		assert.Equal(t, skimmer.EUNAVAILABLE, skimmer.ErrorCode(err))
	})
}

// Compile-time verification that Client implements skimmer.Searcher
var _ skimmer.Searcher = (*searxng.Client)(nil)
