package skimmer_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/skimmer"
	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	t.Parallel()

	t.Run("leaves short text untouched", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "short body", skimmer.TruncateText("short body"))
	})

	t.Run("caps long text at the limit", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", skimmer.MaxTextLength+500)
		got := skimmer.TruncateText(long)

		assert.Len(t, got, skimmer.MaxTextLength)
		assert.True(t, strings.HasPrefix(long, got))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("b", skimmer.MaxTextLength*2)
		once := skimmer.TruncateText(long)
		twice := skimmer.TruncateText(once)

		assert.Equal(t, once, twice)
	})

	t.Run("never splits a multibyte character", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("é", skimmer.MaxTextLength+10)
		got := skimmer.TruncateText(long)

		assert.True(t, strings.HasPrefix(long, got))
		assert.Equal(t, strings.Repeat("é", skimmer.MaxTextLength), got)
	})
}
