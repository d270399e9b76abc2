// Package htmltomarkdown implements skimmer.Converter on top of
// html-to-markdown, for callers that want the extracted article body as
// markdown rather than plain text.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/skimmer"
)

// Ensure Converter implements skimmer.Converter at compile time.
var _ skimmer.Converter = (*Converter)(nil)

// Converter renders clean content HTML as Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms content HTML into Markdown. Empty input converts to
// an empty string; a page with no extractable content has no markdown
// rendition, and that is not an error.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", skimmer.Errorf(skimmer.EINTERNAL, "markdown conversion: %v", err)
	}

	return strings.TrimSpace(result), nil
}
