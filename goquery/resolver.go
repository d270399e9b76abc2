// Package goquery resolves page metadata using CSS selector queries.
// Each metadata field has an ordered fallback chain of rules; rules are
// evaluated in order and the first non-empty value wins.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/skimmer"
)

// Ensure Resolver implements skimmer.MetadataResolver at compile time.
var _ skimmer.MetadataResolver = (*Resolver)(nil)

// Resolver resolves title, description, and publish date from raw HTML.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// rule extracts a single candidate value from a parsed document.
// An empty return means the rule did not apply.
type rule func(doc *goquery.Document) string

// metaContent returns a rule reading the content attribute of the first
// element matching the selector.
func metaContent(selector string) rule {
	return func(doc *goquery.Document) string {
		content, _ := doc.Find(selector).First().Attr("content")
		return strings.TrimSpace(content)
	}
}

// documentTitle reads the <title> element text.
func documentTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// firstTimeElement reads the first <time> element, preferring its
// machine-readable datetime attribute over its visible text.
func firstTimeElement(doc *goquery.Document) string {
	sel := doc.Find("time").First()
	if sel.Length() == 0 {
		return ""
	}
	if dt, ok := sel.Attr("datetime"); ok && strings.TrimSpace(dt) != "" {
		return strings.TrimSpace(dt)
	}
	return strings.TrimSpace(sel.Text())
}

// datePattern matches human-readable dates like "Mar 3, 2024", optionally
// followed by a time and a short zone abbreviation
// ("Mar 3, 2024, 9:00 AM EST").
var datePattern = regexp.MustCompile(`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.? \d{1,2}, \d{4}(?:,? \d{1,2}:\d{2}(?::\d{2})?(?: ?[APap]\.?[Mm]\.?)?(?: [A-Z]{2,4})?)?`)

// dateTextScan scans span and div text for a month-name date. It is the
// last resort of the date chain; firstMatch guarantees it never runs when
// an earlier rule already produced a value.
func dateTextScan(doc *goquery.Document) string {
	var found string
	doc.Find("span, div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if m := datePattern.FindString(sel.Text()); m != "" {
			found = m
			return false
		}
		return true
	})
	return found
}

// titleRules is the title chain before the caller-supplied fallback.
var titleRules = []rule{
	metaContent(`meta[property="og:title"]`),
	documentTitle,
}

// descriptionRules resolves to the empty string when nothing matches.
var descriptionRules = []rule{
	metaContent(`meta[property="og:description"]`),
	metaContent(`meta[name="description"]`),
}

// dateRules runs published-time meta variants first, then the first <time>
// element, then the free-text scan.
var dateRules = []rule{
	metaContent(`meta[property="article:published_time"]`),
	metaContent(`meta[name="article:published_time"]`),
	metaContent(`meta[property="og:article:published_time"]`),
	metaContent(`meta[name="pubdate"]`),
	metaContent(`meta[name="publishdate"]`),
	metaContent(`meta[name="publish-date"]`),
	metaContent(`meta[name="date"]`),
	metaContent(`meta[itemprop="datePublished"]`),
	firstTimeElement,
	dateTextScan,
}

// firstMatch evaluates rules in order and returns the first non-empty value.
func firstMatch(doc *goquery.Document, rules []rule) string {
	for _, r := range rules {
		if v := r(doc); v != "" {
			return v
		}
	}
	return ""
}

// Resolve parses the HTML once and runs all three fallback chains.
func (r *Resolver) Resolve(html string, titleFallback string) (*skimmer.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, skimmer.Errorf(skimmer.EINVALID, "failed to parse HTML: %v", err)
	}

	return &skimmer.Metadata{
		Title:       resolveTitle(doc, titleFallback),
		Description: firstMatch(doc, descriptionRules),
		Date:        resolveDate(doc),
	}, nil
}

func resolveTitle(doc *goquery.Document, fallback string) string {
	if v := firstMatch(doc, titleRules); v != "" {
		return v
	}
	if fallback = strings.TrimSpace(fallback); fallback != "" {
		return fallback
	}
	return "No title"
}

func resolveDate(doc *goquery.Document) *string {
	if v := firstMatch(doc, dateRules); v != "" {
		return &v
	}
	return nil
}
