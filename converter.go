package skimmer

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean content HTML (e.g., from an Extractor)
	// into Markdown.
	Convert(html string) (string, error)
}
