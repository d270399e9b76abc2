package skimmer

// MaxTextLength is the maximum number of characters of extracted article
// text carried by an Article. Longer bodies are truncated, never rejected.
const MaxTextLength = 4000

// Article is the structured record produced by scraping a single URL.
// Exactly one of two shapes holds: Success true with the content fields
// populated, or Success false with Error set. An Article is never mutated
// after construction; it is owned by whoever built it.
type Article struct {
	Success     bool    `json:"success"`
	URL         string  `json:"url"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Date        *string `json:"date"`
	Text        string  `json:"text,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// TruncateText caps s at MaxTextLength characters. The result is always a
// prefix of s, and truncating an already-truncated text is a no-op.
func TruncateText(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxTextLength {
		return s
	}
	return string(runes[:MaxTextLength])
}
