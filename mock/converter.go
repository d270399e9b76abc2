package mock

import "github.com/fwojciec/skimmer"

var _ skimmer.Converter = (*Converter)(nil)

// Converter is a mock implementation of skimmer.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
