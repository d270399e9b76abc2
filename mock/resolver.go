package mock

import "github.com/fwojciec/skimmer"

var _ skimmer.MetadataResolver = (*MetadataResolver)(nil)

// MetadataResolver is a mock implementation of skimmer.MetadataResolver.
type MetadataResolver struct {
	ResolveFn func(html string, titleFallback string) (*skimmer.Metadata, error)
}

func (r *MetadataResolver) Resolve(html string, titleFallback string) (*skimmer.Metadata, error) {
	return r.ResolveFn(html, titleFallback)
}
