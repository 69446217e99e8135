package identifiers

import (
	"context"

	"iatv/pkg/archive"
	"iatv/pkg/domain"
)

// SearchSource yields identifiers straight from a catalog search.
type SearchSource struct {
	client *archive.Client
	query  string
	opts   archive.SearchOptions
}

// NewSearchSource creates an identifier source backed by a TV News Archive
// catalog search.
func NewSearchSource(client *archive.Client, query string, opts archive.SearchOptions) *SearchSource {
	return &SearchSource{client: client, query: query, opts: opts}
}

// Fetch runs the search and returns its results.
func (s *SearchSource) Fetch(ctx context.Context) ([]domain.SearchResult, error) {
	return s.client.SearchItems(ctx, s.query, s.opts)
}
