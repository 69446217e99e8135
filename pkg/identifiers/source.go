package identifiers

import (
	"context"

	"iatv/pkg/domain"
)

// Source defines the interface for identifier sources feeding the bulk
// downloader (catalog search, file list, collection feed, etc.).
type Source interface {
	Fetch(ctx context.Context) ([]domain.SearchResult, error)
}
