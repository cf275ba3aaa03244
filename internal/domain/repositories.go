package domain

import (
	"context"
)

// PageRepository provides access to the paginated remote catalog
type PageRepository interface {
	// FetchPage returns the artworks at the 1-based page index, limit per page,
	// along with the collection total reported by the remote
	FetchPage(ctx context.Context, page, limit int) (*Page, error)
}
