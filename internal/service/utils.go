package service

import (
	"context"
	"errors"

	"github.com/mmcdole/artworks/internal/domain"
)

// errEndOfCatalog signals that a page walk ran past the last page
var errEndOfCatalog = errors.New("end of catalog")

// pageWalk summarizes a sequential walk over catalog pages
type pageWalk struct {
	fetched int // Pages fetched
	last    int // Last page index handed to visit (0 if none)
	total   int // Most recent collection total
}

// walkPages is a private helper that fetches pages strictly one after another.
// It starts at first and hands each page to visit until visit returns true.
// The walk ends with errEndOfCatalog when the page index passes the last page
// implied by the most recent total, or when a page comes back empty.
func walkPages(
	ctx context.Context,
	fetch func(ctx context.Context, index int) (*domain.Page, error),
	first, total, pageSize int,
	visit func(page *domain.Page) (done bool),
) (pageWalk, error) {
	walk := pageWalk{total: total}
	lastPage := domain.TotalPages(total, pageSize)

	for index := first; ; index++ {
		select {
		case <-ctx.Done():
			return walk, ctx.Err()
		default:
		}

		if lastPage > 0 && index > lastPage {
			return walk, errEndOfCatalog
		}

		page, err := fetch(ctx, index)
		if err != nil {
			return walk, err
		}
		walk.fetched++

		// The most recent response is the source of truth for the bound
		if page != nil && page.TotalCount > 0 {
			walk.total = page.TotalCount
			lastPage = domain.TotalPages(walk.total, pageSize)
		}

		if page.IsEmpty() {
			return walk, errEndOfCatalog
		}

		walk.last = index
		if visit(page) {
			return walk, nil
		}
	}
}
