package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/artworks/internal/adapter"
	"github.com/mmcdole/artworks/internal/domain"
)

// CatalogService fetches fixed-size pages of the remote catalog.
// Pages are never cached: every call goes to the repository.
type CatalogService struct {
	repo     domain.PageRepository
	pageSize int
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo domain.PageRepository, pageSize int, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &CatalogService{
		repo:     repo,
		pageSize: pageSize,
		logger:   logger,
	}
}

// PageSize returns the number of records requested per page
func (s *CatalogService) PageSize() int {
	return s.pageSize
}

// FetchPage returns the page at the 1-based index.
// Failures are logged and counted, then returned to the caller.
func (s *CatalogService) FetchPage(ctx context.Context, index int) (*domain.Page, error) {
	if index < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPage, index)
	}

	start := time.Now()
	page, err := s.repo.FetchPage(ctx, index, s.pageSize)
	adapter.ObservePageFetch(start, err)

	if err != nil {
		s.logger.Error("failed to fetch page", "page", index, "error", err)
		return nil, err
	}

	s.logger.Debug("fetched page",
		"page", index,
		"items", len(page.Items),
		"total", page.TotalCount,
		"duration", time.Since(start),
	)
	return page, nil
}

// TotalPages returns the page count for a collection total at this service's page size
func (s *CatalogService) TotalPages(total int) int {
	return domain.TotalPages(total, s.pageSize)
}
