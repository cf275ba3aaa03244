package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mmcdole/artworks/internal/adapter"
	"github.com/mmcdole/artworks/internal/domain"
)

// PageSource fetches one catalog page by 1-based index (consumer-defined interface)
type PageSource interface {
	FetchPage(ctx context.Context, index int) (*domain.Page, error)
}

// AccumulateRequest describes a bulk "select the next N" operation
type AccumulateRequest struct {
	Target       int               // Number of new records to select
	Selected     *domain.Selection // Current selection; never modified
	CurrentItems []domain.Artwork  // Records of the page on display, in page order
	CurrentPage  int               // 1-based index of the page on display
	TotalCount   int               // Collection total from the latest fetch (0 if unknown)
}

// AccumulateResult is the outcome of a successful accumulation
type AccumulateResult struct {
	Selection    *domain.Selection // Previous selection plus Added
	Added        []domain.Artwork  // Newly selected records in catalog order
	PagesFetched int
	LastPage     int // Last page index scanned
	TotalCount   int // Most recent collection total
}

// SelectionService selects records across pages
type SelectionService struct {
	source   PageSource
	pageSize int
	logger   *slog.Logger
}

// NewSelectionService creates a new selection service.
// pageSize must match the size the source fetches with; it bounds the walk.
func NewSelectionService(source PageSource, pageSize int, logger *slog.Logger) *SelectionService {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &SelectionService{
		source:   source,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Accumulate selects the next Target unselected records in catalog order,
// starting with the page on display and fetching following pages one at a time.
//
// The request's selection is left untouched; on any error nothing is applied.
// Running out of catalog yields an *domain.InsufficientRecordsError, a failed
// fetch an error matching domain.ErrFetchFailed.
func (s *SelectionService) Accumulate(ctx context.Context, req AccumulateRequest) (*AccumulateResult, error) {
	result := &AccumulateResult{
		Selection:  req.Selected.Clone(),
		LastPage:   req.CurrentPage,
		TotalCount: req.TotalCount,
	}

	if req.Target <= 0 {
		return result, nil
	}
	if req.CurrentPage < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPage, req.CurrentPage)
	}

	remaining := req.Target
	scan := func(items []domain.Artwork) bool {
		for _, a := range items {
			if remaining == 0 {
				break
			}
			if result.Selection.Add(a) {
				result.Added = append(result.Added, a)
				remaining--
			}
		}
		return remaining == 0
	}

	if scan(req.CurrentItems) {
		return s.done(req, result), nil
	}

	// Fail fast when the records after the current page cannot cover the rest
	if req.TotalCount > 0 {
		ahead := req.TotalCount - req.CurrentPage*s.pageSize
		if remaining > ahead {
			return nil, s.insufficient(req, result)
		}
	}

	walk, err := walkPages(ctx, s.source.FetchPage, req.CurrentPage+1, req.TotalCount, s.pageSize,
		func(page *domain.Page) bool {
			return scan(page.Items)
		})
	result.PagesFetched = walk.fetched
	if walk.last > 0 {
		result.LastPage = walk.last
	}
	if walk.total > 0 {
		result.TotalCount = walk.total
	}

	switch {
	case err == nil:
		return s.done(req, result), nil
	case errors.Is(err, errEndOfCatalog):
		return nil, s.insufficient(req, result)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		adapter.AccumulationsTotal.WithLabelValues(adapter.OutcomeCancelled).Inc()
		s.logger.Info("selection cancelled", "target", req.Target, "found", len(result.Added), "pages", walk.fetched)
		return nil, err
	default:
		adapter.AccumulationsTotal.WithLabelValues(adapter.OutcomeFailed).Inc()
		s.logger.Error("selection aborted", "target", req.Target, "found", len(result.Added), "error", err)
		return nil, fmt.Errorf("select %d records: %w", req.Target, err)
	}
}

func (s *SelectionService) done(req AccumulateRequest, result *AccumulateResult) *AccumulateResult {
	adapter.AccumulationsTotal.WithLabelValues(adapter.OutcomeOK).Inc()
	adapter.RecordsSelectedTotal.Add(float64(len(result.Added)))
	s.logger.Info("selected records",
		"target", req.Target,
		"fromPage", req.CurrentPage,
		"lastPage", result.LastPage,
		"pagesFetched", result.PagesFetched,
		"selected", result.Selection.Len(),
	)
	return result
}

func (s *SelectionService) insufficient(req AccumulateRequest, result *AccumulateResult) error {
	adapter.AccumulationsTotal.WithLabelValues(adapter.OutcomeInsufficient).Inc()
	s.logger.Warn("not enough records to select",
		"target", req.Target,
		"found", len(result.Added),
		"fromPage", req.CurrentPage,
		"total", result.TotalCount,
	)
	return &domain.InsufficientRecordsError{Requested: req.Target, Found: len(result.Added)}
}

// ParseCount parses a user-entered record count in [1, max].
// A max <= 0 disables the upper bound.
func ParseCount(s string, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidCount, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d is less than 1", domain.ErrInvalidCount, n)
	}
	if max > 0 && n > max {
		return 0, fmt.Errorf("%w: %d exceeds the limit of %d", domain.ErrInvalidCount, n, max)
	}
	return n, nil
}
