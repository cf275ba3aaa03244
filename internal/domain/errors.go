package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrFetchFailed indicates a page could not be fetched (transport, status or body)
	ErrFetchFailed = errors.New("page fetch failed")

	// ErrInsufficientRecords indicates the catalog ran out before the requested count was reached
	ErrInsufficientRecords = errors.New("not enough records to select")

	// ErrInvalidPage indicates a page index below 1
	ErrInvalidPage = errors.New("invalid page index")

	// ErrInvalidCount indicates a selection count that is not a usable number
	ErrInvalidCount = errors.New("invalid selection count")
)

// FetchError describes a failed page fetch.
// StatusCode is 0 when no HTTP response was received.
type FetchError struct {
	Page       int
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("fetch page %d: status %d: %v", e.Page, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("fetch page %d: unexpected status %d", e.Page, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("fetch page %d: %v", e.Page, e.Err)
	default:
		return fmt.Sprintf("fetch page %d failed", e.Page)
	}
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports every FetchError as ErrFetchFailed.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// InsufficientRecordsError reports how far an accumulation got before the catalog ran out.
type InsufficientRecordsError struct {
	Requested int
	Found     int
}

// Error implements the error interface.
func (e *InsufficientRecordsError) Error() string {
	return fmt.Sprintf("%s: requested %d, found %d", ErrInsufficientRecords, e.Requested, e.Found)
}

// Unwrap returns ErrInsufficientRecords.
func (e *InsufficientRecordsError) Unwrap() error {
	return ErrInsufficientRecords
}
