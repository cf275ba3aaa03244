package tui

import (
	"github.com/mmcdole/artworks/internal/domain"
	"github.com/mmcdole/artworks/internal/service"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageLoadedMsg reports the outcome of a page load.
// Seq identifies the request; only the latest one is applied.
type PageLoadedMsg struct {
	Index int
	Seq   int
	Page  *domain.Page
	Err   error
}

// AccumulatedMsg reports the outcome of a select-next-N run
type AccumulatedMsg struct {
	Target int
	Result *service.AccumulateResult
	Err    error
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
