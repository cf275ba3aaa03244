package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artworks/internal/service"
)

// Command factories for async operations

// LoadPageCmd fetches one catalog page
func LoadPageCmd(svc *service.CatalogService, index, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		page, err := svc.FetchPage(ctx, index)
		return PageLoadedMsg{Index: index, Seq: seq, Page: page, Err: err}
	}
}

// AccumulateCmd runs a select-next-N walk. The request must not share
// mutable state with the model; ctx cancels the walk.
func AccumulateCmd(ctx context.Context, svc *service.SelectionService, req service.AccumulateRequest) tea.Cmd {
	return func() tea.Msg {
		res, err := svc.Accumulate(ctx, req)
		return AccumulatedMsg{Target: req.Target, Result: res, Err: err}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
