package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artworks/internal/domain"
	"github.com/mmcdole/artworks/internal/service"
	"github.com/mmcdole/artworks/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

const (
	// Vertical layout: single footer line
	ChromeHeight = 1

	statusDuration = 3 * time.Second
	tickInterval   = 100 * time.Millisecond
)

// Options configures a new Model
type Options struct {
	StartPage int
	MaxTarget int // upper bound for select-next-N; 0 = unbounded
	Logger    *slog.Logger
}

// Model is the main Bubble Tea model for the application.
// All state is mutated in Update; commands only return messages.
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	CatalogSvc   *service.CatalogService
	SelectionSvc *service.SelectionService
	logger       *slog.Logger

	// UI Components
	Table      *components.ArtworkTable
	Panel      components.SelectionPanel
	SortModal  components.SortModal
	CountModal components.InputModal
	Pages      components.PageLinks

	// Data
	Selection   *domain.Selection
	CurrentPage int
	TotalCount  int

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	Loading      bool
	SpinnerFrame int

	maxTarget int

	// loadSeq is the sequence number of the latest page request
	loadSeq int

	// Running select-next-N, if any
	accumulating     bool
	accumulateTarget int
	cancelAccumulate context.CancelFunc
}

// NewModel creates a new application model
func NewModel(catalogSvc *service.CatalogService, selectionSvc *service.SelectionService, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	start := max(opts.StartPage, 1)

	selection := domain.NewSelection()
	table := components.NewArtworkTable("Artworks", selection)
	table.SetLoading(true)

	pages := components.NewPageLinks(catalogSvc.PageSize())
	pages.SetCurrent(start)

	return Model{
		State:        StateBrowsing,
		CatalogSvc:   catalogSvc,
		SelectionSvc: selectionSvc,
		logger:       logger,
		Table:        table,
		Panel:        components.NewSelectionPanel(),
		SortModal:    components.NewSortModal(),
		CountModal:   components.NewInputModal(),
		Pages:        pages,
		Selection:    selection,
		CurrentPage:  start,
		maxTarget:    opts.MaxTarget,
		Loading:      true,
		loadSeq:      1,
	}
}

// Init loads the start page
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadPageCmd(m.CatalogSvc, m.CurrentPage, m.loadSeq),
		TickCmd(tickInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		m.Table.SetSpinnerFrame(m.SpinnerFrame)
		return m, TickCmd(tickInterval)

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case AccumulatedMsg:
		return m.handleAccumulated(msg)

	case ErrMsg:
		m.logger.Error("command failed", "context", msg.Context, "error", msg.Err)
		return m.setStatus(msg.Error(), true)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

// handlePageLoaded applies the latest page response and drops stale ones
func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.loadSeq {
		m.logger.Debug("dropping stale page", "page", msg.Index, "seq", msg.Seq, "latest", m.loadSeq)
		return m, nil
	}

	m.Loading = false
	m.Table.SetLoading(false)

	if msg.Err != nil {
		// Keep showing the current page
		return m.Update(ErrMsg{Err: msg.Err, Context: fmt.Sprintf("loading page %d", msg.Index)})
	}

	page := msg.Page
	if page.IsEmpty() && msg.Index > 1 {
		if page != nil && page.TotalCount > 0 {
			m.TotalCount = page.TotalCount
			m.Pages.SetTotal(page.TotalCount)
		}
		return m.setStatus(fmt.Sprintf("page %d is empty", msg.Index), false)
	}

	m.CurrentPage = msg.Index
	m.Pages.SetCurrent(msg.Index)
	if page != nil {
		if page.TotalCount > 0 {
			m.TotalCount = page.TotalCount
			m.Pages.SetTotal(page.TotalCount)
		}
		m.Table.SetItems(page.Items)
	} else {
		m.Table.SetItems(nil)
	}
	m.Table.SetTitle(fmt.Sprintf("Artworks · page %d", m.CurrentPage))
	return m, nil
}

// handleAccumulated merges a finished select-next-N run into the live selection
func (m Model) handleAccumulated(msg AccumulatedMsg) (tea.Model, tea.Cmd) {
	if m.cancelAccumulate != nil {
		m.cancelAccumulate()
		m.cancelAccumulate = nil
	}
	m.accumulating = false
	m.accumulateTarget = 0

	var insufficient *domain.InsufficientRecordsError
	switch {
	case msg.Err == nil:
	case errors.Is(msg.Err, context.Canceled):
		return m.setStatus("selection cancelled", false)
	case errors.As(msg.Err, &insufficient):
		return m.setStatus(fmt.Sprintf("only %d of %d unselected records remain; nothing selected",
			insufficient.Found, insufficient.Requested), true)
	default:
		return m.Update(ErrMsg{Err: msg.Err, Context: fmt.Sprintf("selecting %d records", msg.Target)})
	}

	res := msg.Result
	// Merge only the additions: toggles made while the run was in flight are kept
	added := m.Selection.Merge(domain.NewSelection(res.Added...))
	if res.TotalCount > 0 {
		m.TotalCount = res.TotalCount
		m.Pages.SetTotal(res.TotalCount)
	}
	m.Panel.SetItems(m.Selection.Items())

	return m.setStatus(fmt.Sprintf("selected %d records (%d pages fetched)", added, res.PagesFetched), false)
}

// goToPage starts loading a page; the newest request always wins
func (m Model) goToPage(index int) (tea.Model, tea.Cmd) {
	index = m.Pages.Clamp(index)
	if index == m.CurrentPage && !m.Loading {
		return m, nil
	}

	m.loadSeq++
	m.Loading = true
	m.Table.SetLoading(true)
	return m, LoadPageCmd(m.CatalogSvc, index, m.loadSeq)
}

// reloadPage refetches the current page
func (m Model) reloadPage() (tea.Model, tea.Cmd) {
	m.loadSeq++
	m.Loading = true
	m.Table.SetLoading(true)
	return m, LoadPageCmd(m.CatalogSvc, m.CurrentPage, m.loadSeq)
}

// startAccumulate launches a select-next-N run on a snapshot of the current state
func (m Model) startAccumulate(target int) (tea.Model, tea.Cmd) {
	if m.accumulating {
		return m.setStatus("a selection is already running (esc to cancel)", true)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.accumulating = true
	m.accumulateTarget = target
	m.cancelAccumulate = cancel

	req := service.AccumulateRequest{
		Target:       target,
		Selected:     m.Selection.Clone(),
		CurrentItems: m.Table.Items(),
		CurrentPage:  m.CurrentPage,
		TotalCount:   m.TotalCount,
	}
	m.logger.Info("select next", "target", target, "page", m.CurrentPage, "selected", m.Selection.Len())
	return m, AccumulateCmd(ctx, m.SelectionSvc, req)
}

// toggleRow flips the selection state of the row under the cursor
func (m Model) toggleRow() (tea.Model, tea.Cmd) {
	if a := m.Table.SelectedArtwork(); a != nil {
		m.Selection.Toggle(*a)
	}
	return m, nil
}

// togglePage selects every row of the page, or clears the page when all are selected
func (m Model) togglePage() (tea.Model, tea.Cmd) {
	items := m.Table.Items()
	allSelected := len(items) > 0
	for _, a := range items {
		if !m.Selection.Contains(a.ID) {
			allSelected = false
			break
		}
	}
	for _, a := range items {
		if allSelected {
			m.Selection.Remove(a.ID)
		} else {
			m.Selection.Add(a)
		}
	}
	return m, nil
}

func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return m, ClearStatusCmd(statusDuration)
}

// Selected returns the final selection in selection order
func (m Model) Selected() []domain.Artwork {
	return m.Selection.Items()
}
