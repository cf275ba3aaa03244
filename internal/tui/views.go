package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/artworks/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.Table.View(),
		m.renderFooter(),
	)

	// Overlay modals
	switch {
	case m.Panel.IsVisible():
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Panel.View())
	case m.SortModal.IsVisible():
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.SortModal.View())
	case m.CountModal.IsVisible():
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.CountModal.View())
	}

	return view
}

// renderFooter renders a single-line footer: status, page links, counters
func (m Model) renderFooter() string {
	// Left side: spinner + status when busy or status message active
	var left string
	switch {
	case m.accumulating:
		left = RenderSpinner(m.SpinnerFrame) + " " +
			styles.DimStyle.Render(fmt.Sprintf("Selecting %d records... (esc to cancel)", m.accumulateTarget))
	case m.Loading:
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading...")
	case m.StatusMsg != "":
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	center := m.Pages.View()
	right := styles.DimStyle.Render(m.pageSummary()+"  ") +
		styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space - just left + right
		gap := max(m.Width-leftWidth-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// pageSummary renders "page X of Y · N total · M selected"
func (m Model) pageSummary() string {
	pages := "?"
	if total := m.Pages.TotalPages(); total > 0 {
		pages = fmt.Sprintf("%d", total)
	}
	return fmt.Sprintf("page %d of %s · %d total · %d selected",
		m.CurrentPage, pages, m.TotalCount, m.Selection.Len())
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
TABLE                           PAGES
  j/k        Up/down              l/→/n  Next page
  g/G        First/last row       h/←/p  Previous page
  Ctrl+u/d   Scroll half page     <  >   First/last page
  /          Filter rows          r      Reload page
  s          Sort by column

SELECTION                       OTHER
  Space      Toggle row           ?      This help
  a          Toggle whole page    Esc    Cancel / clear filter
  N  #       Select next N        q      Quit
  v          View selection
               x  remove   C  clear all

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	return styles.SpinnerStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}
