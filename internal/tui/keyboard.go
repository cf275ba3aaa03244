package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artworks/internal/service"
	"github.com/mmcdole/artworks/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even from a modal
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// Any key leaves the help screen
	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m.quit()

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Escape):
		// Cancel a running selection first, then clear the filter
		if m.accumulating && m.cancelAccumulate != nil {
			m.cancelAccumulate()
			m.StatusMsg = "cancelling selection..."
			m.StatusIsErr = false
			return m, nil
		}
		if m.Table.IsFiltering() {
			m.Table.ClearFilter()
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		m.Table.ToggleFilter()
		return m, nil

	case key.Matches(msg, Keys.Sort):
		field, dir := m.Table.SortState()
		m.SortModal.Show(components.ArtworkSortOptions(), field, dir)
		return m, nil

	case key.Matches(msg, Keys.NextPage):
		return m.goToPage(m.Pages.Next())

	case key.Matches(msg, Keys.PrevPage):
		return m.goToPage(m.Pages.Prev())

	case key.Matches(msg, Keys.FirstPage):
		return m.goToPage(1)

	case key.Matches(msg, Keys.LastPage):
		return m.goToPage(m.Pages.Last())

	case key.Matches(msg, Keys.Reload):
		return m.reloadPage()

	case key.Matches(msg, Keys.Toggle):
		return m.toggleRow()

	case key.Matches(msg, Keys.TogglePage):
		return m.togglePage()

	case key.Matches(msg, Keys.SelectN):
		if m.accumulating {
			return m.setStatus("a selection is already running (esc to cancel)", true)
		}
		hint := "Selects records after the current selection, page by page."
		if m.maxTarget > 0 {
			hint = fmt.Sprintf("1 to %d. %s", m.maxTarget, hint)
		}
		m.CountModal.Show("Select next N records", hint)
		return m, nil

	case key.Matches(msg, Keys.ShowSelection):
		m.Panel.SetSize(m.Width, m.Height)
		m.Panel.Show(m.Selection.Items())
		return m, nil
	}

	// Let the table handle remaining keys (j/k/g/G navigation)
	_, cmd := m.Table.Update(msg)
	return m, cmd
}

// routeToModal routes key input to active modals
// Returns (handled, model, cmd) where handled is true if a modal consumed the input
func (m Model) routeToModal(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	// Selection panel
	if m.Panel.IsVisible() {
		var cmd tea.Cmd
		var action components.PanelAction
		m.Panel, cmd, action = m.Panel.Update(msg)

		switch action {
		case components.PanelRemove:
			if a := m.Panel.Selected(); a != nil {
				m.Selection.Remove(a.ID)
				m.Panel.SetItems(m.Selection.Items())
			}
		case components.PanelClear:
			n := m.Selection.Len()
			m.Selection.Clear()
			m.Panel.SetItems(nil)
			m.StatusMsg = fmt.Sprintf("cleared %d selected records", n)
			m.StatusIsErr = false
		}
		return true, m, cmd
	}

	// Sort modal
	if m.SortModal.IsVisible() {
		handled, selection := m.SortModal.HandleKey(msg.String())
		if handled {
			if selection != nil {
				m.Table.ApplySort(selection.Field, selection.Direction)
			}
			return true, m, nil
		}
	}

	// Count modal
	if m.CountModal.IsVisible() {
		var cmd tea.Cmd
		var submitted bool
		m.CountModal, cmd, submitted = m.CountModal.Update(msg)
		if submitted {
			value := m.CountModal.Value()
			m.CountModal.Hide()

			n, err := service.ParseCount(value, m.maxTarget)
			if err != nil {
				next, statusCmd := m.setStatus(err.Error(), true)
				return true, next.(Model), statusCmd
			}
			next, accCmd := m.startAccumulate(n)
			return true, next.(Model), accCmd
		}
		return true, m, cmd
	}

	// Filter typing mode
	if m.Table.IsFilterTyping() {
		_, cmd := m.Table.Update(msg)
		return true, m, cmd
	}

	return false, m, nil
}

// quit stops any running selection and exits
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.cancelAccumulate != nil {
		m.cancelAccumulate()
		m.cancelAccumulate = nil
	}
	return m, tea.Quit
}
