package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/artworks/internal/tui/styles"
)

// SortField represents a table column to sort by
type SortField int

const (
	SortDefault SortField = iota // page order as served
	SortTitle
	SortOrigin
	SortArtist
	SortInscriptions
	SortDateStart
	SortDateEnd
)

// String returns the display name for the sort field
func (f SortField) String() string {
	switch f {
	case SortDefault:
		return "Default"
	case SortTitle:
		return "Title"
	case SortOrigin:
		return "Place of Origin"
	case SortArtist:
		return "Artist"
	case SortInscriptions:
		return "Inscriptions"
	case SortDateStart:
		return "Date Start"
	case SortDateEnd:
		return "Date End"
	default:
		return "Unknown"
	}
}

// SortDirection represents sort direction
type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

// DefaultDirection returns the default sort direction for a field
func DefaultDirection(field SortField) SortDirection {
	switch field {
	case SortDateStart, SortDateEnd:
		return SortDesc // newest first
	default:
		return SortAsc // A-Z
	}
}

// ArtworkSortOptions returns the available sort options for the artwork table
func ArtworkSortOptions() []SortField {
	return []SortField{SortDefault, SortTitle, SortOrigin, SortArtist, SortInscriptions, SortDateStart, SortDateEnd}
}

// SortSelection represents the user's sort choice
type SortSelection struct {
	Field     SortField
	Direction SortDirection
}

// SortModal is a small popup for choosing sort order
type SortModal struct {
	visible     bool
	options     []SortField
	cursor      int
	activeField SortField
	activeDir   SortDirection
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{}
}

// Show displays the modal with the given options and current sort state
func (m *SortModal) Show(options []SortField, activeField SortField, activeDir SortDirection) {
	m.visible = true
	m.options = options
	m.activeField = activeField
	m.activeDir = activeDir
	m.cursor = 0
	for i, opt := range options {
		if opt == activeField {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a choice.
func (m *SortModal) HandleKey(key string) (handled bool, selection *SortSelection) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
		return true, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, nil
	case "enter":
		if len(m.options) == 0 {
			m.visible = false
			return true, nil
		}
		chosen := m.options[m.cursor]
		dir := DefaultDirection(chosen)
		if chosen == m.activeField && chosen != SortDefault {
			// Re-selecting the active column flips its direction
			if m.activeDir == SortAsc {
				dir = SortDesc
			} else {
				dir = SortAsc
			}
		}
		m.visible = false
		return true, &SortSelection{Field: chosen, Direction: dir}
	case "esc", "s":
		m.visible = false
		return true, nil
	}

	return true, nil // consume all keys when visible
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	var lines []string
	for i, opt := range m.options {
		selected := i == m.cursor
		isActive := opt == m.activeField

		prefix := "  "
		if isActive {
			prefix = "✓ "
		}

		var suffix string
		if isActive && opt != SortDefault {
			if m.activeDir == SortAsc {
				suffix = " ↑"
			} else {
				suffix = " ↓"
			}
		}

		text := styles.Pad(prefix+opt.String()+suffix, 22)

		style := lipgloss.NewStyle().Foreground(styles.LightGray)
		switch {
		case selected:
			style = lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight)
		case isActive:
			style = lipgloss.NewStyle().Foreground(styles.Gold)
		}
		lines = append(lines, style.Render(text))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Gold).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Sort by") + "\n" + strings.Join(lines, "\n"))
}
