package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/artworks/internal/domain"
	"github.com/mmcdole/artworks/internal/service"
	"github.com/mmcdole/artworks/internal/tui/styles"
)

// PanelAction is what the user asked the selection panel to do
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelRemove
	PanelClear
	PanelClose
)

// SelectionPanel lists the selected artworks in selection order
type SelectionPanel struct {
	input   textinput.Model
	items   []domain.Artwork // full selection
	results []domain.Artwork // items after filter
	cursor  int
	offset  int
	visible bool
	width   int
	height  int
}

// NewSelectionPanel creates a new selection panel
func NewSelectionPanel() SelectionPanel {
	ti := textinput.New()
	ti.Placeholder = "filter selection..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return SelectionPanel{
		input: ti,
	}
}

// Show makes the panel visible with the given selection
func (p *SelectionPanel) Show(items []domain.Artwork) {
	p.visible = true
	p.input.SetValue("")
	p.input.Blur()
	p.cursor = 0
	p.offset = 0
	p.SetItems(items)
}

// Hide hides the panel
func (p *SelectionPanel) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible returns true if the panel is visible
func (p SelectionPanel) IsVisible() bool {
	return p.visible
}

// SetItems replaces the listed selection, keeping the filter
func (p *SelectionPanel) SetItems(items []domain.Artwork) {
	p.items = items
	p.refilter()
}

// SetSize updates the component dimensions
func (p *SelectionPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(width/2, 20)
}

// Selected returns the artwork under the cursor
func (p SelectionPanel) Selected() *domain.Artwork {
	if p.cursor < 0 || p.cursor >= len(p.results) {
		return nil
	}
	a := p.results[p.cursor]
	return &a
}

// ResultCount returns the number of listed artworks after filtering
func (p SelectionPanel) ResultCount() int {
	return len(p.results)
}

// Update handles messages, returns (panel, cmd, action)
func (p SelectionPanel) Update(msg tea.Msg) (SelectionPanel, tea.Cmd, PanelAction) {
	if !p.visible {
		return p, nil, PanelNone
	}

	var cmd tea.Cmd

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		p.input, cmd = p.input.Update(msg)
		return p, cmd, PanelNone
	}

	// Typing into the filter
	if p.input.Focused() {
		switch keyMsg.String() {
		case "esc", "enter":
			p.input.Blur()
			return p, nil, PanelNone
		}
		p.input, cmd = p.input.Update(msg)
		p.refilter()
		return p, cmd, PanelNone
	}

	switch {
	case key.Matches(keyMsg, SelectionPanelKeys.Close):
		p.Hide()
		return p, nil, PanelClose
	case key.Matches(keyMsg, SelectionPanelKeys.Filter):
		p.input.Focus()
		return p, textinput.Blink, PanelNone
	case key.Matches(keyMsg, SelectionPanelKeys.Down):
		if p.cursor < len(p.results)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, SelectionPanelKeys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, SelectionPanelKeys.Remove):
		if p.Selected() != nil {
			return p, nil, PanelRemove
		}
	case key.Matches(keyMsg, SelectionPanelKeys.Clear):
		if len(p.items) > 0 {
			return p, nil, PanelClear
		}
	}
	return p, nil, PanelNone
}

func (p *SelectionPanel) refilter() {
	p.results = service.FilterArtworks(p.input.Value(), p.items)
	if p.cursor >= len(p.results) {
		p.cursor = max(len(p.results)-1, 0)
	}
}

func (p SelectionPanel) maxRows() int {
	// modal chrome: border, padding, title, input, spacing, footer
	return max(p.height-14, 3)
}

// View renders the component
func (p SelectionPanel) View() string {
	if !p.visible {
		return ""
	}

	modalWidth := min(max(p.width*3/4, 50), 110)
	innerWidth := modalWidth - 6

	var b strings.Builder

	b.WriteString(styles.ModalTitleStyle.Render(fmt.Sprintf("Selection (%d)", len(p.items))))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	switch {
	case len(p.items) == 0:
		b.WriteString(styles.DimStyle.Render("Nothing selected yet. Press space on a row or N to select the next N records."))
	case len(p.results) == 0:
		b.WriteString(styles.DimStyle.Render("No matches found"))
	default:
		p.renderRows(&b, innerWidth)
	}

	b.WriteString("\n\n")
	b.WriteString(styles.AccentStyle.Render("x") + styles.DimStyle.Render(" remove  "))
	b.WriteString(styles.AccentStyle.Render("C") + styles.DimStyle.Render(" clear all  "))
	b.WriteString(styles.AccentStyle.Render("/") + styles.DimStyle.Render(" filter  "))
	b.WriteString(styles.AccentStyle.Render("esc") + styles.DimStyle.Render(" close"))

	return styles.ModalStyle.
		Width(modalWidth).
		Render(lipgloss.NewStyle().Width(innerWidth).Render(b.String()))
}

func (p SelectionPanel) renderRows(b *strings.Builder, width int) {
	rows := p.maxRows()

	// Keep the cursor inside the window
	offset := p.offset
	if p.cursor < offset {
		offset = p.cursor
	}
	if p.cursor >= offset+rows {
		offset = p.cursor - rows + 1
	}
	end := min(offset+rows, len(p.results))

	idWidth := 8
	for i := offset; i < end; i++ {
		a := p.results[i]
		idFg := styles.DimGray
		parts := []styles.RowPart{
			{Text: styles.Pad(fmt.Sprintf("#%d", a.ID), idWidth), Foreground: &idFg},
			{Text: styles.Truncate(styles.Flatten(a.Title)+" · "+a.ArtistName(), width-idWidth-2)},
		}
		b.WriteString(styles.RenderListRow(parts, i == p.cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if len(p.results) > end {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", len(p.results)-end)))
	}
}
