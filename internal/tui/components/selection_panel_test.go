package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func panelKey(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectionPanel_Actions(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		want   PanelAction
		wantID int // artwork under the cursor after the keys, 0 for none
	}{
		{"remove first", []string{"x"}, PanelRemove, 10},
		{"remove after moving", []string{"j", "j", "x"}, PanelRemove, 30},
		{"clear all", []string{"C"}, PanelClear, 10},
		{"close", []string{"esc"}, PanelClose, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSelectionPanel()
			p.SetSize(120, 40)
			p.Show(testArtworks())

			var action PanelAction
			for _, k := range tt.keys {
				p, _, action = p.Update(panelKey(k))
			}

			if action != tt.want {
				t.Errorf("action = %v, want %v", action, tt.want)
			}
			if a := p.Selected(); a == nil || a.ID != tt.wantID {
				t.Errorf("Selected() = %+v, want ID %d", a, tt.wantID)
			}
		})
	}
}

func TestSelectionPanel_Filter(t *testing.T) {
	p := NewSelectionPanel()
	p.SetSize(120, 40)
	p.Show(testArtworks())

	p, _, _ = p.Update(panelKey("/"))
	for _, r := range "gogh" {
		p, _, _ = p.Update(panelKey(string(r)))
	}

	if got := p.ResultCount(); got != 1 {
		t.Fatalf("ResultCount() = %d, want 1", got)
	}
	if a := p.Selected(); a == nil || a.ID != 40 {
		t.Errorf("Selected() = %+v, want ID 40", a)
	}

	// While typing, x is text, not remove
	p, _, action := p.Update(panelKey("x"))
	if action != PanelNone {
		t.Errorf("typing x returned action %v", action)
	}

	// Leave the input, then the list reacts to keys again
	p, _, _ = p.Update(panelKey("esc"))
	p, _, _ = p.Update(panelKey("esc"))
	if p.IsVisible() {
		t.Error("panel still visible after second esc")
	}
}

func TestSelectionPanel_SetItemsClampsCursor(t *testing.T) {
	p := NewSelectionPanel()
	p.SetSize(120, 40)
	p.Show(testArtworks())
	for range 3 {
		p, _, _ = p.Update(panelKey("j"))
	}

	p.SetItems(testArtworks()[:2])

	if a := p.Selected(); a == nil || a.ID != 20 {
		t.Errorf("Selected() = %+v, want ID 20", a)
	}

	p.SetItems(nil)
	if p.Selected() != nil {
		t.Error("Selected() should be nil for an empty selection")
	}
	if _, _, action := p.Update(panelKey("C")); action != PanelNone {
		t.Errorf("clear on empty selection returned %v", action)
	}
}
