package components

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artworks/internal/domain"
	"github.com/mmcdole/artworks/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Layout constants for the table
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// Title and column header lines
	headerLines = 2

	checkboxWidth = 2
	dateWidth     = 10
)

// ArtworkTable is a scrollable table of the artworks on the current page.
// Checkbox state is read from a shared selection at render time.
type ArtworkTable struct {
	items     []domain.Artwork
	selection *domain.Selection

	// visible maps display rows to indices into items (after sort and filter)
	visible []int

	// Cursor
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width  int
	height int

	title string

	loading      bool
	spinnerFrame int

	sortField SortField
	sortDir   SortDirection

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
}

// NewArtworkTable creates a table that renders checkboxes from selection
func NewArtworkTable(title string, selection *domain.Selection) *ArtworkTable {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &ArtworkTable{
		title:       title,
		selection:   selection,
		filterInput: ti,
	}
}

func (t *ArtworkTable) Update(msg tea.Msg) (*ArtworkTable, tea.Cmd) {
	// Typing mode: the filter input owns the keyboard
	if t.filterActive && t.filterInput.Focused() {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, TableKeys.Escape):
				t.clearFilter()
				return t, nil
			case key.Matches(msg, TableKeys.Enter):
				// Accept filter, blur input to allow navigation
				t.filterInput.Blur()
				return t, nil
			case msg.String() == "backspace" && t.filterInput.Value() == "":
				t.clearFilter()
				return t, nil
			}
		}

		var cmd tea.Cmd
		t.filterInput, cmd = t.filterInput.Update(msg)
		t.applyFilter()
		return t, cmd
	}

	// Filter active but blurred (navigating filter results)
	if t.filterActive {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, TableKeys.Escape):
				t.clearFilter()
				return t, nil
			case key.Matches(msg, TableKeys.Filter):
				t.filterInput.Focus()
				return t, nil
			}
		}
	}

	count := t.ItemCount()
	if count == 0 {
		return t, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, TableKeys.Down):
			if t.cursor < count-1 {
				t.cursor++
				t.ensureVisible()
			}
		case key.Matches(msg, TableKeys.Up):
			if t.cursor > 0 {
				t.cursor--
				t.ensureVisible()
			}
		case key.Matches(msg, TableKeys.Home):
			t.cursor = 0
			t.offset = 0
		case key.Matches(msg, TableKeys.End):
			t.cursor = count - 1
			t.ensureVisible()
		case key.Matches(msg, TableKeys.HalfDown):
			t.cursor = min(t.cursor+t.maxVisible/2, count-1)
			t.ensureVisible()
		case key.Matches(msg, TableKeys.HalfUp):
			t.cursor = max(t.cursor-t.maxVisible/2, 0)
			t.ensureVisible()
		}
	}

	return t, nil
}

func (t *ArtworkTable) View() string {
	style := styles.TableBorder

	// Subtract frame (border) size so total rendered size equals t.width x t.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(max(t.width-frameW, 0)).
		Height(max(t.height-frameH, 0)).
		Render(t.renderContent())
}

func (t *ArtworkTable) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.recalcMaxVisible()
	t.ensureVisible()
}

func (t *ArtworkTable) SetTitle(title string) {
	t.title = title
}

// SetItems replaces the page content. Sort order survives, the filter does not.
func (t *ArtworkTable) SetItems(items []domain.Artwork) {
	t.loading = false
	t.items = items
	t.cursor = 0
	t.offset = 0
	t.clearFilter()
}

// Items returns a copy of the page content in served order
func (t *ArtworkTable) Items() []domain.Artwork {
	out := make([]domain.Artwork, len(t.items))
	copy(out, t.items)
	return out
}

// VisibleItems returns the rows on display in display order
func (t *ArtworkTable) VisibleItems() []domain.Artwork {
	out := make([]domain.Artwork, len(t.visible))
	for i, idx := range t.visible {
		out[i] = t.items[idx]
	}
	return out
}

// SelectedArtwork returns the artwork under the cursor
func (t *ArtworkTable) SelectedArtwork() *domain.Artwork {
	if t.cursor < 0 || t.cursor >= len(t.visible) {
		return nil
	}
	a := t.items[t.visible[t.cursor]]
	return &a
}

func (t *ArtworkTable) SelectedIndex() int {
	return t.cursor
}

func (t *ArtworkTable) SetSelectedIndex(idx int) {
	last := t.ItemCount() - 1
	if last < 0 {
		t.cursor = 0
		return
	}
	t.cursor = min(max(idx, 0), last)
	t.ensureVisible()
}

func (t *ArtworkTable) ItemCount() int {
	return len(t.visible)
}

func (t *ArtworkTable) IsEmpty() bool {
	return t.ItemCount() == 0
}

func (t *ArtworkTable) SetLoading(loading bool) {
	t.loading = loading
}

// SetSpinnerFrame updates the spinner animation frame
func (t *ArtworkTable) SetSpinnerFrame(frame int) {
	t.spinnerFrame = frame
}

// SortState returns the active sort column and direction
func (t *ArtworkTable) SortState() (SortField, SortDirection) {
	return t.sortField, t.sortDir
}

// ApplySort reorders the rows client-side; SortDefault restores page order
func (t *ArtworkTable) ApplySort(field SortField, dir SortDirection) {
	var current int
	if a := t.SelectedArtwork(); a != nil {
		current = a.ID
	}

	t.sortField = field
	t.sortDir = dir
	t.rebuild()

	// Keep the cursor on the same artwork
	for i, idx := range t.visible {
		if t.items[idx].ID == current {
			t.cursor = i
			break
		}
	}
	t.ensureVisible()
}

// ToggleFilter activates the filter input
func (t *ArtworkTable) ToggleFilter() {
	t.filterActive = true
	t.filterInput.Focus()
	t.recalcMaxVisible()
}

// IsFiltering returns true if filter mode is active
func (t *ArtworkTable) IsFiltering() bool {
	return t.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (t *ArtworkTable) IsFilterTyping() bool {
	return t.filterActive && t.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all rows
func (t *ArtworkTable) ClearFilter() {
	t.clearFilter()
}

// Internal methods

func (t *ArtworkTable) recalcMaxVisible() {
	interiorHeight := t.height - BorderHeight
	t.maxVisible = interiorHeight - ScrollIndicatorLines - headerLines
	if t.filterActive {
		t.maxVisible--
	}
	if t.maxVisible < 1 {
		t.maxVisible = 1
	}
}

func (t *ArtworkTable) ensureVisible() {
	// Don't adjust offset if size hasn't been set yet
	if t.maxVisible <= 0 {
		return
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+t.maxVisible {
		t.offset = t.cursor - t.maxVisible + 1
	}
}

func (t *ArtworkTable) clearFilter() {
	t.filterActive = false
	t.filterQuery = ""
	t.filterInput.SetValue("")
	t.filterInput.Blur()
	t.recalcMaxVisible()
	t.rebuild()
}

func (t *ArtworkTable) applyFilter() {
	t.filterQuery = t.filterInput.Value()
	t.rebuild()
	t.cursor = 0
	t.offset = 0
}

// rebuild recomputes the visible rows: sorted page order, then fuzzy filter
func (t *ArtworkTable) rebuild() {
	order := make([]int, len(t.items))
	for i := range order {
		order[i] = i
	}

	if t.sortField != SortDefault {
		less := artworkLess(t.sortField)
		sort.SliceStable(order, func(i, j int) bool {
			a, b := t.items[order[i]], t.items[order[j]]
			if t.sortDir == SortDesc {
				return less(b, a)
			}
			return less(a, b)
		})
	}

	if t.filterQuery == "" {
		t.visible = order
		if t.cursor >= len(order) {
			t.cursor = max(len(order)-1, 0)
		}
		return
	}

	lower := make([]string, len(order))
	for i, idx := range order {
		lower[i] = strings.ToLower(t.items[idx].SearchText())
	}
	matches := fuzzy.Find(strings.ToLower(t.filterQuery), lower)

	t.visible = make([]int, len(matches))
	for i, match := range matches {
		t.visible[i] = order[match.Index]
	}
}

// artworkLess returns the ascending comparison for a sort column
func artworkLess(field SortField) func(a, b domain.Artwork) bool {
	text := func(get func(domain.Artwork) string) func(a, b domain.Artwork) bool {
		return func(a, b domain.Artwork) bool {
			return strings.ToLower(get(a)) < strings.ToLower(get(b))
		}
	}

	switch field {
	case SortTitle:
		return text(func(a domain.Artwork) string { return a.Title })
	case SortOrigin:
		return text(func(a domain.Artwork) string { return a.PlaceOfOrigin })
	case SortArtist:
		return text(func(a domain.Artwork) string { return a.ArtistDisplay })
	case SortInscriptions:
		return text(func(a domain.Artwork) string { return a.Inscriptions })
	case SortDateStart:
		return func(a, b domain.Artwork) bool { return a.DateStart < b.DateStart }
	case SortDateEnd:
		return func(a, b domain.Artwork) bool { return a.DateEnd < b.DateEnd }
	default:
		return func(a, b domain.Artwork) bool { return false }
	}
}

// Rendering

// tableColumns holds the text column widths for a given interior width
type tableColumns struct {
	title, origin, artist, inscriptions int
}

func layoutColumns(width int) tableColumns {
	// checkbox + two date columns + separators between six columns
	rest := width - 2 - checkboxWidth - 2*dateWidth - 6
	if rest < 20 {
		rest = 20
	}
	cols := tableColumns{
		title:  rest * 30 / 100,
		origin: rest * 15 / 100,
		artist: rest * 25 / 100,
	}
	cols.inscriptions = rest - cols.title - cols.origin - cols.artist
	return cols
}

func (t *ArtworkTable) renderContent() string {
	itemWidth := max(t.width-BorderWidth, 10)

	titleLine := styles.AccentStyle.Render(styles.Truncate(t.title, itemWidth))

	if t.loading && len(t.items) == 0 {
		spinner := styles.SpinnerFrames[t.spinnerFrame%len(styles.SpinnerFrames)]
		return titleLine + "\n \n" + styles.DimStyle.Render(spinner+" Loading...") + "\n "
	}

	cols := layoutColumns(itemWidth)
	header := t.renderHeader(cols, itemWidth)

	count := t.ItemCount()
	if count == 0 {
		emptyMsg := styles.DimStyle.Render("No artworks")
		if t.filterActive && t.filterQuery != "" {
			emptyMsg = styles.DimStyle.Render("No matches")
		}
		content := titleLine + "\n" + header + "\n \n" + emptyMsg + "\n "
		if t.filterActive {
			content += "\n" + t.renderFilterBar()
		}
		return content
	}

	end := min(t.offset+t.maxVisible, count)

	lines := make([]string, 0, end-t.offset)
	for i := t.offset; i < end; i++ {
		lines = append(lines, t.renderRow(t.items[t.visible[i]], i == t.cursor, cols, itemWidth))
	}

	// Always reserve the indicator lines to prevent layout shifts
	up := " "
	if t.offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < count {
		down = styles.DimStyle.Render("↓ more")
	}

	content := titleLine + "\n" + header + "\n" + up + "\n" + strings.Join(lines, "\n") + "\n" + down

	if t.filterActive {
		content += "\n" + t.renderFilterBar()
	}

	return content
}

func (t *ArtworkTable) renderHeader(cols tableColumns, width int) string {
	label := func(field SortField, name string, w int) string {
		if field == t.sortField && field != SortDefault {
			if t.sortDir == SortAsc {
				name += " ↑"
			} else {
				name += " ↓"
			}
		}
		return styles.Pad(name, w)
	}

	box := styles.UncheckedChar
	switch t.pageSelectionState() {
	case pageAllSelected:
		box = styles.CheckedChar
	case pagePartlySelected:
		box = styles.PartialChar
	}

	cells := []string{
		styles.Pad(box, checkboxWidth),
		label(SortTitle, "Title", cols.title),
		label(SortOrigin, "Place of Origin", cols.origin),
		label(SortArtist, "Artist", cols.artist),
		label(SortInscriptions, "Inscriptions", cols.inscriptions),
		label(SortDateStart, "Start", dateWidth),
		label(SortDateEnd, "End", dateWidth),
	}
	return " " + styles.HeaderStyle.Render(styles.Pad(strings.Join(cells, " "), width-2))
}

func (t *ArtworkTable) renderRow(a domain.Artwork, selected bool, cols tableColumns, width int) string {
	box := styles.UncheckedChar
	boxFg := styles.DimGray
	if t.selection.Contains(a.ID) {
		box = styles.CheckedChar
		boxFg = styles.Gold
	}

	cell := func(s string, w int) string {
		return " " + styles.Pad(styles.Truncate(styles.Flatten(s), w), w)
	}

	parts := []styles.RowPart{
		{Text: styles.Pad(box, checkboxWidth), Foreground: &boxFg},
		{Text: cell(a.Title, cols.title)},
		{Text: cell(a.PlaceOfOrigin, cols.origin)},
		{Text: cell(a.ArtistName(), cols.artist)},
		{Text: cell(a.Inscriptions, cols.inscriptions)},
		{Text: cell(formatDate(a.DateStart), dateWidth)},
		{Text: cell(formatDate(a.DateEnd), dateWidth)},
	}

	return styles.RenderListRow(parts, selected, width)
}

func (t *ArtworkTable) renderFilterBar() string {
	input := t.filterInput.View()
	if t.filterQuery == "" {
		return input
	}
	return input + styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", t.ItemCount(), len(t.items)))
}

type pageSelectionState int

const (
	pageNoneSelected pageSelectionState = iota
	pagePartlySelected
	pageAllSelected
)

func (t *ArtworkTable) pageSelectionState() pageSelectionState {
	if len(t.items) == 0 {
		return pageNoneSelected
	}
	n := 0
	for _, a := range t.items {
		if t.selection.Contains(a.ID) {
			n++
		}
	}
	switch n {
	case 0:
		return pageNoneSelected
	case len(t.items):
		return pageAllSelected
	default:
		return pagePartlySelected
	}
}

func formatDate(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
